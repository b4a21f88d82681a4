// Copyright (c) 2026 pinboat contributors.
// All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Package config loads the pinboard auth token from a local key=value file.
//
// The file holds a line like:
//
//	auth_token=USER:BUNCHOFHEXCHARS
//
// and must not be readable by group or others. The token can be obtained
// from the password page of a pinboard.in account.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-ini/ini"

	"github.com/pinboat/pinboat/internal/utils"
)

const (
	// DefaultConfigFile is the default token file path, relative to $HOME.
	DefaultConfigFile = "~/.pinboard-auth"

	// TokenKey is the only key consumed from the config file.
	TokenKey = "auth_token"

	// unsafeModeBits are the group/other permission bits that must be unset
	// on the config file.
	unsafeModeBits = 0o077
)

var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrUnsafePermissions = errors.New("config file should not be accessible to others")
	ErrMissingToken      = errors.New("no auth_token found in config file")
)

// LoadToken reads the pinboard auth token from the given config file path.
//
// The path supports tilde and environment variable expansion. A missing
// file, a file with group/other permission bits set, or a file without an
// auth_token entry are all fatal misconfigurations surfaced as the package
// sentinel errors.
func LoadToken(path string) (string, error) {
	filePath, err := utils.ExpandPath(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return "", err
	}

	// Refuse to run unless the file is 0600-equivalent.
	if info.Mode().Perm()&unsafeModeBits != 0 {
		return "", fmt.Errorf("%w: %s", ErrUnsafePermissions, path)
	}

	cfg, err := ini.Load(filePath)
	if err != nil {
		return "", fmt.Errorf("parsing config %s: %w", path, err)
	}

	section := cfg.Section(ini.DefaultSection)
	if !section.HasKey(TokenKey) {
		return "", fmt.Errorf("%w: %s", ErrMissingToken, path)
	}

	token := strings.TrimSpace(section.Key(TokenKey).String())
	if token == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingToken, path)
	}

	return token, nil
}
