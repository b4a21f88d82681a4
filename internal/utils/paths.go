// Copyright (c) 2026 pinboat contributors.
// All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"errors"
	"os"
	"path/filepath"
)

// ExpandPath expands a path with environment variables and tilde.
// Symlinks are not followed; the caller stats the result.
func ExpandPath(paths ...string) (string, error) {
	path := os.ExpandEnv(filepath.Join(paths...))
	if path == "" {
		return "", errors.New("empty path")
	}

	if path[0] == '~' {
		homedir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(homedir, path[1:])
	}

	return path, nil
}
