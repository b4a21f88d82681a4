// Copyright (c) 2026 pinboat contributors.
// All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/.pinboard-auth")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pinboard-auth"), expanded)

	t.Setenv("PINBOAT_TEST_DIR", "/tmp/pinboat")
	expanded, err = ExpandPath("$PINBOAT_TEST_DIR/auth")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pinboat/auth", expanded)

	_, err = ExpandPath("")
	assert.Error(t, err)
}
