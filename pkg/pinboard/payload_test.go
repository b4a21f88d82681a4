// Copyright (c) 2026 pinboat contributors.
// All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package pinboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pinboat/pinboat"
	"github.com/pinboat/pinboat/pkg/logging"
)

func TestMain(m *testing.M) {
	logging.SetLevel(logging.Silent)
	m.Run()
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		expected []string
	}{
		{
			name:     "spaces and commas stripped",
			tags:     []string{"foo bar", "baz,qux"},
			expected: []string{"foobar", "bazqux"},
		},
		{
			name:     "plain tags untouched",
			tags:     []string{"golang", "rss"},
			expected: []string{"golang", "rss"},
		},
		{
			name:     "empty tags dropped",
			tags:     []string{"", " ", ",", "ok"},
			expected: []string{"ok"},
		},
		{
			name:     "nil tags",
			tags:     nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTags(tt.tags))
		})
	}
}

func TestPayload(t *testing.T) {
	bk := &pinboat.Bookmark{
		URL:   "https://go.dev/blog/error-handling",
		Title: "Error handling and Go",
		Desc:  "the Go blog on errors",
		Tags:  []string{"foo bar", "baz,qux"},
	}

	params := payload(bk, "user:SECRET")

	assert.Equal(t, "https://go.dev/blog/error-handling", params.Get("url"))
	assert.Equal(t, "Error handling and Go", params.Get("description"))
	assert.Equal(t, "user:SECRET", params.Get("auth_token"))
	assert.Equal(t, "the Go blog on errors", params.Get("extended"))
	assert.Equal(t, "foobar bazqux", params.Get("tags"))
	assert.Equal(t, "no", params.Get("replace"))
	assert.Equal(t, "no", params.Get("shared"))
	assert.Equal(t, "no", params.Get("toread"))
}

func TestPayloadOmitsEmptyFields(t *testing.T) {
	bk := &pinboat.Bookmark{
		URL:   "https://go.dev",
		Title: "The Go Programming Language",
	}

	params := payload(bk, "user:SECRET")

	assert.NotContains(t, params, "extended")
	assert.NotContains(t, params, "tags")
}

func TestPayloadFlags(t *testing.T) {
	bk := &pinboat.Bookmark{
		URL:     "https://go.dev",
		Title:   "The Go Programming Language",
		Replace: true,
		Shared:  true,
		ToRead:  true,
	}

	params := payload(bk, "user:SECRET")

	assert.Equal(t, "yes", params.Get("replace"))
	assert.Equal(t, "yes", params.Get("shared"))
	assert.Equal(t, "yes", params.Get("toread"))
}
