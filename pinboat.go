// Copyright (c) 2026 pinboat contributors.
// All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Package pinboat holds the bookmark type shared between the cli and the
// pinboard API client.
package pinboat

// A Bookmark as entered on the command line, before it is encoded into the
// pinboard.in query payload. Built once per invocation and discarded after
// the request.
type Bookmark struct {
	// URL of the page to pin.
	URL string

	// Title of the page. Pinboard calls this field `description` on the
	// wire.
	Title string

	// Optional longer description, sent as `extended`.
	Desc string

	// Raw tags as passed with -t. Tags are normalized (spaces and commas
	// stripped) when the payload is built.
	Tags []string

	// Replace an existing bookmark for the same URL.
	Replace bool

	// Share the bookmark publicly.
	Shared bool

	// Mark the bookmark as read-later.
	ToRead bool
}
