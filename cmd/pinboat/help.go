// Copyright (c) 2026 pinboat contributors.
// All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package main

var AppHelpTemplate = `NAME:
   {{template "helpNameTemplate" .}}

pinboat is a pinboard.in bookmarking hook for newsboat and newsbeuter. It
reads a URL, title and optional description from the command line and saves
them to your pinboard account with a single API request.

USAGE:
   {{if .UsageText}}{{wrap .UsageText 3}}{{else}}{{.FullName}} {{if .VisibleFlags}}[global options]{{end}}{{if .ArgsUsage}} {{.ArgsUsage}}{{else}}{{if .Arguments}} [arguments...]{{end}}{{end}}{{end}}
{{- if .VisibleFlags}}

Flags:{{template "visibleFlagTemplate" .}}{{end}}

The config file (default ~/.pinboard-auth) must be chmod 0600 and contain:

   auth_token=USER:BUNCHOFHEXCHARS

Your token is shown on https://pinboard.in/settings/password
`
