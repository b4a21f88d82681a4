// Copyright (c) 2026 pinboat contributors.
// All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package build

import (
	"fmt"
	"runtime/debug"
)

var (
	// Describe stores the most recent tag, the number of commits since that
	// tag and a dirty marker. Set with -ldflags during compilation.
	Describe string

	// CommitHash stores the current commit hash of this build.
	CommitHash string

	// GoVersion stores the go version the executable was compiled with.
	GoVersion string

	// PackageVersion stores the version of the package itself.
	PackageVersion string
)

// Version returns the application version as a properly formed string per
// the semantic versioning 2.0.0 spec (http://semver.org/).
func Version() string {
	if Describe == "" {
		return PackageVersion
	}

	commit := CommitHash
	if len(commit) > 8 {
		commit = commit[:8]
	}

	return fmt.Sprintf("%s commit=%s", Describe, commit)
}

// Get build information from the runtime.
func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		GoVersion = info.GoVersion
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				CommitHash = setting.Value
			}
		}
		if info.Main.Version != "" {
			PackageVersion = info.Main.Version
		}
	}
}
