// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Version is set at link time via `-ldflags -X github.com/pontifex-team/pontifex/buildvars.Version=...`.
// It will be empty for local or development builds.
var Version string

// GitCommit is set at link time with the short commit SHA.
var GitCommit string

// BuildDate is set at link time (RFC3339).
var BuildDate string

// VersionOrDefault returns `Version` if set, otherwise returns the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}
