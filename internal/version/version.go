// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package version

import "fmt"

var (
	// Version is the current application version.
	// It should be populated by the build system (ldflags).
	Version = "dev"

	// Commit is the git short hash of the build.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)

// String formats the build information for -version output.
func String() string {
	return fmt.Sprintf("confighdr %s (commit %s, built %s)", Version, Commit, Date)
}
