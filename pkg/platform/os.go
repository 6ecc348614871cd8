// SPDX-License-Identifier: MPL-2.0

package platform

import "strings"

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Windows executable conventions.
const (
	ExeSuffix = ".exe"
	DLLSuffix = ".dll"
	// PathExt is the PATHEXT value set for Windows contexts.
	PathExt = ".COM;.EXE;.BAT;.CMD"
)

// IsExecutableExt reports whether name ends in one of the PathExt extensions.
// Comparison is case-insensitive, as on Windows.
func IsExecutableExt(name string) bool {
	upper := strings.ToUpper(name)
	for ext := range strings.SplitSeq(PathExt, ";") {
		if strings.HasSuffix(upper, ext) {
			return true
		}
	}
	return false
}
