// SPDX-License-Identifier: MPL-2.0

// Package platform holds host naming constants shared by the configurators and
// the CLI: runtime.GOOS names and the Windows executable conventions.
package platform
