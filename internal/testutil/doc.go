// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers: executable stand-ins for external
// tools (WriteScript, FakeCygpath) and working-directory management (MustChdir).
package testutil
