// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the subsys CLI: it detects the host subsystem, shows the
// execution context a platform configures, and runs command lines through it.
package cmd
