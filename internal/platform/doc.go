// SPDX-License-Identifier: MPL-2.0

// Package platform configures execution contexts for a host platform.
//
// Three kinds of platforms are available:
//   - POSIX: generic POSIX defaults, also the base every subsystem builds on
//   - Native: a plain Windows host running tools through cmd.exe
//   - Subsystem: a Windows host inside a POSIX-emulation shell (MinGW, MSYS, MSYS2),
//     running every tool command through the subsystem's own sh
//
// A Subsystem whose marker variable is absent degrades to Native instead of failing,
// so a build told to use the subsystem profile still works from a plain console.
//
// Configuration computes every change as an execctx.Delta first and applies the
// deltas only once all external resources (path helper, shell) were found; a failed
// configuration leaves the context untouched.
package platform
