// SPDX-License-Identifier: MPL-2.0

// Package hostenv snapshots the host process environment and probes it for an
// active POSIX-emulation subsystem (MSYS, MSYS2, MinGW shells on Windows).
//
// A snapshot is taken once per configuration call and never cached, so tests can
// inject arbitrary environments without touching the process environment.
package hostenv
