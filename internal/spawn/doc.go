// SPDX-License-Identifier: MPL-2.0

// Package spawn launches external tool commands for a configured execution context.
//
// Two strategy families are provided:
//   - Spawn / SpawnCapture hand the whole argument vector, joined by single spaces,
//     to the subsystem shell as `sh -c "<line>"`. Quoting, globbing, pipes and `&&`
//     behave exactly as at that subsystem's prompt; the escape function is accepted
//     for signature compatibility and ignored.
//   - EscapedSpawn / EscapedSpawnCapture escape every argument first and are used by
//     the generic POSIX and native Windows contexts.
//
// All functions are stateless and safe for concurrent use. Each call starts exactly
// one child process and waits for it.
package spawn
