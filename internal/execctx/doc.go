// SPDX-License-Identifier: MPL-2.0

// Package execctx holds the execution context a build uses to invoke external
// tools: environment, search path, binary naming conventions, command-line limits
// and the spawn strategy.
//
// Platform layers never assign context fields one by one. Each layer produces a
// Delta naming exactly the fields it owns, and Delta.Apply merges it into the
// caller-owned Context in one step.
package execctx
