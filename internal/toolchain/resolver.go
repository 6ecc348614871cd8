// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"context"
	"path/filepath"

	"github.com/invowk/subsys/internal/hostenv"
)

// SharedBinDir is the compatibility layer's own binary directory, in subsystem form.
const SharedBinDir = "/usr/bin"

type (
	// CandidatePaths is the ordered list of binary directories for the active
	// subsystem, most specific first.
	CandidatePaths struct {
		Paths []string
		// Root is the installation root the paths were derived from, if any.
		Root string
		// Legacy marks the static low-confidence guess used when no root is known.
		Legacy bool
	}

	// Resolver computes CandidatePaths. It caches nothing: the environment may
	// change between build invocations.
	Resolver struct {
		translator *Translator
	}
)

// NewResolver creates a Resolver that translates paths with t.
func NewResolver(t *Translator) *Resolver {
	return &Resolver{translator: t}
}

// LegacyPaths is the fallback used when no installation root is known. It is a
// best-effort guess at historical install locations and is not validated.
func LegacyPaths() []string {
	return []string{
		`C:\msys64\bin`,
		`C:\msys\bin`,
	}
}

// Resolve returns `[<root>/bin, native(/usr/bin)]` when the installation root
// variable is set, and LegacyPaths otherwise without running any helper.
func (r *Resolver) Resolve(ctx context.Context, env hostenv.Env) (CandidatePaths, error) {
	root, ok := env.Lookup(hostenv.VarMinGWPrefix)
	if !ok {
		return CandidatePaths{Paths: LegacyPaths(), Legacy: true}, nil
	}

	shared, err := r.translator.ToNative(ctx, SharedBinDir)
	if err != nil {
		return CandidatePaths{}, err
	}

	return CandidatePaths{
		Paths: []string{filepath.Join(root, "bin"), shared},
		Root:  root,
	}, nil
}
