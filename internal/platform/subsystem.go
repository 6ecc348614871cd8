// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"context"
	"fmt"

	"github.com/invowk/subsys/internal/execctx"
	"github.com/invowk/subsys/internal/hostenv"
	"github.com/invowk/subsys/internal/spawn"
	"github.com/invowk/subsys/internal/toolchain"
	pkgplatform "github.com/invowk/subsys/pkg/platform"
)

// Subsystem configures contexts for a Windows host running inside a
// POSIX-emulation subsystem. Every tool command goes through the subsystem's sh.
type Subsystem struct {
	variant Variant
	opts    options
	posix   *POSIX
	native  *Native
}

// NewSubsystem creates the configurator for variant.
func NewSubsystem(variant Variant, opts ...Option) *Subsystem {
	o := newOptions(opts)
	return &Subsystem{
		variant: variant,
		opts:    o,
		posix:   &POSIX{opts: o},
		native:  &Native{opts: o},
	}
}

// Name returns the variant's platform name.
func (s *Subsystem) Name() string { return s.variant.String() }

// Variant returns the configured variant.
func (s *Subsystem) Variant() Variant { return s.variant }

// Configure applies the subsystem settings to ec. A probed variant whose marker is
// absent configures ec as a native Windows host instead. On error ec is unchanged.
func (s *Subsystem) Configure(ctx context.Context, ec *execctx.Context) error {
	env := s.opts.hostEnv()
	traits := s.variant.traits()
	logger := s.opts.logger.With("platform", traits.name)

	if !traits.unconditional {
		det := hostenv.Probe(env)
		if !det.Active {
			logger.Debug("subsystem marker absent, configuring native windows", "marker", hostenv.VarMSYSTEM)
			s.native.configure(ec, env)
			return nil
		}
		logger.Debug("subsystem detected", "system", det.System, "subsystem", det.Resolve(traits.subsystem))
	}

	if traits.notice != "" {
		logger.Info(traits.notice)
	}

	deltas, err := s.deltas(ctx, ec, env)
	if err != nil {
		return err
	}
	for _, d := range deltas {
		d.Apply(ec)
	}
	logger.Debug("context configured", "shell", ec.Shell, "search_path", ec.SearchPath)
	return nil
}

// deltas computes the POSIX base delta and the subsystem delta without touching ec.
func (s *Subsystem) deltas(ctx context.Context, ec *execctx.Context, env hostenv.Env) ([]execctx.Delta, error) {
	traits := s.variant.traits()

	resolver := toolchain.NewResolver(toolchain.NewTranslator(s.opts.locator, s.opts.translator))
	candidates, err := resolver.Resolve(ctx, env)
	if err != nil {
		return nil, &ConfigurationError{
			Platform: traits.name,
			Resource: fmt.Sprintf("path translation helper %q", s.opts.translator),
			Err:      err,
		}
	}
	if candidates.Legacy {
		s.opts.logger.Debug("installation root unknown, using legacy search paths",
			"variable", hostenv.VarMinGWPrefix, "paths", candidates.Paths)
	}

	shell, err := s.opts.locator.Locate(s.opts.shell)
	if err != nil {
		return nil, &ConfigurationError{
			Platform: traits.name,
			Resource: fmt.Sprintf("shell %q", s.opts.shell),
			Err:      fmt.Errorf("%w: %w", ErrShellNotFound, err),
		}
	}

	base := s.posix.Delta()

	// COMSPEC is only imported when the context does not already define it;
	// the POSIX base writes no environment, so ec.Env is what it will be after base.
	imported := importHostVars(ec, env)
	imported["PATHEXT"] = pkgplatform.PathExt

	searchPath := append(candidates.Paths, System32(env))

	sub := execctx.Delta{
		Owns: execctx.FieldSearchPath |
			execctx.FieldProgPrefix | execctx.FieldProgSuffix |
			execctx.FieldShLibPrefix | execctx.FieldShLibSuffix |
			execctx.FieldImpLibPrefix | execctx.FieldImpLibSuffix |
			execctx.FieldLibPrefixes | execctx.FieldLibSuffixes |
			execctx.FieldTempFile | execctx.FieldTempFilePrefix |
			execctx.FieldSpawn | execctx.FieldPSpawn |
			execctx.FieldMaxLineLength |
			execctx.FieldHostOS | execctx.FieldShell | execctx.FieldPlatform,
		Values: execctx.Context{
			SearchPath:     searchPath,
			ProgPrefix:     "",
			ProgSuffix:     pkgplatform.ExeSuffix,
			ShLibPrefix:    "",
			ShLibSuffix:    pkgplatform.DLLSuffix,
			ImpLibPrefix:   "lib",
			ImpLibSuffix:   ".dll.a",
			LibPrefixes:    libraryPrefixes,
			LibSuffixes:    librarySuffixes,
			TempFile:       execctx.TempFileMunge{},
			TempFilePrefix: "@",
			Spawn:          spawn.Spawn,
			PSpawn:         spawn.SpawnCapture,
			MaxLineLength:  subsystemMaxLineLength,
			HostOS:         traits.hostOS,
			Shell:          shell,
			Platform:       traits.name,
		},
		Env: imported,
	}

	return []execctx.Delta{base, sub}, nil
}
