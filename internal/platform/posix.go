// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"context"

	"github.com/invowk/subsys/internal/execctx"
	"github.com/invowk/subsys/internal/spawn"
)

// posixMaxLineLength is a conservative ARG_MAX for POSIX hosts.
const posixMaxLineLength = 131072

// libraryPrefixes and librarySuffixes order matching as static library, shared
// library, import library.
var (
	libraryPrefixes = []string{"$LIBPREFIX", "$SHLIBPREFIX", "$IMPLIBPREFIX"}
	librarySuffixes = []string{"$LIBSUFFIX", "$SHLIBSUFFIX", "$IMPLIBSUFFIX"}
)

// POSIX configures generic POSIX defaults. Subsystems use it as their base.
type POSIX struct {
	opts options
}

// NewPOSIX creates the generic POSIX platform.
func NewPOSIX(opts ...Option) *POSIX {
	return &POSIX{opts: newOptions(opts)}
}

// Name returns the platform name.
func (p *POSIX) Name() string { return NamePOSIX }

// Configure applies the POSIX defaults to ec.
func (p *POSIX) Configure(_ context.Context, ec *execctx.Context) error {
	p.Delta().Apply(ec)
	return nil
}

// Delta returns the fields the POSIX platform owns. It depends on nothing in
// the host environment.
func (p *POSIX) Delta() execctx.Delta {
	return execctx.Delta{
		Owns: execctx.FieldAll,
		Values: execctx.Context{
			SearchPath:     []string{"/usr/local/bin", "/opt/bin", "/bin", "/usr/bin", "/snap/bin"},
			ProgPrefix:     "",
			ProgSuffix:     "",
			LibPrefix:      "lib",
			LibSuffix:      ".a",
			ShLibPrefix:    "$LIBPREFIX",
			ShLibSuffix:    ".so",
			ImpLibPrefix:   "$LIBPREFIX",
			ImpLibSuffix:   "$SHLIBSUFFIX",
			LibPrefixes:    libraryPrefixes,
			LibSuffixes:    librarySuffixes,
			MaxLineLength:  posixMaxLineLength,
			TempFile:       execctx.TempFileMunge{},
			TempFilePrefix: "@",
			Spawn:          spawn.EscapedSpawn,
			PSpawn:         spawn.EscapedSpawnCapture,
			Escape:         spawn.QuotePOSIX,
			Shell:          "sh",
			HostOS:         NamePOSIX,
			Platform:       NamePOSIX,
		},
	}
}
