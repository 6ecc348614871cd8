// SPDX-License-Identifier: MPL-2.0

package execctx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type (
	// TempFileStrategy rewrites command lines that exceed the context's
	// MaxLineLength.
	TempFileStrategy interface {
		// Name identifies the strategy in snapshots and diagnostics.
		Name() string
		// Munge returns the arguments to run and a cleanup func that must be called
		// once the command has finished.
		Munge(ec *Context, args []string) ([]string, func(), error)
	}

	// TempFileMunge moves every argument after the command name into a response
	// file and passes "<TempFilePrefix><file>" instead, the convention compilers and
	// linkers understand as "@file".
	TempFileMunge struct {
		// Dir is where response files are created; empty means os.TempDir().
		Dir string
	}
)

// Name implements TempFileStrategy.
func (TempFileMunge) Name() string { return "TempFileMunge" }

// Munge implements TempFileStrategy. Lines within MaxLineLength, or contexts with
// no limit, are returned unchanged.
func (m TempFileMunge) Munge(ec *Context, args []string) ([]string, func(), error) {
	noop := func() {}
	if len(args) < 2 || ec.MaxLineLength <= 0 || len(strings.Join(args, " ")) <= ec.MaxLineLength {
		return args, noop, nil
	}

	f, err := os.CreateTemp(m.Dir, "subsys-*.lnk")
	if err != nil {
		return nil, noop, fmt.Errorf("create response file: %w", err)
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	rest := args[1:]
	if ec.Escape != nil {
		escaped := make([]string, len(rest))
		for i, a := range rest {
			escaped[i] = ec.Escape(a)
		}
		rest = escaped
	}

	if _, err := f.WriteString(strings.Join(rest, " ") + "\n"); err != nil {
		_ = f.Close()
		cleanup()
		return nil, noop, fmt.Errorf("write response file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("close response file %s: %w", path, err)
	}

	// Forward slashes survive both native tools and the subsystem shell.
	return []string{args[0], ec.TempFilePrefix + filepath.ToSlash(path)}, cleanup, nil
}
