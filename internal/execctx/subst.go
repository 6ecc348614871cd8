// SPDX-License-Identifier: MPL-2.0

package execctx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// maxSubstDepth bounds nested references such as SHLIBPREFIX="$LIBPREFIX".
const maxSubstDepth = 16

// ErrSubstCycle is returned when variable references nest deeper than maxSubstDepth.
var ErrSubstCycle = errors.New("variable references nest too deeply")

// Vars exposes the context's naming fields under their construction-variable names.
func (c *Context) Vars() map[string]string {
	return map[string]string{
		"PROGPREFIX":     c.ProgPrefix,
		"PROGSUFFIX":     c.ProgSuffix,
		"LIBPREFIX":      c.LibPrefix,
		"LIBSUFFIX":      c.LibSuffix,
		"SHLIBPREFIX":    c.ShLibPrefix,
		"SHLIBSUFFIX":    c.ShLibSuffix,
		"IMPLIBPREFIX":   c.ImpLibPrefix,
		"IMPLIBSUFFIX":   c.ImpLibSuffix,
		"TEMPFILEPREFIX": c.TempFilePrefix,
		"MAXLINELENGTH":  strconv.Itoa(c.MaxLineLength),
		"SHELL":          c.Shell,
		"HOST_OS":        c.HostOS,
		"PLATFORM":       c.Platform,
	}
}

// Subst expands $VAR and ${VAR} references in s against Vars, recursively.
// Unknown variables expand to the empty string.
func (c *Context) Subst(s string) (string, error) {
	return substDepth(c.Vars(), s, 0)
}

// ResolvedLibPrefixes expands LibPrefixes in order.
func (c *Context) ResolvedLibPrefixes() []string {
	return c.resolveAll(c.LibPrefixes)
}

// ResolvedLibSuffixes expands LibSuffixes in order.
func (c *Context) ResolvedLibSuffixes() []string {
	return c.resolveAll(c.LibSuffixes)
}

func (c *Context) resolveAll(refs []string) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = c.substOrRaw(r)
	}
	return out
}

// substOrRaw is Subst for values configured by platform code; a reference that
// cannot be expanded is returned as written.
func (c *Context) substOrRaw(s string) string {
	v, err := c.Subst(s)
	if err != nil {
		return s
	}
	return v
}

func substDepth(vars map[string]string, s string, depth int) (string, error) {
	if !strings.Contains(s, "$") {
		return s, nil
	}
	if depth >= maxSubstDepth {
		return "", fmt.Errorf("%w: %q", ErrSubstCycle, s)
	}

	word, err := syntax.NewParser().Document(strings.NewReader(s))
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", s, err)
	}

	var nestedErr error
	cfg := &expand.Config{
		Env: expand.FuncEnviron(func(name string) string {
			raw, ok := vars[name]
			if !ok {
				return ""
			}
			v, err := substDepth(vars, raw, depth+1)
			if err != nil && nestedErr == nil {
				nestedErr = err
			}
			return v
		}),
	}

	out, err := expand.Document(cfg, word)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", s, err)
	}
	if nestedErr != nil {
		return "", nestedErr
	}
	return out, nil
}
