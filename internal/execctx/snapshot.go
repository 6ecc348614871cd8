// SPDX-License-Identifier: MPL-2.0

package execctx

import (
	"maps"
	"reflect"
	"runtime"
	"slices"
)

// Snapshot is a function-free, comparable view of a Context. Function-valued
// fields are represented by the qualified name of the function they hold.
type Snapshot struct {
	Platform       string            `toml:"platform"`
	HostOS         string            `toml:"host_os"`
	Shell          string            `toml:"shell"`
	SearchPath     []string          `toml:"search_path"`
	ProgPrefix     string            `toml:"prog_prefix"`
	ProgSuffix     string            `toml:"prog_suffix"`
	LibPrefix      string            `toml:"lib_prefix"`
	LibSuffix      string            `toml:"lib_suffix"`
	ShLibPrefix    string            `toml:"shlib_prefix"`
	ShLibSuffix    string            `toml:"shlib_suffix"`
	ImpLibPrefix   string            `toml:"implib_prefix"`
	ImpLibSuffix   string            `toml:"implib_suffix"`
	LibPrefixes    []string          `toml:"lib_prefixes"`
	LibSuffixes    []string          `toml:"lib_suffixes"`
	MaxLineLength  int               `toml:"max_line_length"`
	TempFile       string            `toml:"tempfile"`
	TempFilePrefix string            `toml:"tempfile_prefix"`
	Spawn          string            `toml:"spawn"`
	PSpawn         string            `toml:"pspawn"`
	Escape         string            `toml:"escape"`
	Env            map[string]string `toml:"env"`
}

// Snapshot captures the current state of the context.
func (c *Context) Snapshot() Snapshot {
	s := Snapshot{
		Platform:       c.Platform,
		HostOS:         c.HostOS,
		Shell:          c.Shell,
		SearchPath:     slices.Clone(c.SearchPath),
		ProgPrefix:     c.ProgPrefix,
		ProgSuffix:     c.ProgSuffix,
		LibPrefix:      c.LibPrefix,
		LibSuffix:      c.LibSuffix,
		ShLibPrefix:    c.ShLibPrefix,
		ShLibSuffix:    c.ShLibSuffix,
		ImpLibPrefix:   c.ImpLibPrefix,
		ImpLibSuffix:   c.ImpLibSuffix,
		LibPrefixes:    slices.Clone(c.LibPrefixes),
		LibSuffixes:    slices.Clone(c.LibSuffixes),
		MaxLineLength:  c.MaxLineLength,
		TempFilePrefix: c.TempFilePrefix,
		Spawn:          FuncName(c.Spawn),
		PSpawn:         FuncName(c.PSpawn),
		Escape:         FuncName(c.Escape),
		Env:            maps.Clone(c.Env),
	}
	if c.TempFile != nil {
		s.TempFile = c.TempFile.Name()
	}
	return s
}

// FuncName returns the runtime symbol name of a function value, or "" for nil
// and non-function values.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return ""
}
