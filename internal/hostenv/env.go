// SPDX-License-Identifier: MPL-2.0

package hostenv

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// Well-known host variable names.
const (
	// VarMSYSTEM is set by MSYS/MSYS2 login shells (e.g. "UCRT64", "MINGW64", "MSYS").
	VarMSYSTEM = "MSYSTEM"
	// VarMinGWPrefix is the installation root of the active toolchain (e.g. "C:\msys64\ucrt64").
	VarMinGWPrefix = "MINGW_PREFIX"
	VarSystemDrive = "SystemDrive"
	VarSystemRoot  = "SystemRoot"
	VarTemp        = "TEMP"
	VarTmp         = "TMP"
	VarUserProfile = "USERPROFILE"
	VarComSpec     = "COMSPEC"
	// VarWinDir is consulted when SystemRoot is missing.
	VarWinDir = "windir"
)

// ImportWhitelist lists the host variables a Windows-hosted build still needs,
// whatever shell it was launched from. Weigh carefully before adding more.
var ImportWhitelist = []string{
	VarSystemDrive,
	VarSystemRoot,
	VarTemp,
	VarTmp,
	VarUserProfile,
}

// Env is an immutable snapshot of host environment variables.
type Env struct {
	vars map[string]string
}

// FromOS snapshots the current process environment.
func FromOS() Env {
	return FromEnviron(os.Environ())
}

// FromEnviron builds a snapshot from "KEY=VALUE" entries. Entries without a
// separator are ignored; later duplicates win.
func FromEnviron(environ []string) Env {
	vars := make(map[string]string, len(environ))
	for _, entry := range environ {
		idx := strings.IndexByte(entry, '=')
		// Windows keeps per-drive cwd entries such as "=C:=C:\src"; skip them.
		if idx <= 0 {
			continue
		}
		vars[entry[:idx]] = entry[idx+1:]
	}
	return Env{vars: vars}
}

// FromMap builds a snapshot from a map. The map is copied.
func FromMap(m map[string]string) Env {
	return Env{vars: maps.Clone(m)}
}

// Lookup returns the value of name. An exact match is preferred; otherwise the
// name is matched case-insensitively, as Windows does. Empty values are
// reported as absent.
func (e Env) Lookup(name string) (string, bool) {
	if v, ok := e.vars[name]; ok {
		return v, v != ""
	}
	for _, k := range e.sortedKeys() {
		if strings.EqualFold(k, name) {
			v := e.vars[k]
			return v, v != ""
		}
	}
	return "", false
}

// Get returns the value of name, or "" when absent.
func (e Env) Get(name string) string {
	v, _ := e.Lookup(name)
	return v
}

// Len reports the number of variables in the snapshot.
func (e Env) Len() int {
	return len(e.vars)
}

// Environ renders the snapshot as sorted "KEY=VALUE" entries.
func (e Env) Environ() []string {
	out := make([]string, 0, len(e.vars))
	for _, k := range e.sortedKeys() {
		out = append(out, k+"="+e.vars[k])
	}
	return out
}

// sortedKeys keeps case-insensitive lookups deterministic when a snapshot
// holds the same name in two spellings.
func (e Env) sortedKeys() []string {
	return slices.Sorted(maps.Keys(e.vars))
}
