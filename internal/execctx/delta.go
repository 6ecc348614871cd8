// SPDX-License-Identifier: MPL-2.0

package execctx

import (
	"maps"
	"slices"
	"strings"
)

const (
	// FieldSearchPath owns SearchPath.
	FieldSearchPath Field = 1 << iota
	// FieldProgPrefix owns ProgPrefix.
	FieldProgPrefix
	// FieldProgSuffix owns ProgSuffix.
	FieldProgSuffix
	// FieldLibPrefix owns LibPrefix.
	FieldLibPrefix
	// FieldLibSuffix owns LibSuffix.
	FieldLibSuffix
	// FieldShLibPrefix owns ShLibPrefix.
	FieldShLibPrefix
	// FieldShLibSuffix owns ShLibSuffix.
	FieldShLibSuffix
	// FieldImpLibPrefix owns ImpLibPrefix.
	FieldImpLibPrefix
	// FieldImpLibSuffix owns ImpLibSuffix.
	FieldImpLibSuffix
	// FieldLibPrefixes owns the LibPrefixes candidate list.
	FieldLibPrefixes
	// FieldLibSuffixes owns the LibSuffixes candidate list.
	FieldLibSuffixes
	// FieldMaxLineLength owns MaxLineLength.
	FieldMaxLineLength
	// FieldTempFile owns the TempFile strategy.
	FieldTempFile
	// FieldTempFilePrefix owns TempFilePrefix.
	FieldTempFilePrefix
	// FieldSpawn owns the Spawn function.
	FieldSpawn
	// FieldPSpawn owns the PSpawn function.
	FieldPSpawn
	// FieldEscape owns the Escape function.
	FieldEscape
	// FieldShell owns Shell.
	FieldShell
	// FieldHostOS owns HostOS.
	FieldHostOS
	// FieldPlatform owns Platform.
	FieldPlatform

	// FieldAll names every Context field except Env.
	FieldAll = FieldPlatform<<1 - 1
)

type (
	// Field is a bit set of Context fields.
	Field uint32

	// Delta is the set of context changes one platform layer owns. Values holds the
	// new values of the fields named in Owns; Env is overlaid key by key onto the
	// context environment. A Delta is never modified after construction.
	Delta struct {
		Owns   Field
		Values Context
		Env    map[string]string
	}

	fieldDef struct {
		field Field
		name  string
		copy  func(dst, src *Context)
	}
)

var fieldDefs = []fieldDef{
	{FieldSearchPath, "SearchPath", func(d, s *Context) { d.SearchPath = slices.Clone(s.SearchPath) }},
	{FieldProgPrefix, "ProgPrefix", func(d, s *Context) { d.ProgPrefix = s.ProgPrefix }},
	{FieldProgSuffix, "ProgSuffix", func(d, s *Context) { d.ProgSuffix = s.ProgSuffix }},
	{FieldLibPrefix, "LibPrefix", func(d, s *Context) { d.LibPrefix = s.LibPrefix }},
	{FieldLibSuffix, "LibSuffix", func(d, s *Context) { d.LibSuffix = s.LibSuffix }},
	{FieldShLibPrefix, "ShLibPrefix", func(d, s *Context) { d.ShLibPrefix = s.ShLibPrefix }},
	{FieldShLibSuffix, "ShLibSuffix", func(d, s *Context) { d.ShLibSuffix = s.ShLibSuffix }},
	{FieldImpLibPrefix, "ImpLibPrefix", func(d, s *Context) { d.ImpLibPrefix = s.ImpLibPrefix }},
	{FieldImpLibSuffix, "ImpLibSuffix", func(d, s *Context) { d.ImpLibSuffix = s.ImpLibSuffix }},
	{FieldLibPrefixes, "LibPrefixes", func(d, s *Context) { d.LibPrefixes = slices.Clone(s.LibPrefixes) }},
	{FieldLibSuffixes, "LibSuffixes", func(d, s *Context) { d.LibSuffixes = slices.Clone(s.LibSuffixes) }},
	{FieldMaxLineLength, "MaxLineLength", func(d, s *Context) { d.MaxLineLength = s.MaxLineLength }},
	{FieldTempFile, "TempFile", func(d, s *Context) { d.TempFile = s.TempFile }},
	{FieldTempFilePrefix, "TempFilePrefix", func(d, s *Context) { d.TempFilePrefix = s.TempFilePrefix }},
	{FieldSpawn, "Spawn", func(d, s *Context) { d.Spawn = s.Spawn }},
	{FieldPSpawn, "PSpawn", func(d, s *Context) { d.PSpawn = s.PSpawn }},
	{FieldEscape, "Escape", func(d, s *Context) { d.Escape = s.Escape }},
	{FieldShell, "Shell", func(d, s *Context) { d.Shell = s.Shell }},
	{FieldHostOS, "HostOS", func(d, s *Context) { d.HostOS = s.HostOS }},
	{FieldPlatform, "Platform", func(d, s *Context) { d.Platform = s.Platform }},
}

// Has reports whether all fields in f are set in s.
func (s Field) Has(f Field) bool { return s&f == f }

// String lists the field names in declaration order, joined by "|".
func (s Field) String() string {
	return strings.Join(s.names(), "|")
}

func (s Field) names() []string {
	var names []string
	for _, def := range fieldDefs {
		if s.Has(def.field) {
			names = append(names, def.name)
		}
	}
	return names
}

// Owned lists the context fields this delta assigns, followed by "Env[KEY]" for
// every environment key it sets.
func (d Delta) Owned() []string {
	owned := d.Owns.names()
	for _, k := range slices.Sorted(maps.Keys(d.Env)) {
		owned = append(owned, "Env["+k+"]")
	}
	return owned
}

// Apply merges the delta into ec. Fields not named in Owns and environment keys
// not in Env are left as they are.
func (d Delta) Apply(ec *Context) {
	if ec.Env == nil {
		ec.Env = make(map[string]string, len(d.Env))
	}
	maps.Copy(ec.Env, d.Env)

	for _, def := range fieldDefs {
		if d.Owns.Has(def.field) {
			def.copy(ec, &d.Values)
		}
	}
}
