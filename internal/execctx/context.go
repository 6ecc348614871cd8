// SPDX-License-Identifier: MPL-2.0

package execctx

import (
	"maps"
	"os"
	"strings"

	"github.com/invowk/subsys/internal/spawn"
)

// Context is the mutable execution context owned by the build tool. After a
// platform configures it, it is treated as read-only by concurrent spawn callers.
type Context struct {
	// Env is the environment handed to every spawned command. PATH is rendered
	// from SearchPath by Environ.
	Env map[string]string
	// SearchPath lists binary directories, most specific first.
	SearchPath []string

	ProgPrefix   string
	ProgSuffix   string
	LibPrefix    string
	LibSuffix    string
	ShLibPrefix  string
	ShLibSuffix  string
	ImpLibPrefix string
	ImpLibSuffix string
	// LibPrefixes and LibSuffixes are the ordered candidates tried when matching
	// library file names. Entries may reference other fields ("$LIBPREFIX").
	LibPrefixes []string
	LibSuffixes []string

	// MaxLineLength bounds a single command line; longer lines go through TempFile.
	MaxLineLength  int
	TempFile       TempFileStrategy
	TempFilePrefix string

	Spawn  spawn.SpawnFunc
	PSpawn spawn.PipeSpawnFunc
	Escape spawn.EscapeFunc

	// Shell is the interpreter every command is run through.
	Shell string
	// HostOS tags the host flavor ("posix", "win32", "msys", "msys2") so tool
	// selection and path translation can branch on it.
	HostOS string
	// Platform is the name of the platform that configured the context.
	Platform string
}

// New returns an empty context ready to be configured.
func New() *Context {
	return &Context{Env: make(map[string]string)}
}

// Environ returns the environment for a spawned command: Env plus PATH built from
// SearchPath with the host list separator.
func (c *Context) Environ() map[string]string {
	env := maps.Clone(c.Env)
	if env == nil {
		env = make(map[string]string)
	}
	if len(c.SearchPath) > 0 {
		env["PATH"] = strings.Join(c.SearchPath, string(os.PathListSeparator))
	}
	return env
}

// AppendSearchPath adds dirs to the end of the search path, skipping entries
// already present.
func (c *Context) AppendSearchPath(dirs ...string) {
	for _, d := range dirs {
		if d == "" || containsPath(c.SearchPath, d) {
			continue
		}
		c.SearchPath = append(c.SearchPath, d)
	}
}

// ProgramName returns the file name of the program base on this context.
func (c *Context) ProgramName(base string) string {
	return c.substOrRaw(c.ProgPrefix) + base + c.substOrRaw(c.ProgSuffix)
}

// SharedLibraryName returns the file name of the shared library base.
func (c *Context) SharedLibraryName(base string) string {
	return c.substOrRaw(c.ShLibPrefix) + base + c.substOrRaw(c.ShLibSuffix)
}

// LibraryCandidates lists the file names a library base may have, in matching
// order: every resolved prefix crossed with every resolved suffix.
func (c *Context) LibraryCandidates(base string) []string {
	prefixes := c.ResolvedLibPrefixes()
	suffixes := c.ResolvedLibSuffixes()
	out := make([]string, 0, len(prefixes)*len(suffixes))
	seen := make(map[string]struct{}, cap(out))
	for _, p := range prefixes {
		for _, s := range suffixes {
			name := p + base + s
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

func containsPath(list []string, dir string) bool {
	for _, p := range list {
		if strings.EqualFold(p, dir) {
			return true
		}
	}
	return false
}
