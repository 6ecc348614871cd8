// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"context"
	"strings"

	"github.com/invowk/subsys/internal/execctx"
	"github.com/invowk/subsys/internal/hostenv"
	"github.com/invowk/subsys/internal/spawn"
	pkgplatform "github.com/invowk/subsys/pkg/platform"
)

const (
	// nativeMaxLineLength is the cmd.exe command-line limit.
	nativeMaxLineLength = 8191
	defaultSystemRoot   = `C:\Windows`
)

// Native configures a plain Windows host. It is also where a Subsystem falls back
// to when the subsystem marker is absent.
type Native struct {
	opts options
}

// NewNative creates the native Windows platform.
func NewNative(opts ...Option) *Native {
	return &Native{opts: newOptions(opts)}
}

// Name returns the platform name.
func (n *Native) Name() string { return NameWin32 }

// Configure applies the native Windows settings to ec.
func (n *Native) Configure(_ context.Context, ec *execctx.Context) error {
	n.configure(ec, n.opts.hostEnv())
	return nil
}

func (n *Native) configure(ec *execctx.Context, env hostenv.Env) {
	n.Delta(ec, env).Apply(ec)
}

// SystemRoot returns the Windows directory: SystemRoot, then windir, then C:\Windows.
func SystemRoot(env hostenv.Env) string {
	if v, ok := env.Lookup(hostenv.VarSystemRoot); ok {
		return v
	}
	if v, ok := env.Lookup(hostenv.VarWinDir); ok {
		return v
	}
	return defaultSystemRoot
}

// System32 returns the native system binary directory.
func System32(env hostenv.Env) string {
	return strings.TrimRight(SystemRoot(env), `\`) + `\System32`
}

// Delta returns the fields the native platform owns for host env. ec is only read.
func (n *Native) Delta(ec *execctx.Context, env hostenv.Env) execctx.Delta {
	imported := importHostVars(ec, env)
	imported["PATHEXT"] = pkgplatform.PathExt

	root := strings.TrimRight(SystemRoot(env), `\`)
	shell := imported[hostenv.VarComSpec]
	if shell == "" {
		shell = ec.Env[hostenv.VarComSpec]
	}
	if !pkgplatform.IsExecutableExt(shell) {
		shell = System32(env) + `\cmd.exe`
	}

	return execctx.Delta{
		Owns: execctx.FieldAll,
		Values: execctx.Context{
			SearchPath:     []string{System32(env), root, System32(env) + `\Wbem`},
			ProgPrefix:     "",
			ProgSuffix:     pkgplatform.ExeSuffix,
			LibPrefix:      "",
			LibSuffix:      ".lib",
			ShLibPrefix:    "",
			ShLibSuffix:    pkgplatform.DLLSuffix,
			ImpLibPrefix:   "",
			ImpLibSuffix:   ".lib",
			LibPrefixes:    libraryPrefixes,
			LibSuffixes:    librarySuffixes,
			MaxLineLength:  nativeMaxLineLength,
			TempFile:       execctx.TempFileMunge{},
			TempFilePrefix: "@",
			Spawn:          spawn.EscapedSpawn,
			PSpawn:         spawn.EscapedSpawnCapture,
			Escape:         spawn.QuoteCmd,
			Shell:          shell,
			HostOS:         NameWin32,
			Platform:       NameWin32,
		},
		Env: imported,
	}
}

// importHostVars copies the whitelisted host variables that are present, plus
// COMSPEC when the context does not define one yet. Missing variables are skipped.
func importHostVars(ec *execctx.Context, env hostenv.Env) map[string]string {
	imported := make(map[string]string, len(hostenv.ImportWhitelist)+2)
	for _, name := range hostenv.ImportWhitelist {
		if v, ok := env.Lookup(name); ok {
			imported[name] = v
		}
	}
	if _, defined := ec.Env[hostenv.VarComSpec]; !defined {
		if v, ok := env.Lookup(hostenv.VarComSpec); ok {
			imported[hostenv.VarComSpec] = v
		}
	}
	return imported
}
