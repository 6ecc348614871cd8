// SPDX-License-Identifier: MPL-2.0

package spawn

import (
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
)

type (
	// EscapeFunc quotes a single argument for a shell command line.
	EscapeFunc func(arg string) string

	// SpawnFunc runs a command with the standard streams of the calling process.
	// cmd is the tool name (args[0] by convention); sh is the shell to run it through.
	SpawnFunc func(ctx context.Context, sh string, escape EscapeFunc, cmd string, args []string, env map[string]string) (ExitCode, error)

	// PipeSpawnFunc runs a command with stdout and stderr redirected to the given writers.
	PipeSpawnFunc func(ctx context.Context, sh string, escape EscapeFunc, cmd string, args []string, env map[string]string, stdout, stderr io.Writer) (ExitCode, error)

	// executeOutput configures where child output is directed.
	executeOutput struct {
		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer
	}
)

// Spawn runs args through `sh -c` as one space-joined command line, inheriting the
// caller's standard streams, and returns the child's exit status. escape and cmd
// are ignored: quoting is the shell's job once it has the line.
func Spawn(ctx context.Context, sh string, _ EscapeFunc, _ string, args []string, env map[string]string) (ExitCode, error) {
	return run(ctx, sh, strings.Join(args, " "), env, inheritedOutput())
}

// SpawnCapture is Spawn with the child's stdout and stderr sent to the given
// writers. stdin is still inherited.
func SpawnCapture(ctx context.Context, sh string, _ EscapeFunc, _ string, args []string, env map[string]string, stdout, stderr io.Writer) (ExitCode, error) {
	return run(ctx, sh, strings.Join(args, " "), env, capturedOutput(stdout, stderr))
}

// EscapedSpawn escapes each argument with escape before joining them into the
// command line. A nil escape leaves arguments untouched.
func EscapedSpawn(ctx context.Context, sh string, escape EscapeFunc, _ string, args []string, env map[string]string) (ExitCode, error) {
	return run(ctx, sh, joinEscaped(escape, args), env, inheritedOutput())
}

// EscapedSpawnCapture is EscapedSpawn with output redirected to the given writers.
func EscapedSpawnCapture(ctx context.Context, sh string, escape EscapeFunc, _ string, args []string, env map[string]string, stdout, stderr io.Writer) (ExitCode, error) {
	return run(ctx, sh, joinEscaped(escape, args), env, capturedOutput(stdout, stderr))
}

func run(ctx context.Context, sh, line string, env map[string]string, out *executeOutput) (ExitCode, error) {
	if sh == "" {
		return ExitCodeLaunchFailure, &LaunchError{Shell: sh, Err: errors.New("no shell configured")}
	}

	flag := CommandFlag(sh)
	cmd := exec.CommandContext(ctx, sh, flag, line)
	prepareCommandLine(cmd, sh, flag, line)
	cmd.Env = envToSlice(env)
	cmd.Stdin = out.stdin
	cmd.Stdout = out.stdout
	cmd.Stderr = out.stderr

	return extractExitCode(sh, cmd.Run())
}

// CommandFlag returns the "run one command string" flag for a shell.
func CommandFlag(sh string) string {
	base := strings.ToLower(filepath.Base(sh))
	base = strings.TrimSuffix(base, ".exe")
	if base == "cmd" {
		return "/C"
	}
	return "-c"
}

// extractExitCode separates a child's non-zero exit from a failure to start it.
func extractExitCode(sh string, err error) (ExitCode, error) {
	if err == nil {
		return ExitCodeSuccess, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return ExitCode(code), nil
		}
		return ExitCodeTerminated, nil
	}

	return ExitCodeLaunchFailure, &LaunchError{Shell: sh, Err: err}
}

func inheritedOutput() *executeOutput {
	return &executeOutput{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

func capturedOutput(stdout, stderr io.Writer) *executeOutput {
	return &executeOutput{stdin: os.Stdin, stdout: stdout, stderr: stderr}
}

func joinEscaped(escape EscapeFunc, args []string) string {
	if escape == nil {
		return strings.Join(args, " ")
	}
	escaped := make([]string, len(args))
	for i, a := range args {
		escaped[i] = escape(a)
	}
	return strings.Join(escaped, " ")
}

// envToSlice renders env as sorted "KEY=VALUE" entries. A nil or empty map yields
// an empty, non-nil slice so the child never silently inherits the parent's
// environment.
func envToSlice(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for _, k := range slices.Sorted(maps.Keys(env)) {
		out = append(out, k+"="+env[k])
	}
	return out
}
