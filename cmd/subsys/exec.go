// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/invowk/subsys/internal/execctx"
	"github.com/invowk/subsys/internal/spawn"
)

var errEmptyCommandLine = errors.New("empty command line")

func newExecCommand(app *App, flags *rootFlags) *cobra.Command {
	var envVars []string

	cmd := &cobra.Command{
		Use:   "exec -- <command line>",
		Short: "Run a command line through the platform shell",
		Long: `Configure an execution context and run the command line with the platform's
spawn strategy. A single argument is a shell command line: platforms that run
tools through the subsystem shell receive it as typed, the others split it into
words like a shell would. Several arguments are used as given. Long lines are
moved into a response file.

The exit code of the command becomes the exit code of subsys.`,
		Example: `  subsys exec -- "gcc -O2 -o hello.exe hello.c"
  subsys exec --env CC=clang -- make all`,
		Args: cobra.MinimumNArgs(1),
		RunE: runE(app, flags, func(cmd *cobra.Command, args []string) error {
			argv, err := commandLine(args)
			if err != nil {
				return err
			}

			s, err := app.newSession(cmd.Context(), flags)
			if err != nil {
				return err
			}
			ec, err := s.configure(cmd.Context())
			if err != nil {
				return err
			}
			if err := overlayEnv(ec, envVars); err != nil {
				return err
			}

			run := argv
			if ec.TempFile != nil {
				munged, cleanup, err := ec.TempFile.Munge(ec, argv)
				if err != nil {
					return err
				}
				defer cleanup()
				run = munged
			}
			if len(args) == 1 && slices.Equal(run, argv) && joinsVerbatim(ec) {
				// The spawner joins words with plain spaces; hand the shell the line
				// as typed so its quoting survives.
				run = []string{args[0]}
			}
			s.logger.Debug("running", "shell", ec.Shell, "args", run)

			code, err := ec.PSpawn(cmd.Context(), ec.Shell, ec.Escape, run[0], run, ec.Environ(), app.stdout, app.stderr)
			if err != nil {
				return classifyError(err, "run command", strings.Join(argv, " "))
			}
			if code != spawn.ExitCodeSuccess {
				return childExit(code)
			}
			return nil
		}),
	}

	cmd.Flags().StringArrayVarP(&envVars, "env", "e", nil, "set an environment variable for the command (KEY=VALUE)")
	return cmd
}

// commandLine splits a single argument shell-style and keeps several as given.
func commandLine(args []string) ([]string, error) {
	argv := args
	if len(args) == 1 {
		words, err := shlex.Split(args[0])
		if err != nil {
			return nil, fmt.Errorf("split command line: %w", err)
		}
		argv = words
	}
	if len(argv) == 0 {
		return nil, errEmptyCommandLine
	}
	return argv, nil
}

// joinsVerbatim reports whether ec spawns through the plain-join strategy, which
// passes the command line to the shell without escaping any word.
func joinsVerbatim(ec *execctx.Context) bool {
	return execctx.FuncName(ec.PSpawn) == execctx.FuncName(spawn.SpawnCapture)
}

func overlayEnv(ec *execctx.Context, vars []string) error {
	for _, kv := range vars {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return fmt.Errorf("invalid --env value %q: expected KEY=VALUE", kv)
		}
		if ec.Env == nil {
			ec.Env = make(map[string]string)
		}
		ec.Env[k] = v
	}
	return nil
}
