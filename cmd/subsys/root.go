// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand creates the subsys command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "subsys",
		Short: "Configure build execution for Windows POSIX-emulation subsystems",
		Long: TitleStyle.Render("subsys") + SubtitleStyle.Render(" - build execution contexts for MinGW, MSYS and MSYS2 hosts") + `

subsys detects whether the current Windows host runs inside a POSIX-emulation
subsystem, computes the tool search path (asking cygpath for native paths),
and runs tool command lines through the subsystem's own sh.

` + SubtitleStyle.Render("Examples:") + `
  subsys detect                 Report the detected subsystem
  subsys show --format toml     Print the configured execution context
  subsys exec -- "gcc -v"       Run a command line through the platform shell
  subsys config show            Show the effective configuration`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $HOME/.config/subsys/config.cue)")
	rootCmd.PersistentFlags().StringVarP(&flags.platform, "platform", "p", "", "platform override (auto, posix, win32, mingw, msys, msys2)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		newDetectCommand(app, flags),
		newShowCommand(app, flags),
		newExecCommand(app, flags),
		newConfigCommand(app, flags),
		newVersionCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the production App and runs the CLI. It is called by main.main().
func Execute() {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
