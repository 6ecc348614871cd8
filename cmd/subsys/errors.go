// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/subsys/internal/issue"
	"github.com/invowk/subsys/internal/platform"
	"github.com/invowk/subsys/internal/spawn"
	"github.com/invowk/subsys/internal/toolchain"
)

// classifyError wraps a domain error into an ActionableError linked to the
// catalog entry that explains it. Errors that already are actionable pass through.
func classifyError(err error, operation, resource string) error {
	if err == nil {
		return nil
	}
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return err
	}

	var cfgErr *platform.ConfigurationError
	if errors.As(err, &cfgErr) && resource == "" {
		resource = cfgErr.Resource
	}

	ctx := issue.NewErrorContext().
		WithOperation(operation).
		WithResource(resource).
		Wrap(err)

	switch {
	case errors.Is(err, platform.ErrShellNotFound):
		ctx.WithIssue(issue.ShellNotFoundId).
			WithSuggestion("Run the build from the subsystem terminal, or set 'shell' in the configuration")
	case errors.Is(err, toolchain.ErrPathResolution):
		ctx.WithIssue(issue.PathTranslationFailedId).
			WithSuggestion("Check that 'cygpath -w /usr/bin' works, or set 'path_translator' in the configuration")
	case errors.Is(err, platform.ErrUnknownPlatform):
		ctx.WithIssue(issue.UnknownPlatformId).
			WithSuggestion("Use one of: " + strings.Join(platform.Names(), ", ") + " or " + platform.NameAuto)
	case errors.Is(err, spawn.ErrLaunch):
		ctx.WithIssue(issue.SpawnFailedId).
			WithSuggestion("Check the shell reported by 'subsys show'")
	}

	return ctx.BuildError()
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method; in verbose mode
// the linked catalog entry is rendered as well.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		return ErrorStyle.Render("Error: ") + err.Error()
	}

	msg := ErrorStyle.Render("Error: ") + ae.Format(verbose)
	if !verbose {
		return msg
	}
	if entry := ae.CatalogIssue(); entry != nil {
		if rendered, renderErr := entry.Render("auto"); renderErr == nil {
			msg += "\n" + rendered
		}
	}
	return msg
}

// runE adapts a handler to cobra, printing failures to the app's stderr and
// turning them into an ExitError. Handlers that already chose an exit code
// return an *ExitError with a nil Err.
func runE(app *App, flags *rootFlags, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err == nil {
			return nil
		}

		var exitErr *ExitError
		if errors.As(err, &exitErr) && exitErr.Err == nil {
			return err
		}

		printError(app.stderr, err, flags.verbose)
		return &ExitError{Code: 1, Err: err}
	}
}

func printError(w io.Writer, err error, verbose bool) {
	_, _ = io.WriteString(w, formatErrorForDisplay(err, verbose)+"\n")
}
