// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/subsys/internal/config"
	"github.com/invowk/subsys/internal/execctx"
)

func newShowCommand(app *App, flags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the execution context the platform configures",
		Long: `Configure a fresh execution context with the selected platform and print it:
search path, naming conventions, line length limit, shell and spawn strategy.`,
		Example: `  subsys show
  subsys show --platform msys2 --format toml`,
		Args: cobra.NoArgs,
		RunE: runE(app, flags, func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context(), flags)
			if err != nil {
				return err
			}
			f, err := outputFormat(format, s.cfg)
			if err != nil {
				return err
			}
			ec, err := s.configure(cmd.Context())
			if err != nil {
				return err
			}

			if f == config.OutputTOML {
				return writeTOML(app.stdout, ec.Snapshot())
			}
			renderContext(app.stdout, ec)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (text, toml)")
	return cmd
}

func renderContext(w io.Writer, ec *execctx.Context) {
	snap := ec.Snapshot()

	fmt.Fprintln(w, TitleStyle.Render("Execution context")+" "+SubtitleStyle.Render(snap.Platform))
	fmt.Fprintln(w, renderField("host os", snap.HostOS))
	fmt.Fprintln(w, renderField("shell", snap.Shell))
	fmt.Fprintln(w, renderField("max line length", strconv.Itoa(snap.MaxLineLength)))
	fmt.Fprintln(w, renderField("spawn", snap.Spawn))
	fmt.Fprintln(w, renderField("tempfile", snap.TempFile+" "+snap.TempFilePrefix))

	fmt.Fprintln(w)
	fmt.Fprintln(w, SubtitleStyle.Render("Search path"))
	for i, dir := range snap.SearchPath {
		fmt.Fprintf(w, "  %d. %s\n", i+1, CmdStyle.Render(dir))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, SubtitleStyle.Render("Naming"))
	fmt.Fprintln(w, renderField("program", ec.ProgramName("prog")))
	fmt.Fprintln(w, renderField("shared library", ec.SharedLibraryName("name")))
	fmt.Fprintln(w, renderField("library lookup", strings.Join(ec.LibraryCandidates("name"), " ")))

	if len(snap.Env) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, SubtitleStyle.Render("Environment"))
		for _, k := range slices.Sorted(maps.Keys(snap.Env)) {
			fmt.Fprintln(w, renderField(k, snap.Env[k]))
		}
	}
}
