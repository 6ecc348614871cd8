// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/subsys/internal/config"
	"github.com/invowk/subsys/internal/hostenv"
	"github.com/invowk/subsys/internal/issue"
)

// detectReport is the result of probing the host environment.
type detectReport struct {
	Active    bool   `toml:"active"`
	System    string `toml:"system,omitempty"`
	Prefix    string `toml:"prefix,omitempty"`
	Subsystem string `toml:"subsystem"`
	Platform  string `toml:"platform"`
}

func newDetectCommand(app *App, flags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Report the POSIX-emulation subsystem of this host",
		Long: `Probe the host environment for the subsystem marker (MSYSTEM) and the
installation root (MINGW_PREFIX), and report the platform that would be selected.`,
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

			report := probeHost(app.hostEnv())
			report.Platform = s.platform.Name()

			if f == config.OutputTOML {
				return writeTOML(app.stdout, report)
			}
			renderDetectReport(app.stdout, report)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (text, toml)")
	return cmd
}

func probeHost(env hostenv.Env) detectReport {
	det := hostenv.Probe(env)
	requested := hostenv.SubsystemMinGW
	if det.IsMSYSShell() {
		requested = hostenv.SubsystemMSYS
	}
	return detectReport{
		Active:    det.Active,
		System:    det.System,
		Prefix:    det.Prefix,
		Subsystem: det.Resolve(requested).String(),
	}
}

func renderDetectReport(w io.Writer, r detectReport) {
	fmt.Fprintln(w, TitleStyle.Render("Host subsystem"))
	if r.Active {
		fmt.Fprintln(w, labelStyle.Render(hostenv.VarMSYSTEM)+SuccessStyle.Render(r.System))
	} else {
		fmt.Fprintln(w, labelStyle.Render(hostenv.VarMSYSTEM)+WarningStyle.Render("not set"))
	}
	if r.Prefix != "" {
		fmt.Fprintln(w, renderField(hostenv.VarMinGWPrefix, r.Prefix))
	}
	fmt.Fprintln(w, renderField("subsystem", r.Subsystem))
	fmt.Fprintln(w, renderField("platform", r.Platform))
	if !r.Active {
		fmt.Fprintln(w)
		fmt.Fprintln(w, SubtitleStyle.Render(firstLine(issue.Get(issue.SubsystemNotDetectedId))))
	}
}

// firstLine returns the heading of a catalog entry without Markdown markers.
func firstLine(entry *issue.Issue) string {
	if entry == nil {
		return ""
	}
	for line := range strings.Lines(string(entry.MarkdownMsg())) {
		if line = strings.TrimSpace(line); line != "" {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}
