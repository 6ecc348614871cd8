// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/invowk/subsys/internal/config"
)

// newConfigCommand creates the `subsys config` command tree.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage subsys configuration",
		Long: `Manage subsys configuration.

Configuration is stored in:
  - Linux: ~/.config/subsys/config.cue
  - macOS: ~/Library/Application Support/subsys/config.cue
  - Windows: %APPDATA%\subsys\config.cue

Every key can be overridden with a SUBSYS_<KEY> environment variable,
for example SUBSYS_PLATFORM=msys2. SUBSYS_CONFIG_DIR relocates the
configuration directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: runE(app, flags, func(cmd *cobra.Command, args []string) error {
			loaded, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: flags.configPath})
			if err != nil {
				return err
			}
			renderConfig(app, loaded)
			return nil
		}),
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: runE(app, flags, func(cmd *cobra.Command, args []string) error {
			if flags.configPath != "" {
				fmt.Fprintln(app.stdout, flags.configPath)
				return nil
			}
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		}),
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: runE(app, flags, func(cmd *cobra.Command, args []string) error {
			loaded, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: flags.configPath})
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(loaded.Config))
			return nil
		}),
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: runE(app, flags, func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig("")
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, SuccessStyle.Render("Configuration file: ")+CmdStyle.Render(path))
			return nil
		}),
	})

	return cfgCmd
}

func renderConfig(app *App, loaded *config.Loaded) {
	cfg := loaded.Config
	source := loaded.Path
	if source == "" {
		source = "(defaults)"
	}

	fmt.Fprintln(app.stdout, TitleStyle.Render("Configuration")+" "+SubtitleStyle.Render(source))
	fmt.Fprintln(app.stdout, renderField("platform", cfg.Platform.String()))
	fmt.Fprintln(app.stdout, renderField("shell", cfg.Shell.String()))
	fmt.Fprintln(app.stdout, renderField("path_translator", cfg.PathTranslator.String()))
	fmt.Fprintln(app.stdout, renderField("log_level", cfg.LogLevel.String()))
	fmt.Fprintln(app.stdout, renderField("output_format", cfg.OutputFormat.String()))
}
