// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modpad/modpad/internal/config"
	"github.com/modpad/modpad/pkg/types"
)

// newConfigCommand creates the `modpad config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage modpad configuration",
		Long: `Manage modpad configuration.

Configuration is stored in:
  - Linux: ~/.config/modpad/config.cue
  - macOS: ~/Library/Application Support/modpad/config.cue
  - Windows: %APPDATA%\modpad\config.cue

A config.cue in the working directory is used when the user file is
missing. MODPAD_* environment variables override file values, for example
MODPAD_DEFAULT_FORMAT=json or MODPAD_WATCH_DEBOUNCE_MS=500.`,
		// Config commands load the file themselves and report its errors
		// directly instead of warning and falling back to defaults.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.verbose = app.flags.verbose
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := config.Load(cmd.Context(), app.loadOptions())
			if err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}
			showConfig(app, cfg, path)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig(app.loadOptions(), force)
			if errors.Is(err, config.ErrConfigExists) {
				return app.fail(cmd, types.ExitFailure, fmt.Errorf("%w (use --force to overwrite)", err))
			}
			if err != nil {
				return app.fail(cmd, types.ExitFailure, fmt.Errorf("failed to create config: %w", err))
			}
			fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.FilePath(app.loadOptions())
			if err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	return cfgCmd
}

func showConfig(app *App, cfg *config.Config, path string) {
	w := app.stdout
	field := func(indent, key string, value any) {
		fmt.Fprintf(w, "%s%s: %s\n", indent, KeyStyle.Render(key), SuccessStyle.Render(fmt.Sprint(value)))
	}

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	if path != "" {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	field("", "default_format", cfg.DefaultFormat)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("table"))
	field("  ", "trim_cr", cfg.Table.TrimCR)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("editor"))
	field("  ", "show_line_numbers", cfg.Editor.ShowLineNumbers)
	field("  ", "tab_glyph", cfg.Editor.TabGlyph)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("watch"))
	field("  ", "debounce_ms", cfg.Watch.DebounceMs)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("ui"))
	field("  ", "verbose", cfg.UI.Verbose)
	field("  ", "color_scheme", cfg.UI.ColorScheme)
}
