// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/modpad/modpad/internal/issue"
	"github.com/modpad/modpad/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlagValues holds the persistent flags shared by every subcommand.
type rootFlagValues struct {
	verbose    bool
	configPath string
}

// NewRootCommand builds the full command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &app.flags

	rootCmd := &cobra.Command{
		Use:   "modpad",
		Short: "Edit game-mod command lists and tables as plain text",
		Long: TitleStyle.Render("modpad") + SubtitleStyle.Render(" - edit game-mod command lists and tables as plain text") + `

modpad transcodes command lists between four text formats (tree, colon,
json, tsv) and tables to and from comma-separated text. Documents are
stored as json, jsonc, yaml, toml, cbor, cue, or csv files, optionally
compressed with zstd or lz4.

` + SubtitleStyle.Render("Examples:") + `
  modpad encode quest.json --format colon   Print commands as colon text
  modpad decode quest.tree -o quest.yaml    Store tree text as a document
  modpad convert quest.tree --to json       Transcode command text
  modpad edit quest.json                    Open the live editor
  modpad watch quest.tree -o quest.json     Sync saves from your editor`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			app.setup(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $HOME/.config/modpad/config.cue)")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: types.ExitUsage, Err: err}
	})

	rootCmd.AddCommand(
		newEncodeCommand(app),
		newDecodeCommand(app),
		newConvertCommand(app),
		newTableCommand(app),
		newInspectCommand(app),
		newEditCommand(app),
		newWatchCommand(app),
		newFormatsCommand(app),
		newConfigCommand(app),
	)

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with the command's exit code.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler(app)),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitFailure))
	}
}

// errorHandler prints errors that commands did not already report.
func errorHandler(app *App) fang.ErrorHandler {
	return func(w io.Writer, styles fang.Styles, err error) {
		var exitErr *ExitError
		if errors.As(err, &exitErr) && exitErr.reported {
			return
		}
		var ae *issue.ActionableError
		if errors.As(err, &ae) {
			fmt.Fprintln(w, ErrorStyle.Render("Error: ")+ae.Format(app.verbose))
			return
		}
		fang.DefaultErrorHandler(w, styles, err)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderIssue renders the guidance attached to err, or "" when there is none.
func renderIssue(err error, style string) string {
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Issue == 0 {
		return ""
	}
	iss := issue.Get(ae.Issue)
	if iss == nil {
		return ""
	}
	rendered, renderErr := iss.Render(style)
	if renderErr != nil {
		return ""
	}
	return rendered
}
