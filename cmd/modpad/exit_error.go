// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modpad/modpad/pkg/types"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code types.ExitCode
	Err  error

	// reported is set once the error has been printed to stderr.
	reported bool
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// fail reports err on stderr and returns an ExitError carrying code.
func (a *App) fail(cmd *cobra.Command, code types.ExitCode, err error) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.verbose))
	if a.verbose {
		if rendered := renderIssue(err, a.cfg.UI.ColorScheme.GlamourStyle()); rendered != "" {
			fmt.Fprint(a.stderr, rendered)
		}
	}
	return &ExitError{Code: code, Err: err, reported: true}
}

// usageArgs wraps a positional argument validator so violations exit with
// types.ExitUsage.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &ExitError{Code: types.ExitUsage, Err: err}
		}
		return nil
	}
}
