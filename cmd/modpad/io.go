// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modpad/modpad/internal/issue"
	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/table"
)

// stdioPath is the argument that selects stdin or stdout.
const stdioPath = "-"

// readText reads a text argument, from stdin when path is "-". A leading
// UTF-8 byte-order mark is dropped.
func (a *App) readText(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == stdioPath {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("read text").
			WithResource(path).
			WithSuggestion("Check the path for typos").
			WithIssue(issue.DocumentNotFoundId).
			Wrap(err).
			BuildError()
	}
	return strings.TrimPrefix(string(data), table.BOM), nil
}

// writeText writes text to path, or to stdout when path is "" or "-".
// Stdout output gets a trailing newline.
func (a *App) writeText(path, text string) error {
	if path == "" || path == stdioPath {
		_, err := fmt.Fprintln(a.stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return issue.NewErrorContext().
			WithOperation("write text").
			WithResource(path).
			WithSuggestion("Check that the target directory exists and is writable").
			Wrap(err).
			BuildError()
	}
	return nil
}

// formatForPath picks the command format for a text file: the flag when it
// was set, then the file extension, then the configured default. Document
// extensions such as .json never select a format.
func (a *App) formatForPath(cmd *cobra.Command, flagName, flagValue, path string) (command.Format, error) {
	if cmd.Flags().Changed(flagName) {
		return command.ParseFormat(flagValue)
	}
	switch ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."); ext {
	case string(command.FormatTree), string(command.FormatColon), string(command.FormatTSV):
		return command.Format(ext), nil
	}
	return a.cfg.DefaultFormat, nil
}
