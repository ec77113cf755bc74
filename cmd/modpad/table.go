// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modpad/modpad/internal/assetfile"
	"github.com/modpad/modpad/internal/issue"
	"github.com/modpad/modpad/pkg/table"
	"github.com/modpad/modpad/pkg/types"
)

// newTableCommand creates the `modpad table` command tree.
func newTableCommand(app *App) *cobra.Command {
	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "Convert tables to and from comma-separated text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var parseOutput string
	parseCmd := &cobra.Command{
		Use:   "parse <csv-file|->",
		Short: "Store comma-separated text as a table document",
		Long: `Parse comma-separated text into a table document.

Parsing never fails. A leading byte-order mark is ignored, quoted cells may
hold commas, quotes and line breaks, and a trailing carriage return on each
line is dropped unless table.trim_cr is false in the config.`,
		Example: `  modpad table parse loot.txt -o loot.yaml`,
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := app.readText(args[0])
			if err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}
			t := table.ParseWithOptions(text, app.cfg.TableOptions())
			if err := app.store.Save(cmd.Context(), types.FilesystemPath(parseOutput), assetfile.NewTable(t)); err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}
			rows, cols := t.Dimensions()
			app.logger.Debug("parsed table", "rows", rows, "cols", cols)
			return nil
		},
	}
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "document to write (required)")
	_ = parseCmd.MarkFlagRequired("output")

	var serializeOutput string
	serializeCmd := &cobra.Command{
		Use:     "serialize <document>",
		Short:   "Print a table document as comma-separated text",
		Example: `  modpad table serialize loot.cbor -o loot.csv`,
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.store.Load(cmd.Context(), types.FilesystemPath(args[0]))
			if err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}
			if doc.Kind != assetfile.KindTable {
				return app.fail(cmd, types.ExitUsage, issue.NewErrorContext().
					WithOperation("serialize table").
					WithResource(args[0]).
					WithSuggestion("Use 'modpad encode' for command documents").
					WithIssue(issue.UnsupportedDocumentId).
					Wrap(fmt.Errorf("%w: document holds %s", assetfile.ErrKindMismatch, doc.Kind)).
					BuildError())
			}
			if err := app.writeText(serializeOutput, table.Serialize(doc.Table)); err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}
			return nil
		},
	}
	serializeCmd.Flags().StringVarP(&serializeOutput, "output", "o", "", "write to a file instead of stdout")

	tableCmd.AddCommand(parseCmd, serializeCmd)
	return tableCmd
}
