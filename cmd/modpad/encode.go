// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/modpad/modpad/internal/assetfile"
	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/table"
	"github.com/modpad/modpad/pkg/types"
)

// newEncodeCommand creates the `modpad encode` command.
func newEncodeCommand(app *App) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "encode <document>",
		Short: "Print a document as editable text",
		Long: `Load a document and print it as text.

Command documents are encoded in the selected format (default from
config, usually tree). Table documents are serialized as comma-separated
text with a byte-order mark.`,
		Example: `  modpad encode quest.json
  modpad encode quest.json --format colon -o quest.colon
  modpad encode loot.csv.zst`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := app.cfg.DefaultFormat
			if cmd.Flags().Changed("format") {
				parsed, err := command.ParseFormat(format)
				if err != nil {
					return app.fail(cmd, types.ExitUsage, err)
				}
				f = parsed
			}

			doc, err := app.store.Load(cmd.Context(), types.FilesystemPath(args[0]))
			if err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}

			text, err := encodeDocument(doc, f)
			if err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}
			if err := app.writeText(output, text); err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "command text format (tree, colon, json, tsv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

// encodeDocument renders doc as text. Tables ignore f.
func encodeDocument(doc *assetfile.Document, f command.Format) (string, error) {
	if doc.Kind == assetfile.KindTable {
		return table.Serialize(doc.Table), nil
	}
	return command.Encode(doc.Commands, f)
}
