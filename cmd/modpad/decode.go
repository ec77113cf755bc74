// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/modpad/modpad/internal/assetfile"
	"github.com/modpad/modpad/internal/issue"
	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/types"
)

// newDecodeCommand creates the `modpad decode` command.
func newDecodeCommand(app *App) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "decode <text-file|->",
		Short: "Store command text as a document",
		Long: `Decode command text and save it as a document.

The format comes from --format, then the file extension (.tree, .colon,
.tsv), then the configured default. Only json text can fail to decode;
the other formats accept any input.`,
		Example: `  modpad decode quest.tree -o quest.json
  cat quest.txt | modpad decode - --format json -o quest.yaml`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.formatForPath(cmd, "format", format, args[0])
			if err != nil {
				return app.fail(cmd, types.ExitUsage, err)
			}

			text, err := app.readText(args[0])
			if err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}

			res := command.Decode(text, f)
			if !res.OK() {
				return app.fail(cmd, types.ExitDecode, decodeError(args[0], f, res.Err))
			}

			doc := assetfile.NewCommands(res.List)
			if err := app.store.Save(cmd.Context(), types.FilesystemPath(output), doc); err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}
			app.logger.Debug("decoded commands", "format", f, "commands", len(res.List))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "command text format (tree, colon, json, tsv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "document to write (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// decodeError wraps a failed decode of command text for display.
func decodeError(source string, f command.Format, err error) error {
	return issue.NewErrorContext().
		WithOperation("decode " + f.String() + " text").
		WithResource(source).
		WithSuggestion("Check brackets, quotes and commas in the text").
		WithSuggestion("Each entry must look like {\"argCount\": 1, \"args\": [\"name\"]}").
		WithIssue(issue.InvalidCommandTextId).
		Wrap(err).
		BuildError()
}
