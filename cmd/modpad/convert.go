// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/types"
)

// newConvertCommand creates the `modpad convert` command.
func newConvertCommand(app *App) *cobra.Command {
	var (
		from   string
		to     string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert <text-file|->",
		Short: "Transcode command text between formats",
		Long: `Decode command text in one format and encode it in another.

Converting through colon text is lossy for parameters that contain
commas; see 'modpad formats'.`,
		Example: `  modpad convert quest.tree --to colon
  modpad convert - --from tsv --to json < quest.txt`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := app.formatForPath(cmd, "from", from, args[0])
			if err != nil {
				return app.fail(cmd, types.ExitUsage, err)
			}
			dst, err := command.ParseFormat(to)
			if err != nil {
				return app.fail(cmd, types.ExitUsage, err)
			}

			text, err := app.readText(args[0])
			if err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}

			converted, err := command.Convert(text, src, dst)
			if err != nil {
				return app.fail(cmd, types.ExitDecode, decodeError(args[0], src, err))
			}
			if err := app.writeText(output, converted); err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source format (default from the extension or config)")
	cmd.Flags().StringVar(&to, "to", "", "target format (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
