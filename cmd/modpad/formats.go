// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/modpad/modpad/internal/assetfile"
	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/types"
)

type formatDoc struct {
	format      command.Format
	description types.DescriptionText
	example     string
}

var formatDocs = []formatDoc{
	{
		format: command.FormatTree,
		description: `One command per block: the name on its own line, each parameter on a
following line that starts with a tab, and a blank line between commands.
Lines holding only whitespace separate commands. Decoding never fails.`,
		example: "Say\n\thello\n\tnpc\n\nWait\n\t5",
	},
	{
		format: command.FormatColon,
		description: `One command per line as "name: p1, p2". Parameters are split on every
comma, so a parameter that contains a comma comes back as several.
Decoding never fails.`,
		example: "Say: hello, npc\nWait: 5",
	},
	{
		format: command.FormatJSON,
		description: `An array of {"argCount", "args"} objects, where args[0] is the name.
The only format that can fail to decode; invalid text keeps the last
valid value while editing.`,
		example: "[\n  {\n    \"argCount\": 2,\n    \"args\": [\"Wait\", \"5\"]\n  }\n]",
	},
	{
		format: command.FormatTSV,
		description: `One command per line with the name and parameters separated by tabs.
Decoding never fails.`,
		example: "Say\thello\tnpc\nWait\t5",
	},
}

// newFormatsCommand creates the `modpad formats` command.
func newFormatsCommand(app *App) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "Describe the command text formats and document encodings",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				printFormatSummary(app.stdout)
				return nil
			}
			rendered, err := glamour.Render(formatsMarkdown(), app.cfg.UI.ColorScheme.GlamourStyle())
			if err != nil {
				return app.fail(cmd, types.ExitFailure, fmt.Errorf("render formats: %w", err))
			}
			fmt.Fprint(app.stdout, rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print one line per format")
	return cmd
}

func printFormatSummary(w io.Writer) {
	for _, d := range formatDocs {
		fmt.Fprintf(w, "%-6s %s\n", KeyStyle.Render(d.format.String()), d.description.Summary())
	}
}

// formatsMarkdown builds the reference page from formatDocs and the
// registered document encodings.
func formatsMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Command text formats\n\n")
	for _, d := range formatDocs {
		fmt.Fprintf(&sb, "## %s\n\n%s\n\n```\n%s\n```\n\n", d.format, d.description, d.example)
	}

	sb.WriteString("# Document encodings\n\n")
	sb.WriteString("| Encoding | Extensions | Holds | Save |\n|---|---|---|---|\n")
	for _, enc := range assetfile.Encodings() {
		kinds := make([]string, 0, len(enc.Kinds))
		for _, k := range enc.Kinds {
			kinds = append(kinds, k.String())
		}
		save := "yes"
		if enc.ReadOnly() {
			save = "no"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			enc.Name, strings.Join(enc.Extensions, " "), strings.Join(kinds, ", "), save)
	}
	sb.WriteString("\nAppend `.zst` or `.lz4` to any extension to compress the file.\n")
	return sb.String()
}
