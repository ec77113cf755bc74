// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/modpad/modpad/internal/assetfile"
	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/types"
)

// maxListedNames caps the name histogram printed by inspect.
const maxListedNames = 10

// newInspectCommand creates the `modpad inspect` command.
func newInspectCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <document>",
		Short: "Summarize a document",
		Long: `Print counts for a document: commands, parameters and the most used
command names, or the row and column count of a table.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := types.FilesystemPath(args[0])
			enc, compression, err := assetfile.Resolve(path)
			if err != nil {
				return app.fail(cmd, types.ExitUsage, err)
			}
			doc, err := app.store.Load(cmd.Context(), path)
			if err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}
			printSummary(app.stdout, path, enc.Name, compression, doc)
			return nil
		},
	}
}

func printSummary(w io.Writer, path types.FilesystemPath, encoding, compression string, doc *assetfile.Document) {
	field := func(name string, value any) {
		fmt.Fprintf(w, "  %s: %v\n", KeyStyle.Render(name), value)
	}

	fmt.Fprintln(w, TitleStyle.Render(path.String()))
	if compression != "" {
		encoding += " (" + compression[1:] + ")"
	}
	field("encoding", encoding)
	field("kind", doc.Kind)

	if doc.Kind == assetfile.KindTable {
		rows, cols := doc.Table.Dimensions()
		field("rows", rows)
		field("columns", cols)
		return
	}

	s := command.Summarize(doc.Commands)
	field("commands", s.Commands)
	field("parameters", s.Parameters)
	if s.Empty > 0 {
		field("empty entries", s.Empty)
	}
	if s.LongestName != "" {
		field("longest name", s.LongestName)
	}
	if len(s.Names) == 0 {
		return
	}

	names := slices.SortedFunc(maps.Keys(s.Names), func(a, b string) int {
		if c := cmp.Compare(s.Names[b], s.Names[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	fmt.Fprintf(w, "  %s:\n", KeyStyle.Render("names"))
	for _, name := range names[:min(len(names), maxListedNames)] {
		fmt.Fprintf(w, "    %-20s %d\n", name, s.Names[name])
	}
	if len(names) > maxListedNames {
		fmt.Fprintf(w, "    %s\n", SubtitleStyle.Render(fmt.Sprintf("(%d more)", len(names)-maxListedNames)))
	}
}
