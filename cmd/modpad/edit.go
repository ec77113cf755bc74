// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/modpad/modpad/internal/assetfile"
	"github.com/modpad/modpad/internal/issue"
	"github.com/modpad/modpad/internal/livesync"
	"github.com/modpad/modpad/internal/tui"
	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/types"
)

// newEditCommand creates the `modpad edit` command.
func newEditCommand(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "edit <document>",
		Short: "Edit a document in the live text editor",
		Long: `Open a document in a full-screen text editor.

Every keystroke is decoded immediately. Text that fails to decode (only
possible for json) is kept on screen and reported in the status line
while the document keeps its last valid value.

Keys: ctrl+s saves, ctrl+f switches the command format, tab inserts a
tab, esc quits. A document that does not exist yet starts empty.`,
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

			if !tui.IsInteractive() {
				return app.fail(cmd, types.ExitUsage, issue.NewErrorContext().
					WithOperation("open editor").
					WithResource(args[0]).
					WithSuggestion("Run modpad edit from a terminal").
					WithSuggestion("Use 'modpad watch' to edit with another program").
					WithIssue(issue.TerminalRequiredId).
					Wrap(errors.New("stdin and stdout must be a terminal")).
					BuildError())
			}

			path := types.FilesystemPath(args[0])
			session, err := app.openSession(cmd.Context(), path, f)
			if err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}

			ctx := cmd.Context()
			err = tui.Run(tui.EditorOptions{
				Title:           path.String(),
				Surface:         session,
				Save:            app.saveFunc(ctx, path, session),
				ShowLineNumbers: app.cfg.Editor.ShowLineNumbers,
				TabGlyph:        app.cfg.Editor.TabGlyph,
			}, tea.WithContext(ctx))
			if err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}

			if session.Dirty() {
				fmt.Fprintln(app.stderr, WarningStyle.Render("!")+" unsaved changes were discarded")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "initial command text format (tree, colon, json, tsv)")
	return cmd
}

// openSession loads path into a live session. A missing file starts an
// empty document of the kind its encoding holds.
func (a *App) openSession(ctx context.Context, path types.FilesystemPath, f command.Format) (*assetfile.Session, error) {
	doc, err := a.store.Load(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		doc, err = emptyDocument(path)
	}
	if err != nil {
		return nil, err
	}
	return assetfile.NewSession(doc, f, a.cfg.TableOptions(), livesync.WithLogger(a.logger))
}

// emptyDocument returns a new document for path: a table when the encoding
// can only hold tables, commands otherwise.
func emptyDocument(path types.FilesystemPath) (*assetfile.Document, error) {
	enc, _, err := assetfile.Resolve(path)
	if err != nil {
		return nil, err
	}
	if !enc.Supports(assetfile.KindCommands) {
		return assetfile.NewTable(nil), nil
	}
	return assetfile.NewCommands(nil), nil
}

// saveFunc snapshots the session value on the editor loop and writes it in
// the background.
func (a *App) saveFunc(ctx context.Context, path types.FilesystemPath, session *assetfile.Session) tui.SaveFunc {
	return func() func() error {
		doc := session.Document()
		return func() error {
			return a.store.Save(ctx, path, doc)
		}
	}
}
