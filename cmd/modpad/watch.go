// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modpad/modpad/internal/assetfile"
	"github.com/modpad/modpad/internal/issue"
	"github.com/modpad/modpad/internal/livesync"
	"github.com/modpad/modpad/internal/watch"
	"github.com/modpad/modpad/pkg/types"
)

// textSync feeds saves of a text file into a live session and writes the
// document whenever the decoded value changes.
type textSync struct {
	app     *App
	session *assetfile.Session
	source  string
	target  types.FilesystemPath
}

// newWatchCommand creates the `modpad watch` command.
func newWatchCommand(app *App) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "watch <text-file>",
		Short: "Sync a text file into a document on every save",
		Long: `Watch a text file and update a document each time the file is saved.

Use this to edit a document with any text editor. If the text file does not
exist it is created from the document. Saves that fail to decode (only
possible for json) are reported and the document keeps its last valid
value. The document is written only when the decoded value changes.`,
		Example: `  modpad watch quest.tree -o quest.json
  modpad watch loot.txt -o loot.csv`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			source := args[0]
			target := types.FilesystemPath(output)

			f, err := app.formatForPath(cmd, "format", format, source)
			if err != nil {
				return app.fail(cmd, types.ExitUsage, err)
			}
			session, err := app.openSession(ctx, target, f)
			if err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}

			sync := &textSync{app: app, session: session, source: source, target: target}
			if err := sync.start(ctx); err != nil {
				return app.fail(cmd, types.ExitFailure, err)
			}

			w, err := watch.New(watch.Config{
				Dir:      filepath.Dir(source),
				Patterns: []string{watch.EscapePattern(filepath.Base(source))},
				Debounce: app.cfg.Debounce(),
				OnChange: sync.onChange,
				Logger:   app.logger,
			})
			if err != nil {
				return app.fail(cmd, types.ExitFailure, fmt.Errorf("failed to start watcher: %w", err))
			}

			fmt.Fprintf(app.stdout, "%s Watching %s as %s (Ctrl+C to stop)...\n",
				KeyStyle.Render("→"), source, session.Label())
			if err := w.Run(ctx); err != nil {
				return app.fail(cmd, types.ExitFailure, watchRunError(source, err))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "command text format (default from the extension or config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "document to keep in sync (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// watchRunError adds a suggestion when the platform stopped delivering
// file notifications.
func watchRunError(source string, err error) error {
	var lost *watch.LostError
	if !errors.As(err, &lost) {
		return err
	}
	return issue.NewErrorContext().
		WithOperation("watch text file").
		WithResource(source).
		WithSuggestion(lost.Reason).
		WithSuggestion("Restart 'modpad watch'; the document keeps the last saved value").
		Wrap(err).
		BuildError()
}

// start seeds the text file from the document when it is missing, or
// applies its current content otherwise.
func (s *textSync) start(ctx context.Context) error {
	if _, err := os.Stat(s.source); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(s.source, []byte(s.session.Text()), 0o644); err != nil {
			return fmt.Errorf("create %s: %w", s.source, err)
		}
		s.app.logger.Debug("seeded text file", "path", s.source)
		return nil
	}
	return s.apply(ctx)
}

// onChange is the watcher callback. Failures are reported and swallowed so
// the watch keeps running.
func (s *textSync) onChange(ctx context.Context, _ []string) error {
	if err := s.apply(ctx); err != nil {
		fmt.Fprintln(s.app.stderr, WarningStyle.Render("!")+" "+formatErrorForDisplay(err, s.app.verbose))
	}
	return nil
}

// apply reads the text file, decodes it, and saves the document when the
// value changed.
func (s *textSync) apply(ctx context.Context) error {
	data, err := os.ReadFile(s.source)
	if err != nil {
		return fmt.Errorf("read %s: %w", s.source, err)
	}

	switch s.session.Edit(string(data)) {
	case livesync.Rejected:
		return decodeError(s.source, s.session.Format(), s.session.LastError())
	case livesync.Unchanged:
		s.app.logger.Debug("no change", "path", s.source)
		return nil
	}

	if err := s.app.store.Save(ctx, s.target, s.session.Document()); err != nil {
		return err
	}
	s.session.MarkSaved()
	fmt.Fprintf(s.app.stdout, "%s Saved %s (%s)\n", SuccessStyle.Render("✓"), s.target, s.describe())
	return nil
}

func (s *textSync) describe() string {
	doc := s.session.Document()
	if doc.Kind == assetfile.KindTable {
		rows, cols := doc.Table.Dimensions()
		return fmt.Sprintf("%d rows, %d columns", rows, cols)
	}
	return fmt.Sprintf("%d commands", len(doc.Commands))
}
