// SPDX-License-Identifier: MPL-2.0

package assetfile

import (
	"fmt"

	"github.com/modpad/modpad/internal/livesync"
	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/table"
)

// Session binds a Document to an editable text projection. Command
// documents are projected through a command format that can be switched
// while editing; table documents always use the table text codec.
type Session struct {
	kind     Kind
	format   command.Format
	commands *livesync.Session[command.CommandList]
	rows     *livesync.Session[table.Table]
}

// NewSession opens doc for live editing. format is ignored for tables.
func NewSession(doc *Document, format command.Format, tableOpts table.Options, opts ...livesync.Option) (*Session, error) {
	s := &Session{kind: doc.Kind, format: format}

	var err error
	switch doc.Kind {
	case KindCommands:
		s.commands, err = livesync.NewCommandSession(doc.Commands, format, opts...)
	case KindTable:
		s.rows, err = livesync.NewTableSession(doc.Table, tableOpts, opts...)
	default:
		err = doc.Kind.Validate()
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Kind reports whether the session edits commands or a table.
func (s *Session) Kind() Kind { return s.kind }

// Format returns the active command format, or "" for tables.
func (s *Session) Format() command.Format {
	if s.kind != KindCommands {
		return ""
	}
	return s.format
}

// Label describes the document kind and active format, e.g. "commands (tree)".
func (s *Session) Label() string {
	if s.kind == KindCommands {
		return fmt.Sprintf("%s (%s)", s.kind, s.format)
	}
	return fmt.Sprintf("%s (csv)", s.kind)
}

// Edit forwards a user edit to the underlying live sync session.
func (s *Session) Edit(text string) livesync.Outcome {
	if s.commands != nil {
		return s.commands.Edit(text)
	}
	return s.rows.Edit(text)
}

// Text returns the current text projection, including rejected edits.
func (s *Session) Text() string {
	if s.commands != nil {
		return s.commands.Text()
	}
	return s.rows.Text()
}

// LastError returns the decode error of the latest edit, or nil.
func (s *Session) LastError() error {
	if s.commands != nil {
		return s.commands.LastError()
	}
	return s.rows.LastError()
}

// Dirty reports whether the value changed since it was loaded or saved.
func (s *Session) Dirty() bool {
	if s.commands != nil {
		return s.commands.Dirty()
	}
	return s.rows.Dirty()
}

// MarkSaved clears the dirty flag after the value was written.
func (s *Session) MarkSaved() {
	if s.commands != nil {
		s.commands.MarkSaved()
		return
	}
	s.rows.MarkSaved()
}

// Document returns the current value as a Document.
func (s *Session) Document() *Document {
	if s.commands != nil {
		return NewCommands(s.commands.Value().Clone())
	}
	return NewTable(s.rows.Value().Clone())
}

// Reload replaces the value from doc, re-encoding the text.
func (s *Session) Reload(doc *Document) error {
	if doc.Kind != s.kind {
		return fmt.Errorf("%w: cannot reload %s session from %s document", ErrKindMismatch, s.kind, doc.Kind)
	}
	if s.commands != nil {
		return s.commands.Load(doc.Commands)
	}
	return s.rows.Load(doc.Table)
}

// CycleFormat switches a command session to the next format and re-encodes
// the text. It reports false for tables, which have a single format.
func (s *Session) CycleFormat() (bool, error) {
	if s.commands == nil {
		return false, nil
	}
	next := s.format.Next()
	if err := s.commands.Rebind(livesync.CommandCodec(next)); err != nil {
		return false, err
	}
	s.format = next
	return true, nil
}
