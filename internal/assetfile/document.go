// SPDX-License-Identifier: MPL-2.0

package assetfile

import (
	"errors"
	"fmt"

	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/table"
)

const (
	// KindCommands marks a document holding a command list.
	KindCommands Kind = "commands"
	// KindTable marks a document holding a string table.
	KindTable Kind = "table"
)

// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
var ErrInvalidKind = errors.New("invalid document kind")

type (
	// Kind identifies which value a Document carries.
	Kind string

	// InvalidKindError is returned for a kind other than commands or table.
	InvalidKindError struct {
		Value Kind
	}

	// Document is the value exchanged with the backing store. Exactly one
	// of Commands and Table is meaningful, as selected by Kind.
	Document struct {
		Kind     Kind
		Commands command.CommandList
		Table    table.Table
	}
)

// NewCommands wraps list in a commands document.
func NewCommands(list command.CommandList) *Document {
	if list == nil {
		list = command.CommandList{}
	}
	return &Document{Kind: KindCommands, Commands: list}
}

// NewTable wraps t in a table document.
func NewTable(t table.Table) *Document {
	if t == nil {
		t = table.Table{}
	}
	return &Document{Kind: KindTable, Table: t}
}

func (k Kind) String() string { return string(k) }

// Validate returns an InvalidKindError for unknown kinds.
func (k Kind) Validate() error {
	switch k {
	case KindCommands, KindTable:
		return nil
	default:
		return &InvalidKindError{Value: k}
	}
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid document kind %q (expected %q or %q)", e.Value, KindCommands, KindTable)
}

func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }
