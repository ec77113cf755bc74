// SPDX-License-Identifier: MPL-2.0

package assetfile

import (
	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/table"
)

// wireDocument is the shape shared by every structured encoding.
type wireDocument struct {
	Kind     Kind             `json:"kind" yaml:"kind" toml:"kind" cbor:"kind"`
	Commands []command.Record `json:"commands,omitempty" yaml:"commands,omitempty" toml:"commands,omitempty" cbor:"commands,omitempty"`
	Rows     [][]string       `json:"rows,omitempty" yaml:"rows,omitempty" toml:"rows,omitempty" cbor:"rows,omitempty"`
}

func toWire(doc *Document) wireDocument {
	w := wireDocument{Kind: doc.Kind}
	switch doc.Kind {
	case KindCommands:
		w.Commands = command.ToRecords(doc.Commands)
	case KindTable:
		w.Rows = doc.Table.Strings()
	}
	return w
}

func fromWire(w wireDocument) (*Document, error) {
	if err := w.Kind.Validate(); err != nil {
		return nil, err
	}
	if w.Kind == KindTable {
		return NewTable(table.FromStrings(w.Rows)), nil
	}
	return NewCommands(command.FromRecords(w.Commands)), nil
}
