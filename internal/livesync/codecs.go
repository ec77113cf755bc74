// SPDX-License-Identifier: MPL-2.0

package livesync

import (
	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/table"
)

type (
	commandCodec struct {
		format command.Format
	}

	tableCodec struct {
		opts table.Options
	}
)

// CommandCodec adapts a command format to the Codec interface.
func CommandCodec(format command.Format) Codec[command.CommandList] {
	return commandCodec{format: format}
}

// TableCodec adapts the table text codec to the Codec interface.
func TableCodec(opts table.Options) Codec[table.Table] {
	return tableCodec{opts: opts}
}

// NewCommandSession creates a Session over list in the given format.
func NewCommandSession(list command.CommandList, format command.Format, opts ...Option) (*Session[command.CommandList], error) {
	if valid, errs := format.IsValid(); !valid {
		return nil, errs[0]
	}
	return New(CommandCodec(format), list, opts...)
}

// NewTableSession creates a Session over t.
func NewTableSession(t table.Table, tableOpts table.Options, opts ...Option) (*Session[table.Table], error) {
	return New(TableCodec(tableOpts), t, opts...)
}

func (c commandCodec) Encode(list command.CommandList) (string, error) {
	return command.Encode(list, c.format)
}

func (c commandCodec) Decode(text string) (command.CommandList, error) {
	res := command.Decode(text, c.format)
	return res.List, res.Err
}

func (commandCodec) Equal(a, b command.CommandList) bool { return command.Equal(a, b) }

func (commandCodec) Clone(list command.CommandList) command.CommandList { return list.Clone() }

func (c tableCodec) Encode(t table.Table) (string, error) { return table.Serialize(t), nil }

func (c tableCodec) Decode(text string) (table.Table, error) {
	return table.ParseWithOptions(text, c.opts), nil
}

func (tableCodec) Equal(a, b table.Table) bool { return table.Equal(a, b) }

func (tableCodec) Clone(t table.Table) table.Table { return t.Clone() }
