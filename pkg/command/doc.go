// SPDX-License-Identifier: MPL-2.0

// Package command transcodes mod-script command lists to and from text.
//
// A command is an opcode name followed by an ordered list of string
// parameters. Four textual surface syntaxes share that one shape:
//
//   - FormatTree: the name on its own line, each parameter on a tab-indented
//     line below it, commands separated by blank lines.
//   - FormatColon: one "name: p1, p2" line per command.
//   - FormatJSON: a pretty-printed array of {"argCount", "args"} records.
//   - FormatTSV: one line per command, name and parameters joined by tabs.
//
// Decoding tree, colon, and tsv text is total: any input produces a command
// list, with malformed lines degrading to single-argument commands. JSON is
// strict and reports a *StructuralDecodeError when the text is not a JSON
// array. Decode wraps both cases in a Result so that callers keeping a text
// surface in sync with a command list handle every format the same way.
package command
