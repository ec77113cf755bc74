// SPDX-License-Identifier: MPL-2.0

package command

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is the {argCount, args} wire shape of a command.
// ArgCount is optional on input and always written on output.
type Record struct {
	ArgCount *int     `json:"argCount,omitempty" yaml:"argCount,omitempty" toml:"argCount,omitempty" cbor:"argCount,omitempty"`
	Args     []string `json:"args" yaml:"args" toml:"args" cbor:"args"`
}

// ToRecords converts list to wire records, skipping degenerate commands.
func ToRecords(list CommandList) []Record {
	records := make([]Record, 0, len(list))
	for _, c := range list {
		if !emittable(c) {
			continue
		}
		n := c.ArgCount()
		records = append(records, Record{ArgCount: &n, Args: c.Args})
	}
	return records
}

// FromRecords converts wire records to a CommandList. A missing args field
// yields a degenerate command; argCount is derived from args.
func FromRecords(records []Record) CommandList {
	list := make(CommandList, 0, len(records))
	for _, r := range records {
		args := r.Args
		if args == nil {
			args = []string{}
		}
		list = append(list, Command{Args: args})
	}
	return list
}

// EncodeJSON renders list as a JSON array of {argCount, args} objects
// indented with two spaces.
func EncodeJSON(list CommandList) (string, error) {
	data, err := json.MarshalIndent(ToRecords(list), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json commands: %w", err)
	}
	return string(data), nil
}

// DecodeJSON parses a JSON array of {argCount, args} objects. Blank input
// decodes to an empty list. Only text that is not JSON, or whose top-level
// value is not an array, returns a *StructuralDecodeError. Elements are read
// leniently: see decodeElement.
func DecodeJSON(text string) (CommandList, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return CommandList{}, nil
	}

	var root json.RawMessage
	if err := json.Unmarshal([]byte(text), &root); err != nil {
		return nil, &StructuralDecodeError{Format: FormatJSON, Cause: err}
	}
	if len(root) == 0 || root[0] != '[' {
		return nil, &StructuralDecodeError{
			Format: FormatJSON,
			Cause:  fmt.Errorf("top-level value must be an array, got %s", jsonKind(root)),
		}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(root, &elems); err != nil {
		return nil, &StructuralDecodeError{Format: FormatJSON, Cause: err}
	}
	list := make(CommandList, 0, len(elems))
	for _, elem := range elems {
		list = append(list, decodeElement(elem))
	}
	return list, nil
}

// decodeElement reads one array element. argCount is never inspected.
// An element that is not an object, or whose args is missing or not an
// array of strings, becomes a zero-argument command.
func decodeElement(elem json.RawMessage) Command {
	var obj map[string]json.RawMessage
	if json.Unmarshal(elem, &obj) != nil {
		return Command{Args: []string{}}
	}
	var args []string
	if raw, ok := obj["args"]; !ok || json.Unmarshal(raw, &args) != nil || args == nil {
		return Command{Args: []string{}}
	}
	return Command{Args: args}
}

// jsonKind names the type of a JSON value.
func jsonKind(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "null"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
