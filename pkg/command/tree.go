// SPDX-License-Identifier: MPL-2.0

package command

import (
	"slices"
	"strings"
	"unicode"
)

// lineKind classifies one line of tree text.
type lineKind int

const (
	// lineSeparator is blank or whitespace-only, including tab-only lines.
	lineSeparator lineKind = iota
	// lineParameter starts with one or more tabs.
	lineParameter
	// lineName is anything else.
	lineName
)

// EncodeTree renders list as tab-indented tree text: the name on its own
// line, one tab-prefixed line per parameter, and a blank line after each
// command. Leading and trailing whitespace of the whole result is trimmed.
func EncodeTree(list CommandList) string {
	lines := make([]string, 0, 2*len(list))
	for _, c := range list {
		if !emittable(c) {
			continue
		}
		lines = append(lines, c.Name())
		for _, p := range c.Parameters() {
			lines = append(lines, "\t"+p)
		}
		lines = append(lines, "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// classifyLine decides what a line contributes and returns its content.
// The separator check runs first so a tab-only line can never become an
// empty parameter.
func classifyLine(line string) (lineKind, string) {
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	if strings.TrimSpace(trimmed) == "" {
		return lineSeparator, ""
	}
	if strings.HasPrefix(trimmed, "\t") {
		return lineParameter, strings.TrimLeft(trimmed, "\t")
	}
	return lineName, trimmed
}

// DecodeTree parses tab-indented tree text. It never fails.
func DecodeTree(text string) CommandList {
	list := CommandList{}
	var buf []string

	commit := func() {
		if len(buf) == 0 {
			return
		}
		list = append(list, Command{Args: slices.Clone(buf)})
		buf = buf[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		kind, content := classifyLine(line)
		switch kind {
		case lineSeparator:
			commit()
		case lineParameter:
			buf = append(buf, content)
		case lineName:
			commit()
			buf = append(buf, content)
		}
	}
	commit()

	return list
}
