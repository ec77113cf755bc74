// SPDX-License-Identifier: MPL-2.0

package table

import "strings"

// BOM is the byte-order mark written before serialized text.
const BOM = "\uFEFF"

const (
	delimiter = ','
	quote     = '"'
)

// Options tunes Parse.
type Options struct {
	// TrimCR strips one trailing carriage return from each line before
	// scanning, so CRLF input parses like LF input.
	TrimCR bool
}

// Serialize renders t as comma-delimited text with a leading BOM.
func Serialize(t Table) string {
	var sb strings.Builder
	sb.WriteString(BOM)
	for i, r := range t {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, cell := range r {
			if j > 0 {
				sb.WriteByte(delimiter)
			}
			writeCell(&sb, cell)
		}
	}
	return sb.String()
}

// writeCell writes cell, quoting it when it holds a delimiter, a quote, or a
// line break.
func writeCell(sb *strings.Builder, cell string) {
	if !strings.ContainsAny(cell, ",\"\n\r") {
		sb.WriteString(cell)
		return
	}
	sb.WriteByte(quote)
	sb.WriteString(strings.ReplaceAll(cell, `"`, `""`))
	sb.WriteByte(quote)
}

// Parse reads comma-delimited text back into a Table. It never fails.
func Parse(text string) Table {
	return ParseWithOptions(text, Options{})
}

// ParseWithOptions is Parse with line handling controlled by opts.
func ParseWithOptions(text string, opts Options) Table {
	text = strings.TrimPrefix(text, BOM)
	if strings.TrimSpace(text) == "" {
		return Table{}
	}

	var t Table
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if opts.TrimCR {
			line = strings.TrimSuffix(line, "\r")
		}
		t = append(t, scanLine(line))
	}
	if t == nil {
		t = Table{}
	}
	return t
}
