// SPDX-License-Identifier: MPL-2.0

package table

import "strings"

// scanState is the state of the per-line field scanner.
type scanState int

const (
	// stateNormal reads unquoted text; commas end fields.
	stateNormal scanState = iota
	// stateInQuotes reads quoted text; commas are literal.
	stateInQuotes
)

// scanner splits one line into cells.
type scanner struct {
	state scanState
	field strings.Builder
	row   Row
}

// scanLine runs the two-state scanner over line and returns its cells.
// A line ending inside quotes keeps everything after the opening quote as
// the final cell.
func scanLine(line string) Row {
	s := &scanner{}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch s.state {
		case stateNormal:
			switch c {
			case quote:
				s.state = stateInQuotes
			case delimiter:
				s.endField()
			default:
				s.field.WriteByte(c)
			}
		case stateInQuotes:
			switch {
			case c == quote && i+1 < len(line) && line[i+1] == quote:
				s.field.WriteByte(quote)
				i++
			case c == quote:
				s.state = stateNormal
			default:
				s.field.WriteByte(c)
			}
		}
	}
	s.endField()
	return s.row
}

func (s *scanner) endField() {
	s.row = append(s.row, s.field.String())
	s.field.Reset()
}
