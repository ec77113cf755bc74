// SPDX-License-Identifier: MPL-2.0

package table

import "slices"

type (
	// Row is an ordered sequence of string cells.
	Row []string

	// Table is an ordered sequence of rows. Rows may differ in length.
	Table []Row
)

// Dimensions returns the number of rows and the length of the longest row.
// Both are derived from the data on every call.
func (t Table) Dimensions() (rows, cols int) {
	for _, r := range t {
		cols = max(cols, len(r))
	}
	return len(t), cols
}

// Normalize returns a rectangular copy of t, padding short rows with empty
// cells.
func (t Table) Normalize() Table {
	_, cols := t.Dimensions()
	out := make(Table, len(t))
	for i, r := range t {
		padded := make(Row, cols)
		copy(padded, r)
		out[i] = padded
	}
	return out
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for i, r := range t {
		out[i] = slices.Clone(r)
	}
	return out
}

// Equal reports whether a and b hold the same cells in the same shape.
// A nil table equals an empty one.
func Equal(a, b Table) bool {
	return slices.EqualFunc(a, b, func(x, y Row) bool { return slices.Equal(x, y) })
}

// FromStrings converts a [][]string into a Table without copying cells.
func FromStrings(rows [][]string) Table {
	t := make(Table, len(rows))
	for i, r := range rows {
		t[i] = Row(r)
	}
	return t
}

// Strings converts t into a [][]string without copying cells.
func (t Table) Strings() [][]string {
	out := make([][]string, len(t))
	for i, r := range t {
		out[i] = []string(r)
	}
	return out
}
