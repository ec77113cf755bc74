// SPDX-License-Identifier: MPL-2.0

package command

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// FormatTree is the tab-indented tree syntax.
	FormatTree Format = "tree"
	// FormatColon is the "name: p1, p2" line syntax.
	FormatColon Format = "colon"
	// FormatJSON is the pretty-printed {argCount, args} array syntax.
	FormatJSON Format = "json"
	// FormatTSV is the tab-separated line syntax.
	FormatTSV Format = "tsv"
)

// ErrInvalidFormat is returned when a Format value is not recognized.
var ErrInvalidFormat = errors.New("invalid command format")

type (
	// Format names one of the textual surface syntaxes for a CommandList.
	Format string

	// InvalidFormatError is returned when a Format value is not recognized.
	// It wraps ErrInvalidFormat for errors.Is() compatibility.
	InvalidFormatError struct {
		Value Format
	}
)

// Formats returns every supported format in display order.
func Formats() []Format {
	return []Format{FormatTree, FormatColon, FormatJSON, FormatTSV}
}

// ParseFormat converts a user-supplied name into a Format.
// Matching is case-insensitive and accepts a few common aliases.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "indent", "treeindent":
		return FormatTree, nil
	case "colonsplit":
		return FormatColon, nil
	default:
		if valid, errs := f.IsValid(); !valid {
			return "", errs[0]
		}
		return f, nil
	}
}

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// IsValid returns whether the Format is one of the defined formats,
// and a list of validation errors if it is not.
func (f Format) IsValid() (bool, []error) {
	switch f {
	case FormatTree, FormatColon, FormatJSON, FormatTSV:
		return true, nil
	default:
		return false, []error{&InvalidFormatError{Value: f}}
	}
}

// Strict reports whether decoding text in this format can fail.
func (f Format) Strict() bool { return f == FormatJSON }

// Next returns the format following f in Formats order, wrapping around.
func (f Format) Next() Format {
	all := Formats()
	for i, candidate := range all {
		if candidate == f {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Error implements the error interface for InvalidFormatError.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid command format %q (valid: tree, colon, json, tsv)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}
