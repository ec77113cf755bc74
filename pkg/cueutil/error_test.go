// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"cuelang.org/go/cue/cuecontext"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "intro.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filepath", func(t *testing.T) {
		t.Parallel()

		original := errors.New("some error")
		err := FormatError(original, "intro.cue")
		if !strings.HasPrefix(err.Error(), "intro.cue: ") {
			t.Errorf("error should start with the filename, got: %v", err)
		}
		if !errors.Is(err, original) || errors.Is(err, ErrValidation) {
			t.Errorf("non-CUE error chain wrong: %v", err)
		}
	})

	t.Run("CUE errors become problems with paths", func(t *testing.T) {
		t.Parallel()

		ctx := cuecontext.New()
		v := ctx.CompileString(`
			#Doc: {kind: "commands" | "table", count: int & >=0}
			doc: #Doc & {kind: "script", count: -1}
		`)
		err := FormatError(v.Validate(), "intro.cue")

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("FormatError() = %T, want *ValidationError", err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Error("errors.Is(err, ErrValidation) = false")
		}
		if verr.File != "intro.cue" || len(verr.Problems) == 0 {
			t.Fatalf("unexpected ValidationError: %+v", verr)
		}
		if !slices.Contains(verr.Paths(), "doc.kind") && !slices.Contains(verr.Paths(), "doc.count") {
			t.Errorf("Paths() = %v, want doc.kind or doc.count", verr.Paths())
		}
		if !strings.HasPrefix(err.Error(), "intro.cue: ") {
			t.Errorf("Error() = %q, want the file prefix", err.Error())
		}
	})
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	single := &ValidationError{File: "config.cue", Problems: []Problem{{Path: "editor.tab_glyph", Message: "invalid value"}}}
	if got, want := single.Error(), "config.cue: editor.tab_glyph: invalid value"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	multi := &ValidationError{File: "config.cue", Problems: []Problem{
		{Path: "default_format", Message: "conflicting values"},
		{Message: "unexpected EOF"},
	}}
	want := "config.cue: validation failed:\n  default_format: conflicting values\n  unexpected EOF"
	if got := multi.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := multi.Paths(); !slices.Equal(got, []string{"default_format"}) {
		t.Errorf("Paths() = %v", got)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{name: "empty path", path: []string{}, expected: ""},
		{name: "single element", path: []string{"kind"}, expected: "kind"},
		{name: "nested path", path: []string{"editor", "tab_glyph"}, expected: "editor.tab_glyph"},
		{name: "array index", path: []string{"commands", "0", "args"}, expected: "commands[0].args"},
		{name: "nested arrays", path: []string{"rows", "3", "1"}, expected: "rows[3][1]"},
		{name: "leading number", path: []string{"0", "x"}, expected: "0.x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "empty", size: 0},
		{name: "within limit", size: 11},
		{name: "exact limit", size: 100},
		{name: "over limit", size: 101, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileSize(make([]byte, tt.size), 100, "big.cue")
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFileSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var big *FileTooLargeError
			if !errors.As(err, &big) || big.Size != 101 || big.Limit != 100 || big.File != "big.cue" {
				t.Errorf("CheckFileSize() = %#v", err)
			}
			if !errors.Is(err, ErrFileTooLarge) {
				t.Error("errors.Is(err, ErrFileTooLarge) = false")
			}
		})
	}
}
