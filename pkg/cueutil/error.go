// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("cue validation failed")

	// ErrFileTooLarge is matched by every *FileTooLargeError.
	ErrFileTooLarge = errors.New("file too large")
)

type (
	// Problem is one CUE error located at a field path such as
	// "commands[2].args[0]". Path is empty for errors without a location.
	Problem struct {
		Path    string
		Message string
	}

	// ValidationError lists the problems CUE reported for one file.
	ValidationError struct {
		File     string
		Problems []Problem
	}

	// FileTooLargeError reports input above the configured size limit.
	FileTooLargeError struct {
		File  string
		Size  int64
		Limit int64
	}
)

// Error renders "<file>: <path>: <message>" for a single problem and an
// indented list otherwise.
func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		if p.Path == "" {
			lines = append(lines, p.Message)
			continue
		}
		lines = append(lines, p.Path+": "+p.Message)
	}
	if len(lines) == 1 {
		return e.File + ": " + lines[0]
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.File, strings.Join(lines, "\n  "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Paths returns the field paths of all located problems.
func (e *ValidationError) Paths() []string {
	var paths []string
	for _, p := range e.Problems {
		if p.Path != "" {
			paths = append(paths, p.Path)
		}
	}
	return paths
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s: file size %d bytes exceeds maximum %d bytes", e.File, e.Size, e.Limit)
}

func (e *FileTooLargeError) Unwrap() error { return ErrFileTooLarge }

// FormatError converts a CUE error into a *ValidationError for filePath.
// Errors that carry no CUE detail are wrapped with the file name instead.
//
//   - intro.cue: commands[2].args[0]: conflicting values 3 and string
//   - config.cue: watch.debounce_ms: invalid value -5 (out of bound >=0)
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	verr := &ValidationError{File: filePath}
	for _, e := range cueErrs {
		path := formatPath(cueerrors.Path(e))
		msg := e.Error()
		// CUE sometimes repeats the path in the message.
		if path != "" {
			if rest, ok := strings.CutPrefix(msg, path); ok {
				msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
			}
		}
		verr.Problems = append(verr.Problems, Problem{Path: path, Message: msg})
	}
	return verr
}

// formatPath turns a flat CUE path (["commands", "0", "args"]) into
// "commands[0].args".
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			b.WriteString("[" + part + "]")
		case i > 0:
			b.WriteString("." + part)
		default:
			b.WriteString(part)
		}
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize returns a *FileTooLargeError when data is larger than maxSize.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if n := int64(len(data)); n > maxSize {
		return &FileTooLargeError{File: filename, Size: n, Limit: maxSize}
	}
	return nil
}
