// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

// compressionSuffixes are outer extensions that wrap another encoding.
var compressionSuffixes = []string{".zst", ".lz4"}

type (
	// FilesystemPath represents an absolute or relative filesystem path.
	// The zero value ("") is invalid.
	FilesystemPath string

	// InvalidFilesystemPathError is returned when a FilesystemPath value is
	// empty or whitespace-only.
	InvalidFilesystemPathError struct {
		Value FilesystemPath
	}
)

func (p FilesystemPath) String() string { return string(p) }

// Validate returns an error if the path is empty or whitespace-only.
func (p FilesystemPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return &InvalidFilesystemPathError{Value: p}
	}
	return nil
}

// Extensions splits the path's extension into the document extension and an
// optional compression suffix, both lower-cased:
//
//	"a/intro.yaml.zst" -> (".yaml", ".zst")
//	"items.CSV"        -> (".csv", "")
func (p FilesystemPath) Extensions() (ext, compression string) {
	name := strings.ToLower(filepath.Base(string(p)))
	for _, suffix := range compressionSuffixes {
		if inner, ok := strings.CutSuffix(name, suffix); ok {
			return filepath.Ext(inner), suffix
		}
	}
	return filepath.Ext(name), ""
}

func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidFilesystemPath for errors.Is() compatibility.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
