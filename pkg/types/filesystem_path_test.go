// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestFilesystemPath_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    FilesystemPath
		wantErr bool
	}{
		{"absolute path", FilesystemPath("/srv/mods/intro.cbor"), false},
		{"relative path", FilesystemPath("items.csv"), false},
		{"path with spaces", FilesystemPath("my mod/quest 1.yaml"), false},
		{"dot path", FilesystemPath("."), false},
		{"empty is invalid", FilesystemPath(""), true},
		{"whitespace only is invalid", FilesystemPath("   "), true},
		{"tab only is invalid", FilesystemPath("\t"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.path.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("FilesystemPath(%q).Validate() error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrInvalidFilesystemPath) {
				t.Errorf("error should wrap ErrInvalidFilesystemPath, got: %v", err)
			}
			var fpErr *InvalidFilesystemPathError
			if !errors.As(err, &fpErr) {
				t.Errorf("error should be *InvalidFilesystemPathError, got: %T", err)
			}
		})
	}
}

func TestFilesystemPath_Extensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path            FilesystemPath
		wantExt, wantCo string
	}{
		{"intro.yaml", ".yaml", ""},
		{"mods/Items.CSV", ".csv", ""},
		{"intro.yaml.zst", ".yaml", ".zst"},
		{"dir.v2/table.cbor.LZ4", ".cbor", ".lz4"},
		{"noext", "", ""},
		{"raw.zst", "", ".zst"},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			t.Parallel()

			ext, co := tt.path.Extensions()
			if ext != tt.wantExt || co != tt.wantCo {
				t.Errorf("Extensions() = (%q, %q), want (%q, %q)", ext, co, tt.wantExt, tt.wantCo)
			}
		})
	}
}
