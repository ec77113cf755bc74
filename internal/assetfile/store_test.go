// SPDX-License-Identifier: MPL-2.0

package assetfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/modpad/modpad/internal/issue"
	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/cueutil"
	"github.com/modpad/modpad/pkg/table"
	"github.com/modpad/modpad/pkg/types"
)

func sampleCommands() *Document {
	return NewCommands(command.CommandList{
		command.New("Say", "Hello, traveller", "npc_01"),
		command.New("Wait"),
		command.New("Give", "gold", "50"),
	})
}

func sampleTable() *Document {
	return NewTable(table.Table{
		{"id", "text"},
		{"greet", `He said "hi", then left`},
		{"empty"},
	})
}

func assertDocEqual(t *testing.T, got, want *Document) {
	t.Helper()

	if got.Kind != want.Kind {
		t.Fatalf("Kind = %q, want %q", got.Kind, want.Kind)
	}
	switch want.Kind {
	case KindCommands:
		if !command.Equal(got.Commands, want.Commands) {
			t.Errorf("Commands = %v, want %v", got.Commands, want.Commands)
		}
	case KindTable:
		if !table.Equal(got.Table, want.Table) {
			t.Errorf("Table = %v, want %v", got.Table, want.Table)
		}
	}
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		doc  *Document
	}{
		{"cmds.json", sampleCommands()},
		{"rows.json", sampleTable()},
		{"cmds.jsonc", sampleCommands()},
		{"cmds.yaml", sampleCommands()},
		{"rows.yml", sampleTable()},
		{"cmds.toml", sampleCommands()},
		{"rows.toml", sampleTable()},
		{"cmds.cbor", sampleCommands()},
		{"rows.cbor", sampleTable()},
		{"rows.csv", sampleTable()},
		{"cmds.tree", sampleCommands()},
		{"cmds.colon", sampleCommands()},
		{"cmds.tsv", sampleCommands()},
		{"cmds.yaml.zst", sampleCommands()},
		{"rows.csv.zst", sampleTable()},
		{"cmds.cbor.lz4", sampleCommands()},
		{"rows.json.lz4", sampleTable()},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			if tt.file == "cmds.colon" {
				// Colon text splits on commas inside values.
				tt.doc = NewCommands(command.CommandList{command.New("Say", "Hello", "npc_01"), command.New("Wait")})
			}

			s := NewStore()
			path := types.FilesystemPath(filepath.Join(t.TempDir(), tt.file))
			if err := s.Save(context.Background(), path, tt.doc); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := s.Load(context.Background(), path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			assertDocEqual(t, got, tt.doc)
		})
	}
}

func TestStore_CSVWritesBOM(t *testing.T) {
	t.Parallel()

	path := types.FilesystemPath(filepath.Join(t.TempDir(), "rows.csv"))
	if err := NewStore().Save(context.Background(), path, NewTable(table.Table{{"a", "b"}})); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(string(path))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), table.BOM+"a,b"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestStore_LoadCSVWithCRLF(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rows.csv")
	if err := os.WriteFile(path, []byte("a,b\r\nc,d\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	raw, err := NewStore().Load(context.Background(), types.FilesystemPath(path))
	if err != nil {
		t.Fatal(err)
	}
	if raw.Table[0][1] != "b\r" {
		t.Errorf("default store should keep CR, got %q", raw.Table[0][1])
	}

	trimmed, err := NewStore(WithTableOptions(table.Options{TrimCR: true})).Load(context.Background(), types.FilesystemPath(path))
	if err != nil {
		t.Fatal(err)
	}
	assertDocEqual(t, trimmed, NewTable(table.Table{{"a", "b"}, {"c", "d"}}))
}

func TestStore_LoadCSVUTF16(t *testing.T) {
	t.Parallel()

	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, _, err := transform.Bytes(enc, []byte("name,line\nguard,Halt!\n"))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "rows.csv")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewStore().Load(context.Background(), types.FilesystemPath(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	assertDocEqual(t, got, NewTable(table.Table{{"name", "line"}, {"guard", "Halt!"}}))
}

func TestStore_LoadJSONCAndCUE(t *testing.T) {
	t.Parallel()

	want := NewCommands(command.CommandList{command.New("Say", "hi"), command.New("Wait")})

	tests := []struct {
		file string
		body string
	}{
		{
			file: "cmds.jsonc",
			body: `{
  // intro scene
  "kind": "commands",
  "commands": [
    {"argCount": 2, "args": ["Say", "hi"]},
    {"args": ["Wait"]}, // argCount defaults to len(args)
  ],
}`,
		},
		{
			file: "cmds.cue",
			body: `kind: "commands"
commands: [
	{argCount: 2, args: ["Say", "hi"]},
	{args: ["Wait"]},
]`,
		},
		{
			file: "cmds.yaml",
			body: "kind: commands\ncommands:\n  - args: [Say, hi]\n  - {argCount: 5, args: [Wait]}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := NewStore().Load(context.Background(), types.FilesystemPath(path))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			assertDocEqual(t, got, want)
		})
	}
}

func TestStore_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, body string) types.FilesystemPath {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return types.FilesystemPath(p)
	}

	badKind := write("bad.json", `{"kind":"sprites"}`)
	badJSON := write("broken.json", `{"kind":`)
	badCUE := write("bad.cue", `kind: "commands"
commands: [{args: [1]}]`)

	tests := []struct {
		name      string
		run       func(s *Store) error
		wantIssue issue.Id
		wantIs    error
		wantText  string
	}{
		{
			name: "missing file",
			run: func(s *Store) error {
				_, err := s.Load(context.Background(), types.FilesystemPath(filepath.Join(dir, "nope.yaml")))
				return err
			},
			wantIssue: issue.DocumentNotFoundId,
			wantIs:    os.ErrNotExist,
		},
		{
			name:      "unsupported extension",
			run:       func(s *Store) error { _, err := s.Load(context.Background(), "script.docx"); return err },
			wantIssue: issue.UnsupportedDocumentId,
			wantIs:    ErrUnsupportedExtension,
		},
		{
			name:      "empty path",
			run:       func(s *Store) error { _, err := s.Load(context.Background(), ""); return err },
			wantIssue: issue.UnsupportedDocumentId,
			wantIs:    types.ErrInvalidFilesystemPath,
		},
		{
			name:      "unknown kind",
			run:       func(s *Store) error { _, err := s.Load(context.Background(), badKind); return err },
			wantIssue: issue.DocumentParseErrorId,
			wantIs:    ErrInvalidKind,
		},
		{
			name:      "malformed json",
			run:       func(s *Store) error { _, err := s.Load(context.Background(), badJSON); return err },
			wantIssue: issue.DocumentParseErrorId,
			wantText:  "json:",
		},
		{
			name:      "cue schema violation",
			run:       func(s *Store) error { _, err := s.Load(context.Background(), badCUE); return err },
			wantIssue: issue.DocumentParseErrorId,
			wantIs:    cueutil.ErrValidation,
			wantText:  "Fix the fields: commands[0]",
		},
		{
			name: "cue is read only",
			run: func(s *Store) error {
				return s.Save(context.Background(), types.FilesystemPath(filepath.Join(dir, "out.cue")), sampleCommands())
			},
			wantIssue: issue.DocumentSaveFailedId,
			wantIs:    ErrReadOnly,
		},
		{
			name: "table to tree",
			run: func(s *Store) error {
				return s.Save(context.Background(), types.FilesystemPath(filepath.Join(dir, "out.tree")), sampleTable())
			},
			wantIssue: issue.DocumentSaveFailedId,
			wantIs:    ErrKindMismatch,
		},
		{
			name: "missing directory",
			run: func(s *Store) error {
				return s.Save(context.Background(), types.FilesystemPath(filepath.Join(dir, "no", "such", "out.json")), sampleCommands())
			},
			wantIssue: issue.DocumentSaveFailedId,
			wantIs:    os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.run(NewStore())
			if err == nil {
				t.Fatal("expected error")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error %T is not *issue.ActionableError: %v", err, err)
			}
			if ae.Issue != tt.wantIssue {
				t.Errorf("Issue = %d, want %d", ae.Issue, tt.wantIssue)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.wantIs)
			}
			if tt.wantText != "" && !strings.Contains(ae.Format(false), tt.wantText) {
				t.Errorf("error %q does not contain %q", err, tt.wantText)
			}
		})
	}
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := types.FilesystemPath(filepath.Join(t.TempDir(), "cmds.json"))
	if err := NewStore().Save(ctx, path, sampleCommands()); !errors.Is(err, context.Canceled) {
		t.Errorf("Save() error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(string(path)); !errors.Is(err, os.ErrNotExist) {
		t.Error("Save() with canceled context should not write the file")
	}
	if _, err := NewStore().Load(ctx, path); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestEncodingFor(t *testing.T) {
	t.Parallel()

	if EncodingFor(".YML").Name != "yaml" {
		t.Error(".YML should resolve to yaml")
	}
	if EncodingFor(".docx") != nil {
		t.Error(".docx should not resolve")
	}
	if !EncodingFor(".cue").ReadOnly() {
		t.Error("cue should be read only")
	}
	if EncodingFor(".csv").Supports(KindCommands) {
		t.Error("csv should not support command documents")
	}
	if n := len(Encodings()); n != 10 {
		t.Errorf("len(Encodings()) = %d, want 10", n)
	}
}
