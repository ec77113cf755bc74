// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modpad/modpad/internal/assetfile"
	"github.com/modpad/modpad/internal/testutil"
	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/table"
	"github.com/modpad/modpad/pkg/types"
)

func loadDoc(t *testing.T, path string) *assetfile.Document {
	t.Helper()
	doc, err := assetfile.NewStore().Load(context.Background(), types.FilesystemPath(path))
	if err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}
	return doc
}

func TestDecodeThenEncode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := testutil.WriteFile(t, dir, "quest.tree", "Say\n\thi\n\tnpc\n\nWait\n\t5\n")
	doc := filepath.Join(dir, "quest.yaml")

	if res := runCLI(t, "", "decode", src, "-o", doc); res.err != nil {
		t.Fatalf("decode error = %v, stderr = %s", res.err, res.stderr)
	}
	want := command.CommandList{command.New("Say", "hi", "npc"), command.New("Wait", "5")}
	if got := loadDoc(t, doc).Commands; !command.Equal(got, want) {
		t.Errorf("stored commands = %v, want %v", got, want)
	}

	res := runCLI(t, "", "encode", doc, "--format", "colon")
	if res.err != nil {
		t.Fatalf("encode error = %v", res.err)
	}
	if res.stdout != "Say: hi, npc\nWait: 5\n" {
		t.Errorf("encode stdout = %q", res.stdout)
	}

	out := filepath.Join(dir, "quest.tsv.txt")
	if res := runCLI(t, "", "encode", doc, "-f", "tsv", "-o", out); res.err != nil {
		t.Fatalf("encode -o error = %v", res.err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Say\thi\tnpc\nWait\t5" {
		t.Errorf("written text = %q", data)
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	t.Parallel()

	doc := filepath.Join(t.TempDir(), "quest.json")
	res := runCLI(t, `[{"argCount": 1, "args": ["Say"]}`, "decode", "-", "--format", "json", "-o", doc)

	if got := exitCode(res.err); got != types.ExitDecode {
		t.Fatalf("exit code = %v, want %v", got, types.ExitDecode)
	}
	if !strings.Contains(res.stderr, "failed to decode json text") {
		t.Errorf("stderr = %q, want actionable decode error", res.stderr)
	}
	if _, err := os.Stat(doc); !os.IsNotExist(err) {
		t.Error("a failed decode must not write the document")
	}
}

func TestDecode_FormatFromExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := testutil.WriteFile(t, dir, "quest.colon", "Give: sword, 1\n")
	doc := filepath.Join(dir, "quest.cbor")

	if res := runCLI(t, "", "decode", src, "-o", doc); res.err != nil {
		t.Fatalf("decode error = %v", res.err)
	}
	want := command.CommandList{command.New("Give", "sword", "1")}
	if got := loadDoc(t, doc).Commands; !command.Equal(got, want) {
		t.Errorf("stored commands = %v, want %v", got, want)
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
		code  types.ExitCode
	}{
		{
			name:  "tree to tsv",
			stdin: "Say\n\thi\n\nWait\n\t5",
			args:  []string{"--from", "tree", "--to", "tsv"},
			want:  "Say\thi\nWait\t5\n",
		},
		{
			name:  "colon splits commas",
			stdin: "Say: a,b",
			args:  []string{"--from", "colon", "--to", "tsv"},
			want:  "Say\ta\tb\n",
		},
		{
			name:  "default source format is tree",
			stdin: "Wait\n\t5",
			args:  []string{"--to", "colon"},
			want:  "Wait: 5\n",
		},
		{
			name:  "invalid json",
			stdin: "{}",
			args:  []string{"--from", "json", "--to", "tree"},
			code:  types.ExitDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCLI(t, tt.stdin, append([]string{"convert", "-"}, tt.args...)...)
			if got := exitCode(res.err); got != tt.code {
				t.Fatalf("exit code = %v, want %v (stderr = %s)", got, tt.code, res.stderr)
			}
			if tt.code == types.ExitOK && res.stdout != tt.want {
				t.Errorf("stdout = %q, want %q", res.stdout, tt.want)
			}
		})
	}
}

func TestTableParseAndSerialize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := testutil.WriteFile(t, dir, "loot.txt", "id,name\r\n1,\"Sword, Long\"\r\n")
	doc := filepath.Join(dir, "loot.json.zst")

	if res := runCLI(t, "", "table", "parse", src, "-o", doc); res.err != nil {
		t.Fatalf("table parse error = %v, stderr = %s", res.err, res.stderr)
	}
	want := table.Table{{"id", "name"}, {"1", "Sword, Long"}}
	if got := loadDoc(t, doc).Table; !table.Equal(got, want) {
		t.Errorf("stored table = %q, want %q", got, want)
	}

	res := runCLI(t, "", "table", "serialize", doc)
	if res.err != nil {
		t.Fatalf("table serialize error = %v", res.err)
	}
	if res.stdout != table.BOM+"id,name\n1,\"Sword, Long\"\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestTableSerialize_RejectsCommands(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := testutil.WriteFile(t, dir, "quest.tree", "Say\n\thi")

	res := runCLI(t, "", "table", "serialize", doc)
	if got := exitCode(res.err); got != types.ExitUsage {
		t.Errorf("exit code = %v, want %v", got, types.ExitUsage)
	}
	if !strings.Contains(res.stderr, "modpad encode") {
		t.Errorf("stderr = %q, want a hint towards encode", res.stderr)
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cmds := testutil.WriteFile(t, dir, "quest.tsv", "Say\thi\nSay\tbye\nTeleport\t1\t2\n")
	rows := testutil.WriteFile(t, dir, "loot.csv", "a,b,c\n1,2\n")

	res := runCLI(t, "", "inspect", cmds)
	if res.err != nil {
		t.Fatalf("inspect error = %v", res.err)
	}
	for _, want := range []string{"kind: commands", "commands: 3", "parameters: 4", "longest name: Teleport", "Say"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("inspect output missing %q:\n%s", want, res.stdout)
		}
	}

	res = runCLI(t, "", "inspect", rows)
	if res.err != nil {
		t.Fatalf("inspect error = %v", res.err)
	}
	for _, want := range []string{"encoding: csv", "kind: table", "rows: 2", "columns: 3"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("inspect output missing %q:\n%s", want, res.stdout)
		}
	}

	res = runCLI(t, "", "inspect", filepath.Join(dir, "quest.docx"))
	if got := exitCode(res.err); got != types.ExitUsage {
		t.Errorf("unsupported extension exit code = %v, want %v", got, types.ExitUsage)
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "", "formats", "--short")
	if res.err != nil {
		t.Fatalf("formats --short error = %v", res.err)
	}
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	if len(lines) != len(command.Formats()) {
		t.Fatalf("got %d lines, want one per format:\n%s", len(lines), res.stdout)
	}
	for i, f := range command.Formats() {
		if !strings.HasPrefix(lines[i], f.String()) {
			t.Errorf("line %d = %q, want it to start with %s", i, lines[i], f)
		}
	}

	md := formatsMarkdown()
	for _, want := range []string{"## tree", "## json", "| cue | .cue | commands, table | no |", ".zst"} {
		if !strings.Contains(md, want) {
			t.Errorf("formats markdown missing %q", want)
		}
	}
}

func TestFormatDocs(t *testing.T) {
	t.Parallel()

	for _, d := range formatDocs {
		if err := d.description.Validate(); err != nil || d.description == "" {
			t.Errorf("%s description invalid: %v", d.format, err)
		}
		// Every example must decode in its own format.
		if res := command.Decode(d.example, d.format); !res.OK() || len(res.List) == 0 {
			t.Errorf("%s example does not decode: %v", d.format, res.Err)
		}
	}
}

func TestConfigCommands(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "modpad.cue")

	res := runCLI(t, "", "--config", path, "config", "path")
	if res.err != nil || strings.TrimSpace(res.stdout) != path {
		t.Fatalf("config path = %q, %v", res.stdout, res.err)
	}

	res = runCLI(t, "", "--config", path, "config", "init")
	if res.err != nil {
		t.Fatalf("config init error = %v, stderr = %s", res.err, res.stderr)
	}
	if res.stderr != "" {
		t.Errorf("config init should not warn, stderr = %q", res.stderr)
	}

	res = runCLI(t, "", "--config", path, "config", "init")
	if got := exitCode(res.err); got != types.ExitFailure || !strings.Contains(res.stderr, "--force") {
		t.Errorf("second init: code %v, stderr %q", got, res.stderr)
	}

	res = runCLI(t, "", "--config", path, "config", "show")
	if res.err != nil {
		t.Fatalf("config show error = %v", res.err)
	}
	for _, want := range []string{path, "default_format: tree", "debounce_ms: 300", "tab_glyph: ⇥"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("config show missing %q:\n%s", want, res.stdout)
		}
	}
}
