// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	DocumentNotFoundId Id = iota + 1
	DocumentParseErrorId
	UnsupportedDocumentId
	InvalidCommandTextId
	DocumentSaveFailedId
	ConfigLoadFailedId
	TerminalRequiredId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue's Markdown with the named glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(style string) (string, error) {
	return render(string(i.mdMsg), style)
}

var (
	render = func(in, style string) (string, error) {
		return glamour.Render(in, style)
	}

	documentNotFoundIssue = &Issue{
		id: DocumentNotFoundId,
		mdMsg: `
# Document not found!

modpad could not open the file you asked for.

## Things you can try:
- Check the path for typos
- Use an absolute path if you are running from another directory
- Create a new document with:
~~~
$ modpad decode --format tree script.txt -o script.cbor
~~~`,
	}

	documentParseErrorIssue = &Issue{
		id: DocumentParseErrorId,
		mdMsg: `
# Document could not be read!

The file exists but its contents do not match its extension.

## Things you can try:
- Make sure the extension matches the encoding (` + "`.json`, `.yaml`, `.toml`, `.cbor`, `.cue`, `.csv`" + `)
- Compressed files must end in ` + "`.zst` or `.lz4`" + ` after the inner extension
- Structured documents need a ` + "`kind`" + ` field set to ` + "`commands` or `table`",
	}

	unsupportedDocumentIssue = &Issue{
		id: UnsupportedDocumentId,
		mdMsg: `
# Unsupported document type!

modpad picks a document encoding from the file extension.

## Supported extensions:
- Structured: .json, .jsonc, .yaml, .yml, .toml, .cbor, .cue (read only)
- Text: .tree, .colon, .tsv (commands), .csv (tables)
- Compression suffixes: .zst, .lz4`,
	}

	invalidCommandTextIssue = &Issue{
		id: InvalidCommandTextId,
		mdMsg: `
# Command text is not valid JSON!

The json command format is strict: the text must be an array of
` + "`{\"argCount\": n, \"args\": [...]}`" + ` objects.

## Things you can try:
- Check for a missing bracket or trailing comma
- Switch to a forgiving format (tree, colon, tsv) while drafting:
~~~
$ modpad convert --from json --to tree script.json.txt
~~~`,
	}

	documentSaveFailedIssue = &Issue{
		id: DocumentSaveFailedId,
		mdMsg: `
# Document could not be saved!

## Things you can try:
- Check that the target directory exists and is writable
- .cue documents are read only; save to .json, .yaml, .toml or .cbor instead`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded!

## Things you can try:
- Show the effective configuration:
~~~
$ modpad config show
~~~
- Regenerate a default configuration file:
~~~
$ modpad config init
~~~`,
	}

	terminalRequiredIssue = &Issue{
		id: TerminalRequiredId,
		mdMsg: `
# An interactive terminal is required!

The live editor needs a real terminal on stdin and stdout.

## Things you can try:
- Run modpad directly instead of through a pipe
- Use ` + "`modpad watch`" + ` to edit with your own editor instead`,
	}

	issues = map[Id]*Issue{
		documentNotFoundIssue.Id():    documentNotFoundIssue,
		documentParseErrorIssue.Id():  documentParseErrorIssue,
		unsupportedDocumentIssue.Id(): unsupportedDocumentIssue,
		invalidCommandTextIssue.Id():  invalidCommandTextIssue,
		documentSaveFailedIssue.Id():  documentSaveFailedIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		terminalRequiredIssue.Id():    terminalRequiredIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := slices.Collect(maps.Values(issues))
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}

// Title returns the first Markdown heading of the issue.
func (i *Issue) Title() string {
	for _, line := range strings.Split(string(i.mdMsg), "\n") {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return ""
}
