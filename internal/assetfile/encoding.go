// SPDX-License-Identifier: MPL-2.0

package assetfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/cueutil"
	"github.com/modpad/modpad/pkg/table"
)

var (
	// ErrReadOnly is returned when saving to an encoding that only supports loading.
	ErrReadOnly = errors.New("encoding is read-only")

	// ErrKindMismatch is returned when a document is saved to an encoding
	// that cannot hold its kind, e.g. a table to .tree.
	ErrKindMismatch = errors.New("document kind not supported by encoding")

	//go:embed document_schema.cue
	documentSchema []byte

	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("assetfile: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("assetfile: CBOR decoder initialization failed: " + err.Error())
	}
}

type (
	// Encoding converts between a Document and file bytes. A nil encode
	// marks the encoding read-only.
	Encoding struct {
		Name       string
		Extensions []string
		Kinds      []Kind

		decode func(data []byte, name string, opts table.Options) (*Document, error)
		encode func(doc *Document) ([]byte, error)
	}
)

// ReadOnly reports whether documents can only be loaded from this encoding.
func (e *Encoding) ReadOnly() bool { return e.encode == nil }

// Supports reports whether the encoding can hold documents of kind k.
func (e *Encoding) Supports(k Kind) bool { return slices.Contains(e.Kinds, k) }

var bothKinds = []Kind{KindCommands, KindTable}

// encodings lists every encoding in lookup order.
var encodings = []*Encoding{
	{
		Name:       "json",
		Extensions: []string{".json"},
		Kinds:      bothKinds,
		decode:     decodeJSON,
		encode:     encodeJSON,
	},
	{
		Name:       "jsonc",
		Extensions: []string{".jsonc"},
		Kinds:      bothKinds,
		decode: func(data []byte, name string, opts table.Options) (*Document, error) {
			return decodeJSON(jsonc.ToJSON(data), name, opts)
		},
		encode: encodeJSON,
	},
	{
		Name:       "yaml",
		Extensions: []string{".yaml", ".yml"},
		Kinds:      bothKinds,
		decode: func(data []byte, _ string, _ table.Options) (*Document, error) {
			var w wireDocument
			if err := yaml.Unmarshal(data, &w); err != nil {
				return nil, fmt.Errorf("yaml: %w", err)
			}
			return fromWire(w)
		},
		encode: func(doc *Document) ([]byte, error) {
			var buf bytes.Buffer
			enc := yaml.NewEncoder(&buf)
			enc.SetIndent(2)
			if err := enc.Encode(toWire(doc)); err != nil {
				return nil, fmt.Errorf("yaml: %w", err)
			}
			if err := enc.Close(); err != nil {
				return nil, fmt.Errorf("yaml: %w", err)
			}
			return buf.Bytes(), nil
		},
	},
	{
		Name:       "toml",
		Extensions: []string{".toml"},
		Kinds:      bothKinds,
		decode: func(data []byte, _ string, _ table.Options) (*Document, error) {
			var w wireDocument
			if err := toml.Unmarshal(data, &w); err != nil {
				return nil, fmt.Errorf("toml: %w", err)
			}
			return fromWire(w)
		},
		encode: func(doc *Document) ([]byte, error) {
			return toml.Marshal(toWire(doc))
		},
	},
	{
		Name:       "cbor",
		Extensions: []string{".cbor"},
		Kinds:      bothKinds,
		decode: func(data []byte, _ string, _ table.Options) (*Document, error) {
			var w wireDocument
			if err := cborDec.Unmarshal(data, &w); err != nil {
				return nil, fmt.Errorf("cbor: %w", err)
			}
			return fromWire(w)
		},
		encode: func(doc *Document) ([]byte, error) {
			return cborEnc.Marshal(toWire(doc))
		},
	},
	{
		Name:       "cue",
		Extensions: []string{".cue"},
		Kinds:      bothKinds,
		decode: func(data []byte, name string, _ table.Options) (*Document, error) {
			res, err := cueutil.ParseAndDecode[wireDocument](documentSchema, data, "#Document", cueutil.WithFilename(name))
			if err != nil {
				return nil, err
			}
			return fromWire(*res.Value)
		},
	},
	{
		Name:       "csv",
		Extensions: []string{".csv"},
		Kinds:      []Kind{KindTable},
		decode: func(data []byte, name string, opts table.Options) (*Document, error) {
			text, err := utf8Text(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			return NewTable(table.ParseWithOptions(text, opts)), nil
		},
		encode: func(doc *Document) ([]byte, error) {
			return []byte(table.Serialize(doc.Table)), nil
		},
	},
	textEncoding(command.FormatTree, ".tree"),
	textEncoding(command.FormatColon, ".colon"),
	textEncoding(command.FormatTSV, ".tsv"),
}

// textEncoding stores a command list in one of the lenient text formats.
func textEncoding(f command.Format, ext string) *Encoding {
	return &Encoding{
		Name:       f.String(),
		Extensions: []string{ext},
		Kinds:      []Kind{KindCommands},
		decode: func(data []byte, _ string, _ table.Options) (*Document, error) {
			res := command.Decode(string(data), f)
			if !res.OK() {
				return nil, res.Err
			}
			return NewCommands(res.List), nil
		},
		encode: func(doc *Document) ([]byte, error) {
			text, err := command.Encode(doc.Commands, f)
			if err != nil {
				return nil, err
			}
			return []byte(text + "\n"), nil
		},
	}
}

func decodeJSON(data []byte, _ string, _ table.Options) (*Document, error) {
	var w wireDocument
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return fromWire(w)
}

func encodeJSON(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(toWire(doc), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// utf8Text converts data to UTF-8, honouring a UTF-16 byte order mark.
// A UTF-8 BOM is left for table.Parse to strip.
func utf8Text(data []byte) (string, error) {
	if !bytes.HasPrefix(data, []byte{0xFE, 0xFF}) && !bytes.HasPrefix(data, []byte{0xFF, 0xFE}) {
		return string(data), nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("decode UTF-16: %w", err)
	}
	return string(out), nil
}

// Encodings returns every supported encoding.
func Encodings() []*Encoding {
	return slices.Clone(encodings)
}

// EncodingFor returns the encoding registered for a lower-case extension
// such as ".yaml", or nil.
func EncodingFor(ext string) *Encoding {
	ext = strings.ToLower(ext)
	for _, e := range encodings {
		if slices.Contains(e.Extensions, ext) {
			return e
		}
	}
	return nil
}
