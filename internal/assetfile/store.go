// SPDX-License-Identifier: MPL-2.0

package assetfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/modpad/modpad/internal/issue"
	"github.com/modpad/modpad/pkg/cueutil"
	"github.com/modpad/modpad/pkg/table"
	"github.com/modpad/modpad/pkg/types"
)

// ErrUnsupportedExtension is returned when no encoding matches a path.
var ErrUnsupportedExtension = errors.New("unsupported document extension")

type (
	// Store reads and writes documents on the local filesystem.
	Store struct {
		tableOpts table.Options
		logger    *log.Logger
	}

	// Option configures a Store.
	Option func(*Store)
)

// WithTableOptions sets the options used when parsing .csv documents.
func WithTableOptions(opts table.Options) Option {
	return func(s *Store) { s.tableOpts = opts }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates a Store.
func NewStore(opts ...Option) *Store {
	s := &Store{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve returns the encoding and compression suffix for path.
func Resolve(path types.FilesystemPath) (*Encoding, string, error) {
	if err := path.Validate(); err != nil {
		return nil, "", err
	}
	ext, compression := path.Extensions()
	enc := EncodingFor(ext)
	if enc == nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	return enc, compression, nil
}

// Load reads the document at path.
func (s *Store) Load(ctx context.Context, path types.FilesystemPath) (*Document, error) {
	enc, compression, err := Resolve(path)
	if err != nil {
		return nil, unsupported("load document", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		ctxErr := issue.NewErrorContext().
			WithOperation("load document").
			WithResource(path.String()).
			WithIssue(issue.DocumentNotFoundId).
			Wrap(err)
		if errors.Is(err, fs.ErrNotExist) {
			ctxErr.WithSuggestion("Check the path for typos")
		}
		return nil, ctxErr.BuildError()
	}

	data, err = decompress(data, compression)
	if err == nil {
		var doc *Document
		doc, err = enc.decode(data, filepath.Base(string(path)), s.tableOpts)
		if err == nil {
			s.logger.Debug("loaded document", "path", path, "encoding", enc.Name, "kind", doc.Kind)
			return doc, nil
		}
	}

	ctxErr := issue.NewErrorContext().
		WithOperation("parse document").
		WithResource(path.String()).
		WithSuggestion(fmt.Sprintf("Check that the file is valid %s", enc.Name)).
		WithIssue(issue.DocumentParseErrorId).
		Wrap(err)
	var verr *cueutil.ValidationError
	if errors.As(err, &verr) && len(verr.Paths()) > 0 {
		ctxErr.WithSuggestion("Fix the fields: " + strings.Join(verr.Paths(), ", "))
	}
	if errors.Is(err, cueutil.ErrFileTooLarge) {
		ctxErr.WithSuggestion("Split the document or convert it to .cbor")
	}
	return nil, ctxErr.BuildError()
}

// Save writes doc to path, creating or truncating the file.
func (s *Store) Save(ctx context.Context, path types.FilesystemPath, doc *Document) error {
	enc, compression, err := Resolve(path)
	if err != nil {
		return unsupported("save document", path, err)
	}
	if err := doc.Kind.Validate(); err != nil {
		return issue.WrapWithContext(err, "save document", path.String())
	}

	saveErr := func(cause error, suggestion string) error {
		return issue.NewErrorContext().
			WithOperation("save document").
			WithResource(path.String()).
			WithSuggestion(suggestion).
			WithIssue(issue.DocumentSaveFailedId).
			Wrap(cause).
			BuildError()
	}

	if enc.ReadOnly() {
		return saveErr(fmt.Errorf("%w: %s", ErrReadOnly, enc.Name), "Save to .json, .yaml, .toml or .cbor instead")
	}
	if !enc.Supports(doc.Kind) {
		return saveErr(fmt.Errorf("%w: %s cannot hold %s", ErrKindMismatch, enc.Name, doc.Kind),
			"Use .csv for tables and .tree, .colon or .tsv for commands")
	}

	data, err := enc.encode(doc)
	if err == nil {
		data, err = compress(data, compression)
	}
	if err != nil {
		return saveErr(err, "Report this as a bug")
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return saveErr(err, "Check that the target directory exists and is writable")
	}

	s.logger.Debug("saved document", "path", path, "encoding", enc.Name, "bytes", len(data))
	return nil
}

func unsupported(op string, path types.FilesystemPath, err error) error {
	return issue.NewErrorContext().
		WithOperation(op).
		WithResource(path.String()).
		WithSuggestion("Run 'modpad formats' to list supported extensions").
		WithIssue(issue.UnsupportedDocumentId).
		Wrap(err).
		BuildError()
}
