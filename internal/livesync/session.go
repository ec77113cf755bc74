// SPDX-License-Identifier: MPL-2.0

package livesync

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrNilCodec is returned when a Session is created without a codec.
var ErrNilCodec = errors.New("livesync: nil codec")

const (
	// Unchanged means the text decoded to a value equal to the current one.
	Unchanged Outcome = iota
	// Updated means the text decoded to a new value that replaced the old one.
	Updated
	// Rejected means the text failed to decode; the value was kept.
	Rejected
)

type (
	// Codec converts between a structured value and its text projection.
	Codec[T any] interface {
		Encode(value T) (string, error)
		Decode(text string) (T, error)
		Equal(a, b T) bool
	}

	// Cloner is implemented by codecs whose values share memory (slices,
	// maps). Load stores a clone so later changes by the caller do not
	// reach the session.
	Cloner[T any] interface {
		Clone(value T) T
	}

	// Outcome reports what an Edit did to the session's value.
	Outcome int

	// Session pairs one structured value with one text projection.
	Session[T any] struct {
		codec    Codec[T]
		value    T
		text     string
		lastErr  error
		dirty    bool
		applying bool

		onValue func(T)
		onText  func(string)
		logger  *log.Logger
	}

	// Option configures a Session.
	Option func(*options)

	options struct {
		logger *log.Logger
	}
)

// WithLogger sets the logger used for rejected decodes.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a Session holding initial, with its text already encoded.
func New[T any](codec Codec[T], initial T, opts ...Option) (*Session[T], error) {
	if codec == nil {
		return nil, ErrNilCodec
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	s := &Session[T]{codec: codec, logger: o.logger}
	if err := s.Load(initial); err != nil {
		return nil, err
	}
	return s, nil
}

// OnValue registers fn to run after an edit replaces the value.
// While fn runs, Load calls are ignored so that a listener re-publishing the
// value cannot overwrite the text the user is typing.
func (s *Session[T]) OnValue(fn func(T)) { s.onValue = fn }

// OnText registers fn to run after Load replaces the text.
func (s *Session[T]) OnText(fn func(string)) { s.onText = fn }

// Load replaces the value from an external source and re-encodes the text.
// The session keeps a copy when the codec implements Cloner.
// It is a no-op while an edit-driven value listener is running.
func (s *Session[T]) Load(value T) error {
	if s.applying {
		s.logger.Debug("ignoring load triggered by own edit")
		return nil
	}
	if c, ok := s.codec.(Cloner[T]); ok {
		value = c.Clone(value)
	}
	if err := s.render(s.codec, value); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// render encodes value with codec and replaces the value and text.
func (s *Session[T]) render(codec Codec[T], value T) error {
	text, err := codec.Encode(value)
	if err != nil {
		return fmt.Errorf("livesync: encode value: %w", err)
	}

	s.codec = codec
	s.value = value
	s.text = text
	s.lastErr = nil
	if s.onText != nil {
		s.onText(text)
	}
	return nil
}

// Edit records text as the user's current input and decodes it.
func (s *Session[T]) Edit(text string) Outcome {
	s.text = text

	value, err := s.codec.Decode(text)
	if err != nil {
		s.lastErr = err
		s.logger.Debug("decode rejected, keeping last value", "err", err)
		return Rejected
	}
	s.lastErr = nil

	if s.codec.Equal(value, s.value) {
		return Unchanged
	}

	s.value = value
	s.dirty = true
	if s.onValue != nil {
		s.applying = true
		defer func() { s.applying = false }()
		s.onValue(value)
	}
	return Updated
}

// Rebind switches to a different codec and re-encodes the current value.
// The text is replaced even if the user's last edit failed to decode, and
// also when called from an OnValue listener. The dirty flag is kept.
func (s *Session[T]) Rebind(codec Codec[T]) error {
	if codec == nil {
		return ErrNilCodec
	}
	return s.render(codec, s.value)
}

// MarkSaved clears the dirty flag after the host persisted the value.
func (s *Session[T]) MarkSaved() { s.dirty = false }

// Value returns the last successfully decoded or loaded value. The result
// shares memory with the session; callers that modify it must clone first.
func (s *Session[T]) Value() T { return s.value }

// Text returns the current text, which may not decode.
func (s *Session[T]) Text() string { return s.text }

// LastError returns the error from the most recent failed edit, or nil once
// the text decodes again.
func (s *Session[T]) LastError() error { return s.lastErr }

// Dirty reports whether an edit changed the value since the last Load or
// MarkSaved.
func (s *Session[T]) Dirty() bool { return s.dirty }

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Updated:
		return "updated"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}
