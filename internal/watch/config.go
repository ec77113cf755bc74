// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
)

// defaultDebounce is the delay before firing the callback after the last
// filesystem event.
const defaultDebounce = 300 * time.Millisecond

// defaultIgnores lists base-name patterns of editor scratch files that are
// never reported, even when they match a watch pattern.
var defaultIgnores = []string{
	"*.swp",
	"*.swo",
	"*.swx",
	"*~",
	".#*",
	"#*#",
	"4913",
	".DS_Store",
}

// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
var ErrInvalidConfig = errors.New("invalid watch config")

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Dir is the directory to watch. Only its direct children are observed.
		Dir string

		// Patterns are doublestar patterns matched against base names inside
		// Dir (e.g. "intro.tree" or "*.tsv"). At least one is required.
		Patterns []string

		// Ignore are additional base-name patterns merged with the defaults.
		Ignore []string

		// Debounce is the quiet period after the last event before the callback
		// fires. Zero or negative values fall back to defaultDebounce.
		Debounce time.Duration

		// OnChange receives the absolute paths changed during the window.
		OnChange func(ctx context.Context, changed []string) error

		// Logger receives skip notices and non-fatal errors. Defaults to a
		// discarding logger.
		Logger *log.Logger
	}

	// InvalidConfigError lists every problem found by Config.Validate.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// Validate checks that the config names a directory, at least one pattern,
// and only well-formed globs.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Dir) == "" {
		errs = append(errs, errors.New("directory must not be empty"))
	}
	if len(c.Patterns) == 0 {
		errs = append(errs, errors.New("at least one pattern is required"))
	}
	errs = append(errs, checkPatterns(c.Patterns, "watch")...)
	errs = append(errs, checkPatterns(c.Ignore, "ignore")...)
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

func checkPatterns(patterns []string, label string) []error {
	var errs []error
	for _, pat := range patterns {
		if strings.TrimSpace(pat) == "" {
			errs = append(errs, fmt.Errorf("empty %s pattern", label))
			continue
		}
		if !doublestar.ValidatePattern(pat) {
			errs = append(errs, fmt.Errorf("invalid %s pattern %q: %w", label, pat, doublestar.ErrBadPattern))
		}
	}
	return errs
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid watch config: %v", errors.Join(e.FieldErrors...))
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// EscapePattern quotes the doublestar metacharacters in name so that it only
// matches itself.
func EscapePattern(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// DefaultIgnores returns a copy of the built-in ignore patterns.
func DefaultIgnores() []string {
	out := make([]string, len(defaultIgnores))
	copy(out, defaultIgnores)
	return out
}
