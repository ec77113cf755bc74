// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/modpad/modpad/pkg/command"
	"github.com/modpad/modpad/pkg/table"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError aggregates the field errors of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// DefaultFormat is the command text format used when --format is omitted.
		DefaultFormat command.Format `json:"default_format" mapstructure:"default_format"`
		// Table configures .csv parsing
		Table TableConfig `json:"table" mapstructure:"table"`
		// Editor configures the live editor
		Editor EditorConfig `json:"editor" mapstructure:"editor"`
		// Watch configures the file watcher
		Watch WatchConfig `json:"watch" mapstructure:"watch"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// TableConfig configures table parsing.
	TableConfig struct {
		// TrimCR strips one trailing carriage return from each line (default: true)
		TrimCR bool `json:"trim_cr" mapstructure:"trim_cr"`
	}

	// EditorConfig configures the live editor.
	EditorConfig struct {
		ShowLineNumbers bool `json:"show_line_numbers" mapstructure:"show_line_numbers"`
		// TabGlyph is the single visible character that stands in for a tab.
		TabGlyph string `json:"tab_glyph" mapstructure:"tab_glyph"`
	}

	// WatchConfig configures the file watcher.
	WatchConfig struct {
		// DebounceMs is the quiet period after the last write before re-decoding.
		DebounceMs int `json:"debounce_ms" mapstructure:"debounce_ms"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables debug logging and full error chains
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// ColorScheme selects the glamour style for rendered help
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultFormat: command.FormatTree,
		Table:         TableConfig{TrimCR: true},
		Editor: EditorConfig{
			ShowLineNumbers: true,
			TabGlyph:        "⇥",
		},
		Watch: WatchConfig{DebounceMs: 300},
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// TableOptions returns the table parse options selected by the configuration.
func (c *Config) TableOptions() table.Options {
	return table.Options{TrimCR: c.Table.TrimCR}
}

// Debounce returns the watcher debounce as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}

// IsValid returns whether every field holds an accepted value.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.DefaultFormat.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if utf8.RuneCountInString(c.Editor.TabGlyph) != 1 || strings.TrimSpace(c.Editor.TabGlyph) == "" {
		errs = append(errs, fmt.Errorf("editor.tab_glyph must be one visible character, got %q", c.Editor.TabGlyph))
	}
	if c.Watch.DebounceMs < 0 {
		errs = append(errs, fmt.Errorf("watch.debounce_ms must not be negative, got %d", c.Watch.DebounceMs))
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap exposes ErrInvalidConfig and every field error to errors.Is().
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// GlamourStyle returns the glamour standard style name for the scheme.
func (cs ColorScheme) GlamourStyle() string {
	switch cs {
	case ColorSchemeDark:
		return "dark"
	case ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
