// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/modpad/config.cue (or the XDG equivalent on Linux,
// ~/Library/Application Support/modpad/config.cue on macOS, %APPDATA%\modpad\config.cue
// on Windows), falling back to ./config.cue and then to built-in defaults. MODPAD_*
// environment variables override file values (MODPAD_TABLE_TRIM_CR, MODPAD_DEFAULT_FORMAT, ...).
//
// Files are validated against an embedded CUE schema (config_schema.cue) before being
// merged into Viper.
package config
