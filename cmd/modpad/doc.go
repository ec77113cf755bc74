// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for modpad.
//
// This package implements the Cobra command hierarchy: the root command,
// the encode/decode/convert transcoding commands, table commands, the
// live editor and watch hosts, and configuration management.
package cmd
