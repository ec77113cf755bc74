// SPDX-License-Identifier: MPL-2.0

// Package types defines small validated value types shared by the modpad
// packages and commands. It imports only the standard library.
package types
