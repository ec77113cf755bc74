// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers include fixture files (WriteFile, ReadFile) and per-platform
// configuration directories (SetConfigHome).
package testutil
