// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError records what modpad was doing, which file was involved, and
// what the user can try next. Issue entries add longer Markdown guidance for
// recurring problems (unreadable documents, invalid JSON command text, bad
// configuration) that the CLI renders with glamour in verbose mode.
package issue
