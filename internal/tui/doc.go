// SPDX-License-Identifier: MPL-2.0

// Package tui provides the modpad live editor: a Bubble Tea program that
// shows a document's text projection in a textarea and re-decodes it on
// every keystroke. Text that fails to decode is kept on screen and reported
// in the status line; the last good value stays authoritative until the text
// decodes again.
package tui
