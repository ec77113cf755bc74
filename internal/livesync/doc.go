// SPDX-License-Identifier: MPL-2.0

// Package livesync keeps a text projection and an authoritative structured
// value consistent while a user edits the text.
//
// A Session holds both halves. Loading a value from outside (a file load, a
// format switch) re-encodes it and replaces the text wholesale. Every edit to
// the text is decoded speculatively: a successful decode that yields a
// different value replaces the value, while a failed decode leaves the value
// untouched and keeps the user's in-progress text exactly as typed. A guard
// stops a value-change listener from feeding its own update back through
// Load.
//
// Sessions are not safe for concurrent use; hosts drive them from a single
// event loop.
package livesync
