// SPDX-License-Identifier: MPL-2.0

// Package table transcodes jagged string tables to and from comma-delimited,
// quote-escaped text prefixed with a byte-order mark.
//
// Serialize quotes a cell when it contains a comma, a double quote, or a line
// break, doubling any embedded quotes. Parse is total: it never returns an
// error. Each line is read by a two-state scanner (normal and in-quotes); a
// quoted field still open at the end of its line simply ends there with the
// text collected so far.
//
// Rows are split on "\n" before scanning, so a quoted cell containing a
// newline does not survive Parse. Parse keeps a trailing "\r" from CRLF input
// in the last field; ParseWithOptions can strip it.
package table
