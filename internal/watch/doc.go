// SPDX-License-Identifier: MPL-2.0

// Package watch turns saves of external text files into debounced callbacks.
//
// Editors rarely write a file in place: most write a temporary file and
// rename it over the original, or emit several writes per save. The watcher
// observes the parent directory, coalesces every event for the selected
// files inside a debounce window, and invokes the callback once with the
// set of changed paths. Callbacks never overlap; a save that lands while the
// previous callback is still running is retried after the next quiet period.
package watch
