// SPDX-License-Identifier: MPL-2.0

// Package assetfile loads and saves modpad documents: a command list or a
// string table stored on disk. The encoding is chosen from the file
// extension, and an outer .zst or .lz4 suffix adds compression around any
// of them.
package assetfile
