// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package watch

import (
	"errors"
	"syscall"
)

// lostWatchReason returns a hint for errors after which inotify stops
// delivering events, or "" when watching can continue.
func lostWatchReason(err error) string {
	switch {
	case errors.Is(err, syscall.ENOSPC):
		return "inotify watch limit reached; raise fs.inotify.max_user_watches"
	case errors.Is(err, syscall.EMFILE):
		return "too many open files in modpad; raise the per-process limit (ulimit -n)"
	case errors.Is(err, syscall.ENFILE):
		return "system file table is full"
	default:
		return ""
	}
}
