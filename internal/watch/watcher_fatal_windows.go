// SPDX-License-Identifier: MPL-2.0

//go:build windows

package watch

import (
	"errors"
	"syscall"
)

// Win32 errors that leave ReadDirectoryChangesW unusable.
const (
	errnoTooManyOpenFiles = syscall.Errno(4)
	errnoInvalidHandle    = syscall.Errno(6)
	errnoNotEnoughMemory  = syscall.Errno(8)
)

// lostWatchReason returns a hint for errors after which the directory watch
// stops delivering events, or "" when watching can continue.
func lostWatchReason(err error) string {
	switch {
	case errors.Is(err, errnoTooManyOpenFiles):
		return "too many open handles in modpad"
	case errors.Is(err, errnoInvalidHandle):
		return "the directory holding the text file was removed or unmounted"
	case errors.Is(err, errnoNotEnoughMemory):
		return "not enough memory for the change notification buffer"
	default:
		return ""
	}
}
