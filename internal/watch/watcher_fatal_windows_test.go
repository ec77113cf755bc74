// SPDX-License-Identifier: MPL-2.0

//go:build windows

package watch

import (
	"fmt"
	"syscall"
	"testing"
)

func TestLostWatchReason(t *testing.T) {
	t.Parallel()

	lost := []error{
		errnoTooManyOpenFiles,
		fmt.Errorf("ReadDirectoryChanges: %w", errnoInvalidHandle),
		errnoNotEnoughMemory,
	}
	for _, err := range lost {
		if lostWatchReason(err) == "" {
			t.Errorf("lostWatchReason(%v) = \"\", want a hint", err)
		}
	}

	// ERROR_FILE_NOT_FOUND and ERROR_ACCESS_DENIED are transient for a watch.
	for _, err := range []error{syscall.Errno(2), syscall.Errno(5)} {
		if got := lostWatchReason(err); got != "" {
			t.Errorf("lostWatchReason(%v) = %q, want none", err, got)
		}
	}
}
