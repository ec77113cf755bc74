// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package watch

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"testing"
)

func TestLostWatchReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: syscall.ENOSPC, want: "max_user_watches"},
		{err: fmt.Errorf("inotify_add_watch: %w", syscall.EMFILE), want: "ulimit -n"},
		{err: syscall.ENFILE, want: "file table"},
		{err: syscall.EACCES},
		{err: errors.New("short read")},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			t.Parallel()
			got := lostWatchReason(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("lostWatchReason(%v) = %q, want none", tt.err, got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("lostWatchReason(%v) = %q, want it to mention %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestLostError(t *testing.T) {
	t.Parallel()

	err := &LostError{Reason: lostWatchReason(syscall.ENOSPC), Err: syscall.ENOSPC}
	if !errors.Is(err, ErrWatchLost) || !errors.Is(err, syscall.ENOSPC) {
		t.Fatalf("errors.Is chain broken for %v", err)
	}
	if !strings.Contains(err.Error(), "max_user_watches") {
		t.Errorf("Error() = %q, want the reason included", err.Error())
	}
}
