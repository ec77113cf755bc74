// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

// SetConfigHome points the platform's user configuration root at dir for the
// rest of the test and returns that root:
//   - Windows: sets APPDATA, returns dir
//   - macOS: sets HOME, returns dir/Library/Application Support
//   - Linux/others: sets XDG_CONFIG_HOME, returns dir
//
// Like t.Setenv, it cannot be used in parallel tests.
func SetConfigHome(t *testing.T, dir string) string {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		t.Setenv("APPDATA", dir)
		return dir
	case "darwin":
		t.Setenv("HOME", dir)
		return filepath.Join(dir, "Library", "Application Support")
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
		return dir
	}
}
