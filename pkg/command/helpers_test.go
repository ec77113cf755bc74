// SPDX-License-Identifier: MPL-2.0

package command

import (
	"math/rand/v2"
	"strings"
	"testing"
)

// plainAlphabet has no whitespace at all, so values built from it survive
// every trimming decoder.
const plainAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-.:;,'\"!?#$%&()[]{}éü漢"

// randomValue returns a non-empty string with optional inner spaces and no
// leading or trailing whitespace.
func randomValue(r *rand.Rand, alphabet string) string {
	runes := []rune(alphabet)
	n := 1 + r.IntN(8)
	var sb strings.Builder
	for i := range n {
		if i > 0 && i < n-1 && r.IntN(6) == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(runes[r.IntN(len(runes))])
	}
	return sb.String()
}

// randomList builds n commands with up to four parameters each.
func randomList(r *rand.Rand, n int, alphabet string) CommandList {
	list := make(CommandList, 0, n)
	for range n {
		params := make([]string, r.IntN(5))
		for i := range params {
			params[i] = randomValue(r, alphabet)
		}
		list = append(list, New(randomValue(r, alphabet), params...))
	}
	return list
}

func assertListEqual(t *testing.T, got, want CommandList) {
	t.Helper()
	if !Equal(got, want) {
		t.Errorf("command lists differ:\n got: %q\nwant: %q", argsOf(got), argsOf(want))
	}
}

func argsOf(list CommandList) [][]string {
	out := make([][]string, len(list))
	for i, c := range list {
		out[i] = c.Args
	}
	return out
}
