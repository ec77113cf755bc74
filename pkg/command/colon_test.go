// SPDX-License-Identifier: MPL-2.0

package command

import (
	"math/rand/v2"
	"testing"
)

func TestEncodeColon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		list CommandList
		want string
	}{
		{"empty", nil, ""},
		{"name only", CommandList{New("Wait")}, "Wait: "},
		{"params", CommandList{New("Give", "sword", "1")}, "Give: sword, 1"},
		{"multiple", CommandList{New("A", "x"), {}, New("B")}, "A: x\nB: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := EncodeColon(tt.list); got != tt.want {
				t.Errorf("EncodeColon() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeColon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want CommandList
	}{
		{"empty", "", CommandList{}},
		{"blank lines", "\n   \n\t\n", CommandList{}},
		{"name only", "Wait:", CommandList{New("Wait")}},
		{"name with trailing space", "Wait: ", CommandList{New("Wait")}},
		{"params trimmed", "  Give :  sword ,1  ", CommandList{New("Give", "sword", "1")}},
		{"no colon is one argument", "just some text", CommandList{New("just some text")}},
		{"only first colon splits", "Say: time: noon", CommandList{New("Say", "time: noon")}},
		{"empty pieces kept", "A: x,,y", CommandList{New("A", "x", "", "y")}},
		{"several lines", "A: 1\r\nB\nC: 2, 3", CommandList{New("A", "1"), New("B"), New("C", "2", "3")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertListEqual(t, DecodeColon(tt.text), tt.want)
		})
	}
}

// A parameter holding a literal comma cannot survive the colon format.
func TestColonCommaParameterIsSplit(t *testing.T) {
	t.Parallel()

	orig := CommandList{New("Foo", "a,b", "c")}
	text := EncodeColon(orig)
	if text != "Foo: a,b, c" {
		t.Fatalf("EncodeColon() = %q, want %q", text, "Foo: a,b, c")
	}

	got := DecodeColon(text)
	if Equal(got, orig) {
		t.Fatalf("DecodeColon(%q) reproduced the original; the comma split is expected", text)
	}
	assertListEqual(t, got, CommandList{New("Foo", "a", "b", "c")})
}

func TestColonRoundTripWithoutSeparators(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 5))
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789_-.!?"
	for i := range 100 {
		list := randomList(r, r.IntN(6), alphabet)
		got := DecodeColon(EncodeColon(list))
		if !Equal(got, list) {
			t.Fatalf("iteration %d: round trip mismatch:\n got: %q\nwant: %q", i, argsOf(got), argsOf(list))
		}
	}
}
