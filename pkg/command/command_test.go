// SPDX-License-Identifier: MPL-2.0

package command

import "testing"

func TestCommand_Accessors(t *testing.T) {
	t.Parallel()

	c := New("SetFlag", "flag_1", "true")
	if c.Name() != "SetFlag" {
		t.Errorf("Name() = %q, want %q", c.Name(), "SetFlag")
	}
	if got := c.Parameters(); len(got) != 2 || got[0] != "flag_1" || got[1] != "true" {
		t.Errorf("Parameters() = %q, want [flag_1 true]", got)
	}
	if c.ArgCount() != 3 {
		t.Errorf("ArgCount() = %d, want 3", c.ArgCount())
	}

	nameOnly := New("Wait")
	if nameOnly.ArgCount() != 1 || nameOnly.Parameters() != nil {
		t.Errorf("New(%q) = %+v, want one arg and no parameters", "Wait", nameOnly)
	}

	var degenerate Command
	if !degenerate.IsEmpty() || degenerate.Name() != "" || degenerate.ArgCount() != 0 {
		t.Errorf("zero Command = %+v, want empty", degenerate)
	}
}

func TestCommandList_CloneIsDeep(t *testing.T) {
	t.Parallel()

	orig := CommandList{New("A", "x")}
	clone := orig.Clone()
	clone[0].Args[1] = "changed"

	if orig[0].Args[1] != "x" {
		t.Errorf("Clone() shares argument storage with the original")
	}
	if CommandList(nil).Clone() != nil {
		t.Errorf("nil.Clone() should stay nil")
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b CommandList
		want bool
	}{
		{"nil equals empty", nil, CommandList{}, true},
		{"same", CommandList{New("A", "1")}, CommandList{New("A", "1")}, true},
		{"different param", CommandList{New("A", "1")}, CommandList{New("A", "2")}, false},
		{"different order", CommandList{New("A"), New("B")}, CommandList{New("B"), New("A")}, false},
		{"different length", CommandList{New("A")}, CommandList{New("A"), New("A")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := Summarize(CommandList{
		New("Say", "hello"),
		New("Say", "bye", "now"),
		{},
		New("Teleport"),
	})

	if s.Commands != 3 {
		t.Errorf("Commands = %d, want 3", s.Commands)
	}
	if s.Parameters != 3 {
		t.Errorf("Parameters = %d, want 3", s.Parameters)
	}
	if s.Empty != 1 {
		t.Errorf("Empty = %d, want 1", s.Empty)
	}
	if s.LongestName != "Teleport" {
		t.Errorf("LongestName = %q, want %q", s.LongestName, "Teleport")
	}
	if s.Names["Say"] != 2 {
		t.Errorf("Names[Say] = %d, want 2", s.Names["Say"])
	}
}
