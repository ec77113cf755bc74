// SPDX-License-Identifier: MPL-2.0

package command

import "slices"

type (
	// Command is one opcode-plus-parameters unit of a mod script.
	//
	// Args holds the name at index 0 followed by the parameters, mirroring
	// the {argCount, args} wire shape. A Command with no Args is a degenerate
	// value that decoders may produce from wire data but encoders never emit.
	Command struct {
		Args []string
	}

	// CommandList is an ordered sequence of commands. Order is execution order.
	CommandList []Command
)

// New creates a Command from a name and its parameters.
func New(name string, params ...string) Command {
	args := make([]string, 0, 1+len(params))
	args = append(args, name)
	args = append(args, params...)
	return Command{Args: args}
}

// Name returns the opcode, or "" for a degenerate command.
func (c Command) Name() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// Parameters returns the arguments following the name.
func (c Command) Parameters() []string {
	if len(c.Args) < 2 {
		return nil
	}
	return c.Args[1:]
}

// ArgCount returns the number of arguments including the name.
func (c Command) ArgCount() int { return len(c.Args) }

// IsEmpty reports whether the command carries no arguments at all.
func (c Command) IsEmpty() bool { return len(c.Args) == 0 }

// Clone returns a deep copy of the command.
func (c Command) Clone() Command {
	return Command{Args: slices.Clone(c.Args)}
}

// Equal reports whether two commands have identical arguments.
func (c Command) Equal(other Command) bool {
	return slices.Equal(c.Args, other.Args)
}

// Clone returns a deep copy of the list.
func (l CommandList) Clone() CommandList {
	if l == nil {
		return nil
	}
	out := make(CommandList, len(l))
	for i, c := range l {
		out[i] = c.Clone()
	}
	return out
}

// Equal reports whether a and b contain the same commands in the same order.
// A nil list equals an empty one.
func Equal(a, b CommandList) bool {
	return slices.EqualFunc(a, b, Command.Equal)
}

// emittable reports whether an encoder may write c.
func emittable(c Command) bool { return len(c.Args) > 0 }
