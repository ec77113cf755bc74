// SPDX-License-Identifier: MPL-2.0

package command

import "strings"

// EncodeColon renders each command as "name: p1, p2, ..., pn" on its own
// line. A command without parameters is written as "name: ".
func EncodeColon(list CommandList) string {
	lines := make([]string, 0, len(list))
	for _, c := range list {
		if !emittable(c) {
			continue
		}
		lines = append(lines, c.Name()+": "+strings.Join(c.Parameters(), ", "))
	}
	return strings.Join(lines, "\n")
}

// DecodeColon parses "name: p1, p2" lines. It never fails.
//
// A line without a colon becomes a single-argument command holding the whole
// line. Parameters are split on every comma, so a parameter that contained a
// comma when encoded comes back as several parameters.
func DecodeColon(text string) CommandList {
	list := CommandList{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, rest, found := strings.Cut(line, ":")
		if !found {
			list = append(list, Command{Args: []string{line}})
			continue
		}

		args := []string{strings.TrimSpace(name)}
		if rest = strings.TrimSpace(rest); rest != "" {
			for _, piece := range strings.Split(rest, ",") {
				args = append(args, strings.TrimSpace(piece))
			}
		}
		list = append(list, Command{Args: args})
	}
	return list
}
