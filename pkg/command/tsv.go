// SPDX-License-Identifier: MPL-2.0

package command

import "strings"

// EncodeTSV renders each command as its arguments joined by tabs.
func EncodeTSV(list CommandList) string {
	lines := make([]string, 0, len(list))
	for _, c := range list {
		if !emittable(c) {
			continue
		}
		lines = append(lines, strings.Join(c.Args, "\t"))
	}
	return strings.Join(lines, "\n")
}

// DecodeTSV parses tab-separated command lines. It never fails.
//
// Lines are trimmed before splitting, so empty leading or trailing
// parameters do not survive a round trip.
func DecodeTSV(text string) CommandList {
	list := CommandList{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, rest, found := strings.Cut(line, "\t")
		if !found {
			list = append(list, Command{Args: []string{line}})
			continue
		}

		params := strings.Split(rest, "\t")
		args := make([]string, 0, 1+len(params))
		args = append(args, name)
		args = append(args, params...)
		list = append(list, Command{Args: args})
	}
	return list
}
