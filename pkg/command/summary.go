// SPDX-License-Identifier: MPL-2.0

package command

// Summary describes the shape of a CommandList.
type Summary struct {
	Commands    int
	Parameters  int
	Empty       int
	LongestName string
	Names       map[string]int
}

// Summarize counts commands, parameters, and name occurrences in list.
func Summarize(list CommandList) Summary {
	s := Summary{Names: make(map[string]int)}
	for _, c := range list {
		if c.IsEmpty() {
			s.Empty++
			continue
		}
		s.Commands++
		s.Parameters += len(c.Parameters())
		s.Names[c.Name()]++
		if len(c.Name()) > len(s.LongestName) {
			s.LongestName = c.Name()
		}
	}
	return s
}
