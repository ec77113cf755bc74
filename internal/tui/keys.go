// SPDX-License-Identifier: MPL-2.0

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings. Every other key goes to the textarea.
type KeyMap struct {
	Save        key.Binding
	CycleFormat key.Binding
	Indent      key.Binding
	Quit        key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	CycleFormat: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "next format"),
	),
	// The textarea has no tab binding, and tree text needs literal tabs.
	Indent: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "indent"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.CycleFormat, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Save, k.CycleFormat, k.Indent, k.Quit}}
}
