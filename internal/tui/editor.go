// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/modpad/modpad/internal/livesync"
)

// ErrNilSurface is returned when an editor is opened without a surface.
var ErrNilSurface = errors.New("tui: nil surface")

// DefaultTabGlyph stands in for a tab inside the textarea, which would
// otherwise expand tabs to spaces. Tree and tsv text depend on real tabs.
const DefaultTabGlyph = "⇥"

// fallbackTabGlyphs replace the configured glyph when the text already
// contains it. Private Use Area code points follow if all of these occur.
var fallbackTabGlyphs = []string{DefaultTabGlyph, "→", "»", "␉"}

type (
	// Surface is the live sync session the editor drives.
	Surface interface {
		Edit(text string) livesync.Outcome
		Text() string
		LastError() error
		Dirty() bool
		Label() string
		MarkSaved()
		// CycleFormat switches to the next text format, replacing Text().
		// It reports false when the document has only one format.
		CycleFormat() (bool, error)
	}

	// EditorOptions configures the editor.
	EditorOptions struct {
		// Title is shown above the textarea, typically the document path.
		Title string
		// Surface is the session being edited.
		Surface Surface
		// Save is called on the update loop and returns the write to run in
		// the background. The surface is marked saved once the write succeeds
		// unless it was edited in the meantime.
		Save SaveFunc
		// ShowLineNumbers enables line numbers in the textarea.
		ShowLineNumbers bool
		// Width and Height set the initial size; the terminal size wins once known.
		Width, Height int
		// Keys overrides DefaultKeyMap when set.
		Keys *KeyMap
		// TabGlyph overrides DefaultTabGlyph when set.
		TabGlyph string
	}

	// SaveFunc snapshots the surface value and returns the write for it.
	SaveFunc func() (write func() error)

	// savedMsg reports the result of a save started by ctrl+s.
	savedMsg struct {
		err   error
		edits int
	}

	// Editor is the Bubble Tea model of the live editor.
	Editor struct {
		opts     EditorOptions
		keys     KeyMap
		textarea textarea.Model
		help     help.Model
		outcome  livesync.Outcome
		notice   string
		quitting bool
		saving   bool
		// edits counts surface edits so a save only clears the dirty flag
		// for the text it wrote.
		edits int
		// glyph is the tab stand-in in use. It never occurs literally in
		// the displayed text, so every occurrence maps back to a tab.
		glyph string
	}
)

// NewEditor creates the editor model with the surface's text loaded.
func NewEditor(opts EditorOptions) (*Editor, error) {
	if opts.Surface == nil {
		return nil, ErrNilSurface
	}

	keys := DefaultKeyMap
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	if opts.TabGlyph == "" {
		opts.TabGlyph = DefaultTabGlyph
	}

	ta := textarea.New()
	ta.ShowLineNumbers = opts.ShowLineNumbers
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	if opts.Width > 0 {
		ta.SetWidth(opts.Width)
	}
	if opts.Height > 0 {
		ta.SetHeight(opts.Height)
	}
	m := &Editor{
		opts:     opts,
		keys:     keys,
		textarea: ta,
		help:     help.New(),
		outcome:  livesync.Unchanged,
	}
	m.textarea.SetValue(m.toDisplay(opts.Surface.Text()))
	m.textarea.Focus()
	return m, nil
}

// Init implements tea.Model.
func (m *Editor) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.textarea.SetWidth(max(1, msg.Width))
		// Title, status and help lines.
		m.textarea.SetHeight(max(1, msg.Height-3))
		m.help.Width = msg.Width
		return m, nil

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.notice = "save failed: " + firstLine(msg.err.Error())
			return m, nil
		}
		if msg.edits == m.edits {
			m.opts.Surface.MarkSaved()
		}
		m.notice = "saved"
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Save):
			return m, m.save()
		case key.Matches(msg, m.keys.CycleFormat):
			m.cycleFormat()
			return m, nil
		case key.Matches(msg, m.keys.Indent):
			m.textarea.InsertString(m.glyph)
			m.sync()
			return m, nil
		}
		if msg.Type == tea.KeyRunes && strings.Contains(string(msg.Runes), m.glyph) {
			msg.Runes = []rune(strings.ReplaceAll(string(msg.Runes), m.glyph, ""))
			notice := fmt.Sprintf("%s marks a tab and cannot be typed; change editor.tab_glyph to enter it", m.glyph)
			if len(msg.Runes) == 0 {
				m.notice = notice
				return m, nil
			}
			model, cmd := m.forward(msg)
			m.notice = notice
			return model, cmd
		}
	}

	return m.forward(msg)
}

// forward passes msg to the textarea and syncs the surface when the text
// changed.
func (m *Editor) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.textarea.Value()
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if m.textarea.Value() != before {
		m.sync()
	}
	return m, cmd
}

// sync pushes the textarea content into the surface.
func (m *Editor) sync() {
	m.outcome = m.opts.Surface.Edit(m.Value())
	m.edits++
	m.notice = ""
}

func (m *Editor) save() tea.Cmd {
	if m.opts.Save == nil || m.saving {
		return nil
	}
	write := m.opts.Save()
	if write == nil {
		return nil
	}
	m.saving = true
	m.notice = "saving..."
	edits := m.edits
	return func() tea.Msg { return savedMsg{err: write(), edits: edits} }
}

func (m *Editor) cycleFormat() {
	ok, err := m.opts.Surface.CycleFormat()
	switch {
	case err != nil:
		m.notice = "format change failed: " + firstLine(err.Error())
	case !ok:
		m.notice = "this document has a single text format"
	default:
		m.textarea.SetValue(m.toDisplay(m.opts.Surface.Text()))
		m.outcome = livesync.Unchanged
		m.edits++
		m.notice = "switched to " + m.opts.Surface.Label()
	}
}

// View implements tea.Model.
func (m *Editor) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render(m.opts.Title) + " " + labelStyle.Render(m.opts.Surface.Label())
	return strings.Join([]string{
		title,
		m.textarea.View(),
		m.status(),
		m.help.View(m.keys),
	}, "\n")
}

// status renders the decode state of the current text.
func (m *Editor) status() string {
	var parts []string
	if err := m.opts.Surface.LastError(); err != nil {
		parts = append(parts, statusInvalidStyle.Render("✗ "+firstLine(err.Error())))
	} else {
		parts = append(parts, statusOKStyle.Render("✓ ok"))
	}
	if m.opts.Surface.Dirty() {
		parts = append(parts, statusDirtyStyle.Render("● modified"))
	}
	if m.notice != "" {
		parts = append(parts, labelStyle.Render(m.notice))
	}
	return strings.Join(parts, "  ")
}

// Outcome returns the result of the most recent edit.
func (m *Editor) Outcome() livesync.Outcome { return m.outcome }

// Value returns the textarea content with tabs restored.
func (m *Editor) Value() string {
	return strings.ReplaceAll(m.textarea.Value(), m.glyph, "\t")
}

// TabGlyph returns the glyph currently shown for tabs.
func (m *Editor) TabGlyph() string { return m.glyph }

// toDisplay replaces tabs with a glyph that text does not already contain.
func (m *Editor) toDisplay(text string) string {
	m.glyph = pickTabGlyph(m.opts.TabGlyph, text)
	return strings.ReplaceAll(text, "\t", m.glyph)
}

func pickTabGlyph(preferred, text string) string {
	for _, g := range append([]string{preferred}, fallbackTabGlyphs...) {
		if !strings.Contains(text, g) {
			return g
		}
	}
	for r := rune(0xE000); r <= 0xF8FF; r++ {
		if !strings.ContainsRune(text, r) {
			return string(r)
		}
	}
	return preferred
}

// Run starts the editor as a full-screen program and blocks until it exits.
func Run(opts EditorOptions, progOpts ...tea.ProgramOption) error {
	model, err := NewEditor(opts)
	if err != nil {
		return err
	}
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
