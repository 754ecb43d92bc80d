// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lingodiff/lingodiff/internal/differ"
	"github.com/lingodiff/lingodiff/internal/document"
	"github.com/lingodiff/lingodiff/internal/log"
)

// Indent is the indentation of saved documents.
const Indent = "    "

// ErrNothingToFill is returned when every source key already has a target.
var ErrNothingToFill = errors.New("nothing to translate")

// SaveFunc writes the encoded target document.
type SaveFunc func(data []byte) error

// savedMsg reports the outcome of a save.
type savedMsg struct {
	count int
	err   error
}

var (
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f6be00"))
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00c8f0"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
)

// Model is the fill-in editor's bubbletea model.
type Model struct {
	view    differ.View
	todo    []int
	pos     int
	edits   map[string]string
	input   textinput.Model
	save    SaveFunc
	status  string
	saved   bool
	saving  bool
	lastErr error
}

// New builds the editor over view. Only items with a source and no usable
// target are offered for editing.
func New(view differ.View, save SaveFunc) Model {
	ti := textinput.New()
	ti.Placeholder = "translation"
	ti.CharLimit = 4096
	ti.Width = 80
	ti.Prompt = "> "
	ti.Cursor.SetMode(cursor.CursorBlink)
	ti.Focus()

	m := Model{
		view:  view,
		edits: map[string]string{},
		input: ti,
		save:  save,
	}
	for i, item := range view {
		if item.HasSource() && item.Untranslated() {
			m.todo = append(m.todo, i)
		}
	}
	return m
}

// Run starts the editor and returns the edits made, keyed by path. Edits are
// returned even when the user quits without saving.
func Run(view differ.View, save SaveFunc, opts ...tea.ProgramOption) (map[string]string, error) {
	m := New(view, save)
	if len(m.todo) == 0 {
		return nil, ErrNothingToFill
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, err
	}
	fm := final.(Model)
	if fm.lastErr != nil {
		return fm.edits, fm.lastErr
	}
	return fm.edits, nil
}

// Apply returns a copy of view with each edit set as a string target.
func Apply(view differ.View, edits map[string]string) differ.View {
	out := make(differ.View, len(view))
	copy(out, view)
	for i := range out {
		if text, ok := edits[out[i].Key]; ok {
			out[i].Target = document.StringValue(text).Ptr()
		}
	}
	return out
}

// Encode renders the target document of view with edits applied, indented
// the way saved files are.
func Encode(view differ.View, edits map[string]string) ([]byte, error) {
	doc := differ.TargetDocument(Apply(view, edits))
	data, err := document.Encode(doc, Indent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Edits returns the edits made so far.
func (m Model) Edits() map[string]string { return m.edits }

// Saved reports whether the last save succeeded.
func (m Model) Saved() bool { return m.saved }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.lastErr = msg.err
			m.status = errStyle.Render("save failed: " + msg.err.Error())
			return m, nil
		}
		m.saved = true
		m.lastErr = nil
		m.status = fmt.Sprintf("saved %d translations", msg.count)
		return m, tea.Quit

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.keep()
			return m, tea.Quit

		case "ctrl+s":
			m.keep()
			m.saving = true
			m.status = "saving..."
			return m, m.saveCmd()

		case "enter", "tab", "down":
			m.keep()
			m.move(1)
			return m, nil

		case "shift+tab", "up":
			m.keep()
			m.move(-1)
			return m, nil
		}
	}

	if len(m.todo) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// keep records the input as the current key's translation. An untouched
// empty input records nothing.
func (m *Model) keep() {
	if len(m.todo) == 0 {
		return
	}
	key := m.current().Key
	value := m.input.Value()
	if _, edited := m.edits[key]; !edited && value == "" {
		return
	}
	m.edits[key] = value
	log.Tracef("edit kept: key=%s", key)
}

// move steps through the todo list, wrapping at both ends, and loads the
// next key's edit into the input.
func (m *Model) move(delta int) {
	if len(m.todo) == 0 {
		return
	}
	m.pos = (m.pos + delta + len(m.todo)) % len(m.todo)
	m.input.SetValue(m.edits[m.current().Key])
	m.input.CursorEnd()
}

func (m Model) current() differ.TranslationItem {
	return m.view[m.todo[m.pos]]
}

func (m Model) saveCmd() tea.Cmd {
	edits := make(map[string]string, len(m.edits))
	for k, v := range m.edits {
		edits[k] = v
	}
	view, save := m.view, m.save
	return func() tea.Msg {
		data, err := Encode(view, edits)
		if err == nil && save != nil {
			err = save(data)
		}
		return savedMsg{count: len(edits), err: err}
	}
}

func (m Model) View() string {
	if len(m.todo) == 0 {
		return "Nothing to translate.\n"
	}

	item := m.current()
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", dimStyle.Render(fmt.Sprintf("[%d/%d]", m.pos+1, len(m.todo))), keyStyle.Render(item.Key))
	fmt.Fprintf(&b, "%s\n\n", sourceStyle.Render(sourceText(*item.Source)))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d edited  ENTER/TAB: next, SHIFT+TAB: previous, CTRL+S: save, ESC: quit", len(m.edits))))
	b.WriteString("\n")
	return b.String()
}

// sourceText shows strings as they are and any other leaf as JSON.
func sourceText(v document.Value) string {
	if v.Kind() == document.String {
		return v.Text()
	}
	return v.String()
}
