// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingodiff/lingodiff/internal/differ"
	"github.com/lingodiff/lingodiff/internal/document"
)

func mustParse(t *testing.T, text string) document.Value {
	t.Helper()
	v, err := document.ParseJSON([]byte(text))
	require.NoError(t, err)
	return v
}

func testView(t *testing.T) differ.View {
	return differ.Align(
		mustParse(t, `{"greeting":"Hello","menu":{"open":"Open","save":"Save"},"count":3}`),
		mustParse(t, `{"greeting":"Hallo","menu":{"open":""},"stale":"Alt"}`),
	)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	var tm tea.Model = m
	for _, k := range keys {
		tm, cmd = tm.Update(keyMsg(k))
	}
	return tm.(Model), cmd
}

func TestNewSelectsUntranslated(t *testing.T) {
	m := New(testView(t), nil)

	var keys []string
	for _, i := range m.todo {
		keys = append(keys, m.view[i].Key)
	}
	// Missing and empty targets, not extras.
	assert.Equal(t, []string{"count", "menu.open", "menu.save"}, keys)
	assert.Contains(t, m.View(), "[1/3]")
	assert.Contains(t, m.View(), "count")
}

func TestEditAndNavigate(t *testing.T) {
	m := New(testView(t), nil)

	m, _ = press(m, "enter")
	assert.Equal(t, "menu.open", m.current().Key)

	m, _ = press(m, "Öffnen", "tab")
	assert.Equal(t, "menu.save", m.current().Key)
	assert.Equal(t, map[string]string{"menu.open": "Öffnen"}, m.Edits())

	// Going back restores the edit into the input.
	m, _ = press(m, "shift+tab")
	assert.Equal(t, "menu.open", m.current().Key)
	assert.Equal(t, "Öffnen", m.input.Value())

	// Wraps around.
	m, _ = press(m, "shift+tab", "shift+tab")
	assert.Equal(t, "menu.save", m.current().Key)
}

func TestSave(t *testing.T) {
	var saved []byte
	m := New(testView(t), func(data []byte) error {
		saved = data
		return nil
	})

	m, _ = press(m, "tab", "Öffnen", "tab", "Speichern")
	m, cmd := press(m, "ctrl+s")
	require.NotNil(t, cmd)

	// Keys are ignored while the save is in flight.
	m, _ = press(m, "x")

	tm, quit := m.Update(cmd())
	m = tm.(Model)
	assert.True(t, m.Saved())
	require.NotNil(t, quit)
	assert.Equal(t, tea.Quit(), quit())

	want := "{\n" +
		"    \"greeting\": \"Hallo\",\n" +
		"    \"menu\": {\n" +
		"        \"open\": \"Öffnen\",\n" +
		"        \"save\": \"Speichern\"\n" +
		"    },\n" +
		"    \"stale\": \"Alt\"\n" +
		"}\n"
	assert.Equal(t, want, string(saved))
}

func TestSaveError(t *testing.T) {
	m := New(testView(t), func([]byte) error { return errors.New("disk full") })

	m, cmd := press(m, "3", "ctrl+s")
	tm, next := m.Update(cmd())
	m = tm.(Model)

	assert.False(t, m.Saved())
	assert.Nil(t, next)
	assert.Contains(t, m.View(), "disk full")

	// Still editable after a failed save.
	m, _ = press(m, "tab")
	assert.Equal(t, "menu.open", m.current().Key)
}

func TestQuitKeepsEdits(t *testing.T) {
	m := New(testView(t), nil)
	m, cmd := press(m, "42", "esc")
	require.NotNil(t, cmd)
	assert.Equal(t, map[string]string{"count": "42"}, m.Edits())
	assert.False(t, m.Saved())
}

func TestApplyAndEncode(t *testing.T) {
	view := testView(t)
	applied := Apply(view, map[string]string{"menu.save": "Speichern"})

	// The original view is untouched.
	for _, item := range view {
		if item.Key == "menu.save" {
			assert.Nil(t, item.Target)
		}
	}

	data, err := Encode(view, map[string]string{"count": ""})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"count": ""`)

	for _, item := range applied {
		if item.Key == "menu.save" {
			require.NotNil(t, item.Target)
			assert.Equal(t, "Speichern", item.Target.Text())
		}
	}
}

func TestNothingToFill(t *testing.T) {
	view := differ.Align(mustParse(t, `{"a":"A"}`), mustParse(t, `{"a":"B"}`))
	_, err := Run(view, nil)
	assert.ErrorIs(t, err, ErrNothingToFill)

	m := New(view, nil)
	assert.Equal(t, "Nothing to translate.\n", m.View())
	m, _ = press(m, "enter", "x")
	assert.Empty(t, m.Edits())
}
