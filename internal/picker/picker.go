// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package picker

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/lingodiff/lingodiff/internal/tree"
)

// ErrCancelled is returned when the user quits without picking two files.
var ErrCancelled = errors.New("no files selected")

// Item is one selectable file.
type Item struct {
	Path  string
	Label string
	Size  int64
}

// Items lists the files under nodes with labels relative to root.
func Items(root string, nodes []tree.FileNode) []Item {
	var items []Item
	tree.Walk(nodes, func(n tree.FileNode, _ int) {
		if n.IsDir {
			return
		}
		label, err := filepath.Rel(root, n.Path)
		if err != nil {
			label = n.Path
		}
		items = append(items, Item{Path: n.Path, Label: label, Size: n.Size})
	})
	return items
}

// SelectFiles runs the picker over items and returns the two chosen paths in
// the order they were picked.
func SelectFiles(items []Item, opts ...tea.ProgramOption) ([]string, error) {
	if len(items) < 2 {
		return nil, fmt.Errorf("need at least two files to compare, found %d", len(items))
	}

	p := tea.NewProgram(model{items: items}, opts...)
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	selected := m.(model).selected
	if len(selected) != 2 {
		return nil, ErrCancelled
	}
	return []string{selected[0].Path, selected[1].Path}, nil
}

type model struct {
	items    []Item
	cursor   int
	offset   int
	height   int
	selected []Item
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Title, blank line, blank line and help take four rows.
		m.height = max(msg.Height-4, 1)
		m.scroll()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.selected = nil
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ":
			if i := m.indexOf(m.items[m.cursor]); i >= 0 {
				m.selected = append(m.selected[:i:i], m.selected[i+1:]...)
			} else if len(m.selected) < 2 {
				m.selected = append(m.selected, m.items[m.cursor])
			}
		case "enter":
			if len(m.selected) == 2 {
				return m, tea.Quit
			}
		}
		m.scroll()
	}
	return m, nil
}

func (m *model) scroll() {
	if m.height == 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("Select two files (source, then target):\n\n")

	end := len(m.items)
	if m.height > 0 {
		end = min(m.offset+m.height, end)
	}
	for i := m.offset; i < end; i++ {
		item := m.items[i]
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		switch m.indexOf(item) {
		case 0:
			mark = "A"
		case 1:
			mark = "B"
		}
		fmt.Fprintf(&b, "%s [%s] %-40s %8s\n", cursor, mark, item.Label, humanize.Bytes(uint64(item.Size)))
	}

	b.WriteString("\nSPACE: toggle, ENTER: go, Q/ESCAPE: quit\n")
	return b.String()
}

func (m model) indexOf(item Item) int {
	for i, s := range m.selected {
		if s.Path == item.Path {
			return i
		}
	}
	return -1
}
