// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pontifex-team/pontifex/config"
	"github.com/pontifex-team/pontifex/core/deck"
	"github.com/pontifex-team/pontifex/core/keys"
	"github.com/pontifex-team/pontifex/i18n"
)

// inspectorModel renders a key as a scrollable position/card/value table.
type inspectorModel struct {
	key    keys.Key
	source string
	table  table.Model
	err    error
	help   help.Model
	keymap keyMap
}

// deckRows converts a deck, possibly partial, into table rows.
func deckRows(d deck.Deck) []table.Row {
	rows := make([]table.Row, 0, len(d))
	for i, c := range d {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), c.String(), strconv.Itoa(int(c))})
	}
	return rows
}

// newDeckTable builds the styled table shared by the inspector and the
// key entry view.
func newDeckTable(d deck.Deck, height int) table.Model {
	columns := []table.Column{
		{Title: i18n.T("tui.table.position"), Width: 8},
		{Title: i18n.T("tui.table.card"), Width: 6},
		{Title: i18n.T("tui.table.value"), Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(deckRows(d)),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSubtle).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorWhite).
		Background(colorHighlight).
		Bold(false)
	t.SetStyles(s)

	return t
}

func newInspectorModel(k keys.Key, source string) inspectorModel {
	return inspectorModel{
		key:    k,
		source: source,
		table:  newDeckTable(k.Deck(), 15),
		help:   help.New(),
		keymap: keyMap{Up: keyScrollUp, Back: keyBack, Quit: keyQuit},
	}
}

// newInspectorModelFromSources resolves which key to show: the deck
// entered by hand wins, then the configured key file.
func newInspectorModelFromSources(activeKey keys.Key, cfg config.Config) inspectorModel {
	if !activeKey.IsZero() {
		return newInspectorModel(activeKey, i18n.T("tui.inspector.source_entered"))
	}
	if cfg.Keys.File != "" {
		k, err := keys.Load(cfg.Keys.File)
		if err != nil {
			return inspectorModel{err: err, help: help.New(), keymap: keyMap{Back: keyBack, Quit: keyQuit}}
		}
		return newInspectorModel(k, cfg.Keys.File)
	}
	return inspectorModel{help: help.New(), keymap: keyMap{Back: keyBack, Quit: keyQuit}}
}

func (m inspectorModel) Init() tea.Cmd { return nil }

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m inspectorModel) View() string {
	var viewItems []string
	viewItems = append(viewItems, titleStyle.Render("🔍 "+i18n.T("tui.inspector.title")), "")

	switch {
	case m.err != nil:
		viewItems = append(viewItems, errorStyle.Render(m.err.Error()))
	case m.key.IsZero():
		viewItems = append(viewItems, helpStyle.Render(i18n.T("tui.inspector.empty")))
	default:
		d := m.key.Deck()
		viewItems = append(viewItems,
			helpStyle.Render(i18n.T("tui.inspector.source", m.source)),
			helpStyle.Render(i18n.T("key.jokers_at", d.Index(deck.JokerA)+1, d.Index(deck.JokerB)+1)),
			"",
			m.table.View(),
		)
	}

	viewItems = append(viewItems, "", m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
