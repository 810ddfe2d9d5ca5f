// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pontifex-team/pontifex/config"
	"github.com/pontifex-team/pontifex/core/deck"
	"github.com/pontifex-team/pontifex/core/keys"
	"github.com/pontifex-team/pontifex/i18n"
)

const maxSuggestions = 8

// keyEntryModel walks the user through typing in a physical deck one
// card at a time. Cards are suggested as you type, duplicates are
// rejected, and backspace on an empty input takes the last card back.
// Once all 54 cards are in, the deck can be saved to a file or used as
// the active key.
type keyEntryModel struct {
	cfg         config.Config
	input       textinput.Model
	pathInput   textinput.Model
	entered     []deck.Card
	suggestions []string
	table       table.Model
	key         keys.Key // zero until all 54 cards are entered
	err         error
	status      string
	focusIndex  int // completion phase: 0 path input, 1 save, 2 use
	help        help.Model
	keymap      keyMap
}

func newKeyEntryModel(cfg config.Config) keyEntryModel {
	input := textinput.New()
	input.Cursor.Style = focusedStyle
	input.CharLimit = 3
	input.Width = 10
	input.Prompt = "Card: "
	input.Placeholder = "AC"
	input.Focus()
	input.TextStyle = focusedStyle

	pathInput := textinput.New()
	pathInput.Cursor.Style = focusedStyle
	pathInput.Width = 40
	pathInput.Prompt = "Save to: "
	path := cfg.Keys.File
	if path == "" {
		path = "pontifex.key"
	}
	pathInput.SetValue(path)

	return keyEntryModel{
		cfg:       cfg,
		input:     input,
		pathInput: pathInput,
		table:     newDeckTable(nil, 12),
		help:      help.New(),
		keymap: keyMap{
			Enter: keyAccept,
			Next:  keyComplete,
			Undo:  keyUndo,
			Back:  keyBack,
			Quit:  keyQuit,
		},
	}
}

func (m keyEntryModel) Init() tea.Cmd {
	return textinput.Blink
}

// parseCardToken accepts the same token forms as a key file: a card
// value or a display code.
func parseCardToken(s string) (deck.Card, error) {
	if n, err := strconv.Atoi(s); err == nil {
		c := deck.Card(n)
		if !c.InRange() {
			return 0, errors.New("card value out of range")
		}
		return c, nil
	}
	return deck.Parse(s)
}

func (m *keyEntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = sizeMsg.Width
	}
	if !m.key.IsZero() {
		return m.updateComplete(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }

		case "enter":
			m.acceptCard()
			return m, nil

		case "tab":
			// Complete the first matching card name.
			if len(m.suggestions) > 0 {
				m.input.SetValue(m.suggestions[0])
				m.input.CursorEnd()
				m.updateSuggestions()
			}
			return m, nil

		case "backspace":
			// Backspace on an empty input takes the previous card back.
			if m.input.Value() == "" && len(m.entered) > 0 {
				m.entered = m.entered[:len(m.entered)-1]
				m.err = nil
				m.rebuildTable()
				return m, nil
			}

		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.updateSuggestions()
	return m, cmd
}

// acceptCard validates the current token and appends it to the deck.
func (m *keyEntryModel) acceptCard() {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return
	}

	card, err := parseCardToken(raw)
	if err != nil {
		m.err = errors.New(i18n.T("tui.entry.unknown", raw))
		return
	}
	for i, c := range m.entered {
		if c == card {
			m.err = errors.New(i18n.T("tui.entry.duplicate", card.String(), i+1))
			return
		}
	}

	m.entered = append(m.entered, card)
	m.err = nil
	m.input.SetValue("")
	m.suggestions = nil
	m.rebuildTable()

	if len(m.entered) == deck.Size {
		m.finish()
	}
}

// finish promotes the 54 entered cards into a validated key and moves
// focus to the save/use controls.
func (m *keyEntryModel) finish() {
	k, err := keys.New(m.entered)
	if err != nil {
		m.err = err
		return
	}
	m.key = k
	m.input.Blur()
	m.focusIndex = 0
	m.pathInput.Focus()
	m.pathInput.TextStyle = focusedStyle
	m.keymap = keyMap{
		Next:  keyNext,
		Prev:  keyPrev,
		Enter: keySelect,
		Back:  keyBack,
		Quit:  keyQuit,
	}
}

func (m *keyEntryModel) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch s := msg.String(); s {
		case "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }

		case "enter":
			switch m.focusIndex {
			case 1: // Save
				path := strings.TrimSpace(m.pathInput.Value())
				if path == "" {
					path = "pontifex.key"
				}
				if err := m.key.Save(path, false); err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.status = i18n.T("keygen.saved", path)
				return m, nil
			case 2: // Use
				key := m.key
				return m, func() tea.Msg { return keyEnteredMsg{key: key} }
			}
			fallthrough

		case "tab", "shift+tab", "up", "down":
			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex > 2 {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = 2
			}

			var cmd tea.Cmd
			if m.focusIndex == 0 {
				cmd = m.pathInput.Focus()
				m.pathInput.TextStyle = focusedStyle
			} else {
				m.pathInput.Blur()
				m.pathInput.TextStyle = lipgloss.NewStyle()
			}
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// updateSuggestions recomputes the card-name completions for the
// current input, skipping cards that are already in the deck.
func (m *keyEntryModel) updateSuggestions() {
	m.suggestions = nil
	prefix := strings.ToUpper(strings.TrimSpace(m.input.Value()))
	if prefix == "" {
		return
	}

	used := make(map[deck.Card]bool, len(m.entered))
	for _, c := range m.entered {
		used[c] = true
	}
	for v := 1; v <= deck.Size; v++ {
		c := deck.Card(v)
		if used[c] {
			continue
		}
		if name := c.String(); strings.HasPrefix(name, prefix) {
			m.suggestions = append(m.suggestions, name)
		}
	}
	if len(m.suggestions) > maxSuggestions {
		m.suggestions = m.suggestions[:maxSuggestions]
	}
}

func (m *keyEntryModel) rebuildTable() {
	m.table.SetRows(deckRows(deck.Deck(m.entered)))
	m.table.GotoBottom()
}

func (m keyEntryModel) View() string {
	var viewItems []string
	viewItems = append(viewItems, titleStyle.Render("🂠 "+i18n.T("tui.entry.title")), "")

	if m.key.IsZero() {
		viewItems = append(viewItems,
			helpStyle.Render(i18n.T("tui.entry.progress", len(m.entered), deck.Size)),
			"",
			m.input.View(),
		)
		if len(m.suggestions) > 0 {
			viewItems = append(viewItems, helpStyle.Render(strings.Join(m.suggestions, "  ")))
		}
		if m.err != nil {
			viewItems = append(viewItems, "", errorStyle.Render(m.err.Error()))
		}
		if len(m.entered) > 0 {
			viewItems = append(viewItems, "", m.table.View())
		}
	} else {
		d := m.key.Deck()
		viewItems = append(viewItems,
			successStyle.Render(i18n.T("tui.entry.complete")),
			helpStyle.Render(i18n.T("key.jokers_at", d.Index(deck.JokerA)+1, d.Index(deck.JokerB)+1)),
			"",
			m.pathInput.View(),
		)

		saveButton := formItemStyle.Render("[ " + i18n.T("tui.entry.save") + " ]")
		if m.focusIndex == 1 {
			saveButton = formSelectedItemStyle.Render("[ " + i18n.T("tui.entry.save") + " ]")
		}
		useButton := formItemStyle.Render("[ " + i18n.T("tui.entry.use") + " ]")
		if m.focusIndex == 2 {
			useButton = formSelectedItemStyle.Render("[ " + i18n.T("tui.entry.use") + " ]")
		}
		viewItems = append(viewItems, "", lipgloss.JoinHorizontal(lipgloss.Top, saveButton, "  ", useButton))

		if m.err != nil {
			viewItems = append(viewItems, "", errorStyle.Render(m.err.Error()))
		}
		if m.status != "" {
			viewItems = append(viewItems, "", statusMessageStyle.Render(m.status))
		}
	}

	viewItems = append(viewItems, "", m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
