// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Pontifex.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to all other sub-views.
package tui // import "github.com/pontifex-team/pontifex/ui/tui"

import (
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/pontifex-team/pontifex/config"
	"github.com/pontifex-team/pontifex/core/deck"
	"github.com/pontifex-team/pontifex/core/keys"
	"github.com/pontifex-team/pontifex/i18n"
	"github.com/pontifex-team/pontifex/internal/logging"
	"github.com/pontifex-team/pontifex/util/mapst"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// menuView is the main navigation menu.
	menuView viewState = iota
	cryptView
	keyEntryView
	inspectorView
	languageView
)

// languageChangedMsg is a message to signal that the language has changed and the UI should be re-initialized.
type languageChangedMsg struct{}

// backToMenuMsg is sent by sub-views when the user backs out of them.
type backToMenuMsg struct{}

// keyEnteredMsg carries a finished deck out of the key entry view.
type keyEnteredMsg struct {
	key keys.Key
}

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently active sub-model.
type mainModel struct {
	state     viewState
	cfg       config.Config
	menu      menuModel
	crypt     *cryptModel
	keyEntry  *keyEntryModel
	inspector *inspectorModel
	language  languageModel
	// activeKey is the deck most recently accepted in the key entry view.
	// Zero until the user finishes one.
	activeKey keys.Key
	width     int
	height    int
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string // The menu items to show.
	cursor  int      // Which menu item our cursor is pointing at.
}

// languageModel holds the state for the language selection menu.
type languageModel struct {
	choices     map[string]string // map of lang code to display name
	orderedKeys []string          // for stable iteration
	cursor      int
}

// initialModel creates the starting state of the TUI, beginning at the main menu.
func initialModel(cfg config.Config) mainModel {
	return mainModel{
		state: menuView,
		cfg:   cfg,
		menu: menuModel{
			choices: []string{
				i18n.T("tui.menu.crypt"),
				i18n.T("tui.menu.enter_key"),
				i18n.T("tui.menu.inspect_deck"),
				i18n.T("tui.menu.language"),
			},
		},
	}
}

// Init is the first function that will be called by the Bubble Tea runtime.
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update is the main message loop. It handles all events (like key presses and
// window size changes) and delegates them to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings that work everywhere.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case keyEnteredMsg:
		// The key entry view finished a deck. Make it the active key and
		// drop straight into the inspector so the user sees what they built.
		m.activeKey = msg.key
		m.state = inspectorView
		inspector := newInspectorModel(m.activeKey, i18n.T("tui.inspector.source_entered"))
		m.inspector = &inspector
		return m, nil

	case languageChangedMsg:
		// The language has changed. Re-initialize the entire model to apply new translations everywhere.
		newModel := initialModel(m.cfg)
		// Preserve the current window dimensions and the active key so the
		// session continues where it was.
		newModel.width = m.width
		newModel.height = m.height
		newModel.activeKey = m.activeKey
		return newModel, newModel.Init()
	}

	// Delegate updates to the currently active view.
	switch m.state {
	case cryptView:
		// If we received a "back" message, switch the state.
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, nil
		}
		var newCryptModel tea.Model
		newCryptModel, cmd = m.crypt.Update(msg)
		m.crypt = newCryptModel.(*cryptModel)

	case keyEntryView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, nil
		}
		var newEntryModel tea.Model
		newEntryModel, cmd = m.keyEntry.Update(msg)
		m.keyEntry = newEntryModel.(*keyEntryModel)

	case inspectorView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, nil
		}
		var newInspector tea.Model
		newInspector, cmd = m.inspector.Update(msg)
		m.inspector = newInspector.(*inspectorModel)

	case languageView:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q", "esc":
				m.state = menuView
				return m, nil
			case "up", "k":
				if m.language.cursor > 0 {
					m.language.cursor--
				}
			case "down", "j":
				if m.language.cursor < len(m.language.orderedKeys)-1 {
					m.language.cursor++
				}
			case "enter":
				langCode := m.language.orderedKeys[m.language.cursor]
				i18n.SetLang(langCode)
				viper.Set("language", langCode)
				m.cfg.Language = langCode
				if err := config.WriteConfigFile(&m.cfg, false); err != nil {
					logging.Warnf("failed to save language choice: %v", err)
				}

				// Signal that the language has changed so the entire UI can be re-initialized.
				return m, func() tea.Msg { return languageChangedMsg{} }
			}
		}

	default: // menuView
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.menu.cursor > 0 {
					m.menu.cursor--
				}
			case "down", "j":
				if m.menu.cursor < len(m.menu.choices)-1 {
					m.menu.cursor++
				}
			case "enter":
				switch m.menu.cursor {
				case 0: // Encrypt / decrypt
					m.state = cryptView
					crypt := newCryptModel(m.cfg, m.activeKey)
					m.crypt = &crypt
					return m, m.crypt.Init()
				case 1: // Enter a deck by hand
					m.state = keyEntryView
					entry := newKeyEntryModel(m.cfg)
					m.keyEntry = &entry
					return m, m.keyEntry.Init()
				case 2: // Inspect deck
					m.state = inspectorView
					inspector := newInspectorModelFromSources(m.activeKey, m.cfg)
					m.inspector = &inspector
					return m, nil
				case 3: // Language
					m.state = languageView
					m.language = newLanguageModel()
					return m, nil
				}
			case "L":
				// "L" opens the language menu from anywhere on the main menu.
				m.state = languageView
				m.language = newLanguageModel()
				return m, nil
			}
		}
	}

	return m, cmd
}

// View renders the TUI. It's called after every Update and delegates rendering
// to the currently active sub-model.
func (m mainModel) View() string {
	switch m.state {
	case cryptView:
		return m.crypt.View()
	case keyEntryView:
		return m.keyEntry.View()
	case inspectorView:
		return m.inspector.View()
	case languageView:
		return m.language.View()
	default: // menuView
		return m.menu.View(m.cfg, m.activeKey, m.width, m.height)
	}
}

// alignFooter returns a single-line string where right is right-aligned
// within width columns and left is at the start. If width is too small a
// single space separates the tokens.
func alignFooter(left, right string, width int) string {
	spaces := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if spaces < 1 {
		spaces = 1
	}
	return left + strings.Repeat(" ", spaces) + right
}

// padLabel formats a label/value pair with the value column aligned at
// labelWidth.
func padLabel(label, value string, labelWidth int) string {
	if labelWidth <= len(label) {
		return label + " " + value
	}
	return label + strings.Repeat(" ", labelWidth-len(label)) + " " + value
}

// View renders the main menu and the status pane next to it.
func (m menuModel) View(cfg config.Config, activeKey keys.Key, width, height int) string {
	title := mainTitleStyle.Render("🃏 " + i18n.T("tui.title"))
	subTitle := helpStyle.Render(i18n.T("tui.subtitle"))
	header := lipgloss.JoinVertical(lipgloss.Left, title, subTitle)

	paneTitleStyle := lipgloss.NewStyle().Bold(true)

	// Menu List (Left Pane)
	var menuItems []string
	menuItems = append(menuItems, paneTitleStyle.Render(i18n.T("tui.menu.navigation")), "")
	for i, choice := range m.choices {
		if m.cursor == i {
			menuItems = append(menuItems, selectedItemStyle.Render("▸ "+choice))
		} else {
			menuItems = append(menuItems, itemStyle.Render("  "+choice))
		}
	}
	menuContent := lipgloss.JoinVertical(lipgloss.Left, menuItems...)

	// Status (Right Pane)
	var statusItems []string
	statusItems = append(statusItems, paneTitleStyle.Render(i18n.T("tui.status.title")), "")

	keyFile := cfg.Keys.File
	if keyFile == "" {
		keyFile = helpStyle.Render(i18n.T("tui.status.none"))
	}
	activeKeyStatus := helpStyle.Render(i18n.T("tui.status.none"))
	if !activeKey.IsZero() {
		activeKeyStatus = successStyle.Render(i18n.T("tui.status.key_entered"))
	}
	clipboardStatus := i18n.T("tui.status.off")
	if cfg.Clipboard {
		clipboardStatus = i18n.T("tui.status.on")
	}
	langName := i18n.GetLang()
	if name, ok := i18n.GetAvailableLocales()[langName]; ok {
		langName = name
	}

	rows := []struct {
		label string
		value string
	}{
		{i18n.T("tui.status.key_file"), keyFile},
		{i18n.T("tui.status.active_key"), activeKeyStatus},
		{i18n.T("tui.status.clipboard"), clipboardStatus},
		{i18n.T("tui.status.language"), langName},
	}
	maxLabelLen := 0
	for _, row := range rows {
		if len(row.label) > maxLabelLen {
			maxLabelLen = len(row.label)
		}
	}
	for _, row := range rows {
		statusItems = append(statusItems, padLabel(row.label, row.value, maxLabelLen))
	}

	if !activeKey.IsZero() {
		d := activeKey.Deck()
		statusItems = append(statusItems, "",
			helpStyle.Render(i18n.T("key.jokers_at", d.Index(deck.JokerA)+1, d.Index(deck.JokerB)+1)))
	}
	statusContent := lipgloss.JoinVertical(lipgloss.Left, statusItems...)

	// Layout
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footerStyle.Render(""))
	paneHeight := height - headerHeight - footerHeight - 2

	menuWidth := 38
	statusWidth := width - 4 - menuWidth - 2

	leftPane := paneStyle.Width(menuWidth).Height(paneHeight).Render(menuContent)
	rightPane := paneStyle.Width(statusWidth).Height(paneHeight).MarginLeft(2).Render(statusContent)
	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	footer := footerStyle.Render(alignFooter(i18n.T("tui.footer"), "", width))

	return lipgloss.JoinVertical(lipgloss.Top, header, mainArea, footer)
}

// newLanguageModel creates a new model for the language selection view.
func newLanguageModel() languageModel {
	// Get the dynamically discovered locales from the i18n package.
	choices := i18n.GetAvailableLocales()

	// Create a sorted list of keys for stable iteration and display order.
	keys := mapst.Keys(choices)
	sort.Strings(keys)

	return languageModel{
		choices:     choices,
		orderedKeys: keys,
		cursor:      0,
	}
}

// Init for languageModel.
func (m languageModel) Init() tea.Cmd { return nil }

// Update for languageModel.
func (m languageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

// View for languageModel.
func (m languageModel) View() string {
	title := mainTitleStyle.Render("🌐 " + i18n.T("tui.menu.language"))

	var listItems []string
	listItems = append(listItems, titleStyle.Render(i18n.T("tui.language.select")), "")

	for i, langCode := range m.orderedKeys {
		displayName := m.choices[langCode]
		line := "  " + displayName
		if m.cursor == i {
			line = "▸ " + displayName
			listItems = append(listItems, selectedItemStyle.Render(line))
		} else {
			listItems = append(listItems, itemStyle.Render(line))
		}
	}

	listPane := paneStyle.Width(60).Render(lipgloss.JoinVertical(lipgloss.Left, listItems...))
	helpLine := footerStyle.Render(alignFooter(i18n.T("tui.language.help"), "", 60))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", listPane, "", helpLine)
}

// Run is the main entrypoint for the TUI. It initializes and runs the Bubble Tea program.
func Run(cfg config.Config) {
	if _, err := tea.NewProgram(initialModel(cfg)).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		os.Exit(1)
	}
}
