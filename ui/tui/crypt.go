// Copyright (c) 2026 Pontifex Team
// Pontifex - Solitaire stream cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pontifex-team/pontifex/config"
	"github.com/pontifex-team/pontifex/core/cipher"
	"github.com/pontifex-team/pontifex/core/keys"
	"github.com/pontifex-team/pontifex/core/security"
	"github.com/pontifex-team/pontifex/i18n"
)

// cryptModel is the encrypt/decrypt form. The key source resolution
// mirrors the CLI: an explicit key file wins, then a passphrase, then
// the deck entered in the key entry view.
type cryptModel struct {
	cfg        config.Config
	activeKey  keys.Key
	inputs     []textinput.Model // 0: message, 1: key file, 2: passphrase
	focusIndex int               // inputs, then mode toggle, then run button
	decrypt    bool
	result     string
	warnings   []keys.Warning
	err        error
	copied     bool
	help       help.Model
	keymap     keyMap
}

func newCryptModel(cfg config.Config, activeKey keys.Key) cryptModel {
	m := cryptModel{
		cfg:       cfg,
		activeKey: activeKey,
		inputs:    make([]textinput.Model, 3),
		help:      help.New(),
		keymap: keyMap{
			Next:   keyNext,
			Prev:   keyPrev,
			Enter:  keyRun,
			Toggle: keyToggle,
			Copy:   keyCopy,
			Back:   keyBack,
			Quit:   keyQuit,
		},
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 0
		t.Width = 40

		switch i {
		case 0:
			t.Prompt = "Message:    "
			t.Placeholder = "ATTACK AT DAWN"
		case 1:
			t.Prompt = "Key file:   "
			t.Placeholder = "pontifex.key"
		case 2:
			t.Prompt = "Passphrase: "
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		}
		m.inputs[i] = t
	}
	m.inputs[1].SetValue(cfg.Keys.File)

	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle
	return m
}

// Focus positions past the text inputs.
func (m cryptModel) modeIndex() int { return len(m.inputs) }
func (m cryptModel) runIndex() int  { return len(m.inputs) + 1 }

func (m cryptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *cryptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch s := msg.String(); s {
		case "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }

		case "left", "right", " ":
			if m.focusIndex == m.modeIndex() {
				m.decrypt = !m.decrypt
				return m, nil
			}

		case "c":
			// Copy is only a shortcut while no text input is focused,
			// otherwise it has to insert a literal 'c'.
			if m.focusIndex >= len(m.inputs) && m.result != "" {
				if err := clipboard.WriteAll(m.result); err != nil {
					m.err = errors.New(i18n.T("crypt.error_clipboard", err))
				} else {
					m.copied = true
				}
				return m, nil
			}

		case "tab", "shift+tab", "enter", "up", "down":
			if s == "enter" {
				switch m.focusIndex {
				case m.modeIndex():
					m.decrypt = !m.decrypt
					return m, nil
				case m.runIndex():
					m.run()
					return m, nil
				}
			}

			// Cycle focus
			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex > m.runIndex() {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = m.runIndex()
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i <= len(m.inputs)-1; i++ {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].TextStyle = focusedStyle
					continue
				}
				m.inputs[i].Blur()
				m.inputs[i].TextStyle = lipgloss.NewStyle()
			}

			return m, tea.Batch(cmds...)
		}
	}

	// Handle character input and blinking
	cmd := m.updateInputs(msg)
	return m, cmd
}

func (m *cryptModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

// run builds an engine from the form fields and transforms the message.
func (m *cryptModel) run() {
	m.err = nil
	m.result = ""
	m.warnings = nil
	m.copied = false

	var opts []cipher.NewOpt
	if path := strings.TrimSpace(m.inputs[1].Value()); path != "" {
		k, err := keys.Load(path)
		if err != nil {
			m.err = err
			return
		}
		opts = append(opts, cipher.WithKey(k))
	}
	if pass := m.inputs[2].Value(); pass != "" {
		opts = append(opts, cipher.WithPassphrase(security.FromString(pass)))
	}
	if len(opts) == 0 && !m.activeKey.IsZero() {
		opts = append(opts, cipher.WithKey(m.activeKey))
	}

	engine, err := cipher.New(opts...)
	if err != nil {
		switch {
		case errors.Is(err, cipher.ErrMissingKey):
			m.err = errors.New(i18n.T("crypt.error_missing_key"))
		case errors.Is(err, cipher.ErrConflictingKeySources):
			m.err = errors.New(i18n.T("crypt.error_conflicting_sources"))
		default:
			m.err = err
		}
		return
	}
	m.warnings = engine.Warnings()

	if m.decrypt {
		m.result, m.err = engine.Decode(m.inputs[0].Value())
	} else {
		m.result, m.err = engine.Encode(m.inputs[0].Value())
	}
}

// warningText renders a key warning with the same wording the CLI logs.
func warningText(w keys.Warning) string {
	switch w.Code {
	case keys.WarnShortPassphrase:
		return i18n.T("keys.warn_short_passphrase", w.Length, keys.MinPassphraseChars)
	case keys.WarnWeakGenerator:
		return i18n.T("keys.warn_weak_generator")
	default:
		return w.String()
	}
}

func (m cryptModel) View() string {
	var viewItems []string

	if m.decrypt {
		viewItems = append(viewItems, titleStyle.Render("🔓 "+i18n.T("tui.crypt.title_decrypt")))
	} else {
		viewItems = append(viewItems, titleStyle.Render("🔒 "+i18n.T("tui.crypt.title_encrypt")))
	}

	// The title's padding adds a newline, so we add one more for a blank line.
	viewItems = append(viewItems, "")
	for i := range m.inputs {
		viewItems = append(viewItems, m.inputs[i].View())
	}

	mode := i18n.T("tui.crypt.mode_encrypt")
	if m.decrypt {
		mode = i18n.T("tui.crypt.mode_decrypt")
	}
	modeLine := formItemStyle.Render("Mode:       " + mode)
	if m.focusIndex == m.modeIndex() {
		modeLine = formSelectedItemStyle.Render("Mode:       ◂ " + mode + " ▸")
	}
	viewItems = append(viewItems, "", modeLine)

	button := formItemStyle.Render("[ " + i18n.T("tui.crypt.run") + " ]")
	if m.focusIndex == m.runIndex() {
		button = formSelectedItemStyle.Render("[ " + i18n.T("tui.crypt.run") + " ]")
	}
	viewItems = append(viewItems, "", button)

	for _, w := range m.warnings {
		viewItems = append(viewItems, "", specialStyle.Render(warningText(w)))
	}
	if m.err != nil {
		viewItems = append(viewItems, "", errorStyle.Render(m.err.Error()))
	}
	if m.result != "" {
		resultPane := paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			helpStyle.Render(i18n.T("tui.crypt.result")), "", m.result))
		viewItems = append(viewItems, "", resultPane)
		if m.copied {
			viewItems = append(viewItems, successStyle.Render(i18n.T("crypt.copied")))
		}
	}

	viewItems = append(viewItems, "", m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
