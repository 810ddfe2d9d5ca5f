package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the bindings a view wants in its help line. Views build
// their own value from the entries below and leave the rest unset;
// help.Model skips bindings that have no keys.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Enter  key.Binding
	Toggle key.Binding
	Copy   key.Binding
	Undo   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.Up, km.Down, km.Next, km.Prev, km.Enter,
		km.Toggle, km.Copy, km.Undo, km.Back, km.Quit,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Next, km.Prev},
		{km.Enter, km.Toggle, km.Copy, km.Undo},
		{km.Back, km.Quit},
	}
}

// keyMap implements help.KeyMap
var _ help.KeyMap = (*keyMap)(nil)

var (
	keyScrollUp = key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑/↓", "scroll"),
	)
	keyNext = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next"),
	)
	keyPrev = key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous"),
	)
	keyRun = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	)
	keyAccept = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add card"),
	)
	keySelect = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	)
	keyToggle = key.NewBinding(
		key.WithKeys("left", "right"),
		key.WithHelp("←/→", "toggle mode"),
	)
	keyCopy = key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	)
	keyUndo = key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "undo card"),
	)
	keyComplete = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "complete"),
	)
	keyBack = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	)
	keyQuit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	)
)
