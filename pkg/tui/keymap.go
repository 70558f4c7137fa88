package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/gridmenu/pkg/menu"
)

// KeyMap binds terminal keys to menu keys.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Translate maps a key press to the menu's key bitmask.
func (km KeyMap) Translate(msg tea.KeyMsg) menu.Key {
	switch {
	case key.Matches(msg, km.Up):
		return menu.KeyUp
	case key.Matches(msg, km.Down):
		return menu.KeyDown
	case key.Matches(msg, km.Select):
		return menu.KeyEnter
	case key.Matches(msg, km.Cancel):
		return menu.KeyEscape
	}
	return menu.KeyNone
}
