package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/gridmenu/pkg/menu"
)

// Styles maps colour slots to lipgloss styles. Background styles cells no
// slot was drawn to.
type Styles struct {
	Slots      map[menu.ColorSlot]lipgloss.Style
	Background lipgloss.Style
}

// DefaultStyles is menu.DefaultPalette as lipgloss styles, with the title
// and the selection in bold.
func DefaultStyles() Styles {
	s := Styles{
		Slots:      make(map[menu.ColorSlot]lipgloss.Style),
		Background: NewStyle(menu.DefaultBackground.Fg, menu.DefaultBackground.Bg),
	}
	for slot, colors := range menu.DefaultPalette() {
		st := NewStyle(colors.Fg, colors.Bg)
		if slot == menu.SlotTitle || slot == menu.SlotSelected {
			st = st.Bold(true)
		}
		s.Slots[slot] = st
	}
	return s
}

// NewStyle builds a style from colour strings (ANSI index or #rrggbb).
// Empty strings leave the terminal default.
func NewStyle(fg, bg string) lipgloss.Style {
	st := lipgloss.NewStyle()
	if fg != "" {
		st = st.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		st = st.Background(lipgloss.Color(bg))
	}
	return st
}

func (s Styles) style(slot menu.ColorSlot) lipgloss.Style {
	if st, ok := s.Slots[slot]; ok {
		return st
	}
	return s.Background
}
