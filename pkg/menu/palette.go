package menu

// Colors is a foreground/background pair. Values are ANSI palette indexes
// ("4"), colour names or hex ("#336699"); empty means the terminal default.
type Colors struct {
	Fg string `json:"fg,omitempty"`
	Bg string `json:"bg,omitempty"`
}

// DefaultPalette is white on blue with a green title and selection, cyan
// footer and yellow disabled items. Every surface derives its default
// styles from it.
func DefaultPalette() map[ColorSlot]Colors {
	return map[ColorSlot]Colors{
		SlotTitle:    {Fg: "2", Bg: "4"},
		SlotItem:     {Fg: "7", Bg: "4"},
		SlotFooter:   {Fg: "6", Bg: "4"},
		SlotSelected: {Fg: "7", Bg: "2"},
		SlotDisabled: {Fg: "3", Bg: "4"},
	}
}

// DefaultBackground is the blue-on-cyan fill behind the menu.
var DefaultBackground = Colors{Fg: "4", Bg: "6"}
