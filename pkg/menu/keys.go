package menu

import "strings"

// Key is a semantic key-event bitmask. Bits may combine.
type Key uint8

const (
	KeyUp Key = 1 << iota
	KeyDown
	KeyEnter
	KeyEscape
)

// KeyNone means no recognized input this frame.
const KeyNone Key = 0

const (
	keyMotion = KeyUp | KeyDown
	keySelect = KeyEnter
	keyBackup = KeyEscape
)

// Has reports whether any bit of other is set in k.
func (k Key) Has(other Key) bool {
	return k&other != 0
}

func (k Key) String() string {
	if k == KeyNone {
		return "none"
	}
	var parts []string
	if k.Has(KeyUp) {
		parts = append(parts, "up")
	}
	if k.Has(KeyDown) {
		parts = append(parts, "down")
	}
	if k.Has(KeyEnter) {
		parts = append(parts, "enter")
	}
	if k.Has(KeyEscape) {
		parts = append(parts, "escape")
	}
	if rest := k &^ (keyMotion | keySelect | keyBackup); rest != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}

// ColorSlot names the semantic colour a drawn span uses. Mapping a slot to
// a concrete colour is the surface's job.
type ColorSlot int

const (
	SlotTitle ColorSlot = iota + 1
	SlotItem
	SlotFooter
	SlotSelected
	SlotDisabled
)

var slotNames = map[ColorSlot]string{
	SlotTitle:    "title",
	SlotItem:     "item",
	SlotFooter:   "footer",
	SlotSelected: "selected",
	SlotDisabled: "disabled",
}

func (s ColorSlot) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	return "none"
}

// Slots returns every colour slot in drawing-priority order.
func Slots() []ColorSlot {
	return []ColorSlot{SlotTitle, SlotItem, SlotFooter, SlotSelected, SlotDisabled}
}

// ParseColorSlot maps a slot name ("title", "item", ...) back to its slot.
func ParseColorSlot(name string) (ColorSlot, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for slot, n := range slotNames {
		if n == name {
			return slot, true
		}
	}
	return 0, false
}

// State marks an item as a valid navigation target or not.
// The zero value is Enabled.
type State uint8

const (
	Enabled State = iota
	Disabled
)

func (s State) String() string {
	if s == Enabled {
		return "enabled"
	}
	return "disabled"
}

// Callback is bound to an item and invoked when that item is selected.
// It may mutate the menu only through the handle returned by
// c.TakeOwnership.
type Callback func(c *Config, index int) Reply

// Reply is what a Callback hands back to the dispatcher.
type Reply struct {
	key Key
}

// Consumed ends the current input cycle without completing the selection.
var Consumed = Reply{}

// Replay makes the dispatcher process k as if it had been read in place
// of the pending Enter. Replay(KeyEnter) completes the selection.
func Replay(k Key) Reply {
	return Reply{key: k}
}

// Key returns the key the dispatcher continues with.
func (r Reply) Key() Key {
	return r.key
}
