package menu

import (
	"log/slog"
	"slices"
	"time"
)

// Unset marks a geometry field the layout engine should resolve itself.
const Unset = -1

// DefaultScrollInterval paces both the selected-label bounce and the
// footer ticker.
const DefaultScrollInterval = time.Second / 8

// Drawer renders text left-justified, truncated or padded to exactly width
// columns at (row, col) using the given colour slot.
type Drawer interface {
	Draw(row, col int, text string, width int, slot ColorSlot)
}

// Reader translates the host's input source into a semantic key bitmask.
// Whether it blocks is up to the host.
type Reader interface {
	ReadKey() Key
}

// Presenter is called once per frame after all drawing.
type Presenter interface {
	Present()
}

// DrawFunc adapts a plain function to Drawer.
type DrawFunc func(row, col int, text string, width int, slot ColorSlot)

func (f DrawFunc) Draw(row, col int, text string, width int, slot ColorSlot) {
	f(row, col, text, width, slot)
}

// ReadFunc adapts a plain function to Reader.
type ReadFunc func() Key

func (f ReadFunc) ReadKey() Key { return f() }

// PresentFunc adapts a plain function to Presenter.
type PresentFunc func()

func (f PresentFunc) Present() { f() }

// content is everything a callback may want to change.
type content struct {
	title     string
	footer    string
	items     []string
	states    []State
	callbacks []Callback
}

// Config describes one menu instance. Build it with NewConfig; the zero
// value places the menu at (0, 0) with zero size.
//
// Title, footer, items, states and callbacks are borrowed from the caller
// until TakeOwnership is called. Borrowed data is never written by the
// engine.
type Config struct {
	// Mandatory.
	ScreenHeight int
	ScreenWidth  int
	Drawer       Drawer
	Reader       Reader

	// Optional. Geometry fields are resolved in place by Run.
	Y, X          int
	Height, Width int
	TitleRows     int
	FooterRows    int
	Presenter     Presenter
	UserData      any

	Clock          Clock
	ScrollInterval time.Duration
	Logger         *slog.Logger

	data  content
	owned *Owned
}

// NewConfig returns a config with every geometry field Unset and two rows
// of title and footer padding.
func NewConfig(screenHeight, screenWidth int, items ...string) *Config {
	c := &Config{}
	c.Init()
	c.ScreenHeight = screenHeight
	c.ScreenWidth = screenWidth
	if len(items) > 0 {
		c.SetItems(items)
	}
	return c
}

// Init resets c to sane defaults, dropping any content it held.
func (c *Config) Init() {
	*c = Config{
		ScreenHeight: Unset,
		ScreenWidth:  Unset,
		Y:            Unset,
		X:            Unset,
		Height:       Unset,
		Width:        Unset,
		TitleRows:    2,
		FooterRows:   2,
	}
}

// SetTitle borrows title. An empty string means no title.
func (c *Config) SetTitle(title string) { c.data.title = title }

// SetFooter borrows footer. An empty string means no footer.
func (c *Config) SetFooter(footer string) { c.data.footer = footer }

// SetItems borrows items. The slice is not copied unless c owns its
// content, in which case the engine keeps a private copy.
func (c *Config) SetItems(items []string) { c.data.items = adoptSlice(c, items) }

// SetStates borrows states. Nil means every item is enabled; entries past
// the end of a short slice read as Enabled. Copied when c owns its content.
func (c *Config) SetStates(states []State) { c.data.states = adoptSlice(c, states) }

// SetCallbacks borrows callbacks. Nil entries, and entries past the end of
// a short slice, mean the item has no callback. Copied when c owns its
// content.
func (c *Config) SetCallbacks(callbacks []Callback) { c.data.callbacks = adoptSlice(c, callbacks) }

// adoptSlice returns s as is while c borrows, and a copy once c owns its
// content, so an Owned handle never writes caller memory.
func adoptSlice[T any](c *Config, s []T) []T {
	if c.owned == nil {
		return s
	}
	return slices.Clone(s)
}

func (c *Config) Title() string  { return c.data.title }
func (c *Config) Footer() string { return c.data.footer }

// Len is the current item count.
func (c *Config) Len() int { return len(c.data.items) }

// Item returns the text of item i, or "" when i is out of range.
func (c *Config) Item(i int) string {
	if i < 0 || i >= len(c.data.items) {
		return ""
	}
	return c.data.items[i]
}

// State returns the state of item i. Items without an entry are Enabled.
func (c *Config) State(i int) State {
	return stateAt(c.data.states, i)
}

// Callback returns the callback bound to item i, or nil.
func (c *Config) Callback(i int) Callback {
	if i < 0 || i >= len(c.data.callbacks) {
		return nil
	}
	return c.data.callbacks[i]
}

// Owns reports whether the engine holds private copies of the content.
func (c *Config) Owns() bool { return c.owned != nil }

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return discardLogger
}

var discardLogger = slog.New(slog.DiscardHandler)

func stateAt(states []State, i int) State {
	if i < 0 || i >= len(states) {
		return Enabled
	}
	return states[i]
}
