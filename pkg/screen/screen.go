// Package screen adapts a tcell terminal screen to the menu engine: it
// draws cells, translates key events into menu keys and presents frames.
package screen

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/gridmenu/pkg/menu"
)

// idlePoll is how long a non-blocking read waits when no event is queued.
const idlePoll = 10 * time.Millisecond

// Palette maps colour slots to tcell styles.
type Palette map[menu.ColorSlot]tcell.Style

// Screen is a menu Drawer, Reader and Presenter backed by tcell.
type Screen struct {
	s          tcell.Screen
	palette    Palette
	background tcell.Style
	blocking   bool
	logger     *slog.Logger
}

// Option configures a Screen.
type Option func(*Screen)

// WithPalette sets the style of each slot. Missing slots use the
// background style.
func WithPalette(p Palette) Option {
	return func(s *Screen) { s.palette = p }
}

// WithBackground sets the style used to clear the screen.
func WithBackground(style tcell.Style) Option {
	return func(s *Screen) { s.background = style }
}

// WithBlocking makes ReadKey wait for an event. The menu then redraws only
// on input and the scroll animation pauses between keystrokes.
func WithBlocking(blocking bool) Option {
	return func(s *Screen) { s.blocking = blocking }
}

// WithLogger sets the logger for terminal events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Screen) { s.logger = l }
}

// Open initialises the terminal. Call Close when done.
func Open(opts ...Option) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(ts, opts...), nil
}

// New wraps an initialised tcell screen.
func New(ts tcell.Screen, opts ...Option) *Screen {
	s := &Screen{
		s:          ts,
		palette:    DefaultPalette(),
		background: Style(menu.DefaultBackground.Fg, menu.DefaultBackground.Bg),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	ts.HideCursor()
	s.Clear()
	return s
}

// DefaultPalette is menu.DefaultPalette as tcell styles.
func DefaultPalette() Palette {
	p := make(Palette)
	for slot, colors := range menu.DefaultPalette() {
		p[slot] = Style(colors.Fg, colors.Bg)
	}
	return p
}

// ParseColor accepts an ANSI palette index ("4"), a colour name ("navy")
// or a hex value ("#336699").
func ParseColor(s string) tcell.Color {
	if n, err := strconv.Atoi(s); err == nil {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(s)
}

// Style builds a style from foreground and background colour strings.
// Empty strings leave the terminal default.
func Style(fg, bg string) tcell.Style {
	st := tcell.StyleDefault
	if fg != "" {
		st = st.Foreground(ParseColor(fg))
	}
	if bg != "" {
		st = st.Background(ParseColor(bg))
	}
	return st
}

// Bind wires s into c as drawer, reader and presenter and copies the
// current terminal size.
func (s *Screen) Bind(c *menu.Config) {
	c.Drawer = s
	c.Reader = s
	c.Presenter = s
	c.ScreenHeight, c.ScreenWidth = s.Size()
}

// Size returns the terminal size in rows and columns.
func (s *Screen) Size() (height, width int) {
	w, h := s.s.Size()
	return h, w
}

// Clear fills the screen with the background style.
func (s *Screen) Clear() {
	s.s.SetStyle(s.background)
	s.s.Clear()
}

func (s *Screen) Draw(row, col int, text string, width int, slot menu.ColorSlot) {
	style, ok := s.palette[slot]
	if !ok {
		style = s.background
	}
	end := col + width
	x := col
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > end {
			break
		}
		s.s.SetContent(x, row, r, nil, style)
		x += w
	}
	for ; x < end; x++ {
		s.s.SetContent(x, row, ' ', nil, style)
	}
}

// ReadKey translates the next terminal event. In non-blocking mode it
// returns KeyNone when nothing is queued.
func (s *Screen) ReadKey() menu.Key {
	if !s.blocking && !s.s.HasPendingEvent() {
		time.Sleep(idlePoll)
		return menu.KeyNone
	}
	switch ev := s.s.PollEvent().(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		s.logger.Debug("terminal resized", "rows", h, "cols", w)
		s.s.Sync()
	}
	return menu.KeyNone
}

func translateKey(ev *tcell.EventKey) menu.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return menu.KeyUp
	case tcell.KeyDown:
		return menu.KeyDown
	case tcell.KeyEnter:
		return menu.KeyEnter
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return menu.KeyEscape
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return menu.KeyUp
		case 'j':
			return menu.KeyDown
		case ' ':
			return menu.KeyEnter
		}
	}
	return menu.KeyNone
}

func (s *Screen) Present() {
	s.s.Show()
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.s.Fini()
}
