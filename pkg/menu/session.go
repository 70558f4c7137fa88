package menu

import "fmt"

// Session is a running menu: the resolved layout plus the per-frame state
// (selection, scroll window, animation). Hosts with their own event loop
// drive it with Frame and Dispatch; everyone else calls Run.
type Session struct {
	cfg    *Config
	layout Layout

	selected int
	top      int

	label  bounce
	footer ticker
	pace   pacer
}

// Start validates c, resolves its layout and picks the first enabled item.
// No drawing happens before Start succeeds.
func Start(c *Config) (*Session, error) {
	if c.Drawer == nil {
		return nil, fmt.Errorf("start: %w", ErrNoDrawer)
	}
	if c.Len() == 0 {
		return nil, ErrNoneEnabled
	}

	layout, err := computeLayout(c)
	if err != nil {
		return nil, err
	}

	if c.Clock == nil {
		c.Clock = NewMonotonicClock()
	}
	if c.ScrollInterval <= 0 {
		c.ScrollInterval = DefaultScrollInterval
	}

	s := &Session{
		cfg:    c,
		layout: layout,
		label:  newBounce(),
		pace:   newPacer(c.Clock, c.ScrollInterval),
	}

	n := c.Len()
	s.selected = NextEnabled(c.data.states, -1, 1, n)
	if s.selected >= n {
		return nil, ErrNoneEnabled
	}
	if s.selected-s.top >= layout.VisibleRows {
		s.top = s.selected - layout.VisibleRows + 1
	}

	c.logger().Debug("menu layout resolved",
		"y", layout.Y, "x", layout.X,
		"height", layout.Height, "width", layout.Width,
		"visible", layout.VisibleRows, "items", n)
	return s, nil
}

// Layout returns the geometry resolved at Start.
func (s *Session) Layout() Layout { return s.layout }

// Selected is the index of the highlighted item.
func (s *Session) Selected() int { return s.selected }

// Top is the first item of the visible window.
func (s *Session) Top() int { return s.top }

// Run shows the menu described by c until the user selects an item or the
// run ends otherwise. It returns the selected index, or the negative status
// together with one of the Err* sentinels. A config without a drawer or
// reader yields StatusMisconfigured before anything is drawn.
func Run(c *Config) (int, error) {
	if c.Reader == nil {
		return int(StatusMisconfigured), fmt.Errorf("run: %w", ErrNoReader)
	}
	s, err := Start(c)
	if err != nil {
		return statusIndex(err), err
	}
	for {
		s.Frame()
		index, done, err := s.Dispatch(c.Reader.ReadKey())
		if done {
			c.logger().Debug("menu run finished", "index", index, "err", err)
			return index, err
		}
	}
}

func statusIndex(err error) int {
	if st := StatusOf(err); st != 0 {
		return int(st)
	}
	return int(StatusCancelled)
}
