package menu

// Layout is the resolved geometry of a menu.
type Layout struct {
	Y, X          int
	Height, Width int
	HeaderRows    int
	FooterRows    int
	VisibleRows   int
}

// computeLayout resolves c's Unset geometry in place. Divisions truncate.
// Running it again on a resolved config yields the same layout.
func computeLayout(c *Config) (Layout, error) {
	if c.ScreenHeight < 1 || c.ScreenWidth < 3 {
		return Layout{}, ErrWindowTooSmall
	}

	// Placeholder corner for the on-screen checks when centring later.
	y, x := c.Y, c.X
	if y == Unset {
		y = 0
	}
	if x == Unset {
		x = 0
	}
	if y < 0 || y >= c.ScreenHeight || x < 0 || x > c.ScreenWidth-3 {
		return Layout{}, ErrNotOnScreen
	}

	var l Layout
	if c.Title() != "" {
		l.HeaderRows = max(c.TitleRows, 0)
	}
	if c.Footer() != "" {
		l.FooterRows = max(c.FooterRows, 0)
	}

	if c.Height == Unset {
		c.Height = c.Len() + l.HeaderRows + l.FooterRows
	}
	// Leave one row under the menu free for the footer ticker.
	if y+c.Height > c.ScreenHeight-1 {
		c.Height = c.ScreenHeight - y - 1
	}

	if c.Width == Unset {
		c.Width = max(maxItemLen(c.data.items), textLen(c.Title()))
	}
	// Two columns go to the selection indicators.
	if x+c.Width > c.ScreenWidth-2 {
		c.Width = c.ScreenWidth - x - 2
	}

	if c.Y == Unset {
		c.Y = max(0, (c.ScreenHeight-c.Height)/2)
	}
	if c.X == Unset {
		c.X = max(0, (c.ScreenWidth-(c.Width+2))/2)
	}

	l.Y, l.X = c.Y, c.X
	l.Height, l.Width = c.Height, c.Width
	l.VisibleRows = c.Height - l.HeaderRows - l.FooterRows
	if l.VisibleRows < 1 {
		return l, ErrTooSmall
	}
	return l, nil
}
