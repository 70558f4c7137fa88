package menu

// Frame draws one complete frame and advances the scroll animation.
func (s *Session) Frame() {
	c := s.cfg
	l := s.layout
	d := c.Drawer
	n := c.Len()
	last := min(n, s.top+l.VisibleRows)
	tick := s.pace.due()
	line := l.Y

	if l.HeaderRows > 0 {
		title := c.Title()
		shown := min(textLen(title), l.Width)
		left := (l.Width + 3 - shown) / 2
		right := l.Width + 2 - shown - left
		d.Draw(line, l.X, " ", left, SlotTitle)
		d.Draw(line, l.X+left, clip(title, 0, shown), shown, SlotTitle)
		d.Draw(line, l.X+left+shown, " ", right, SlotTitle)
		line++
		for line-l.Y < l.HeaderRows {
			d.Draw(line, l.X, " ", l.Width+2, SlotTitle)
			line++
		}
	}

	for i := s.top; i < last; i++ {
		text := c.Item(i)
		slot := SlotItem
		switch {
		case c.State(i) != Enabled:
			slot = SlotDisabled
		case i == s.selected:
			slot = SlotSelected
		}

		open := " "
		if i == s.selected {
			open = ">"
			size := textLen(text)
			if tick {
				s.label.step(size, l.Width)
			}
			text = clip(text, s.label.visible(size, l.Width), l.Width)
		}

		closing := " "
		switch {
		case i == s.top && s.top != 0:
			closing = "^"
		case i == s.top+l.VisibleRows-1 && i != n-1:
			closing = "v"
		case i == s.selected:
			closing = "<"
		}

		d.Draw(line, l.X, open, 1, slot)
		d.Draw(line, l.X+1, text, l.Width, slot)
		d.Draw(line, l.X+1+l.Width, closing, 1, slot)
		line++
	}

	for line < l.Y+l.Height {
		d.Draw(line, l.X, " ", l.Width+2, SlotFooter)
		line++
	}

	if footer := c.Footer(); footer != "" {
		d.Draw(line, l.X, " ", 1, SlotFooter)
		d.Draw(line, l.X+1, s.footer.window(footer, l.Width), l.Width, SlotFooter)
		d.Draw(line, l.X+1+l.Width, " ", 1, SlotFooter)
	}

	if c.Presenter != nil {
		c.Presenter.Present()
	}

	if tick {
		s.footer.step(textLen(c.Footer()))
		s.pace.reset()
	}
}
