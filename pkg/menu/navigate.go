package menu

// NextEnabled steps from index from in direction dir (+1 or -1) and returns
// the first enabled index. With nil states every item is enabled and the
// result is simply from+dir. When it runs off either end it returns a
// value < 0 or >= count, which callers must treat as "none that way".
func NextEnabled(states []State, from, dir, count int) int {
	i := from + dir
	if states == nil {
		return i
	}
	for {
		if i < 0 || i >= count {
			return i
		}
		if stateAt(states, i) == Enabled {
			return i
		}
		i += dir
	}
}

// moveDown advances the selection, wrapping to the first enabled item and
// the top of the list past the last one.
func (s *Session) moveDown() error {
	n := s.cfg.Len()
	states := s.cfg.data.states
	i := NextEnabled(states, s.selected, 1, n)
	if i >= n {
		i = NextEnabled(states, -1, 1, n)
		if i >= n {
			return ErrNoneEnabled
		}
		s.top = 0
	}
	if i-s.top >= s.layout.VisibleRows {
		s.top = i - s.layout.VisibleRows + 1
	}
	s.selected = i
	return nil
}

// moveUp retreats the selection, wrapping to the last enabled item and the
// bottom of the list past the first one.
func (s *Session) moveUp() error {
	n := s.cfg.Len()
	states := s.cfg.data.states
	i := NextEnabled(states, s.selected, -1, n)
	if i < 0 {
		i = NextEnabled(states, n, -1, n)
		if i < 0 {
			return ErrNoneEnabled
		}
		s.top = max(0, n-s.layout.VisibleRows)
	}
	if s.top > i {
		s.top = i
	}
	s.selected = i
	return nil
}

// settle moves the selection back onto an enabled in-range item after a
// callback changed the content, and keeps it inside the visible window.
func (s *Session) settle() error {
	n := s.cfg.Len()
	if n == 0 {
		return ErrNoneEnabled
	}
	states := s.cfg.data.states
	if s.selected < 0 || s.selected >= n || stateAt(states, s.selected) != Enabled {
		i := NextEnabled(states, min(s.selected, n), -1, n)
		if i < 0 || i >= n {
			i = NextEnabled(states, -1, 1, n)
			if i >= n {
				return ErrNoneEnabled
			}
		}
		s.selected = i
	}
	s.top = min(s.top, max(0, n-s.layout.VisibleRows))
	if s.selected < s.top {
		s.top = s.selected
	} else if s.selected-s.top >= s.layout.VisibleRows {
		s.top = s.selected - s.layout.VisibleRows + 1
	}
	return nil
}
