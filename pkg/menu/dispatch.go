package menu

// Dispatch applies one raw read to the session. A callback may replace the
// pending key, so several transitions can happen within one read. done is
// true once the run has reached a terminal state; index is then the
// selected item, or the negative status of err.
func (s *Session) Dispatch(key Key) (index int, done bool, err error) {
	for key != KeyNone {
		switch {
		case key.Has(keyMotion):
			s.label.reset()
			if key.Has(KeyDown) {
				if err := s.moveDown(); err != nil {
					return int(StatusOf(err)), true, err
				}
			}
			if key.Has(KeyUp) {
				if err := s.moveUp(); err != nil {
					return int(StatusOf(err)), true, err
				}
			}
			key = KeyNone

		case key.Has(keySelect):
			if cb := s.cfg.Callback(s.selected); cb != nil {
				s.cfg.logger().Debug("menu callback invoked", "index", s.selected)
				key = cb(s.cfg, s.selected).Key()
				// The callback may have resized the items or changed states.
				if err := s.settle(); err != nil {
					return int(StatusOf(err)), true, err
				}
			}
			if key.Has(keySelect) {
				return s.selected, true, nil
			}

		case key.Has(keyBackup):
			return int(StatusCancelled), true, ErrCancelled

		default:
			return 0, false, nil
		}
	}
	return 0, false, nil
}
