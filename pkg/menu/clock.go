package menu

import "time"

// Clock supplies monotonic timestamps for animation pacing.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock measures time since it was created using the runtime's
// monotonic reading. Create one at start-up and share it.
type MonotonicClock struct {
	origin time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{origin: time.Now()}
}

func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.origin)
}
