package menu

import "time"

// pacer decides when a scroll tick is due. Its baseline only moves when a
// tick fires, so the scroll speed follows the interval and not the frame
// rate.
type pacer struct {
	clock    Clock
	interval time.Duration
	start    time.Duration
}

func newPacer(clock Clock, interval time.Duration) pacer {
	return pacer{clock: clock, interval: interval, start: clock.Now()}
}

func (p *pacer) due() bool {
	return p.clock.Now()-p.start > p.interval
}

func (p *pacer) reset() {
	p.start = p.clock.Now()
}

// bounce scrolls an overlong label back and forth. At each end the step
// drops to zero for one tick before reversing, so the label hangs for a
// frame.
type bounce struct {
	offset int
	dir    int
}

func newBounce() bounce {
	return bounce{dir: 1}
}

func (b *bounce) reset() {
	*b = newBounce()
}

// step advances one tick for a label of textLen characters shown in width
// columns. Labels that fit are left alone.
func (b *bounce) step(textLen, width int) {
	limit := textLen - width
	if limit <= 0 {
		b.offset = 0
		return
	}
	b.offset = min(max(b.offset+b.dir, 0), limit)
	if b.offset != 0 && b.offset != limit {
		return
	}
	switch {
	case b.dir != 0:
		b.dir = 0
	case b.offset == 0:
		b.dir = 1
	default:
		b.dir = -1
	}
}

// visible clamps the offset for a label whose text may have changed since
// the last tick.
func (b *bounce) visible(textLen, width int) int {
	return min(b.offset, max(0, textLen-width))
}

// ticker wraps the footer continuously, one character per tick.
type ticker struct {
	offset int
}

func (t *ticker) step(n int) {
	if n <= 0 {
		t.offset = 0
		return
	}
	t.offset = (t.offset + 1) % n
}

// window returns width characters of text starting at the tick offset,
// repeating text as often as needed.
func (t *ticker) window(text string, width int) string {
	r := []rune(text)
	if len(r) == 0 || width <= 0 {
		return ""
	}
	out := make([]rune, width)
	off := t.offset % len(r)
	for i := range out {
		out[i] = r[(off+i)%len(r)]
	}
	return string(out)
}
