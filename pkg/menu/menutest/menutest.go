// Package menutest provides test doubles for driving a menu without a
// terminal: a scripted key reader, a recording drawer and a manual clock.
package menutest

import (
	"time"

	"github.com/marcus/gridmenu/pkg/menu"
)

// Script replays keys in order, then returns Escape forever so a run under
// test always terminates.
type Script struct {
	keys  []menu.Key
	Reads int
}

func NewScript(keys ...menu.Key) *Script {
	return &Script{keys: keys}
}

func (s *Script) ReadKey() menu.Key {
	s.Reads++
	if len(s.keys) == 0 {
		return menu.KeyEscape
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k
}

// Remaining is the number of scripted keys not yet read.
func (s *Script) Remaining() int { return len(s.keys) }

// Call is one recorded Draw.
type Call struct {
	Row, Col int
	Text     string
	Width    int
	Slot     menu.ColorSlot
}

// Recorder records every Draw and counts Present calls.
type Recorder struct {
	Calls    []Call
	Presents int
}

func (r *Recorder) Draw(row, col int, text string, width int, slot menu.ColorSlot) {
	r.Calls = append(r.Calls, Call{Row: row, Col: col, Text: text, Width: width, Slot: slot})
}

func (r *Recorder) Present() { r.Presents++ }

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.Presents = 0
}

// Row returns the calls drawn on row, in order.
func (r *Recorder) Row(row int) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Row == row {
			out = append(out, c)
		}
	}
	return out
}

// Clock is a manual clock. Advance moves it forward.
type Clock struct {
	now time.Duration
}

func (c *Clock) Now() time.Duration { return c.now }

func (c *Clock) Advance(d time.Duration) { c.now += d }

// Tick advances just past one default scroll interval.
func (c *Clock) Tick() { c.Advance(menu.DefaultScrollInterval + time.Millisecond) }
