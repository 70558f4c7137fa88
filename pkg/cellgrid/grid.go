// Package cellgrid is an in-memory character grid that implements the
// menu draw primitive. Hosts that render whole frames as strings (the
// bubbletea adapter, tests) draw into a Grid and read it back.
package cellgrid

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/gridmenu/pkg/menu"
)

// Cell is one screen column. Slot 0 marks a cell nothing was drawn to.
// A wide rune occupies its cell and a Continuation cell to its right.
type Cell struct {
	Rune         rune
	Slot         menu.ColorSlot
	Continuation bool
}

// Grid is a fixed-size character grid.
type Grid struct {
	height, width int
	cells         []Cell
	draws         int
}

// New returns a blank grid.
func New(height, width int) *Grid {
	g := &Grid{}
	g.Resize(height, width)
	return g
}

// Resize reallocates the grid and blanks it.
func (g *Grid) Resize(height, width int) {
	g.height = max(height, 0)
	g.width = max(width, 0)
	g.cells = make([]Cell, g.height*g.width)
	g.Clear()
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' '}
	}
}

func (g *Grid) Size() (height, width int) { return g.height, g.width }

// Draws is the number of Draw calls since the grid was created.
func (g *Grid) Draws() int { return g.draws }

// Draw writes text left-justified into exactly width columns at (row, col),
// truncating or padding with spaces. Escape sequences in text are
// stripped. Anything outside the grid is clipped.
func (g *Grid) Draw(row, col int, text string, width int, slot menu.ColorSlot) {
	g.draws++
	if row < 0 || row >= g.height || width <= 0 {
		return
	}
	text = ansi.Strip(text)
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
		g.set(row, x, Cell{Rune: r, Slot: slot})
		if w == 2 {
			g.set(row, x+1, Cell{Rune: ' ', Slot: slot, Continuation: true})
		}
		x += w
	}
	for ; x < end; x++ {
		g.set(row, x, Cell{Rune: ' ', Slot: slot})
	}
}

func (g *Grid) set(row, col int, c Cell) {
	if col < 0 || col >= g.width {
		return
	}
	g.cells[row*g.width+col] = c
}

// At returns the cell at (row, col), or a blank cell outside the grid.
func (g *Grid) At(row, col int) Cell {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return Cell{Rune: ' '}
	}
	return g.cells[row*g.width+col]
}

// Line returns row as plain text.
func (g *Grid) Line(row int) string {
	var b strings.Builder
	for col := 0; col < g.width; col++ {
		c := g.At(row, col)
		if c.Continuation {
			continue
		}
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// String returns the whole grid as plain text, one line per row.
func (g *Grid) String() string {
	lines := make([]string, g.height)
	for row := range lines {
		lines[row] = g.Line(row)
	}
	return strings.Join(lines, "\n")
}

// Span is a run of adjacent cells drawn with the same slot.
type Span struct {
	Text string
	Slot menu.ColorSlot
}

// Spans splits row into runs of equal slot, for renderers that style each
// run once.
func (g *Grid) Spans(row int) []Span {
	var spans []Span
	var b strings.Builder
	cur := menu.ColorSlot(-1)
	flush := func() {
		if b.Len() > 0 {
			spans = append(spans, Span{Text: b.String(), Slot: cur})
			b.Reset()
		}
	}
	for col := 0; col < g.width; col++ {
		c := g.At(row, col)
		if c.Continuation {
			continue
		}
		if c.Slot != cur {
			flush()
			cur = c.Slot
		}
		b.WriteRune(c.Rune)
	}
	flush()
	return spans
}
