// Package canvas implements the drawing surface as a braille-cell raster.
// Each terminal cell packs a 2x4 dot grid (Unicode braille, offset 0x2800),
// so a canvas of W x H cells exposes a (W*2) x (H*4) pixel surface.
package canvas

import "strings"

// Dot bit layout inside one braille cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille raster. The zero value is unusable; use New.
type Canvas struct {
	cols, rows int
	cells      []rune
}

// New creates a blank canvas of cols x rows terminal cells.
func New(cols, rows int) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c := &Canvas{cols: cols, rows: rows, cells: make([]rune, cols*rows)}
	c.Clear()
	return c
}

// Size reports the pixel dimensions of the surface.
func (c *Canvas) Size() (int, int) {
	return c.cols * 2, c.rows * 4
}

// Cells reports the terminal-cell dimensions.
func (c *Canvas) Cells() (cols, rows int) {
	return c.cols, c.rows
}

// Resize reallocates the cell buffer for new terminal dimensions and
// blanks it. Contents are not preserved; the host re-renders after.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == c.cols && rows == c.rows {
		c.Clear()
		return
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]rune, cols*rows)
	c.Clear()
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blank
	}
}

// Set lights the pixel at (x, y). Out-of-bounds writes are dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] |= dotBits[y%4][x%2]
}

// Unset darkens the pixel at (x, y).
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.cols || row >= c.rows {
		return
	}
	i := row*c.cols + col
	c.cells[i] &^= dotBits[y%4][x%2]
	if c.cells[i] < blank {
		c.cells[i] = blank
	}
}

// Line draws from (x0, y0) to (x1, y1) with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Cell returns the braille rune at terminal cell (col, row); blank for
// out-of-range coordinates.
func (c *Canvas) Cell(col, row int) rune {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return blank
	}
	return c.cells[row*c.cols+col]
}

// LitDots counts currently lit pixels.
func (c *Canvas) LitDots() int {
	n := 0
	for _, r := range c.cells {
		p := r - blank
		for p != 0 {
			n += int(p & 1)
			p >>= 1
		}
	}
	return n
}

// String renders the canvas as rows of braille runes.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.rows * (c.cols + 1))
	for row := 0; row < c.rows; row++ {
		b.WriteString(string(c.cells[row*c.cols : (row+1)*c.cols]))
		b.WriteByte('\n')
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
