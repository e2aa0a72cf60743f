package ascii

import "strings"

// blank is the glyph of an unpainted cell.
const blank = " "

// Canvas is a fixed-size grid of glyphs. Each cell holds one glyph string,
// usually a single code point.
type Canvas struct {
	width  int
	height int
	cells  [][]string
}

// NewCanvas returns a width×height canvas filled with spaces. Non-positive
// dimensions produce an empty canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	cells := make([][]string, height)
	for y := range cells {
		row := make([]string, width)
		for x := range row {
			row[x] = blank
		}
		cells[y] = row
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Contains reports whether (x, y) lies on the canvas.
func (c *Canvas) Contains(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes glyph at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) Set(x, y int, glyph string) {
	if c.Contains(x, y) {
		c.cells[y][x] = glyph
	}
}

// At returns the glyph at (x, y), or "" outside the canvas.
func (c *Canvas) At(x, y int) string {
	if !c.Contains(x, y) {
		return ""
	}
	return c.cells[y][x]
}

// Text writes s one code point per cell starting at (x, y), stopping before
// column limit. Cells off the canvas are skipped.
func (c *Canvas) Text(x, y int, s string, limit int) {
	col := x
	for _, r := range s {
		if col >= limit {
			return
		}
		c.Set(col, y, string(r))
		col++
	}
}

// String joins the rows with newlines. No trailing newline is added.
func (c *Canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, glyph := range row {
			b.WriteString(glyph)
		}
	}
	return b.String()
}
