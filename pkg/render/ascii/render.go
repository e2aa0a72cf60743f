package ascii

import (
	"math"
	"unicode/utf8"

	"github.com/matzehuels/flowbox/pkg/layout"
	"github.com/matzehuels/flowbox/pkg/workflow"
)

// EmptyOutput is returned by [Render] for a workflow without steps.
const EmptyOutput = "Empty workflow"

// downArrow marks the end of a vertical connector regardless of edge style.
const downArrow = "v"

// Render lays out w if needed and returns its text rendering. Every call
// paints a fresh canvas, so repeated calls without mutation return identical
// strings.
func Render(w *workflow.Workflow) string {
	if w.StepCount() == 0 {
		return EmptyOutput
	}
	if !w.LaidOut() {
		layout.Apply(w)
	}
	return Paint(w).String()
}

// Paint draws w onto a new canvas using the positions and paths already
// stored on its steps and edges.
func Paint(w *workflow.Workflow) *Canvas {
	c := NewCanvas(w.CanvasSize())
	drawTitle(c, w.Title)
	for _, e := range w.Edges() {
		drawEdge(c, e)
	}
	for _, s := range w.Steps() {
		drawStep(c, s)
	}
	return c
}

func drawTitle(c *Canvas, title string) {
	x := (c.Width() - utf8.RuneCountInString(title)) / 2
	c.Text(x, 0, title, math.MaxInt)
}

func drawEdge(c *Canvas, e *workflow.Edge) {
	if !e.Routed() {
		return
	}
	style := e.LineStyle()
	last := len(e.Path) - 2

	for i := 0; i <= last; i++ {
		start, end := e.Path[i], e.Path[i+1]
		switch {
		case start.X == end.X:
			for y := min(start.Y, end.Y); y <= max(start.Y, end.Y); y++ {
				glyph := style.Vertical
				if i == last && y == end.Y-1 {
					glyph = downArrow
				}
				c.Set(start.X, y, glyph)
			}
		case start.Y == end.Y:
			for x := min(start.X, end.X); x <= max(start.X, end.X); x++ {
				glyph := style.Horizontal
				if i == last && x == end.X-1 {
					glyph = e.Arrow()
				}
				c.Set(x, start.Y, glyph)
			}
		default:
			// Diagonal segments are not drawn.
		}
	}

	if e.Label != "" {
		mid := e.Path[len(e.Path)/2]
		c.Text(mid.X+1, mid.Y, e.Label, math.MaxInt)
	}
}

func drawStep(c *Canvas, s *workflow.Step) {
	style := s.BoxStyle()
	left, right := s.X, s.X+s.Width-1
	top, bottom := s.Y, s.Y+s.Height-1

	for x := left; x <= right; x++ {
		topGlyph, bottomGlyph := style.Horizontal, style.Horizontal
		switch x {
		case left:
			topGlyph, bottomGlyph = style.TopLeft, style.BottomLeft
		case right:
			topGlyph, bottomGlyph = style.TopRight, style.BottomRight
		}
		c.Set(x, top, topGlyph)
		c.Set(x, bottom, bottomGlyph)
	}

	for y := top + 1; y < bottom; y++ {
		c.Set(left, y, style.Vertical)
		c.Set(right, y, style.Vertical)
	}

	limit := s.X + s.Width - style.Padding
	for i, line := range s.RenderableLines() {
		c.Text(s.X+style.Padding, s.Y+style.Padding+i, line, limit)
	}
}
