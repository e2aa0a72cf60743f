package layout

import (
	"unicode/utf8"

	"github.com/matzehuels/flowbox/pkg/workflow"
)

const (
	// topMargin leaves row 0 for the title and row 1 blank.
	topMargin = 2
	// levelGap is the number of blank rows between consecutive levels.
	levelGap = 2
	// stepGap is the horizontal room reserved around each step.
	stepGap = 10
	// minLevelWidth is the narrowest span a level is spread across.
	minLevelWidth = 80
	// rightMargin is added after the rightmost box.
	rightMargin = 5
	// titleMargin is added around the title when it sets the canvas width.
	titleMargin = 4
	// bottomMargin is added below the last level.
	bottomMargin = 2
)

// Apply computes positions and connector paths and marks w as laid out.
func Apply(w *workflow.Workflow) {
	Compute(w)
	Route(w)
	w.MarkLaidOut()
}

// Compute sizes every step, assigns grid coordinates and records the canvas
// size on w. It does nothing for a workflow without steps.
//
// Each level occupies a band as tall as its tallest box plus [levelGap].
// Within a level, n steps are centered on n+1 evenly spaced slots across
// max(80, (widest+10)·n) columns, where widest is the widest box of the whole
// workflow. The canvas is wide enough for the rightmost box plus a margin,
// and for the title.
func Compute(w *workflow.Workflow) {
	if w.StepCount() == 0 {
		return
	}

	widest := 0
	for _, s := range w.Steps() {
		width, _ := s.ComputeBoxSize()
		widest = max(widest, width)
	}
	slotWidth := widest + stepGap

	levels := AssignLevels(w, TopologicalOrder(w))

	y := topMargin
	for _, level := range levels.Sorted() {
		ids := levels[level]

		tallest := 0
		for _, id := range ids {
			s, _ := w.Step(id)
			tallest = max(tallest, s.Height)
		}

		available := max(minLevelWidth, slotWidth*len(ids))
		spacing := available / (len(ids) + 1)
		for i, id := range ids {
			s, _ := w.Step(id)
			s.X = (i+1)*spacing - s.Width/2
			s.Y = y
		}

		y += tallest + levelGap
	}

	right := 0
	for i, s := range w.Steps() {
		if i == 0 || s.X+s.Width > right {
			right = s.X + s.Width
		}
	}
	width := max(right+rightMargin, utf8.RuneCountInString(w.Title)+titleMargin)
	w.SetCanvasSize(width, y+bottomMargin)
}
