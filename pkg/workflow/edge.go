package workflow

// Point is a cell coordinate on the canvas.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Edge is a directed connection between two steps, identified by id.
//
// Path is empty until the edge is routed, and stays empty when either
// endpoint does not resolve to a step.
type Edge struct {
	Source string
	Target string
	Kind   string
	Label  string

	Path []Point
}

// LineStyle returns the connector glyph set for the edge's kind.
func (e *Edge) LineStyle() LineStyle { return LookupLineStyle(e.Kind) }

// Arrow returns the arrowhead glyph for the edge's kind.
func (e *Edge) Arrow() string { return LookupArrow(e.Kind) }

// Routed reports whether the edge has a drawable path.
func (e *Edge) Routed() bool { return len(e.Path) >= 2 }
