package workflow

// Default style tags.
const (
	DefaultStepKind = "process"
	DefaultEdgeKind = "normal"
)

// BoxStyle is the glyph set used to draw a step's border.
type BoxStyle struct {
	TopLeft     string `json:"top_left"`
	TopRight    string `json:"top_right"`
	BottomLeft  string `json:"bottom_left"`
	BottomRight string `json:"bottom_right"`
	Horizontal  string `json:"horizontal"`
	Vertical    string `json:"vertical"`
	Padding     int    `json:"padding"`
}

// LineStyle is the glyph set used to draw connectors.
type LineStyle struct {
	Vertical   string
	Horizontal string
	DownRight  string
	DownLeft   string
	UpRight    string
	UpLeft     string
	Cross      string
}

var boxStyles = map[string]BoxStyle{
	"start":    {TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘", Horizontal: "─", Vertical: "│", Padding: 1},
	"process":  {TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘", Horizontal: "─", Vertical: "│", Padding: 1},
	"tool":     {TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝", Horizontal: "═", Vertical: "║", Padding: 1},
	"decision": {TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯", Horizontal: "─", Vertical: "│", Padding: 1},
	"result":   {TopLeft: "┏", TopRight: "┓", BottomLeft: "┗", BottomRight: "┛", Horizontal: "━", Vertical: "┃", Padding: 1},
	"special":  {TopLeft: "╒", TopRight: "╕", BottomLeft: "╘", BottomRight: "╛", Horizontal: "═", Vertical: "│", Padding: 1},
}

var lineStyles = map[string]LineStyle{
	"normal": {Vertical: "│", Horizontal: "─", DownRight: "┌", DownLeft: "┐", UpRight: "└", UpLeft: "┘", Cross: "┼"},
	"thick":  {Vertical: "┃", Horizontal: "━", DownRight: "┏", DownLeft: "┓", UpRight: "┗", UpLeft: "┛", Cross: "╋"},
	"double": {Vertical: "║", Horizontal: "═", DownRight: "╔", DownLeft: "╗", UpRight: "╚", UpLeft: "╝", Cross: "╬"},
	"dashed": {Vertical: "┊", Horizontal: "┄", DownRight: "┌", DownLeft: "┐", UpRight: "└", UpLeft: "┘", Cross: "┼"},
}

var arrows = map[string]string{
	"normal":      "→",
	"bold":        "⟶",
	"double":      "⇒",
	"success":     "✓→",
	"failure":     "✗→",
	"conditional": "?→",
}

// LookupBoxStyle returns the box style registered for kind, or the "process"
// style when kind is unknown.
func LookupBoxStyle(kind string) BoxStyle {
	if s, ok := boxStyles[kind]; ok {
		return s
	}
	return boxStyles[DefaultStepKind]
}

// LookupLineStyle returns the line style registered for kind, or the "normal"
// style when kind is unknown.
func LookupLineStyle(kind string) LineStyle {
	if s, ok := lineStyles[kind]; ok {
		return s
	}
	return lineStyles[DefaultEdgeKind]
}

// LookupArrow returns the arrow glyph registered for kind, or the "normal"
// arrow when kind is unknown.
func LookupArrow(kind string) string {
	if a, ok := arrows[kind]; ok {
		return a
	}
	return arrows[DefaultEdgeKind]
}

// IsBoxKind reports whether kind has a registered box style.
func IsBoxKind(kind string) bool {
	_, ok := boxStyles[kind]
	return ok
}

// Merge returns s with every empty glyph replaced by the matching glyph of
// base. Padding is clamped to zero.
func (s BoxStyle) Merge(base BoxStyle) BoxStyle {
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.TopLeft, base.TopLeft)
	fill(&s.TopRight, base.TopRight)
	fill(&s.BottomLeft, base.BottomLeft)
	fill(&s.BottomRight, base.BottomRight)
	fill(&s.Horizontal, base.Horizontal)
	fill(&s.Vertical, base.Vertical)
	if s.Padding < 0 {
		s.Padding = 0
	}
	return s
}
