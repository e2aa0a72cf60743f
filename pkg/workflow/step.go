package workflow

import (
	"strings"
	"unicode/utf8"
)

// minWrapWidth is the narrowest line a description is wrapped to.
const minWrapWidth = 30

// Step is a workflow node rendered as a bordered text box.
//
// ID, Label and Kind come from the workflow document. X, Y, Width and Height
// are computed during layout and are zero before that.
type Step struct {
	ID          string
	Label       string
	Kind        string
	Icon        string
	Description string

	// Style overrides the glyph set selected by Kind. Nil means the
	// registered style for Kind.
	Style *BoxStyle

	X      int
	Y      int
	Width  int
	Height int
}

// BoxStyle returns the glyph set used to draw the step.
func (s *Step) BoxStyle() BoxStyle {
	if s.Style != nil {
		return *s.Style
	}
	return LookupBoxStyle(s.Kind)
}

// Heading returns the first display line: the icon and label separated by a
// space, or just the label when no icon is set.
func (s *Step) Heading() string {
	if s.Icon != "" {
		return s.Icon + " " + s.Label
	}
	return s.Label
}

// RenderableLines returns the lines drawn inside the step's box. The first
// line is [Step.Heading]; the remaining lines are the description wrapped
// greedily at max(len(heading), 30) code points. Words are never split.
func (s *Step) RenderableLines() []string {
	heading := s.Heading()
	lines := []string{heading}
	if s.Description == "" {
		return lines
	}
	return append(lines, wrap(s.Description, max(textWidth(heading), minWrapWidth))...)
}

// ComputeBoxSize sets Width and Height from the renderable lines and the
// style's padding, and returns them.
func (s *Step) ComputeBoxSize() (width, height int) {
	lines := s.RenderableLines()
	padding := s.BoxStyle().Padding

	longest := 0
	for _, l := range lines {
		longest = max(longest, textWidth(l))
	}
	s.Width = longest + 2*padding
	s.Height = len(lines) + 2*padding
	return s.Width, s.Height
}

// wrap splits text on whitespace and packs words into lines of at most
// limit code points. A word that does not fit closes the current line and
// starts the next one, so a leading word longer than limit is preceded by
// an empty line.
func wrap(text string, limit int) []string {
	var (
		lines   []string
		current []string
		length  int
	)
	for _, word := range strings.Fields(text) {
		n := textWidth(word)
		sep := 0
		if length > 0 {
			sep = 1
		}
		if length+sep+n <= limit {
			current = append(current, word)
			length += sep + n
			continue
		}
		lines = append(lines, strings.Join(current, " "))
		current = []string{word}
		length = n
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// textWidth is the number of canvas cells s occupies.
func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}
