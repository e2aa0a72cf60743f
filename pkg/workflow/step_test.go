package workflow

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestStepRenderableLines(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want []string
	}{
		{
			name: "label only",
			step: Step{Label: "Start"},
			want: []string{"Start"},
		},
		{
			name: "icon prefix",
			step: Step{Label: "Start", Icon: "🚀"},
			want: []string{"🚀 Start"},
		},
		{
			name: "short description",
			step: Step{Label: "Build", Description: "compile sources"},
			want: []string{"Build", "compile sources"},
		},
		{
			name: "wraps at thirty",
			step: Step{Label: "Build", Description: "compile all the sources and then package the binary"},
			want: []string{"Build", "compile all the sources and", "then package the binary"},
		},
		{
			name: "wraps at heading width when wider",
			step: Step{Label: "A very long heading for this step!", Description: "one two three four five six seven eight nine"},
			want: []string{"A very long heading for this step!", "one two three four five six seven", "eight nine"},
		},
		{
			name: "oversized word gets own line",
			step: Step{Label: "X", Description: "a supercalifragilisticexpialidocious b"},
			want: []string{"X", "a", "supercalifragilisticexpialidocious", "b"},
		},
		{
			name: "oversized leading word leaves an empty line",
			step: Step{Label: "X", Description: "supercalifragilisticexpialidocious b"},
			want: []string{"X", "", "supercalifragilisticexpialidocious", "b"},
		},
		{
			name: "collapses whitespace",
			step: Step{Label: "X", Description: "  spaced \t out\nwords  "},
			want: []string{"X", "spaced out words"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.step.RenderableLines()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RenderableLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStepRenderableLinesWithinWidth(t *testing.T) {
	s := Step{
		Label:       "Deploy",
		Description: strings.Repeat("lorem ipsum dolor sit amet ", 12),
	}

	lines := s.RenderableLines()
	if len(lines) <= 1 {
		t.Fatalf("expected wrapped description, got %d lines", len(lines))
	}

	limit := max(utf8.RuneCountInString(lines[0]), 30)
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n > limit {
			t.Errorf("line %d has %d code points, limit %d: %q", i, n, limit, l)
		}
	}
}

func TestStepComputeBoxSize(t *testing.T) {
	tests := []struct {
		name       string
		step       Step
		wantWidth  int
		wantHeight int
	}{
		{"label", Step{Label: "Start"}, 7, 3},
		{"icon counts code points", Step{Label: "Start", Icon: "🚀"}, 9, 3},
		{"description", Step{Label: "Build", Description: "compile sources"}, 17, 4},
		{"oversized leading word", Step{Label: "Hi", Description: strings.Repeat("w", 38)}, 40, 5},
		{"zero padding", Step{Label: "ab", Style: &BoxStyle{Padding: 0}}, 2, 1},
		{"wide padding", Step{Label: "ab", Style: &BoxStyle{Padding: 3}}, 8, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.step.ComputeBoxSize()
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("ComputeBoxSize() = (%d, %d), want (%d, %d)", w, h, tt.wantWidth, tt.wantHeight)
			}
			if tt.step.Width != w || tt.step.Height != h {
				t.Errorf("fields = (%d, %d), want (%d, %d)", tt.step.Width, tt.step.Height, w, h)
			}
		})
	}
}

func TestStepBoxStyle(t *testing.T) {
	s := Step{Kind: "tool"}
	if got := s.BoxStyle().TopLeft; got != "╔" {
		t.Errorf("tool TopLeft = %q, want ╔", got)
	}

	s.Kind = "no-such-kind"
	if got := s.BoxStyle(); got != LookupBoxStyle("process") {
		t.Errorf("unknown kind style = %+v, want process", got)
	}

	custom := BoxStyle{TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+", Horizontal: "-", Vertical: "|", Padding: 2}
	s.Style = &custom
	if got := s.BoxStyle(); got != custom {
		t.Errorf("override style = %+v, want %+v", got, custom)
	}
}
