package ascii

import (
	"math"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(3, 2)
	if got, want := c.String(), "   \n   "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if c.Width() != 3 || c.Height() != 2 {
		t.Errorf("size = %dx%d, want 3x2", c.Width(), c.Height())
	}
}

func TestNewCanvasNegative(t *testing.T) {
	c := NewCanvas(-5, -1)
	if c.String() != "" {
		t.Errorf("String() = %q, want empty", c.String())
	}
}

func TestCanvasSetClips(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0, "x")
	c.Set(0, -1, "x")
	c.Set(2, 0, "x")
	c.Set(0, 2, "x")
	c.Set(1, 1, "x")

	if got, want := c.String(), "  \n x"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if c.At(5, 5) != "" {
		t.Errorf("At(5,5) = %q, want empty", c.At(5, 5))
	}
}

func TestCanvasText(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		text  string
		limit int
		want  string
	}{
		{"fits", 1, "ab", math.MaxInt, " ab  "},
		{"clipped by canvas", 3, "abcd", math.MaxInt, "   ab"},
		{"clipped by limit", 0, "abcd", 2, "ab   "},
		{"starts left of canvas", -2, "abcd", math.MaxInt, "cd   "},
		{"multibyte", 0, "🚀 go", math.MaxInt, "🚀 go "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(5, 1)
			c.Text(tt.x, 0, tt.text, tt.limit)
			if got := c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
