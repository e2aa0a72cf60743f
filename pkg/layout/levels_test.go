package layout

import (
	"reflect"
	"testing"
)

func TestAssignLevels(t *testing.T) {
	tests := []struct {
		name  string
		ids   []string
		edges [][2]string
		want  Levels
	}{
		{
			name: "no edges",
			ids:  []string{"a", "b", "c"},
			want: Levels{0: {"c", "b", "a"}},
		},
		{
			name:  "chain",
			ids:   []string{"a", "b", "c"},
			edges: [][2]string{{"a", "b"}, {"b", "c"}},
			want:  Levels{0: {"a"}, 1: {"b"}, 2: {"c"}},
		},
		{
			name:  "longest path wins",
			ids:   []string{"a", "b", "c"},
			edges: [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}},
			want:  Levels{0: {"a"}, 1: {"b"}, 2: {"c"}},
		},
		{
			name:  "fan out",
			ids:   []string{"root", "left", "right"},
			edges: [][2]string{{"root", "left"}, {"root", "right"}},
			want:  Levels{0: {"root"}, 1: {"right", "left"}},
		},
		{
			name:  "cycle",
			ids:   []string{"a", "b"},
			edges: [][2]string{{"a", "b"}, {"b", "a"}},
			want:  Levels{1: {"a"}, 2: {"b"}},
		},
		{
			name:  "dangling edge",
			ids:   []string{"a", "b"},
			edges: [][2]string{{"ghost", "a"}, {"a", "b"}},
			want:  Levels{0: {"a"}, 1: {"b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := build(tt.ids, tt.edges)
			got := AssignLevels(w, TopologicalOrder(w))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AssignLevels() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssignLevelsDAGProperty(t *testing.T) {
	w := build(
		[]string{"h", "g", "f", "e", "d", "c", "b", "a"},
		[][2]string{
			{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"},
			{"d", "e"}, {"b", "f"}, {"f", "g"}, {"e", "g"}, {"a", "h"},
		},
	)

	levels := AssignLevels(w, TopologicalOrder(w))
	for _, e := range w.Edges() {
		u, _ := levels.Of(e.Source)
		v, _ := levels.Of(e.Target)
		if v <= u {
			t.Errorf("level(%s)=%d should exceed level(%s)=%d", e.Target, v, e.Source, u)
		}
	}
}

func TestLevelsSorted(t *testing.T) {
	l := Levels{3: {"c"}, 0: {"a"}, 1: {"b"}}
	if got, want := l.Sorted(), []int{0, 1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
	if _, ok := l.Of("missing"); ok {
		t.Error("Of(missing) should report false")
	}
}

func TestLevelsByStep(t *testing.T) {
	l := Levels{0: {"a", "b"}, 2: {"c"}}
	want := map[string]int{"a": 0, "b": 0, "c": 2}
	if got := l.ByStep(); !reflect.DeepEqual(got, want) {
		t.Errorf("ByStep() = %v, want %v", got, want)
	}
}
