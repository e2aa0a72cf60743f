package workflow

import (
	"reflect"
	"testing"
)

func TestNewDefaultTitle(t *testing.T) {
	if got := New("").Title; got != DefaultTitle {
		t.Errorf("Title = %q, want %q", got, DefaultTitle)
	}
	if got := New("CI").Title; got != "CI" {
		t.Errorf("Title = %q, want CI", got)
	}
}

func TestAddStepOverwriteKeepsPosition(t *testing.T) {
	w := New("")
	w.AddStep(&Step{ID: "a", Label: "first"})
	w.AddStep(&Step{ID: "b", Label: "B"})
	w.AddStep(&Step{ID: "a", Label: "second"})

	if got, want := w.StepIDs(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("StepIDs() = %v, want %v", got, want)
	}
	s, ok := w.Step("a")
	if !ok || s.Label != "second" {
		t.Errorf("Step(a) = %+v, %v; want label second", s, ok)
	}
	if w.StepCount() != 2 {
		t.Errorf("StepCount() = %d, want 2", w.StepCount())
	}
}

func TestAddDefaultsKinds(t *testing.T) {
	w := New("")
	s := &Step{ID: "a", Label: "A"}
	e := &Edge{Source: "a", Target: "b"}
	w.AddStep(s)
	w.AddEdge(e)

	if s.Kind != DefaultStepKind {
		t.Errorf("step Kind = %q, want %q", s.Kind, DefaultStepKind)
	}
	if e.Kind != DefaultEdgeKind {
		t.Errorf("edge Kind = %q, want %q", e.Kind, DefaultEdgeKind)
	}
}

func TestEndpoints(t *testing.T) {
	w := New("")
	w.AddStep(&Step{ID: "a", Label: "A"})
	w.AddStep(&Step{ID: "b", Label: "B"})
	good := &Edge{Source: "a", Target: "b"}
	dangling := &Edge{Source: "a", Target: "ghost"}
	w.AddEdge(good)
	w.AddEdge(dangling)

	if _, _, ok := w.Endpoints(good); !ok {
		t.Error("Endpoints(a->b) should resolve")
	}
	if _, _, ok := w.Endpoints(dangling); ok {
		t.Error("Endpoints(a->ghost) should not resolve")
	}
	if w.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2 (dangling edges are retained)", w.EdgeCount())
	}
}

func TestMutationInvalidatesLayout(t *testing.T) {
	w := New("")
	w.MarkLaidOut()
	w.AddStep(&Step{ID: "a", Label: "A"})
	if w.LaidOut() {
		t.Error("AddStep should mark layout stale")
	}

	w.MarkLaidOut()
	w.AddEdge(&Edge{Source: "a", Target: "a"})
	if w.LaidOut() {
		t.Error("AddEdge should mark layout stale")
	}
}

func TestSample(t *testing.T) {
	w := Sample()
	if w.StepCount() != 8 {
		t.Errorf("StepCount() = %d, want 8", w.StepCount())
	}
	if w.EdgeCount() != 7 {
		t.Errorf("EdgeCount() = %d, want 7", w.EdgeCount())
	}
	for _, e := range w.Edges() {
		if _, _, ok := w.Endpoints(e); !ok {
			t.Errorf("sample edge %s->%s does not resolve", e.Source, e.Target)
		}
	}
}
