package layout_test

import (
	"fmt"

	"github.com/matzehuels/flowbox/pkg/layout"
	"github.com/matzehuels/flowbox/pkg/workflow"
)

func ExampleAssignLevels() {
	w := workflow.New("Release")
	w.AddStep(&workflow.Step{ID: "build", Label: "Build"})
	w.AddStep(&workflow.Step{ID: "test", Label: "Test"})
	w.AddStep(&workflow.Step{ID: "ship", Label: "Ship"})
	w.AddEdge(&workflow.Edge{Source: "build", Target: "test"})
	w.AddEdge(&workflow.Edge{Source: "test", Target: "ship"})

	levels := layout.AssignLevels(w, layout.TopologicalOrder(w))
	for _, level := range levels.Sorted() {
		fmt.Println(level, levels[level])
	}
	// Output:
	// 0 [build]
	// 1 [test]
	// 2 [ship]
}

func ExampleApply() {
	w := workflow.New("Hello")
	w.AddStep(&workflow.Step{ID: "a", Label: "Start"})
	w.AddStep(&workflow.Step{ID: "b", Label: "End"})
	w.AddEdge(&workflow.Edge{Source: "a", Target: "b"})

	layout.Apply(w)

	for _, e := range w.Edges() {
		fmt.Println(e.Path)
	}
	// Output:
	// [{40 5} {40 7}]
}
