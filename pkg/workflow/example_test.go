package workflow_test

import (
	"fmt"

	"github.com/matzehuels/flowbox/pkg/workflow"
)

func ExampleStep_RenderableLines() {
	s := &workflow.Step{
		Label:       "Build",
		Icon:        "🔨",
		Description: "Compile every package and collect the artifacts for release",
	}
	for _, line := range s.RenderableLines() {
		fmt.Println(line)
	}
	// Output:
	// 🔨 Build
	// Compile every package and
	// collect the artifacts for
	// release
}

func ExampleStep_ComputeBoxSize() {
	s := &workflow.Step{Label: "Start", Kind: "start"}
	w, h := s.ComputeBoxSize()
	fmt.Println(w, h)
	// Output:
	// 7 3
}
