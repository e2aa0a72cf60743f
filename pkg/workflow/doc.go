// Package workflow holds the in-memory model of a workflow diagram: steps
// (rendered as bordered boxes), edges (rendered as connectors) and the
// [Workflow] aggregate that owns them.
//
// # Overview
//
// A workflow is built once, usually by the loader in pkg/io, and then handed
// to pkg/layout and pkg/render/ascii:
//
//	w := workflow.New("Deploy")
//	w.AddStep(&workflow.Step{ID: "build", Label: "Build", Kind: "tool"})
//	w.AddStep(&workflow.Step{ID: "ship", Label: "Ship"})
//	w.AddEdge(&workflow.Edge{Source: "build", Target: "ship"})
//
// Edges hold step ids, not pointers. An edge may reference an id that does not
// exist; every consumer resolves ids through [Workflow.Step] and skips edges
// whose endpoints cannot be found.
//
// # Styles
//
// Steps and edges carry a kind tag that selects a glyph set from a fixed
// registry ([LookupBoxStyle], [LookupLineStyle], [LookupArrow]). Unknown tags
// fall back to the "process" box style and the "normal" line style and arrow.
//
// # Computed Fields
//
// [Step] X, Y, Width and Height are zero until layout runs. [Step.ComputeBoxSize]
// fills Width and Height; pkg/layout fills the coordinates.
package workflow
