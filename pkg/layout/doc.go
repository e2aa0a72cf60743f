// Package layout places workflow steps on a character grid and routes the
// connectors between them.
//
// # Pipeline
//
// Layout runs in three stages, each usable on its own:
//
//  1. [TopologicalOrder] orders step ids so that sources come before targets.
//  2. [AssignLevels] groups steps into levels: a step sits one level below the
//     deepest step that points to it.
//  3. [Compute] sizes every box, spaces each level evenly across the canvas and
//     stacks levels vertically; [Route] then connects the bottom-center of each
//     source box to the top-center of its target.
//
// [Apply] runs Compute and Route and marks the workflow laid out.
//
// # Cycles and Dangling Edges
//
// Neither is an error. Edges whose endpoints are not steps are ignored by
// every stage and get an empty path. Cycles are broken during ordering by
// treating the edge that closes the cycle as absent, so layout always
// terminates and every step is placed exactly once.
//
// # Geometry
//
// Coordinates can be negative or exceed the canvas when a level holds many
// wide steps. The rasterizer clips writes outside the canvas, so this is not
// corrected here.
package layout
