package layout

import "github.com/matzehuels/flowbox/pkg/workflow"

// Route gives every edge a two-point path from the bottom-center of its
// source box to the top-center of its target box. Edges with an unknown
// endpoint get an empty path. Positions must already be computed.
//
// No elbow segments are produced: when the two centers are not vertically
// aligned the path is a single diagonal segment.
func Route(w *workflow.Workflow) {
	for _, e := range w.Edges() {
		src, dst, ok := w.Endpoints(e)
		if !ok {
			e.Path = nil
			continue
		}
		e.Path = []workflow.Point{
			{X: src.X + src.Width/2, Y: src.Y + src.Height},
			{X: dst.X + dst.Width/2, Y: dst.Y},
		}
	}
}
