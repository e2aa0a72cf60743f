// Package nodelink renders workflows as Graphviz node-link diagrams.
//
// # Usage
//
// Convert a workflow to DOT, then render it to SVG:
//
//	dot := nodelink.ToDOT(w, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Options
//
//   - Detailed: node labels also carry the step description and kind
//
// # DOT Format
//
// The generated graph flows top to bottom (rankdir=TB) like the text
// diagram. Step kinds map to node shapes (start is an ellipse, decision a
// diamond, result a double-bordered box) and connector kinds map to edge
// styles (thick, double, dashed). Connectors with an unknown endpoint are
// left out.
//
// # Dependencies
//
// [RenderSVG] uses [github.com/goccy/go-graphviz], which runs Graphviz
// in-process, so no system Graphviz installation is needed.
package nodelink
