// Package render groups the diagram renderers.
//
// # Text Diagrams
//
// The [ascii] subpackage rasterizes a laid-out workflow onto a character
// canvas. This is Flowbox's primary output.
//
//	layout.Apply(w)
//	fmt.Println(ascii.Render(w))
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage emits Graphviz DOT and renders it to SVG.
// Graphviz does its own layout; coordinates computed by pkg/layout are
// not used.
//
//	dot := nodelink.ToDOT(w, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// [ascii]: github.com/matzehuels/flowbox/pkg/render/ascii
// [nodelink]: github.com/matzehuels/flowbox/pkg/render/nodelink
package render
