// Package ascii rasterizes a laid-out workflow onto a character canvas.
//
// [Render] paints three layers in a fixed order, each overwriting the cells
// of the previous one:
//
//  1. the title, centered on row 0
//  2. every routed edge: its line, arrowhead and optional label
//  3. every step: border and wrapped text
//
// Within a layer, edges and steps are drawn in insertion order. Interiors of
// boxes are not cleared, so a connector passing under a box shows through
// wherever no text is written.
//
// All writes are bounds-checked; anything outside the canvas is dropped.
package ascii
