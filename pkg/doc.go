// Package pkg provides the core libraries for Flowbox workflow diagrams.
//
// # Overview
//
// Flowbox turns a workflow definition (steps connected by edges) into a
// box-and-arrow diagram drawn with Unicode box-drawing characters. The pkg
// directory is organized into a few areas:
//
//  1. [workflow] - Domain model (steps, edges, glyph styles)
//  2. [layout] - Ordering, leveling, placement and edge routing
//  3. [render] - Output: text canvas, Graphviz DOT and SVG
//  4. [io] - JSON, YAML and TOML loading plus layout export
//  5. [pipeline] - Orchestration (load → layout → render) with caching
//
// # Architecture
//
// The typical data flow through Flowbox:
//
//	JSON / YAML / TOML document
//	         ↓
//	    [io] package (canonicalize, validate, decode)
//	         ↓
//	    [workflow] package (steps + edges)
//	         ↓
//	    [layout] package (levels, coordinates, paths)
//	         ↓
//	    [render/ascii] / [render/nodelink] / [io] layout JSON
//
// # Quick Start
//
//	w, _ := io.ImportFile("pipeline.yaml")
//	layout.Apply(w)
//	fmt.Println(ascii.Render(w))
//
// Or let the pipeline handle caching and multiple formats:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil)
//	res, _ := runner.Execute(ctx, pipeline.Options{
//	    Input:       data,
//	    InputFormat: io.FormatYAML,
//	    Formats:     []string{pipeline.FormatText, pipeline.FormatSVG},
//	})
//
// # Supporting Packages
//
// [cache] - Artifact cache backends: file (CLI default), Redis and null.
//
// [observability] - Hooks for load, layout, render, cache and HTTP events.
//
// [errors] - Coded errors shared by the CLI and HTTP server.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/layout/...             # Specific package
//	go test -run Example ./pkg/...       # Examples only
package pkg
