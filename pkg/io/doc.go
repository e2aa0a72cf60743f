// Package io loads workflow documents into [workflow.Workflow] values and
// exports workflows and their computed layouts.
//
// # Document Format
//
// The same document shape is accepted as JSON, YAML or TOML:
//
//	title: CI
//	nodes:
//	  - id: build
//	    label: Build
//	    type: tool
//	    icon: "🔨"
//	    description: Compile and package
//	  - id: ship
//	    label: Ship
//	connections:
//	  - source: build
//	    target: ship
//	    type: thick
//	    label: ok
//
// Required fields are nodes[].id, nodes[].label, connections[].source and
// connections[].target. A node may also carry a "style" object overriding its
// glyphs (top_left, top_right, bottom_left, bottom_right, horizontal,
// vertical, padding); glyphs it omits come from the node type. Unknown fields
// are ignored.
//
// # Validation
//
// Documents are checked against an embedded JSON Schema before conversion.
// A document that fails to decode or validate yields a single error with
// code INVALID_DOCUMENT and no workflow. Connections that reference unknown
// node ids are not errors; they are kept and ignored during rendering.
//
// # Export
//
// [WriteJSON] writes a workflow back in document form. [WriteLayoutJSON]
// writes computed positions, levels and connector paths for external tools.
package io
