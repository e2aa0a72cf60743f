package pipeline

import (
	"fmt"

	flowio "github.com/matzehuels/flowbox/pkg/io"
	"github.com/matzehuels/flowbox/pkg/render/ascii"
	"github.com/matzehuels/flowbox/pkg/render/nodelink"
	"github.com/matzehuels/flowbox/pkg/workflow"
)

// Render produces one artifact of w. Text and JSON output lay w out first
// if needed; DOT and SVG only read its steps and edges.
func Render(w *workflow.Workflow, format string, detailed bool) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(ascii.Render(w)), nil
	case FormatJSON:
		data, err := flowio.MarshalLayout(w)
		if err != nil {
			return nil, fmt.Errorf("serialize layout: %w", err)
		}
		return data, nil
	case FormatDOT:
		return []byte(nodelink.ToDOT(w, nodelink.Options{Detailed: detailed})), nil
	case FormatSVG:
		data, err := nodelink.RenderSVG(nodelink.ToDOT(w, nodelink.Options{Detailed: detailed}))
		if err != nil {
			return nil, fmt.Errorf("render svg: %w", err)
		}
		return data, nil
	default:
		return nil, ValidateFormat(format)
	}
}

// RenderAll renders every requested format of w.
func RenderAll(w *workflow.Workflow, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := Render(w, format, opts.Detailed)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
