package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/flowbox/pkg/workflow"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the description and kind to node labels.
	Detailed bool
}

var nodeAttrs = map[string][]string{
	"start":    {"shape=ellipse"},
	"process":  {"shape=box", `style="rounded,filled"`},
	"tool":     {"shape=box"},
	"decision": {"shape=diamond"},
	"result":   {"shape=box", "peripheries=2"},
	"special":  {"shape=hexagon"},
}

var edgeAttrs = map[string][]string{
	"thick":  {"penwidth=2.5"},
	"double": {`color="black:black"`},
	"dashed": {"style=dashed"},
}

// ToDOT converts a workflow to Graphviz DOT source.
func ToDOT(w *workflow.Workflow, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", w.Title)
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  node [style=filled, fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, s := range w.Steps() {
		attrs := append([]string{fmt.Sprintf("label=%q", fmtLabel(s, opts.Detailed))}, kindAttrs(nodeAttrs, s.Kind, "process")...)
		fmt.Fprintf(&buf, "  %q [%s];\n", s.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range w.Edges() {
		if _, _, ok := w.Endpoints(e); !ok {
			continue
		}
		attrs := kindAttrs(edgeAttrs, e.Kind, "")
		if e.Label != "" {
			attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.Source, e.Target, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func kindAttrs(table map[string][]string, kind, fallback string) []string {
	attrs, ok := table[kind]
	if !ok {
		attrs = table[fallback]
	}
	return append([]string(nil), attrs...)
}

func fmtLabel(s *workflow.Step, detailed bool) string {
	if !detailed {
		return s.Heading()
	}
	parts := []string{s.Heading()}
	if s.Description != "" {
		parts = append(parts, s.Description)
	}
	parts = append(parts, "type: "+s.Kind)
	return strings.Join(parts, "\n")
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root tag with one whose size matches the
// viewBox, dropping Graphviz's pt units.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
