package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/flowbox/pkg/errors"
	"github.com/matzehuels/flowbox/pkg/layout"
	"github.com/matzehuels/flowbox/pkg/workflow"
)

// LayoutStep is the exported geometry of one step.
type LayoutStep struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Kind   string `json:"type"`
	Level  int    `json:"level"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// LayoutEdge is the exported route of one connection. Path is empty when
// either endpoint is missing.
type LayoutEdge struct {
	Source string           `json:"source"`
	Target string           `json:"target"`
	Kind   string           `json:"type"`
	Label  string           `json:"label,omitempty"`
	Path   []workflow.Point `json:"path"`
}

// Layout is the computed geometry of a workflow.
type Layout struct {
	Title  string       `json:"title"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Steps  []LayoutStep `json:"steps"`
	Edges  []LayoutEdge `json:"edges"`
}

// BuildLayout lays w out if needed and collects its geometry.
func BuildLayout(w *workflow.Workflow) Layout {
	if !w.LaidOut() {
		layout.Apply(w)
	}
	levels := layout.AssignLevels(w, layout.TopologicalOrder(w)).ByStep()
	width, height := w.CanvasSize()

	out := Layout{
		Title:  w.Title,
		Width:  width,
		Height: height,
		Steps:  make([]LayoutStep, 0, w.StepCount()),
		Edges:  make([]LayoutEdge, 0, w.EdgeCount()),
	}
	for _, s := range w.Steps() {
		out.Steps = append(out.Steps, LayoutStep{
			ID:     s.ID,
			Label:  s.Label,
			Kind:   s.Kind,
			Level:  levels[s.ID],
			X:      s.X,
			Y:      s.Y,
			Width:  s.Width,
			Height: s.Height,
		})
	}
	for _, e := range w.Edges() {
		path := e.Path
		if path == nil {
			path = []workflow.Point{}
		}
		out.Edges = append(out.Edges, LayoutEdge{
			Source: e.Source,
			Target: e.Target,
			Kind:   e.Kind,
			Label:  e.Label,
			Path:   path,
		})
	}
	return out
}

// WriteJSON writes w in document form.
func WriteJSON(wr io.Writer, w *workflow.Workflow) error {
	return writeIndented(wr, fromWorkflow(w))
}

// WriteLayoutJSON writes the computed layout of w.
func WriteLayoutJSON(wr io.Writer, w *workflow.Workflow) error {
	return writeIndented(wr, BuildLayout(w))
}

// MarshalLayout returns the output of [WriteLayoutJSON] as bytes.
func MarshalLayout(w *workflow.Workflow) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteLayoutJSON(&buf, w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportJSON writes w in document form to path.
func ExportJSON(w *workflow.Workflow, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	if err := WriteJSON(f, w); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeIndented(wr io.Writer, v any) error {
	enc := json.NewEncoder(wr)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode JSON")
	}
	return nil
}
