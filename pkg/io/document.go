package io

import "github.com/matzehuels/flowbox/pkg/workflow"

type document struct {
	Title       *string      `json:"title,omitempty"`
	Nodes       []node       `json:"nodes"`
	Connections []connection `json:"connections"`
}

type node struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Type        string `json:"type,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	Style       *style `json:"style,omitempty"`
}

type style struct {
	TopLeft     string `json:"top_left,omitempty"`
	TopRight    string `json:"top_right,omitempty"`
	BottomLeft  string `json:"bottom_left,omitempty"`
	BottomRight string `json:"bottom_right,omitempty"`
	Horizontal  string `json:"horizontal,omitempty"`
	Vertical    string `json:"vertical,omitempty"`
	Padding     *int   `json:"padding,omitempty"`
}

type connection struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type,omitempty"`
	Label  string `json:"label,omitempty"`
}

func (d document) toWorkflow() *workflow.Workflow {
	w := workflow.New(workflow.DefaultTitle)
	if d.Title != nil {
		w.Title = *d.Title
	}

	for _, n := range d.Nodes {
		kind := n.Type
		if kind == "" {
			kind = workflow.DefaultStepKind
		}
		s := &workflow.Step{
			ID:          n.ID,
			Label:       n.Label,
			Kind:        kind,
			Icon:        n.Icon,
			Description: n.Description,
		}
		if n.Style != nil {
			override := n.Style.boxStyle(workflow.LookupBoxStyle(kind))
			s.Style = &override
		}
		w.AddStep(s)
	}

	for _, c := range d.Connections {
		w.AddEdge(&workflow.Edge{
			Source: c.Source,
			Target: c.Target,
			Kind:   c.Type,
			Label:  c.Label,
		})
	}
	return w
}

func (s *style) boxStyle(base workflow.BoxStyle) workflow.BoxStyle {
	out := workflow.BoxStyle{
		TopLeft:     s.TopLeft,
		TopRight:    s.TopRight,
		BottomLeft:  s.BottomLeft,
		BottomRight: s.BottomRight,
		Horizontal:  s.Horizontal,
		Vertical:    s.Vertical,
		Padding:     base.Padding,
	}
	if s.Padding != nil {
		out.Padding = *s.Padding
	}
	return out.Merge(base)
}

func fromWorkflow(w *workflow.Workflow) document {
	title := w.Title
	d := document{
		Title:       &title,
		Nodes:       make([]node, 0, w.StepCount()),
		Connections: make([]connection, 0, w.EdgeCount()),
	}
	for _, s := range w.Steps() {
		n := node{
			ID:          s.ID,
			Label:       s.Label,
			Type:        s.Kind,
			Icon:        s.Icon,
			Description: s.Description,
		}
		if s.Style != nil {
			padding := s.Style.Padding
			n.Style = &style{
				TopLeft:     s.Style.TopLeft,
				TopRight:    s.Style.TopRight,
				BottomLeft:  s.Style.BottomLeft,
				BottomRight: s.Style.BottomRight,
				Horizontal:  s.Style.Horizontal,
				Vertical:    s.Style.Vertical,
				Padding:     &padding,
			}
		}
		d.Nodes = append(d.Nodes, n)
	}
	for _, e := range w.Edges() {
		d.Connections = append(d.Connections, connection{
			Source: e.Source,
			Target: e.Target,
			Type:   e.Kind,
			Label:  e.Label,
		})
	}
	return d
}
