package layout

import "github.com/matzehuels/flowbox/pkg/workflow"

// TopologicalOrder returns every step id exactly once, ordered so that for
// each edge u→v outside a cycle, u precedes v.
//
// The order is the reversed post-order of a depth-first search that starts
// from steps in insertion order and follows edges in insertion order. An edge
// leading back to a step still on the search stack closes a cycle and is
// skipped. Edges with an unknown endpoint are ignored.
func TopologicalOrder(w *workflow.Workflow) []string {
	const (
		white = iota
		gray
		black
	)

	adjacency := outgoing(w)
	color := make(map[string]int, w.StepCount())
	result := make([]string, 0, w.StepCount())

	var visit func(id string)
	visit = func(id string) {
		color[id] = gray
		for _, next := range adjacency[id] {
			if color[next] == white {
				visit(next)
			}
		}
		color[id] = black
		result = append(result, id)
	}

	for _, id := range w.StepIDs() {
		if color[id] == white {
			visit(id)
		}
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// outgoing maps each step id to the targets of its resolvable edges.
func outgoing(w *workflow.Workflow) map[string][]string {
	adj := make(map[string][]string, w.StepCount())
	for _, e := range w.Edges() {
		if _, _, ok := w.Endpoints(e); ok {
			adj[e.Source] = append(adj[e.Source], e.Target)
		}
	}
	return adj
}

// incoming maps each step id to the sources of its resolvable edges.
func incoming(w *workflow.Workflow) map[string][]string {
	adj := make(map[string][]string, w.StepCount())
	for _, e := range w.Edges() {
		if _, _, ok := w.Endpoints(e); ok {
			adj[e.Target] = append(adj[e.Target], e.Source)
		}
	}
	return adj
}
