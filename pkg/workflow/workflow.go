package workflow

// DefaultTitle is used when a document does not name its workflow.
const DefaultTitle = "Workflow"

// Workflow is the aggregate root: a title, steps keyed by id and an ordered
// list of edges.
//
// Steps are iterated in first-insertion order; adding a step whose id is
// already present replaces the stored step in place. Edges keep insertion
// order, which is also their draw order.
//
// A Workflow is not safe for concurrent use. Rendering the same instance from
// two goroutines must be serialized by the caller.
type Workflow struct {
	Title string

	steps map[string]*Step
	order []string
	edges []*Edge

	width   int
	height  int
	laidOut bool
}

// New creates an empty workflow. An empty title becomes [DefaultTitle].
func New(title string) *Workflow {
	if title == "" {
		title = DefaultTitle
	}
	return &Workflow{
		Title: title,
		steps: make(map[string]*Step),
	}
}

// AddStep adds s, replacing any step with the same id. Kind defaults to
// [DefaultStepKind]. Existing layout results become stale.
func (w *Workflow) AddStep(s *Step) {
	if s.Kind == "" {
		s.Kind = DefaultStepKind
	}
	if _, exists := w.steps[s.ID]; !exists {
		w.order = append(w.order, s.ID)
	}
	w.steps[s.ID] = s
	w.laidOut = false
}

// AddEdge appends e. Kind defaults to [DefaultEdgeKind]. Edges referencing
// unknown step ids are accepted and ignored by layout and rendering.
func (w *Workflow) AddEdge(e *Edge) {
	if e.Kind == "" {
		e.Kind = DefaultEdgeKind
	}
	w.edges = append(w.edges, e)
	w.laidOut = false
}

// Step returns the step with the given id.
func (w *Workflow) Step(id string) (*Step, bool) {
	s, ok := w.steps[id]
	return s, ok
}

// Steps returns all steps in insertion order.
func (w *Workflow) Steps() []*Step {
	out := make([]*Step, len(w.order))
	for i, id := range w.order {
		out[i] = w.steps[id]
	}
	return out
}

// StepIDs returns all step ids in insertion order.
func (w *Workflow) StepIDs() []string {
	return append([]string(nil), w.order...)
}

// Edges returns the edges in insertion order.
func (w *Workflow) Edges() []*Edge { return w.edges }

// StepCount returns the number of steps.
func (w *Workflow) StepCount() int { return len(w.order) }

// EdgeCount returns the number of edges, including dangling ones.
func (w *Workflow) EdgeCount() int { return len(w.edges) }

// Endpoints resolves both ends of e. ok is false when either id is unknown.
func (w *Workflow) Endpoints(e *Edge) (src, dst *Step, ok bool) {
	src, okSrc := w.steps[e.Source]
	dst, okDst := w.steps[e.Target]
	if !okSrc || !okDst {
		return nil, nil, false
	}
	return src, dst, true
}

// CanvasSize returns the canvas dimensions computed by layout.
func (w *Workflow) CanvasSize() (width, height int) { return w.width, w.height }

// SetCanvasSize records the canvas dimensions computed by layout.
func (w *Workflow) SetCanvasSize(width, height int) {
	w.width, w.height = width, height
}

// LaidOut reports whether layout and routing ran since the last mutation.
func (w *Workflow) LaidOut() bool { return w.laidOut }

// MarkLaidOut records that layout and routing are current.
func (w *Workflow) MarkLaidOut() { w.laidOut = true }
