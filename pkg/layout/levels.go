package layout

import (
	"maps"
	"slices"

	"github.com/matzehuels/flowbox/pkg/workflow"
)

// Levels groups step ids by level. Within a level, ids keep the order in
// which they were passed to [AssignLevels].
type Levels map[int][]string

// Sorted returns the level numbers in ascending order.
func (l Levels) Sorted() []int {
	return slices.Sorted(maps.Keys(l))
}

// Of returns the level of id and whether id was assigned one.
func (l Levels) Of(id string) (int, bool) {
	for level, ids := range l {
		if slices.Contains(ids, id) {
			return level, true
		}
	}
	return 0, false
}

// ByStep inverts l into a map from step id to level.
func (l Levels) ByStep() map[string]int {
	byStep := make(map[string]int)
	for level, ids := range l {
		for _, id := range ids {
			byStep[id] = level
		}
	}
	return byStep
}

// AssignLevels assigns each id in order to a level.
//
// A step without incoming edges is at level 0. Any other step is one level
// below the deepest of its sources. A source that has not been assigned yet,
// which only happens when ordering broke a cycle, counts as level 0.
//
// For acyclic workflows ordered by [TopologicalOrder], every edge u→v with
// both endpoints present satisfies level(v) > level(u).
func AssignLevels(w *workflow.Workflow, order []string) Levels {
	parents := incoming(w)
	assigned := make(map[string]int, len(order))
	levels := make(Levels)

	for _, id := range order {
		level := 0
		if deps := parents[id]; len(deps) > 0 {
			deepest := 0
			for _, dep := range deps {
				deepest = max(deepest, assigned[dep])
			}
			level = deepest + 1
		}
		assigned[id] = level
		levels[level] = append(levels[level], id)
	}
	return levels
}
