package trace

import (
	"math"
	"slices"

	"github.com/katalvlaran/stepgraph/core"
)

// Emitter is the recording hook every algorithm runner writes through.
//
// A runner built with Discard() never allocates snapshots: Enabled reports
// false and the runner skips building the Step. A runner built with
// NewEmitter(yield) hands each Step to the iterator consumer; once the
// consumer stops, Stopped reports true and the runner must return.
type Emitter struct {
	yield   func(Step) bool
	next    int
	stopped bool
}

// NewEmitter returns an Emitter feeding yield.
func NewEmitter(yield func(Step) bool) *Emitter {
	return &Emitter{yield: yield}
}

// Discard returns a disabled Emitter for untraced runs.
func Discard() *Emitter { return &Emitter{} }

// Enabled reports whether emitted steps reach a consumer.
func (e *Emitter) Enabled() bool { return e.yield != nil && !e.stopped }

// Stopped reports whether the consumer asked to stop.
func (e *Emitter) Stopped() bool { return e.stopped }

// Emit stamps s with the next index and hands it to the consumer. It returns
// false once the consumer has stopped; a disabled Emitter always returns true.
func (e *Emitter) Emit(s Step) bool {
	if e.stopped {
		return false
	}
	if e.yield == nil {
		return true
	}
	s.Index = e.next
	e.next++
	if s.Status == "" {
		s.Status = StatusRunning
	}
	if s.Visited == nil {
		s.Visited = []string{}
	}
	if s.Frontier == nil {
		s.Frontier = []string{}
	}
	if s.Path == nil {
		s.Path = []core.Edge{}
	}
	if !e.yield(s) {
		e.stopped = true

		return false
	}

	return true
}

// Count returns how many steps were emitted.
func (e *Emitter) Count() int { return e.next }

// Nodes copies a node list for a snapshot.
func Nodes(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return slices.Clone(ids)
}

// Edges copies an edge list for a snapshot.
func Edges(edges []core.Edge) []core.Edge {
	if edges == nil {
		return []core.Edge{}
	}

	return slices.Clone(edges)
}

// EdgeRef returns a pointer to a copy of e, for Step.Edge.
func EdgeRef(e core.Edge) *core.Edge { return &e }

// Distances copies the finite entries of dist. Unreached nodes (+Inf) are
// left out so the snapshot stays JSON-encodable.
func Distances(dist map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(dist))
	for k, v := range dist {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		out[k] = v
	}

	return out
}
