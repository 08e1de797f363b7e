// Package trace defines the Step record emitted by every stepgraph algorithm,
// the terminal Status vocabulary, the Emitter that algorithms record through,
// and the Overlay a presentation layer derives from a replayed prefix.
package trace

import (
	"iter"

	"github.com/katalvlaran/stepgraph/core"
)

// Kind tags what a Step records.
type Kind string

// Step kinds shared by all algorithms.
const (
	// KindStart opens a run (source chosen, tables initialised).
	KindStart Kind = "start"
	// KindEnqueue adds a node to the frontier (BFS queue, Dijkstra heap, new forest seed).
	KindEnqueue Kind = "enqueue"
	// KindVisit marks a node visited, dequeued or finalized.
	KindVisit Kind = "visit"
	// KindBacktrack leaves a node whose neighbors are exhausted (DFS).
	KindBacktrack Kind = "backtrack"
	// KindRelax records a strictly improved distance.
	KindRelax Kind = "relax"
	// KindPass opens a Bellman-Ford pass or a Floyd-Warshall intermediate node.
	KindPass Kind = "pass"
	// KindAccept adds an edge to a spanning tree.
	KindAccept Kind = "accept"
	// KindReject discards an edge (same union-find set).
	KindReject Kind = "reject"
	// KindDone is always the last step and carries the terminal Status.
	KindDone Kind = "done"
)

// Status is the outcome of a run. Every step but the last one is
// StatusRunning; terminal statuses are successful completions, never errors.
type Status string

// Terminal statuses.
const (
	StatusRunning Status = "running"

	// StatusFound: a path to the requested end node exists.
	StatusFound Status = "found"
	// StatusCompleted: traversal, all-pairs or spanning tree finished with nothing missing.
	StatusCompleted Status = "completed"
	// StatusNoPath: the end node is unreachable from the start node.
	StatusNoPath Status = "no_path_found"
	// StatusNegativeCycle: a negative cycle is reachable from the source.
	StatusNegativeCycle Status = "negative_cycle_detected"
	// StatusDisconnected: only a spanning forest / partial tree exists.
	StatusDisconnected Status = "disconnected"
	// StatusInvalidDirected: the algorithm requires an undirected graph.
	StatusInvalidDirected Status = "invalid_for_directed_graph"
	// StatusInvalidNegative: the algorithm requires non-negative weights.
	StatusInvalidNegative Status = "invalid_for_weighted_negative"
)

// Terminal reports whether s ends a run.
func (s Status) Terminal() bool { return s != StatusRunning && s != "" }

// Usage reports whether s is a usage error surfaced before any computation.
func (s Status) Usage() bool {
	return s == StatusInvalidDirected || s == StatusInvalidNegative
}

// Step is one immutable replay unit, recorded after one atomic change.
//
// Visited, Frontier and Path are cumulative snapshots, so the overlay after
// any prefix of a trace is fully described by its last step.
type Step struct {
	// Index is the emission sequence number, starting at 0.
	Index int `json:"index"`

	// Kind tags the recorded transition.
	Kind Kind `json:"kind"`

	// Current is the node being processed, if any.
	Current string `json:"current,omitempty"`

	// Visited lists visited nodes in visit order.
	Visited []string `json:"visited"`

	// Frontier lists nodes currently queued, stacked or tentatively reached.
	Frontier []string `json:"frontier"`

	// Edge is the edge just considered, if any.
	Edge *core.Edge `json:"edge,omitempty"`

	// Path holds the path or tree edges accumulated so far. On the final step
	// of a successful path search it is exactly the found path.
	Path []core.Edge `json:"path"`

	// Description is a human-readable sentence about the change.
	Description string `json:"description"`

	// Values carries algorithm-specific named values (distance tables, pass
	// numbers, component counts). Infinite distances are omitted.
	Values map[string]any `json:"values,omitempty"`

	// Status is StatusRunning except on the final step.
	Status Status `json:"status"`
}

// Final reports whether s is the terminal step of its trace.
func (s Step) Final() bool { return s.Kind == KindDone }

// Seq is a lazy, finite step sequence. Calling it again re-runs the
// algorithm from scratch.
type Seq = iter.Seq[Step]

// Failure returns the single terminal step used to render a usage error as a
// trace.
func Failure(status Status, description string) Step {
	return Step{
		Kind:        KindDone,
		Visited:     []string{},
		Frontier:    []string{},
		Path:        []core.Edge{},
		Description: description,
		Status:      status,
	}
}

// FailureSeq wraps Failure into a one-step Seq.
func FailureSeq(status Status, description string) Seq {
	return func(yield func(Step) bool) {
		yield(Failure(status, description))
	}
}

// Collect drains seq into a slice.
func Collect(seq Seq) []Step {
	var out []Step
	for s := range seq {
		out = append(out, s)
	}

	return out
}
