package dijkstra

import (
	"errors"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source node does not exist.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrEndNotFound indicates that WithEnd names a node that does not exist.
	ErrEndNotFound = errors.New("dijkstra: end node not found in graph")

	// ErrNegativeWeight indicates that the graph holds a negative edge weight.
	// It is reported before any relaxation takes place. Self-loops are exempt:
	// they are never relaxed, so a negative loop cannot change a distance.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// End – if non-empty, the search stops as soon as End is finalized.
type Options struct {
	End string
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithEnd sets the target node. Without it every reachable node is settled.
func WithEnd(end string) Option {
	return func(o *Options) {
		o.End = end
	}
}

// DefaultOptions returns Options with no target (single-source, all nodes).
func DefaultOptions() Options {
	return Options{}
}

// Result is the outcome of a shortest-path search.
//
// Dist holds the final distance of every settled node and the tentative
// distance of nodes reached but not settled when the search stopped early;
// unreached nodes are absent. Prev maps a node to its predecessor on the
// best known path, PrevEdge to the edge used.
type Result struct {
	Source   string
	Dist     map[string]float64
	Prev     map[string]string
	PrevEdge map[string]core.Edge

	// Path, Edges and Total describe Source→End when Status is trace.StatusFound.
	Path  []string
	Edges []core.Edge
	Total float64

	// Status is Found, NoPath or, without an end node, Completed.
	Status trace.Status
}
