package bellmanford

import (
	"errors"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrSourceNotFound indicates that the source node does not exist.
	ErrSourceNotFound = errors.New("bellmanford: source node not found in graph")

	// ErrEndNotFound indicates that WithEnd names a node that does not exist.
	ErrEndNotFound = errors.New("bellmanford: end node not found in graph")
)

// Options configures a Bellman-Ford run.
type Options struct {
	// End, if non-empty, selects the node whose path is reported.
	End string
}

// Option is a functional option for ShortestPath.
type Option func(*Options)

// WithEnd sets the node whose path is reported.
func WithEnd(end string) Option {
	return func(o *Options) { o.End = end }
}

// Result is the outcome of a Bellman-Ford run.
type Result struct {
	Source string

	// Dist holds the distance of every node reachable from Source.
	// It is not meaningful when Status is trace.StatusNegativeCycle.
	Dist     map[string]float64
	Prev     map[string]string
	PrevEdge map[string]core.Edge

	// Path, Edges and Total describe Source→End when Status is trace.StatusFound.
	Path  []string
	Edges []core.Edge
	Total float64

	// Passes counts relaxation passes actually run, at most |V|-1.
	Passes int

	// CycleEdge is an edge that still relaxed in the verification pass.
	CycleEdge *core.Edge

	// Status is Found, NoPath, Completed or NegativeCycle.
	Status trace.Status
}
