// Package prim_kruskal defines configuration options, sentinel errors and the
// result type for MST computation, plus the Compute dispatcher.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// ErrNilGraph indicates that a nil graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrDirectedGraph indicates that MST algorithms require an undirected graph.
// It is a usage error reported before any work is done.
var ErrDirectedGraph = errors.New("prim_kruskal: MST requires an undirected graph")

// ErrRootNotFound indicates that WithRoot names a node absent from the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root node not found")

// ErrUnknownMethod indicates that Options.Method is neither MethodPrim nor MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow one tree from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Options configures which MST algorithm to run, and for Prim, which node
// to start from. Use DefaultOptions() to get a default setup (Kruskal).
type Options struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim. Empty means the first node in
	// insertion order. Unused by Kruskal.
	Root string
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim.
func WithRoot(root string) Option {
	return func(opts *Options) {
		opts.Root = root
	}
}

// DefaultOptions returns Options initialized for Kruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Result is a minimum spanning tree or, for a disconnected graph, a
// minimum spanning forest (Kruskal) or partial tree (Prim).
type Result struct {
	// Edges in acceptance order. Prim orients each edge tree→new node.
	Edges []core.Edge

	// TotalWeight is the sum of Edges' weights.
	TotalWeight float64

	// Unreachable lists, in insertion order, the nodes not connected to the
	// first node (Kruskal) or to the root (Prim). Empty when Status is Completed.
	Unreachable []string

	// Status is trace.StatusCompleted or trace.StatusDisconnected.
	Status trace.Status
}

// Compute selects and runs the MST algorithm based on opts.
//
//	– MethodKruskal: Kruskal(g).
//	– MethodPrim:    Prim(g, WithRoot(opts.Root)).
//	– Otherwise:     ErrUnknownMethod.
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, WithRoot(o.Root))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// ComputeSteps is the traced form of Compute.
func ComputeSteps(g *core.Graph, opts ...Option) (trace.Seq, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return KruskalSteps(g)
	case MethodPrim:
		return PrimSteps(g, WithRoot(o.Root))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

func validate(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Directed() {
		return ErrDirectedGraph
	}

	return nil
}
