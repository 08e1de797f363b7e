package dfs

import (
	"errors"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// Visitation colors of a node during DFS.
const (
	White = iota // White: the node has not been discovered yet.
	Gray         // Gray: the node is on the DFS stack.
	Black        // Black: the node and all its descendants are fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start node does not exist.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrEndNodeNotFound indicates that WithEnd names a node that does not exist.
	ErrEndNodeNotFound = errors.New("dfs: end node not found")
)

// Option configures optional behavior of a targeted DFS.
type Option func(*Options)

// Options holds configurable parameters for DFS.
type Options struct {
	// End, if non-empty, stops the search as soon as End is discovered.
	End string
}

// DefaultOptions returns Options for a plain component traversal.
func DefaultOptions() Options {
	return Options{}
}

// WithEnd returns an Option that sets the node to search for.
func WithEnd(end string) Option {
	return func(o *Options) {
		o.End = end
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in discovery sequence (pre-order).
	Order []string

	// Finish records nodes in the sequence they finished (post-order).
	// On a search stopped at the end node, nodes still on the stack are absent.
	Finish []string

	// Depth maps each node to its depth in the DFS tree.
	Depth map[string]int

	// Parent maps each node to the node it was discovered from.
	// Roots of DFS trees do not appear.
	Parent map[string]string

	// Tree lists discovery edges oriented parent→child.
	Tree []core.Edge

	// BackEdges lists edges that closed a cycle onto a node still on the stack.
	// The edge that discovered a node never counts as its back edge.
	BackEdges []core.Edge

	// Path is the start→end node sequence when Status is trace.StatusFound.
	Path []string

	// Status is Found, NoPath or Completed.
	Status trace.Status
}

// HasCycle reports whether the traversal met a back edge.
func (r *Result) HasCycle() bool { return len(r.BackEdges) > 0 }
