package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound is returned when the start ID is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrEndNodeNotFound is returned when WithEnd names an absent node.
	ErrEndNodeNotFound = errors.New("bfs: end node not found")
)

// Option configures a targeted search via functional arguments.
type Option func(*Options)

// Options holds parameters of a targeted search.
type Options struct {
	// End, if non-empty, is the node to find a fewest-edges path to.
	// Empty End traverses the whole component of the start node.
	End string
}

// DefaultOptions returns Options with no end node (component traversal).
func DefaultOptions() Options {
	return Options{}
}

// WithEnd sets the target node of the search.
func WithEnd(end string) Option {
	return func(o *Options) {
		o.End = end
	}
}

// Result holds the outcome of a BFS run:
//   - Order: nodes in dequeue (visit) sequence.
//   - Depth: distance in edges from the seed of the node's tree.
//   - Parent: predecessor in the BFS tree (seeds have none).
//   - Tree: discovery edges, oriented parent→child; a forest in whole-graph mode.
//   - Path: start→end node sequence when Status is trace.StatusFound.
//   - Status: Found, NoPath or Completed.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Tree   []core.Edge
	Path   []string
	Status trace.Status
}

// PathTo reconstructs the tree path from the seed of dest's tree to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
