// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrNodeNotFound indicates that a queried node is not part of the graph.
	ErrNodeNotFound = errors.New("floydwarshall: node not found")
)

// noNext marks an empty routing-table entry.
const noNext = -1

// Options configures a traced run.
type Options struct {
	// Start and End select the pair whose path the final step reports.
	// Both empty: the final step only summarizes the table.
	Start, End string
}

// Option is a functional option for AllPairsSteps.
type Option func(*Options)

// WithRoute selects the pair reported by the final step.
func WithRoute(start, end string) Option {
	return func(o *Options) {
		o.Start = start
		o.End = end
	}
}

// Result holds the all-pairs distance matrix and the routing table.
//
// dist is a gonum dense matrix indexed by node insertion index; +Inf marks
// unreachable pairs. next[i][j] is the index of the node after i on a
// shortest i→j path, or noNext. edge[i][j] is the cheapest direct edge i→j.
type Result struct {
	nodes []string
	index map[string]int
	dist  *mat.Dense
	next  [][]int
	edge  [][]*core.Edge

	// Status is trace.StatusCompleted, or trace.StatusNegativeCycle when some
	// node reaches itself at negative cost.
	Status trace.Status
}

// Route is one reconstructed shortest path.
type Route struct {
	Path   []string
	Edges  []core.Edge
	Total  float64
	Status trace.Status // Found, NoPath or NegativeCycle
}
