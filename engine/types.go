package engine

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// Request errors. Terminal outcomes and usage errors are never returned as
// errors: they become Result.Status.
var (
	// ErrNilGraph is returned when no graph is loaded.
	ErrNilGraph = errors.New("engine: graph is nil")

	// ErrUnknownAlgorithm is returned for an algorithm name outside Algorithms().
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrStartRequired is returned when the algorithm needs a start node and
	// none was given.
	ErrStartRequired = errors.New("engine: start node is required")

	// ErrEndRequired is returned when only one of start and end is given to
	// an all-pairs route query.
	ErrEndRequired = errors.New("engine: end node is required")

	// ErrUnknownNode is returned when start or end is not in the graph.
	ErrUnknownNode = errors.New("engine: node does not exist in the graph")

	// ErrInvariant wraps structural violations reported by core.Graph.Validate.
	// It signals a programming error, never bad input.
	ErrInvariant = errors.New("engine: graph invariant violated")
)

// Algorithm names an algorithm the engine can dispatch to.
type Algorithm string

// Supported algorithms.
const (
	DFS           Algorithm = "dfs"
	BFS           Algorithm = "bfs"
	Dijkstra      Algorithm = "dijkstra"
	BellmanFord   Algorithm = "bellman-ford"
	FloydWarshall Algorithm = "floyd-warshall"
	Kruskal       Algorithm = "kruskal"
	Prim          Algorithm = "prim"
)

var algorithms = []Algorithm{DFS, BFS, Dijkstra, BellmanFord, FloydWarshall, Kruskal, Prim}

// Algorithms lists every supported algorithm in menu order.
func Algorithms() []Algorithm { return slices.Clone(algorithms) }

// ParseAlgorithm resolves a case-insensitive name. Underscores and the
// unhyphenated spellings ("bellmanford", "floydwarshall") are accepted.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", "-")
	switch n {
	case "bellmanford":
		n = string(BellmanFord)
	case "floydwarshall":
		n = string(FloydWarshall)
	}
	a := Algorithm(n)
	if !slices.Contains(algorithms, a) {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return a, nil
}

// Request selects an algorithm and its endpoints.
//
//   - DFS, BFS: Start is required unless WholeGraph; End is optional.
//   - Dijkstra, Bellman-Ford: Start is required; End is optional.
//   - Floyd-Warshall: Start and End are optional but go together.
//   - Prim: Start, if given, is the root. Kruskal ignores both.
type Request struct {
	Algorithm  Algorithm `json:"algorithm"`
	Start      string    `json:"start,omitempty"`
	End        string    `json:"end,omitempty"`
	WholeGraph bool      `json:"whole_graph,omitempty"`
}

// Result is the untraced outcome of one run, flattened across algorithms.
type Result struct {
	Algorithm Algorithm    `json:"algorithm"`
	Status    trace.Status `json:"status"`

	// Order is the visit order of a traversal.
	Order []string `json:"order,omitempty"`

	// Path is the node sequence start→end when Status is Found.
	Path []string `json:"path,omitempty"`

	// Edges holds the path edges of a shortest path, the spanning tree or
	// forest of an MST, or the discovery tree of a traversal.
	Edges []core.Edge `json:"edges,omitempty"`

	// Total is the path weight or the spanning tree weight.
	Total float64 `json:"total"`

	// Unreachable lists nodes outside the spanning tree when Status is
	// Disconnected.
	Unreachable []string `json:"unreachable,omitempty"`

	// Distances holds single-source distances of reached nodes.
	Distances map[string]float64 `json:"distances,omitempty"`

	// Table holds all-pairs distances (Floyd-Warshall), finite entries only.
	Table map[string]map[string]float64 `json:"table,omitempty"`

	// Message explains a usage error status.
	Message string `json:"message,omitempty"`
}

// Summary renders r as one human-readable line.
func (r *Result) Summary() string {
	switch r.Status {
	case trace.StatusFound:
		if r.Algorithm == DFS || r.Algorithm == BFS {
			return fmt.Sprintf("%s: path %s, order %s", r.Algorithm, strings.Join(r.Path, " → "), strings.Join(r.Order, " "))
		}
		return fmt.Sprintf("%s: path %s (weight %g)", r.Algorithm, strings.Join(r.Path, " → "), r.Total)
	case trace.StatusNoPath:
		return fmt.Sprintf("%s: no path found", r.Algorithm)
	case trace.StatusNegativeCycle:
		return fmt.Sprintf("%s: negative cycle detected", r.Algorithm)
	case trace.StatusDisconnected:
		return fmt.Sprintf("%s: spanning forest of weight %g, unreachable %v", r.Algorithm, r.Total, r.Unreachable)
	case trace.StatusInvalidDirected, trace.StatusInvalidNegative:
		return fmt.Sprintf("%s: %s", r.Algorithm, r.Message)
	}
	switch r.Algorithm {
	case Kruskal, Prim:
		return fmt.Sprintf("%s: spanning tree of weight %g, edges %v", r.Algorithm, r.Total, r.Edges)
	case DFS, BFS:
		return fmt.Sprintf("%s: order %s", r.Algorithm, strings.Join(r.Order, " "))
	default:
		return fmt.Sprintf("%s: %s", r.Algorithm, r.Status)
	}
}
