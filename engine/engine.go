package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepgraph/bellmanford"
	"github.com/katalvlaran/stepgraph/bfs"
	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/dfs"
	"github.com/katalvlaran/stepgraph/dijkstra"
	"github.com/katalvlaran/stepgraph/floydwarshall"
	"github.com/katalvlaran/stepgraph/prim_kruskal"
	"github.com/katalvlaran/stepgraph/trace"
)

// Run executes req on g without recording a trace.
//
// Request problems (unknown algorithm, missing or unknown endpoints) and
// structural violations are returned as errors. Usage errors (a directed
// graph into an MST, a negative weight into Dijkstra) are reported as
// Result.Status with nothing computed.
func Run(g *core.Graph, req Request) (*Result, error) {
	a, err := check(g, req)
	if err != nil {
		return nil, err
	}
	req.Algorithm = a
	res, err := run(g, req)
	if st, ok := usageStatus(err); ok {
		return &Result{Algorithm: req.Algorithm, Status: st, Message: err.Error()}, nil
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Steps validates req like Run and returns the traced run. A usage error
// becomes a one-step trace whose final step carries the usage status.
func Steps(g *core.Graph, req Request) (trace.Seq, error) {
	a, err := check(g, req)
	if err != nil {
		return nil, err
	}
	req.Algorithm = a
	seq, err := steps(g, req)
	if st, ok := usageStatus(err); ok {
		return trace.FailureSeq(st, err.Error()), nil
	}
	if err != nil {
		return nil, err
	}

	return seq, nil
}

// check validates the graph invariant and the request against g and
// returns the canonical algorithm name.
func check(g *core.Graph, req Request) (Algorithm, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	if err := g.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	a, err := ParseAlgorithm(string(req.Algorithm))
	if err != nil {
		return "", err
	}
	if err := checkEndpoints(g, a, req); err != nil {
		return "", err
	}

	return a, nil
}

// checkEndpoints applies the start/end rules of algorithm a.
func checkEndpoints(g *core.Graph, a Algorithm, req Request) error {
	switch a {
	case DFS, BFS:
		if req.WholeGraph {
			return nil
		}
		if req.Start == "" {
			return fmt.Errorf("%w for %s", ErrStartRequired, a)
		}
	case Dijkstra, BellmanFord:
		if req.Start == "" {
			return fmt.Errorf("%w for %s", ErrStartRequired, a)
		}
	case FloydWarshall:
		if req.Start == "" && req.End != "" {
			return fmt.Errorf("%w for a %s route", ErrStartRequired, a)
		}
		if req.Start != "" && req.End == "" {
			return fmt.Errorf("%w for a %s route", ErrEndRequired, a)
		}
	case Kruskal:
		return nil
	case Prim:
		return known(g, req.Start)
	}

	if err := known(g, req.Start); err != nil {
		return err
	}

	return known(g, req.End)
}

func known(g *core.Graph, id string) error {
	if id != "" && !g.HasNode(id) {
		return fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return nil
}

// usageStatus maps usage errors to their terminal status.
func usageStatus(err error) (trace.Status, bool) {
	switch {
	case err == nil:
		return "", false
	case errors.Is(err, prim_kruskal.ErrDirectedGraph):
		return trace.StatusInvalidDirected, true
	case errors.Is(err, dijkstra.ErrNegativeWeight):
		return trace.StatusInvalidNegative, true
	default:
		return "", false
	}
}

func run(g *core.Graph, req Request) (*Result, error) {
	res := &Result{Algorithm: req.Algorithm}

	switch req.Algorithm {
	case DFS:
		var (
			r   *dfs.Result
			err error
		)
		if req.WholeGraph {
			r, err = dfs.Forest(g)
		} else {
			r, err = dfs.Search(g, req.Start, dfs.WithEnd(req.End))
		}
		if err != nil {
			return nil, err
		}
		res.Status, res.Order, res.Path, res.Edges = r.Status, r.Order, r.Path, r.Tree

	case BFS:
		var (
			r   *bfs.Result
			err error
		)
		if req.WholeGraph {
			r, err = bfs.Forest(g)
		} else {
			r, err = bfs.Search(g, req.Start, bfs.WithEnd(req.End))
		}
		if err != nil {
			return nil, err
		}
		res.Status, res.Order, res.Path, res.Edges = r.Status, r.Order, r.Path, r.Tree

	case Dijkstra:
		r, err := dijkstra.ShortestPath(g, req.Start, dijkstra.WithEnd(req.End))
		if err != nil {
			return nil, err
		}
		res.Status, res.Path, res.Edges, res.Total, res.Distances = r.Status, r.Path, r.Edges, r.Total, r.Dist

	case BellmanFord:
		r, err := bellmanford.ShortestPath(g, req.Start, bellmanford.WithEnd(req.End))
		if err != nil {
			return nil, err
		}
		res.Status = r.Status
		if r.Status != trace.StatusNegativeCycle {
			res.Path, res.Edges, res.Total, res.Distances = r.Path, r.Edges, r.Total, r.Dist
		}

	case FloydWarshall:
		r, err := floydwarshall.AllPairs(g)
		if err != nil {
			return nil, err
		}
		res.Status = r.Status
		if r.Status != trace.StatusNegativeCycle {
			res.Table = r.Table()
		}
		if req.Start != "" {
			route, err := r.Path(req.Start, req.End)
			if err != nil {
				return nil, err
			}
			res.Status, res.Path, res.Edges, res.Total = route.Status, route.Path, route.Edges, route.Total
		}

	case Kruskal, Prim:
		r, err := prim_kruskal.Compute(g, mstOptions(req)...)
		if err != nil {
			return nil, err
		}
		res.Status, res.Edges, res.Total, res.Unreachable = r.Status, r.Edges, r.TotalWeight, r.Unreachable

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}

	return res, nil
}

func steps(g *core.Graph, req Request) (trace.Seq, error) {
	switch req.Algorithm {
	case DFS:
		if req.WholeGraph {
			return dfs.ForestSteps(g)
		}
		return dfs.SearchSteps(g, req.Start, dfs.WithEnd(req.End))
	case BFS:
		if req.WholeGraph {
			return bfs.ForestSteps(g)
		}
		return bfs.SearchSteps(g, req.Start, bfs.WithEnd(req.End))
	case Dijkstra:
		return dijkstra.ShortestPathSteps(g, req.Start, dijkstra.WithEnd(req.End))
	case BellmanFord:
		return bellmanford.ShortestPathSteps(g, req.Start, bellmanford.WithEnd(req.End))
	case FloydWarshall:
		return floydwarshall.AllPairsSteps(g, floydwarshall.WithRoute(req.Start, req.End))
	case Kruskal, Prim:
		return prim_kruskal.ComputeSteps(g, mstOptions(req)...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}
}

func mstOptions(req Request) []prim_kruskal.Option {
	if req.Algorithm == Prim {
		return []prim_kruskal.Option{prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(req.Start)}
	}

	return []prim_kruskal.Option{prim_kruskal.WithMethod(prim_kruskal.MethodKruskal)}
}
