package floydwarshall

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/stepgraph/trace"
)

// Nodes returns node IDs in matrix index order.
func (r *Result) Nodes() []string {
	out := make([]string, len(r.nodes))
	copy(out, r.nodes)

	return out
}

// Matrix returns a copy of the distance matrix, or nil for an empty graph.
func (r *Result) Matrix() *mat.Dense {
	if r.dist == nil {
		return nil
	}

	return mat.DenseCopyOf(r.dist)
}

// Dist returns the shortest distance from→to; +Inf when unreachable.
func (r *Result) Dist(from, to string) (float64, error) {
	i, j, err := r.pair(from, to)
	if err != nil {
		return 0, err
	}

	return r.dist.At(i, j), nil
}

// Table returns the finite distances as from → to → distance.
func (r *Result) Table() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(r.nodes))
	for i, from := range r.nodes {
		row := make(map[string]float64)
		for j, to := range r.nodes {
			if d := r.dist.At(i, j); !math.IsInf(d, 1) {
				row[to] = d
			}
		}
		out[from] = row
	}

	return out
}

// Path reconstructs the shortest from→to path by walking the routing table.
// An infinite distance yields NoPath without touching the table; a table
// with a negative cycle yields NegativeCycle.
func (r *Result) Path(from, to string) (Route, error) {
	i, j, err := r.pair(from, to)
	if err != nil {
		return Route{}, err
	}
	if r.Status == trace.StatusNegativeCycle {
		return Route{Status: trace.StatusNegativeCycle}, nil
	}
	if math.IsInf(r.dist.At(i, j), 1) {
		return Route{Status: trace.StatusNoPath}, nil
	}
	route := r.route(i, j)
	route.Status = trace.StatusFound

	return route, nil
}

// route walks next from i to j. The caller guarantees dist[i][j] is finite.
func (r *Result) route(i, j int) Route {
	rt := Route{Path: []string{r.nodes[i]}, Total: r.dist.At(i, j)}
	for cur, hops := i, 0; cur != j && hops < len(r.nodes); hops++ {
		nxt := r.next[cur][j]
		if nxt == noNext {
			break
		}
		if e := r.edge[cur][nxt]; e != nil {
			rt.Edges = append(rt.Edges, *e)
		}
		rt.Path = append(rt.Path, r.nodes[nxt])
		cur = nxt
	}

	return rt
}

func (r *Result) pair(from, to string) (int, int, error) {
	i, ok := r.index[from]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	j, ok := r.index[to]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}

	return i, j, nil
}
