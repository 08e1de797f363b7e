// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// AllPairs computes shortest distances between every ordered pair of nodes.
// Loop order is fixed (k → i → j). A negative diagonal entry after the run
// sets Status to trace.StatusNegativeCycle.
// Complexity: O(V³) time, O(V²) space.
func AllPairs(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	r := newRunner(g, Options{}, trace.Discard())
	r.run()

	return r.res, nil
}

// AllPairsSteps returns the run as a lazy trace. With WithRoute the final
// step reports that pair's path; unknown route nodes are rejected up front.
func AllPairsSteps(g *core.Graph, opts ...Option) (trace.Seq, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	for _, id := range []string{o.Start, o.End} {
		if id != "" && !g.HasNode(id) {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	return func(yield func(trace.Step) bool) {
		r := newRunner(g, o, trace.NewEmitter(yield))
		r.run()
	}, nil
}

type runner struct {
	g    *core.Graph
	opts Options
	em   *trace.Emitter
	done []string // intermediates already processed
	res  *Result
}

func newRunner(g *core.Graph, o Options, em *trace.Emitter) *runner {
	nodes := g.Nodes()
	n := len(nodes)
	res := &Result{
		nodes: nodes,
		index: make(map[string]int, n),
		next:  make([][]int, n),
		edge:  make([][]*core.Edge, n),
	}
	for i, id := range nodes {
		res.index[id] = i
		res.next[i] = make([]int, n)
		res.edge[i] = make([]*core.Edge, n)
	}
	if n > 0 {
		res.dist = mat.NewDense(n, n, nil)
	}

	return &runner{g: g, opts: o, em: em, res: res}
}

// seed writes the diagonal, the direct edges (minimum over parallel edges,
// both directions when undirected) and +Inf elsewhere.
func (r *runner) seed() {
	n := len(r.res.nodes)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r.res.next[i][j] = noNext
			if i == j {
				r.res.dist.Set(i, j, 0)
				r.res.next[i][j] = j
				continue
			}
			r.res.dist.Set(i, j, math.Inf(1))
		}
	}

	directed := r.g.Directed()
	for _, e := range r.g.Edges() {
		if e.IsLoop() {
			continue
		}
		r.offer(e)
		if !directed {
			r.offer(core.Edge{ID: e.ID, From: e.To, To: e.From, Weight: e.Weight})
		}
	}
}

func (r *runner) offer(e core.Edge) {
	i, j := r.res.index[e.From], r.res.index[e.To]
	if e.Weight < r.res.dist.At(i, j) {
		r.res.dist.Set(i, j, e.Weight)
		r.res.next[i][j] = j
		r.res.edge[i][j] = trace.EdgeRef(e)
	}
}

func (r *runner) run() {
	n := len(r.res.nodes)
	if n == 0 {
		r.res.Status = trace.StatusCompleted
		r.finish()
		return
	}
	r.seed()
	if !r.emit(trace.KindStart, "", nil, fmt.Sprintf("Seed %d×%d distance table from direct edges", n, n), nil) {
		return
	}

	d := r.res.dist
	var (
		k, i, j    int
		ik, kj, ij float64
		cand       float64
		via        string
	)
	for k = 0; k < n; k++ {
		via = r.res.nodes[k]
		if !r.emit(trace.KindPass, via, nil, fmt.Sprintf("Allow %s as intermediate node", via), map[string]any{"k": via}) {
			return
		}
		for i = 0; i < n; i++ {
			ik = d.At(i, k)
			if math.IsInf(ik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				kj = d.At(k, j)
				if math.IsInf(kj, 1) {
					continue
				}
				ij = d.At(i, j)
				cand = ik + kj
				if cand >= ij {
					continue
				}
				d.Set(i, j, cand)
				r.res.next[i][j] = r.res.next[i][k]
				if r.em.Enabled() {
					from, to := r.res.nodes[i], r.res.nodes[j]
					// i→k and k→j routes are stable during round k.
					path := append(r.res.route(i, k).Edges, r.res.route(k, j).Edges...)
					desc := fmt.Sprintf("dist[%s][%s] = %g via %s", from, to, cand, via)
					if !r.emit(trace.KindRelax, via, path, desc, map[string]any{"from": from, "to": to, "distance": cand}) {
						return
					}
				}
			}
		}
		r.done = append(r.done, via)
	}

	r.res.Status = trace.StatusCompleted
	for i = 0; i < n; i++ {
		if d.At(i, i) < 0 {
			r.res.Status = trace.StatusNegativeCycle
			break
		}
	}
	r.finish()
}

func (r *runner) finish() {
	if !r.em.Enabled() {
		return
	}
	s := trace.Step{
		Kind:    trace.KindDone,
		Visited: trace.Nodes(r.done),
		Values:  map[string]any{"dist": r.res.Table()},
		Status:  r.res.Status,
	}
	switch {
	case r.res.Status == trace.StatusNegativeCycle:
		s.Description = "Negative cycle detected: a node reaches itself at negative cost"
	case r.opts.Start != "" && r.opts.End != "":
		route, _ := r.res.Path(r.opts.Start, r.opts.End)
		s.Status = route.Status
		s.Path = route.Edges
		if route.Status == trace.StatusFound {
			s.Values["total"] = route.Total
			s.Description = fmt.Sprintf("Shortest path %s→%s has weight %g", r.opts.Start, r.opts.End, route.Total)
		} else {
			s.Description = fmt.Sprintf("No path from %s to %s", r.opts.Start, r.opts.End)
		}
	default:
		s.Description = fmt.Sprintf("All-pairs distances final for %d nodes", len(r.res.nodes))
	}
	r.em.Emit(s)
}

func (r *runner) emit(kind trace.Kind, current string, path []core.Edge, desc string, extra map[string]any) bool {
	if !r.em.Enabled() {
		return !r.em.Stopped()
	}
	s := trace.Step{
		Kind:        kind,
		Current:     current,
		Visited:     trace.Nodes(r.done),
		Path:        trace.Edges(path),
		Description: desc,
		Values:      extra,
	}
	if current != "" {
		s.Frontier = []string{current}
	}

	return r.em.Emit(s)
}
