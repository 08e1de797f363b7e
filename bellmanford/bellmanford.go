package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// ShortestPath computes single-source shortest paths allowing negative
// weights. A negative cycle reachable from source is reported through
// Result.Status (trace.StatusNegativeCycle); no path is returned then.
//
// Complexity: O(V·E) time, O(V + E) space.
func ShortestPath(g *core.Graph, source string, opts ...Option) (*Result, error) {
	r, err := newRunner(g, source, trace.Discard(), opts)
	if err != nil {
		return nil, err
	}
	r.run()

	return r.res, nil
}

// ShortestPathSteps validates like ShortestPath and returns the run as a lazy trace.
func ShortestPathSteps(g *core.Graph, source string, opts ...Option) (trace.Seq, error) {
	if _, err := newRunner(g, source, trace.Discard(), opts); err != nil {
		return nil, err
	}

	return func(yield func(trace.Step) bool) {
		r, _ := newRunner(g, source, trace.NewEmitter(yield), opts)
		r.run()
	}, nil
}

// runner holds the state of one execution.
type runner struct {
	g       *core.Graph
	options Options
	em      *trace.Emitter
	arcs    []core.Edge // relaxation list, undirected edges in both directions
	dist    map[string]float64
	touched []string // nodes improved during the current pass
	res     *Result
}

func newRunner(g *core.Graph, source string, em *trace.Emitter, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if cfg.End != "" && !g.HasNode(cfg.End) {
		return nil, fmt.Errorf("%w: %q", ErrEndNotFound, cfg.End)
	}

	return &runner{
		g:       g,
		options: cfg,
		em:      em,
		arcs:    arcs(g),
		dist:    make(map[string]float64, g.Len()),
		res: &Result{
			Source:   source,
			Prev:     make(map[string]string, g.Len()),
			PrevEdge: make(map[string]core.Edge, g.Len()),
		},
	}, nil
}

// arcs expands the edge list into directed relaxation arcs. An undirected
// edge yields (u,v) followed by its flipped copy (v,u) with the same ID, so
// both directions relax within the same pass. Self-loops are dropped.
func arcs(g *core.Graph) []core.Edge {
	edges := g.Edges()
	out := make([]core.Edge, 0, 2*len(edges))
	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		out = append(out, e)
		if !g.Directed() {
			out = append(out, core.Edge{ID: e.ID, From: e.To, To: e.From, Weight: e.Weight})
		}
	}

	return out
}

func (r *runner) run() {
	src := r.res.Source
	for _, v := range r.g.Nodes() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[src] = 0
	r.touched = []string{src}
	if !r.emit(trace.KindStart, src, nil, fmt.Sprintf("Start Bellman-Ford at %s", src), nil) {
		return
	}

	passes := r.g.Len() - 1
	for p := 1; p <= passes; p++ {
		r.touched = r.touched[:0]
		r.res.Passes = p
		if !r.emit(trace.KindPass, "", nil, fmt.Sprintf("Pass %d of %d", p, passes), map[string]any{"pass": p}) {
			return
		}
		changed, ok := r.pass()
		if !ok {
			return
		}
		if !changed {
			break
		}
	}

	if e, found := r.verify(); found {
		r.res.CycleEdge = trace.EdgeRef(e)
		r.res.Status = trace.StatusNegativeCycle
		r.collectDist()
		r.done(fmt.Sprintf("Negative cycle detected: %s still relaxes", e), nil, &e)
		return
	}
	r.finish()
}

// pass relaxes every arc once. ok is false once the trace consumer stopped.
func (r *runner) pass() (changed, ok bool) {
	var du, nd float64
	for _, a := range r.arcs {
		du = r.dist[a.From]
		if math.IsInf(du, 1) {
			continue
		}
		nd = du + a.Weight
		if nd >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = nd
		r.res.Prev[a.To] = a.From
		r.res.PrevEdge[a.To] = a
		r.touched = append(r.touched, a.To)
		changed = true
		desc := fmt.Sprintf("Relax %s: distance of %s becomes %g", a, a.To, nd)
		if !r.emit(trace.KindRelax, a.From, &a, desc, nil) {
			return changed, false
		}
	}

	return changed, true
}

// verify reports the first arc that would still relax.
func (r *runner) verify() (core.Edge, bool) {
	var du float64
	for _, a := range r.arcs {
		du = r.dist[a.From]
		if math.IsInf(du, 1) {
			continue
		}
		if du+a.Weight < r.dist[a.To] {
			return a, true
		}
	}

	return core.Edge{}, false
}

func (r *runner) collectDist() {
	r.res.Dist = make(map[string]float64, len(r.dist))
	for k, d := range r.dist {
		if !math.IsInf(d, 1) {
			r.res.Dist[k] = d
		}
	}
}

func (r *runner) finish() {
	r.collectDist()
	end := r.options.End
	switch {
	case end == "":
		r.res.Status = trace.StatusCompleted
		r.done(fmt.Sprintf("Distances from %s final after %d passes", r.res.Source, r.res.Passes), r.tree(), nil)
	case math.IsInf(r.dist[end], 1):
		r.res.Status = trace.StatusNoPath
		r.done(fmt.Sprintf("No path from %s to %s", r.res.Source, end), r.tree(), nil)
	default:
		r.res.Path, r.res.Edges = r.walkBack(end)
		r.res.Total = r.dist[end]
		r.res.Status = trace.StatusFound
		r.done(fmt.Sprintf("Shortest path %s→%s has weight %g", r.res.Source, end, r.res.Total), r.res.Edges, nil)
	}
}

// walkBack follows PrevEdge from id to the source. Without a negative cycle
// the predecessor graph is a tree; the step bound guards it anyway.
func (r *runner) walkBack(id string) ([]string, []core.Edge) {
	nodes := []string{id}
	var edges []core.Edge
	for cur, n := id, 0; n < r.g.Len(); n++ {
		e, ok := r.res.PrevEdge[cur]
		if !ok || cur == r.res.Source {
			break
		}
		edges = append(edges, e)
		cur = e.From
		nodes = append(nodes, cur)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return nodes, edges
}

func (r *runner) tree() []core.Edge {
	out := make([]core.Edge, 0, len(r.res.PrevEdge))
	for _, v := range r.g.Nodes() {
		if e, ok := r.res.PrevEdge[v]; ok {
			out = append(out, e)
		}
	}

	return out
}

// reached lists nodes with a finite distance, in insertion order.
func (r *runner) reached() []string {
	var out []string
	for _, v := range r.g.Nodes() {
		if !math.IsInf(r.dist[v], 1) {
			out = append(out, v)
		}
	}

	return out
}

func (r *runner) emit(kind trace.Kind, current string, e *core.Edge, desc string, extra map[string]any) bool {
	if !r.em.Enabled() {
		return !r.em.Stopped()
	}
	values := map[string]any{"dist": trace.Distances(r.dist), "pass": r.res.Passes}
	for k, v := range extra {
		values[k] = v
	}
	s := trace.Step{
		Kind:        kind,
		Current:     current,
		Visited:     r.reached(),
		Frontier:    trace.Nodes(r.touched),
		Path:        r.tree(),
		Description: desc,
		Values:      values,
	}
	if e != nil {
		s.Edge = trace.EdgeRef(*e)
	}

	return r.em.Emit(s)
}

func (r *runner) done(desc string, path []core.Edge, e *core.Edge) {
	if !r.em.Enabled() {
		return
	}
	values := map[string]any{"passes": r.res.Passes}
	if r.res.Status != trace.StatusNegativeCycle {
		values["dist"] = trace.Distances(r.dist)
	}
	if r.res.Status == trace.StatusFound {
		values["total"] = r.res.Total
	}
	s := trace.Step{
		Kind:        trace.KindDone,
		Visited:     r.reached(),
		Path:        trace.Edges(path),
		Description: desc,
		Values:      values,
		Status:      r.res.Status,
	}
	if e != nil {
		s.Edge = trace.EdgeRef(*e)
	}
	r.em.Emit(s)
}
