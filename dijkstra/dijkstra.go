package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// ShortestPath computes shortest distances from source over a graph with
// non-negative edge weights. With WithEnd it stops once the end node is
// popped from the heap and reports the path; an empty heap before that is
// a NoPath outcome, not an error.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrSourceNotFound) and end (ErrEndNotFound).
//  3. No non-loop edge may have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, source string, opts ...Option) (*Result, error) {
	r, err := newRunner(g, source, trace.Discard(), opts)
	if err != nil {
		return nil, err
	}
	r.run()

	return r.res, nil
}

// ShortestPathSteps validates like ShortestPath and returns the run as a lazy
// trace. Each iteration of the sequence re-runs the search.
func ShortestPathSteps(g *core.Graph, source string, opts ...Option) (trace.Seq, error) {
	if _, err := newRunner(g, source, trace.Discard(), opts); err != nil {
		return nil, err
	}

	return func(yield func(trace.Step) bool) {
		r, _ := newRunner(g, source, trace.NewEmitter(yield), opts)
		r.run()
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	em      *trace.Emitter
	dist    map[string]float64
	visited map[string]bool
	order   []string // settle order
	pq      nodePQ
	res     *Result
}

func newRunner(g *core.Graph, source string, em *trace.Emitter, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if cfg.End != "" && !g.HasNode(cfg.End) {
		return nil, fmt.Errorf("%w: %q", ErrEndNotFound, cfg.End)
	}
	if e, ok := g.HasNegativeWeight(); ok {
		return nil, fmt.Errorf("%w: edge %s", ErrNegativeWeight, e)
	}

	V := g.Len()

	return &runner{
		g:       g,
		options: cfg,
		em:      em,
		dist:    make(map[string]float64, V),
		visited: make(map[string]bool, V),
		order:   make([]string, 0, V),
		pq:      make(nodePQ, 0, V),
		res: &Result{
			Source:   source,
			Prev:     make(map[string]string, V),
			PrevEdge: make(map[string]core.Edge, V),
		},
	}, nil
}

// run initializes the source and drives the heap.
func (r *runner) run() {
	src := r.res.Source
	for _, v := range r.g.Nodes() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[src] = 0
	r.push(src, 0)
	if !r.emit(trace.KindStart, src, nil, fmt.Sprintf("Start Dijkstra at %s (distance 0)", src)) {
		return
	}

	found := r.process()
	if r.em.Stopped() {
		return
	}
	r.finish(found)
}

// process is the core loop. It returns true when the end node was settled.
func (r *runner) process() bool {
	end := r.options.End
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		// Stale entry from a lazy decrease-key.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.order = append(r.order, u)
		if !r.emit(trace.KindVisit, u, nil, fmt.Sprintf("Settle %s at distance %g", u, item.dist)) {
			return false
		}
		if u == end {
			return true
		}
		if !r.relax(u) {
			return false
		}
	}

	return false
}

// relax improves neighbors of the settled node u. It returns false once the
// trace consumer stopped.
func (r *runner) relax(u string) bool {
	var newDist float64
	for _, e := range r.g.Incident(u) {
		v := e.To
		if r.visited[v] {
			continue
		}
		newDist = r.dist[u] + e.Weight
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.res.Prev[v] = u
		r.res.PrevEdge[v] = e
		r.push(v, newDist)
		if !r.emit(trace.KindRelax, u, &e, fmt.Sprintf("Relax %s: distance of %s becomes %g", e, v, newDist)) {
			return false
		}
	}

	return true
}

func (r *runner) push(id string, d float64) {
	idx, _ := r.g.NodeIndex(id)
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, index: idx})
}

// finish fills the result and emits the terminal step.
func (r *runner) finish(found bool) {
	r.res.Dist = make(map[string]float64, len(r.dist))
	for k, d := range r.dist {
		if !math.IsInf(d, 1) {
			r.res.Dist[k] = d
		}
	}

	end := r.options.End
	switch {
	case found:
		r.res.Path, r.res.Edges = r.walkBack(end)
		r.res.Total = r.dist[end]
		r.res.Status = trace.StatusFound
		r.done(fmt.Sprintf("Shortest path %s→%s has weight %g", r.res.Source, end, r.res.Total), r.res.Edges)
	case end != "":
		r.res.Status = trace.StatusNoPath
		r.done(fmt.Sprintf("No path from %s to %s", r.res.Source, end), r.tree())
	default:
		r.res.Status = trace.StatusCompleted
		r.done(fmt.Sprintf("Settled %d nodes from %s", len(r.order), r.res.Source), r.tree())
	}
}

// walkBack follows PrevEdge from id to the source.
func (r *runner) walkBack(id string) ([]string, []core.Edge) {
	var nodes []string
	var edges []core.Edge
	for cur := id; ; {
		nodes = append(nodes, cur)
		e, ok := r.res.PrevEdge[cur]
		if !ok {
			break
		}
		edges = append(edges, e)
		cur = e.From
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return nodes, edges
}

// tree returns the current predecessor edges in node insertion order.
func (r *runner) tree() []core.Edge {
	out := make([]core.Edge, 0, len(r.res.PrevEdge))
	for _, v := range r.g.Nodes() {
		if e, ok := r.res.PrevEdge[v]; ok {
			out = append(out, e)
		}
	}

	return out
}

// frontier lists reached but unsettled nodes in insertion order.
func (r *runner) frontier() []string {
	var out []string
	for _, v := range r.g.Nodes() {
		if !r.visited[v] && !math.IsInf(r.dist[v], 1) {
			out = append(out, v)
		}
	}

	return out
}

func (r *runner) emit(kind trace.Kind, current string, e *core.Edge, desc string) bool {
	if !r.em.Enabled() {
		return !r.em.Stopped()
	}
	s := trace.Step{
		Kind:        kind,
		Current:     current,
		Visited:     trace.Nodes(r.order),
		Frontier:    r.frontier(),
		Path:        r.tree(),
		Description: desc,
		Values:      map[string]any{"dist": trace.Distances(r.dist)},
	}
	if e != nil {
		s.Edge = trace.EdgeRef(*e)
	}

	return r.em.Emit(s)
}

func (r *runner) done(desc string, path []core.Edge) {
	if !r.em.Enabled() {
		return
	}
	values := map[string]any{"dist": trace.Distances(r.dist)}
	if r.res.Status == trace.StatusFound {
		values["total"] = r.res.Total
	}
	r.em.Emit(trace.Step{
		Kind:        trace.KindDone,
		Visited:     trace.Nodes(r.order),
		Frontier:    r.frontier(),
		Path:        trace.Edges(path),
		Description: desc,
		Values:      values,
		Status:      r.res.Status,
	})
}

// nodeItem is a heap entry: a node and its tentative distance.
type nodeItem struct {
	id    string
	dist  float64
	index int // node insertion index, the tie-breaker
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, index).
// Lazy decrease-key: an improved distance pushes a new entry and the
// outdated one is skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].index < pq[j].index
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
