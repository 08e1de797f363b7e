package bfs

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state. The same walker serves untraced
// runs (disabled emitter) and traced runs (emitter feeding an iterator).
type walker struct {
	graph      *core.Graph
	opts       Options
	em         *trace.Emitter
	queue      []queueItem
	discovered map[string]bool
	via        map[string]core.Edge // discovery edge of each non-seed node
	res        *Result
}

// Search runs breadth-first search from start. With WithEnd it stops as
// soon as the end node is dequeued and returns the fewest-edges path;
// without it the whole component of start is traversed.
// An unreachable end is not an error: Result.Status is trace.StatusNoPath.
func Search(g *core.Graph, start string, opts ...Option) (*Result, error) {
	w, err := newSearch(g, start, trace.Discard(), opts)
	if err != nil {
		return nil, err
	}
	w.search(start)

	return w.res, nil
}

// SearchSteps validates like Search and returns the traced run as a lazy
// step sequence. Each call of the sequence re-runs the search.
func SearchSteps(g *core.Graph, start string, opts ...Option) (trace.Seq, error) {
	if _, err := newSearch(g, start, trace.Discard(), opts); err != nil {
		return nil, err
	}

	return func(yield func(trace.Step) bool) {
		w, _ := newSearch(g, start, trace.NewEmitter(yield), opts)
		w.search(start)
	}, nil
}

// Forest traverses the whole graph: every node not yet discovered becomes a
// new seed, in node insertion order. Tree holds the discovery forest.
func Forest(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(g, DefaultOptions(), trace.Discard())
	w.forest()

	return w.res, nil
}

// ForestSteps is the traced form of Forest.
func ForestSteps(g *core.Graph) (trace.Seq, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return func(yield func(trace.Step) bool) {
		w := newWalker(g, DefaultOptions(), trace.NewEmitter(yield))
		w.forest()
	}, nil
}

func newSearch(g *core.Graph, start string, em *trace.Emitter, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, start)
	}
	if o.End != "" && !g.HasNode(o.End) {
		return nil, fmt.Errorf("%w: %q", ErrEndNodeNotFound, o.End)
	}

	return newWalker(g, o, em), nil
}

func newWalker(g *core.Graph, o Options, em *trace.Emitter) *walker {
	n := g.Len()

	return &walker{
		graph:      g,
		opts:       o,
		em:         em,
		queue:      make([]queueItem, 0, n),
		discovered: make(map[string]bool, n),
		via:        make(map[string]core.Edge, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			Tree:   make([]core.Edge, 0, n),
		},
	}
}

// search runs the targeted contract from start.
func (w *walker) search(start string) {
	w.enqueue(start, 0, nil)
	if !w.emit(trace.KindStart, start, nil, fmt.Sprintf("Start BFS at %s", start)) {
		return
	}
	if w.loop() {
		w.finishFound()
		return
	}
	if w.em.Stopped() {
		return
	}
	if w.opts.End != "" {
		w.res.Status = trace.StatusNoPath
		w.done(fmt.Sprintf("No path from %s to %s", start, w.opts.End), w.res.Tree)
		return
	}
	w.res.Status = trace.StatusCompleted
	w.done(fmt.Sprintf("Visited %d nodes reachable from %s", len(w.res.Order), start), w.res.Tree)
}

// forest runs the whole-graph contract.
func (w *walker) forest() {
	for _, seed := range w.graph.Nodes() {
		if w.discovered[seed] {
			continue
		}
		w.enqueue(seed, 0, nil)
		if !w.emit(trace.KindEnqueue, seed, nil, fmt.Sprintf("New seed %s", seed)) {
			return
		}
		w.loop()
		if w.em.Stopped() {
			return
		}
	}
	w.res.Status = trace.StatusCompleted
	w.done(fmt.Sprintf("Traversed %d nodes in insertion-order seeds", len(w.res.Order)), w.res.Tree)
}

// enqueue marks id discovered at depth d, records its discovery edge and
// appends it to the queue.
func (w *walker) enqueue(id string, d int, via *core.Edge) {
	w.discovered[id] = true
	w.res.Depth[id] = d
	if via != nil {
		w.res.Parent[id] = via.From
		w.via[id] = *via
		w.res.Tree = append(w.res.Tree, *via)
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it empties or the end node is dequeued.
// Returns true when the end node was reached.
func (w *walker) loop() bool {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if !w.emit(trace.KindVisit, item.id, nil, fmt.Sprintf("Dequeue %s (depth %d)", item.id, item.depth)) {
			return false
		}
		if w.opts.End != "" && item.id == w.opts.End {
			return true
		}

		// Incident() follows the same edge order Neighbors() derives from,
		// and also tells which parallel edge discovered the neighbor.
		for _, e := range w.graph.Incident(item.id) {
			if w.discovered[e.To] {
				continue
			}
			w.enqueue(e.To, item.depth+1, &e)
			if !w.emit(trace.KindEnqueue, item.id, &e, fmt.Sprintf("Discover %s from %s", e.To, item.id)) {
				return false
			}
		}
	}

	return false
}

func (w *walker) finishFound() {
	end := w.opts.End
	path, _ := w.res.PathTo(end)
	w.res.Path = path
	w.res.Status = trace.StatusFound
	w.done(fmt.Sprintf("Path found: %d edges", len(path)-1), w.pathEdges(end))
}

// pathEdges collects the discovery edges from the seed to id.
func (w *walker) pathEdges(id string) []core.Edge {
	var rev []core.Edge
	for {
		e, ok := w.via[id]
		if !ok {
			break
		}
		rev = append(rev, e)
		id = e.From
	}
	out := make([]core.Edge, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out
}

func (w *walker) frontier() []string {
	out := make([]string, len(w.queue))
	for i, it := range w.queue {
		out[i] = it.id
	}

	return out
}

// emit records one step; it returns false once the consumer stopped.
func (w *walker) emit(kind trace.Kind, current string, e *core.Edge, desc string) bool {
	if !w.em.Enabled() {
		return !w.em.Stopped()
	}
	s := trace.Step{
		Kind:        kind,
		Current:     current,
		Visited:     trace.Nodes(w.res.Order),
		Frontier:    w.frontier(),
		Path:        trace.Edges(w.res.Tree),
		Description: desc,
		Values:      map[string]any{"depth": copyDepth(w.res.Depth)},
	}
	if e != nil {
		s.Edge = trace.EdgeRef(*e)
	}

	return w.em.Emit(s)
}

func (w *walker) done(desc string, path []core.Edge) {
	if !w.em.Enabled() {
		return
	}
	w.em.Emit(trace.Step{
		Kind:        trace.KindDone,
		Visited:     trace.Nodes(w.res.Order),
		Frontier:    w.frontier(),
		Path:        trace.Edges(path),
		Description: desc,
		Values:      map[string]any{"order": trace.Nodes(w.res.Order)},
		Status:      w.res.Status,
	})
}

func copyDepth(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
