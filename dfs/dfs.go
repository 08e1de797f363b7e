package dfs

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	id    string
	edges []core.Edge // Incident(id), tried in order
	next  int         // index of the next edge to try
	via   *core.Edge  // edge the frame was entered through; nil for roots
}

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	em    *trace.Emitter
	color map[string]int
	stack []frame
	res   *Result
}

// Search performs depth-first search from start. Without WithEnd it explores
// the whole component of start; with WithEnd it stops once end is discovered.
func Search(g *core.Graph, start string, opts ...Option) (*Result, error) {
	w, err := newSearch(g, start, trace.Discard(), opts)
	if err != nil {
		return nil, err
	}
	w.search(start)

	return w.res, nil
}

// SearchSteps validates like Search and returns the run as a lazy trace.
func SearchSteps(g *core.Graph, start string, opts ...Option) (trace.Seq, error) {
	if _, err := newSearch(g, start, trace.Discard(), opts); err != nil {
		return nil, err
	}

	return func(yield func(trace.Step) bool) {
		w, _ := newSearch(g, start, trace.NewEmitter(yield), opts)
		w.search(start)
	}, nil
}

// Forest runs DFS from every undiscovered node in insertion order,
// covering disconnected components.
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
	var fn Option
	for _, fn = range opts {
		fn(&o)
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
		graph: g,
		opts:  o,
		em:    em,
		color: make(map[string]int, n),
		stack: make([]frame, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Finish: make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			Tree:   make([]core.Edge, 0, n),
		},
	}
}

func (w *walker) search(start string) {
	w.push(start, nil)
	if !w.emit(trace.KindStart, start, nil, fmt.Sprintf("Start DFS at %s", start)) {
		return
	}
	if start == w.opts.End || w.loop() {
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

func (w *walker) forest() {
	for _, root := range w.graph.Nodes() {
		if w.color[root] != White {
			continue
		}
		w.push(root, nil)
		if !w.emit(trace.KindVisit, root, nil, fmt.Sprintf("New tree rooted at %s", root)) {
			return
		}
		w.loop()
		if w.em.Stopped() {
			return
		}
	}
	w.res.Status = trace.StatusCompleted
	w.done(fmt.Sprintf("Traversed %d nodes", len(w.res.Order)), w.res.Tree)
}

// push discovers id and opens its frame.
func (w *walker) push(id string, via *core.Edge) {
	w.color[id] = Gray
	w.res.Order = append(w.res.Order, id)
	depth := 0
	if via != nil {
		depth = w.res.Depth[via.From] + 1
		w.res.Parent[id] = via.From
		w.res.Tree = append(w.res.Tree, *via)
	}
	w.res.Depth[id] = depth
	w.stack = append(w.stack, frame{id: id, edges: w.graph.Incident(id), via: via})
}

// loop drives the stack until it empties or the end node is discovered.
// Returns true when the end node was discovered.
func (w *walker) loop() bool {
	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		f := &w.stack[top]
		if f.next == len(f.edges) {
			w.stack = w.stack[:top]
			w.color[f.id] = Black
			w.res.Finish = append(w.res.Finish, f.id)
			if !w.emit(trace.KindBacktrack, f.id, nil, fmt.Sprintf("Backtrack from %s", f.id)) {
				return false
			}
			continue
		}

		e := f.edges[f.next]
		f.next++
		switch w.color[e.To] {
		case White:
			w.push(e.To, &e)
			if !w.emit(trace.KindVisit, e.To, &e, fmt.Sprintf("Visit %s from %s", e.To, e.From)) {
				return false
			}
			if e.To == w.opts.End {
				return true
			}
		case Gray:
			if f.via != nil && f.via.ID == e.ID {
				continue
			}
			w.res.BackEdges = append(w.res.BackEdges, e)
		}
	}

	return false
}

func (w *walker) finishFound() {
	path := make([]string, len(w.stack))
	edges := make([]core.Edge, 0, len(w.stack))
	for i, f := range w.stack {
		path[i] = f.id
		if f.via != nil {
			edges = append(edges, *f.via)
		}
	}
	w.res.Path = path
	w.res.Status = trace.StatusFound
	w.done(fmt.Sprintf("Reached %s: path of %d edges", w.opts.End, len(edges)), edges)
}

func (w *walker) frontier() []string {
	out := make([]string, len(w.stack))
	for i, f := range w.stack {
		out[i] = f.id
	}

	return out
}

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
		Values:      map[string]any{"finished": trace.Nodes(w.res.Finish)},
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
		Values: map[string]any{
			"finished":   trace.Nodes(w.res.Finish),
			"back_edges": len(w.res.BackEdges),
		},
		Status: w.res.Status,
	})
}
