package prim_kruskal

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// Prim grows a minimum spanning tree from a root node of an undirected graph.
//
// Steps:
//  1. Validate: graph != nil, !graph.Directed(), root exists.
//  2. Root: WithRoot, or the first node in insertion order.
//  3. Candidates: all non-loop edges; unless the graph is a declared
//     multigraph, parallel edges are first collapsed to their minimum-weight
//     representative (lowest ID on ties).
//  4. Each iteration scans every candidate crossing the tree boundary and
//     accepts the globally lightest one (lowest ID on ties).
//  5. When no crossing edge remains, the rest is unreachable: the partial tree
//     is returned with Status Disconnected and the unreached nodes.
//
// Complexity: O(V·E) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) (*Result, error) {
	p, err := newPrim(g, trace.Discard(), opts)
	if err != nil {
		return nil, err
	}
	p.run()

	return &p.res, nil
}

// PrimSteps is the traced form of Prim.
func PrimSteps(g *core.Graph, opts ...Option) (trace.Seq, error) {
	if _, err := newPrim(g, trace.Discard(), opts); err != nil {
		return nil, err
	}

	return func(yield func(trace.Step) bool) {
		p, _ := newPrim(g, trace.NewEmitter(yield), opts)
		p.run()
	}, nil
}

type prim struct {
	g       *core.Graph
	em      *trace.Emitter
	root    string
	visited map[string]bool
	tree    []string // nodes in the order they joined
	res     Result
}

func newPrim(g *core.Graph, em *trace.Emitter, opts []Option) (*prim, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	o := Options{Method: MethodPrim}
	for _, opt := range opts {
		opt(&o)
	}
	root := o.Root
	if root == "" {
		if nodes := g.Nodes(); len(nodes) > 0 {
			root = nodes[0]
		}
	} else if !g.HasNode(root) {
		return nil, fmt.Errorf("%w: %q", ErrRootNotFound, root)
	}

	return &prim{g: g, em: em, root: root, visited: make(map[string]bool, g.Len())}, nil
}

// candidates returns the edges Prim may choose from, in ID order.
func candidates(g *core.Graph) (edges []core.Edge, dropped int) {
	all := g.Edges()
	edges = make([]core.Edge, 0, len(all))
	if g.Multigraph() {
		for _, e := range all {
			if !e.IsLoop() {
				edges = append(edges, e)
			}
		}

		return edges, 0
	}

	best := make(map[[2]string]int, len(all)) // unordered pair → index in edges
	for _, e := range all {
		if e.IsLoop() {
			continue
		}
		key := [2]string{e.From, e.To}
		if key[1] < key[0] {
			key[0], key[1] = key[1], key[0]
		}
		i, ok := best[key]
		if !ok {
			best[key] = len(edges)
			edges = append(edges, e)
			continue
		}
		dropped++
		if e.Weight < edges[i].Weight {
			edges[i] = e
		}
	}
	// Replacing in place can break ID order.
	slices.SortFunc(edges, func(a, b core.Edge) int { return cmp.Compare(a.ID, b.ID) })

	return edges, dropped
}

func (p *prim) run() {
	p.res.Edges = []core.Edge{}
	p.res.Unreachable = []string{}
	if p.root == "" {
		p.res.Status = trace.StatusCompleted
		p.done()
		return
	}

	edges, dropped := candidates(p.g)
	p.join(p.root)
	if !p.emit(trace.KindStart, p.root, nil, fmt.Sprintf("Start Prim at %s", p.root), map[string]any{"collapsed": dropped}) {
		return
	}

	want := p.g.Len() - 1
	for len(p.res.Edges) < want {
		e, ok := p.lightestCrossing(edges)
		if !ok {
			break
		}
		// Orient tree → new node.
		if p.visited[e.To] {
			e = core.Edge{ID: e.ID, From: e.To, To: e.From, Weight: e.Weight}
		}
		p.res.Edges = append(p.res.Edges, e)
		p.res.TotalWeight += e.Weight
		p.join(e.To)
		if !p.emit(trace.KindAccept, e.To, &e, fmt.Sprintf("Add %s (total %g)", e, p.res.TotalWeight), nil) {
			return
		}
	}

	p.res.Status = trace.StatusCompleted
	if len(p.res.Edges) < want {
		p.res.Status = trace.StatusDisconnected
		for _, v := range p.g.Nodes() {
			if !p.visited[v] {
				p.res.Unreachable = append(p.res.Unreachable, v)
			}
		}
	}
	p.done()
}

func (p *prim) join(id string) {
	p.visited[id] = true
	p.tree = append(p.tree, id)
}

// lightestCrossing scans every candidate with exactly one endpoint in the tree.
func (p *prim) lightestCrossing(edges []core.Edge) (core.Edge, bool) {
	var best core.Edge
	found := false
	for _, e := range edges {
		if p.visited[e.From] == p.visited[e.To] {
			continue
		}
		if !found || e.Weight < best.Weight {
			best, found = e, true
		}
	}

	return best, found
}

// frontier lists non-tree nodes adjacent to the tree, in insertion order.
func (p *prim) frontier() []string {
	var out []string
	for _, v := range p.g.Nodes() {
		if p.visited[v] {
			continue
		}
		for _, n := range p.g.Neighbors(v) {
			if p.visited[n] {
				out = append(out, v)
				break
			}
		}
	}

	return out
}

func (p *prim) emit(kind trace.Kind, current string, e *core.Edge, desc string, values map[string]any) bool {
	if !p.em.Enabled() {
		return !p.em.Stopped()
	}
	s := trace.Step{
		Kind:        kind,
		Current:     current,
		Visited:     trace.Nodes(p.tree),
		Frontier:    p.frontier(),
		Path:        trace.Edges(p.res.Edges),
		Description: desc,
		Values:      values,
	}
	if e != nil {
		s.Edge = trace.EdgeRef(*e)
	}

	return p.em.Emit(s)
}

func (p *prim) done() {
	if !p.em.Enabled() {
		return
	}
	desc := fmt.Sprintf("Minimum spanning tree: %d edges, total weight %g", len(p.res.Edges), p.res.TotalWeight)
	if p.res.Status == trace.StatusDisconnected {
		desc = fmt.Sprintf("Partial tree of weight %g; unreachable: %v", p.res.TotalWeight, p.res.Unreachable)
	}
	p.em.Emit(trace.Step{
		Kind:        trace.KindDone,
		Visited:     trace.Nodes(p.tree),
		Path:        trace.Edges(p.res.Edges),
		Description: desc,
		Values: map[string]any{
			"total":       p.res.TotalWeight,
			"unreachable": trace.Nodes(p.res.Unreachable),
		},
		Status: p.res.Status,
	})
}
