package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/trace"
)

// Kruskal computes a minimum spanning forest of an undirected graph.
//
// Steps:
//  1. Validate: graph != nil, !graph.Directed().
//  2. Collect all edges, skip self-loops.
//  3. Stable sort by ascending weight; ties keep edge insertion order.
//  4. Accept an edge iff its endpoints have different representatives.
//  5. Stop once |V|-1 edges are accepted.
//
// A disconnected graph is not an error: Status is Disconnected and
// Unreachable lists the nodes outside the first node's component.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(g *core.Graph) (*Result, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	k := &kruskal{g: g, em: trace.Discard()}
	k.run()

	return &k.res, nil
}

// KruskalSteps is the traced form of Kruskal.
func KruskalSteps(g *core.Graph) (trace.Seq, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	return func(yield func(trace.Step) bool) {
		k := &kruskal{g: g, em: trace.NewEmitter(yield)}
		k.run()
	}, nil
}

type kruskal struct {
	g       *core.Graph
	em      *trace.Emitter
	covered []string // nodes touched by accepted edges, in first-touch order
	seen    map[string]bool
	res     Result
}

func (k *kruskal) run() {
	nodes := k.g.Nodes()
	all := k.g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if !e.IsLoop() {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	k.seen = make(map[string]bool, len(nodes))
	k.res.Edges = make([]core.Edge, 0, len(nodes))
	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}
	if !k.emit(trace.KindStart, nil, fmt.Sprintf("Sorted %d edges by weight", len(edges)), map[string]any{"order": ids}) {
		return
	}

	ds := newDisjointSet(nodes)
	want := len(nodes) - 1
	for _, e := range edges {
		if len(k.res.Edges) >= want {
			break
		}
		if !ds.union(e.From, e.To) {
			if !k.emit(trace.KindReject, &e, fmt.Sprintf("Reject %s: %s and %s already connected", e, e.From, e.To), nil) {
				return
			}
			continue
		}
		k.res.Edges = append(k.res.Edges, e)
		k.res.TotalWeight += e.Weight
		k.cover(e.From)
		k.cover(e.To)
		if !k.emit(trace.KindAccept, &e, fmt.Sprintf("Accept %s (total %g)", e, k.res.TotalWeight), nil) {
			return
		}
	}

	k.res.Status = trace.StatusCompleted
	k.res.Unreachable = []string{}
	if len(k.res.Edges) < want {
		k.res.Status = trace.StatusDisconnected
		root := ds.find(nodes[0])
		for _, v := range nodes {
			if ds.find(v) != root {
				k.res.Unreachable = append(k.res.Unreachable, v)
			}
		}
	}
	k.done()
}

func (k *kruskal) cover(id string) {
	if !k.seen[id] {
		k.seen[id] = true
		k.covered = append(k.covered, id)
	}
}

func (k *kruskal) emit(kind trace.Kind, e *core.Edge, desc string, values map[string]any) bool {
	if !k.em.Enabled() {
		return !k.em.Stopped()
	}
	s := trace.Step{
		Kind:        kind,
		Visited:     trace.Nodes(k.covered),
		Path:        trace.Edges(k.res.Edges),
		Description: desc,
		Values:      values,
	}
	if e != nil {
		s.Edge = trace.EdgeRef(*e)
		s.Current = e.To
	}

	return k.em.Emit(s)
}

func (k *kruskal) done() {
	if !k.em.Enabled() {
		return
	}
	desc := fmt.Sprintf("Minimum spanning tree: %d edges, total weight %g", len(k.res.Edges), k.res.TotalWeight)
	if k.res.Status == trace.StatusDisconnected {
		desc = fmt.Sprintf("Graph is disconnected: spanning forest of %d edges, total weight %g", len(k.res.Edges), k.res.TotalWeight)
	}
	k.em.Emit(trace.Step{
		Kind:        trace.KindDone,
		Visited:     trace.Nodes(k.covered),
		Path:        trace.Edges(k.res.Edges),
		Description: desc,
		Values: map[string]any{
			"total":       k.res.TotalWeight,
			"unreachable": trace.Nodes(k.res.Unreachable),
		},
		Status: k.res.Status,
	})
}
