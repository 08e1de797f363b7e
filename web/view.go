package web

import "github.com/katalvlaran/stepgraph/core"

// EdgeView is an edge plus the rendering hints a client needs to draw it:
// whether a reverse edge exists (curve instead of straight line) and its
// position among the parallel edges on the same pair.
type EdgeView struct {
	core.Edge
	Reciprocal    bool `json:"reciprocal"`
	ParallelIndex int  `json:"parallel_index"`
	ParallelCount int  `json:"parallel_count"`
	Loop          bool `json:"loop,omitempty"`
}

// GraphView is the JSON shape of a loaded graph.
type GraphView struct {
	Directed   bool       `json:"directed"`
	Multigraph bool       `json:"multigraph"`
	Nodes      []string   `json:"nodes"`
	Edges      []EdgeView `json:"edges"`
}

// NewGraphView describes g; a nil graph gives an empty view.
func NewGraphView(g *core.Graph) GraphView {
	if g == nil {
		return GraphView{Nodes: []string{}, Edges: []EdgeView{}}
	}
	edges := g.Edges()
	v := GraphView{
		Directed:   g.Directed(),
		Multigraph: g.Multigraph(),
		Nodes:      g.Nodes(),
		Edges:      make([]EdgeView, 0, len(edges)),
	}
	for _, e := range edges {
		group := g.ParallelGroup(e.From, e.To)
		ev := EdgeView{
			Edge:          e,
			Reciprocal:    !e.IsLoop() && g.HasReciprocalEdge(e.From, e.To),
			ParallelCount: len(group),
			Loop:          e.IsLoop(),
		}
		for i, pe := range group {
			if pe.ID == e.ID {
				ev.ParallelIndex = i
				break
			}
		}
		v.Edges = append(v.Edges, ev)
	}

	return v
}
