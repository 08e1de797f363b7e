package builder

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/stepgraph/core"
)

// Constructor emits one topology into a sink. Implementations validate their
// parameters and return errors instead of panicking.
type Constructor func(s *sink) error

// sink collects nodes and rows while a Constructor runs.
type sink struct {
	cfg   config
	nodes []string
	seen  map[string]struct{}
	rows  []core.Triple
}

// node registers the node with index idx and returns its ID.
func (s *sink) node(idx int) string {
	id := s.cfg.idFn(idx)
	if _, ok := s.seen[id]; !ok {
		s.seen[id] = struct{}{}
		s.nodes = append(s.nodes, id)
	}

	return id
}

// edge appends a row u→v with a freshly drawn weight.
func (s *sink) edge(u, v string) {
	s.rows = append(s.rows, core.Triple{From: u, To: v, Weight: s.cfg.weightFn(s.cfg.rng)})
}

// Output is a generated graph: its nodes in index order and its rows in
// emission order.
type Output struct {
	Directed bool
	Nodes    []string
	Triples  []core.Triple
}

// Generate runs cons with opts.
func Generate(cons Constructor, opts ...Option) (*Output, error) {
	if cons == nil {
		return nil, fmt.Errorf("Generate: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newConfig(opts...)
	s := &sink{cfg: cfg, seen: make(map[string]struct{})}
	if err := cons(s); err != nil {
		return nil, err
	}

	return &Output{Directed: cfg.directed, Nodes: s.nodes, Triples: s.rows}, nil
}

// Graph builds a simple core.Graph from o. Nodes keep o.Nodes order, so
// nodes without edges are present too.
func (o *Output) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(o.Directed))
	for _, id := range o.Nodes {
		if err := g.AddNode(id); err != nil {
			return nil, err
		}
	}
	for _, t := range o.Triples {
		g.AddEdge(t.From, t.To, t.Weight)
	}

	return g, nil
}

// WriteTo writes o as an edge list. Undirected rows are written together
// with their mirror so that shape detection reads the list back as
// undirected; nodes without edges get a line of their own.
func (o *Output) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	touched := make(map[string]bool, len(o.Nodes))
	for _, t := range o.Triples {
		touched[t.From], touched[t.To] = true, true
		writeRow(&b, t.From, t.To, t.Weight)
		if !o.Directed && t.From != t.To {
			writeRow(&b, t.To, t.From, t.Weight)
		}
	}
	for _, id := range o.Nodes {
		if !touched[id] {
			b.WriteString(id)
			b.WriteByte('\n')
		}
	}
	n, err := io.WriteString(w, b.String())

	return int64(n), err
}

func writeRow(b *strings.Builder, from, to string, w float64) {
	b.WriteString(from)
	b.WriteByte(' ')
	b.WriteString(to)
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(w, 'g', -1, 64))
	b.WriteByte('\n')
}

// Kinds lists the names Named accepts.
func Kinds() []string {
	return []string{"path", "cycle", "complete", "star", "wheel", "grid", "random"}
}

// Named resolves a topology by name. n is the node count (rows for grid),
// m the grid column count and p the edge probability of random.
func Named(kind string, n, m int, p float64) (Constructor, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "complete":
		return Complete(n), nil
	case "star":
		return Star(n), nil
	case "wheel":
		return Wheel(n), nil
	case "grid":
		return Grid(n, m), nil
	case "random":
		return RandomSparse(n, p), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
