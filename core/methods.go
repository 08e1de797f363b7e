// File: methods.go
// Role: Node and edge lifecycle (AddNode, AddEdge) and read-only getters.
// Determinism:
//   - Nodes() returns insertion order.
//   - Edges() returns edge ID order (== insertion order).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddNode inserts id if it is not already present. Isolated nodes (no
// incident edge) are legal and take part in whole-graph traversals and MST
// reachability.
// Complexity: O(1)
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)

	return nil
}

// AddEdge appends a new edge and returns it. Missing endpoints are inserted
// into the node set first (from before to), which keeps the "every endpoint
// exists" invariant by construction. Self-loops and parallel edges are
// always stored.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) Edge {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(from)
	g.ensureNode(to)

	e := Edge{ID: len(g.edges), From: from, To: to, Weight: weight}
	g.edges = append(g.edges, e)
	g.incident[from] = append(g.incident[from], e.ID)
	if from != to {
		g.incident[to] = append(g.incident[to], e.ID)
	}

	return e
}

// ensureNode must be called with mu held for writing.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, id)
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Multigraph reports the declared multigraph flag.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.multigraph
}

// HasNode reports whether id is in the node set.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// NodeIndex returns the insertion position of id, used for deterministic
// tie-breaking (lowest index wins).
func (g *Graph) NodeIndex(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]

	return i, ok
}

// Nodes returns a copy of the node IDs in insertion order.
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge list in ID order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id int) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || id >= len(g.edges) {
		return Edge{}, false
	}

	return g.edges[id], true
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of stored edges, self-loops included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasNegativeWeight reports whether any non-loop edge has a negative weight,
// returning the first such edge.
func (g *Graph) HasNegativeWeight() (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.edges {
		if e.Weight < 0 && !e.IsLoop() {
			return e, true
		}
	}

	return Edge{}, false
}

// Validate checks the structural invariant that every edge endpoint is in
// the node set. A failure is a programming error, never an input error.
// Complexity: O(E)
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.edges {
		if _, ok := g.index[e.From]; !ok {
			return fmt.Errorf("%w: edge %d from %q", ErrDanglingEdge, e.ID, e.From)
		}
		if _, ok := g.index[e.To]; !ok {
			return fmt.Errorf("%w: edge %d to %q", ErrDanglingEdge, e.ID, e.To)
		}
	}

	return nil
}
