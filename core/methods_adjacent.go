// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors, Incident) and edge classification
//       (HasReciprocalEdge, ParallelGroup).
// Determinism:
//   - Neighbors() orders IDs by the first incident edge in edge ID order.
//   - Incident() and ParallelGroup() return edges in edge ID order.
// Concurrency:
//   - All methods hold mu for reading.

package core

// Neighbors returns the node IDs reachable from id over one edge.
//
// Neighborhood policy:
//   - Undirected graphs: every incident edge, in either direction.
//   - Directed graphs: outgoing edges only (e.From == id).
//   - Self-loops never make a node its own neighbor.
//
// Duplicates from parallel edges are removed; order is the order in which the
// first edge reaching each neighbor was inserted. Returns nil for an unknown id.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.incident[id]
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	var e Edge
	for _, eid := range ids {
		e = g.edges[eid]
		if e.IsLoop() {
			continue
		}
		if g.directed && e.From != id {
			continue
		}
		nbr := e.Other(id)
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		out = append(out, nbr)
	}

	return out
}

// Incident returns the traversable edges leaving id, oriented so that
// From == id. For undirected graphs an edge stored as (x, id) is returned as
// a flipped copy (id, x) with the same ID and weight. Self-loops are excluded.
// Complexity: O(deg(id))
func (g *Graph) Incident(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.incident[id]
	out := make([]Edge, 0, len(ids))
	var e Edge
	for _, eid := range ids {
		e = g.edges[eid]
		if e.IsLoop() {
			continue
		}
		if e.From == id {
			out = append(out, e)
			continue
		}
		if !g.directed {
			out = append(out, Edge{ID: e.ID, From: id, To: e.From, Weight: e.Weight})
		}
	}

	return out
}

// HasReciprocalEdge reports whether an edge (to, from) exists. It is a
// rendering hint (curved vs straight) and no algorithm depends on it.
// Complexity: O(deg(to))
func (g *Graph) HasReciprocalEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, eid := range g.incident[to] {
		e := g.edges[eid]
		if e.From == to && e.To == from {
			return true
		}
	}

	return false
}

// ParallelGroup returns every edge sharing the pair (from, to): the ordered
// pair in a directed graph, the unordered pair otherwise. The result is in
// edge ID order, so an edge's position in its group is stable.
// Complexity: O(deg(from))
func (g *Graph) ParallelGroup(from, to string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for _, eid := range g.incident[from] {
		e := g.edges[eid]
		switch {
		case e.From == from && e.To == to:
			out = append(out, e)
		case !g.directed && e.From == to && e.To == from:
			out = append(out, e)
		}
	}

	return out
}
