// File: methods_clone.go
// Role: Deep copies of a Graph.
// Determinism:
//   - The clone keeps node insertion order and edge IDs, so traces recorded
//     on the clone are identical to traces recorded on the source.
// Concurrency:
//   - Read lock on the source while snapshotting; the clone is fresh.

package core

// Clone returns a deep copy of g: flags, nodes, edges and incidence lists.
// Later mutations of either graph do not affect the other.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed), WithMultigraph(g.multigraph))
	clone.nodes = make([]string, len(g.nodes))
	copy(clone.nodes, g.nodes)
	for id, i := range g.index {
		clone.index[id] = i
	}
	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)
	for id, ids := range g.incident {
		cp := make([]int, len(ids))
		copy(cp, ids)
		clone.incident[id] = cp
	}

	return clone
}
