// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph with non-negative edge weights.
//
// ShortestPath settles nodes in order of increasing distance using a binary
// min-heap with lazy decrease-key. Heap entries are ordered by distance and,
// on exact ties, by node insertion index, so the settle order and hence the
// trace are deterministic.
//
// With WithEnd the search stops as soon as the end node is popped; an empty
// heap before that yields Status NoPath. Without an end node every reachable
// node is settled and Status is Completed.
//
// Negative weights are a usage error: ErrNegativeWeight is returned before
// any relaxation. Self-loops never relax.
//
// ShortestPathSteps exposes the same run as a trace: one step per settled
// node and one per strictly improved distance. Values["dist"] carries the
// finite part of the distance table.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Example usage:
//
//	res, err := dijkstra.ShortestPath(g, "A", dijkstra.WithEnd("C"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Total)
package dijkstra
