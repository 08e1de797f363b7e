// Package prim_kruskal provides Prim's and Kruskal's algorithms for the
// Minimum Spanning Tree (MST) of an undirected *core.Graph.
//
// What & Why
//
//   - Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     spans V with minimum total weight. Its weight is unique even when ties allow several trees,
//     so Prim and Kruskal always agree on TotalWeight.
//
// Algorithms Provided
//
//   - Kruskal(g) (*Result, error)
//
//   - Strategy: stable sort of all non-loop edges by weight, then a union-find (two flat maps,
//     path compression, union by rank) accepts an edge iff it joins two different sets.
//
//   - Disconnected input yields a minimum spanning forest, Status Disconnected, and
//     Unreachable = nodes outside the first node's component.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g, WithRoot(r)) (*Result, error)
//
//   - Strategy: grow one tree from the root (default: first node in insertion order). Every
//     iteration scans all candidate edges crossing the tree boundary and takes the lightest,
//     lowest edge ID on ties.
//
//   - Unless the graph is a declared multigraph, parallel edges are collapsed to their
//     minimum-weight representative before the scan.
//
//   - When no crossing edge remains the partial tree is returned with Status Disconnected
//     and the unreached nodes.
//
//   - Complexity: O(V·E) time, O(V + E) space. The full boundary scan is what the trace shows.
//
// Self-loops never enter a tree.
//
// Error Conditions
//
//	Errors are usage errors, returned before any computation:
//
//	- ErrNilGraph      graph is nil.
//	- ErrDirectedGraph graph.Directed() == true.
//	- ErrRootNotFound  (Prim only) WithRoot names an absent node.
//	- ErrUnknownMethod (Compute only) Method is neither "prim" nor "kruskal".
//
// A disconnected graph is not an error; see Result.Status.
//
// Tracing
//
//	KruskalSteps emits KindAccept or KindReject for every edge considered; PrimSteps
//	emits KindAccept for every edge added. The final KindDone step carries the total
//	weight and the unreachable nodes in Values.
package prim_kruskal
