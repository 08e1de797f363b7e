// Package floydwarshall computes all-pairs shortest paths on a core.Graph
// with the Floyd-Warshall dynamic program.
//
// Distances live in a gonum mat.Dense indexed by node insertion order; a
// parallel routing table next[i][j] names the node after i on a shortest
// i→j path. The table is seeded from direct edges (the minimum weight over
// parallel edges, both directions for undirected graphs, self-loops
// ignored) and then relaxed with the loop nesting k → i → j. The nesting is
// load-bearing: k must be the outermost loop.
//
// After the run a negative diagonal entry means some node reaches itself at
// negative cost; Result.Status is then trace.StatusNegativeCycle and Path
// refuses to reconstruct routes. Path also reports NoPath for an infinite
// distance without reading the routing table.
//
// AllPairsSteps emits a KindPass step for every intermediate node and a
// KindRelax step for every improved pair, with Path set to the new route.
package floydwarshall
