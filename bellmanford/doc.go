// Package bellmanford implements the Bellman-Ford single-source shortest
// path algorithm on a core.Graph, including negative edge weights.
//
// The edge list is expanded once into relaxation arcs: a directed edge is one
// arc, an undirected edge is two arcs (u→v then v→u) relaxed within the same
// pass. Up to |V|-1 passes run, stopping early after a pass without change.
// A verification pass then looks for any arc, reachable from the source, that
// still relaxes; if one exists the result is trace.StatusNegativeCycle and no
// path is reported.
//
// A consequence worth knowing: on an undirected graph any negative edge
// reachable from the source is a negative cycle (walk it back and forth).
// Self-loops never relax, so a negative self-loop is ignored.
//
// ShortestPathSteps emits a KindPass step at the start of every pass and a
// KindRelax step for every strict improvement. Frontier holds the nodes
// improved so far in the current pass.
package bellmanford
