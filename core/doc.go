// Package core provides the in-memory graph model shared by every stepgraph
// algorithm.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Declared multigraph flag (WithMultigraph); parallel edges are always
//     stored, the flag only tells simple-graph algorithms whether to collapse them
//   - Float weights, negative and fractional allowed
//   - Sequential edge IDs (0, 1, 2, …) that tell parallel edges apart
//   - Node set in insertion order, derived from edge endpoints
//
// Determinism:
//
//	Nodes() keeps insertion order, Edges()/Incident()/ParallelGroup() keep
//	edge ID order and Neighbors() orders IDs by their first incident edge.
//	Every trace built on top of core is therefore reproducible.
//
// Self-loops:
//
//	Stored, reported by Edges() and ParallelGroup(), but excluded from
//	Neighbors() and Incident(): no algorithm ever steps over a self-loop.
//
// Construction:
//
//	g, err := core.Build(triples, directed, multigraph) // one pass, endpoints become nodes
//	g.AddNode("isolated")                                // optional isolated node
//
// Shape detection for raw edge lists (Detect, DetectDirected,
// DetectMultigraph, CollapseMirrored) is pure and lives alongside the model
// so that parsers can decide the flags before calling Build.
package core
