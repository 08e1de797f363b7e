// Package engine dispatches a Request to one of the seven algorithms and
// flattens their outcomes into a single Result.
//
// Run returns the untraced Result; Steps returns the traced run. Both check
// the request first: an unknown algorithm or a missing or unknown endpoint
// is an error. A graph failing core.Graph.Validate is reported as
// ErrInvariant. Usage errors (directed input to Kruskal or Prim, negative
// weights into Dijkstra) are not errors here: they come back as
// StatusInvalidDirected or StatusInvalidNegative, and in traced mode as a
// trace with a single done step.
//
// Session holds the graph, the latest run and the playback.Player for one
// user, so that a new graph or a new run discards the previous trace.
package engine
