// Package bfs provides breadth-first search over a core.Graph, returning
// fewest-edge paths, parent links and visit order, either as a plain Result
// or as a replayable step trace.
//
// What
//
//   - Search(g, start, WithEnd(end)): stop when end is dequeued and return
//     the fewest-edges path (Status Found) or report Status NoPath.
//   - Search(g, start): traverse the component of start (Status Completed).
//   - Forest(g): traverse every node; each undiscovered node, in insertion
//     order, seeds a new tree.
//   - SearchSteps / ForestSteps: the same runs as a lazy trace.Seq.
//
// Determinism
//
//	Neighbors are expanded in core.Graph.Incident order, that is in order of
//	edge insertion. Two runs over the same graph emit identical traces.
//
// Trace
//
//	Visited is the dequeue order; Frontier is the queue; Path is the
//	discovery tree so far. The final step carries the found path edges, or
//	the tree when no end was requested or reached.
//
// Self-loops are never traversed. Directed graphs follow outgoing edges only.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartNodeNotFound   if the start node does not exist.
//   - ErrEndNodeNotFound     if WithEnd names a node that does not exist.
package bfs
