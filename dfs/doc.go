// Package dfs implements depth-first search (single-source, targeted and
// forest) on a core.Graph, either as a plain Result or as a replayable step
// trace.
//
// What:
//
//   - Search(g, start): traverse the component of start; Status Completed.
//   - Search(g, start, WithEnd(end)): stop as soon as end is discovered;
//     Status Found with the stack path, or NoPath once the stack empties.
//   - Forest(g): traverse every node, seeding new trees in insertion order.
//   - SearchSteps / ForestSteps: the same runs as a lazy trace.Seq.
//
// The walk keeps an explicit stack of frames instead of recursing, so deep
// chains cannot overflow the goroutine stack. Every frame remembers the edge
// it was entered through; on a found end the stack itself is the path.
//
// Nodes are colored White, Gray and Black. An edge reaching a Gray node
// other than through the frame's own entry edge is recorded as a back edge,
// so Result.HasCycle answers cycle detection for both directed and undirected
// graphs. Self-loops are never traversed and never count.
//
// Determinism:
//
//	Neighbors are tried in core.Graph.Incident order (edge insertion order).
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs
