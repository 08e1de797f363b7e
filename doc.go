// Package stepgraph is a graph-algorithm teaching engine: it runs classic
// algorithms on small weighted graphs and records every observable state
// change as a replayable step.
//
// What is inside:
//
//	core/          — Graph model: insertion-ordered nodes, sequential edge IDs,
//	                 parallel-edge groups, reciprocal hints, shape detection
//	bfs/, dfs/     — traversals, targeted (start→end) and whole-graph (forest)
//	dijkstra/      — single-source shortest paths, non-negative weights
//	bellmanford/   — single-source shortest paths with negative-cycle detection
//	floydwarshall/ — all-pairs shortest paths over a gonum mat.Dense
//	prim_kruskal/  — minimum spanning trees and forests
//	trace/         — Step, Status, the Emitter every algorithm records through,
//	                 and the Overlay a renderer derives from a replayed prefix
//	playback/      — the Idle → Ready → Playing/Paused → Finished player
//	engine/        — algorithm dispatch, unified Result, per-user Session
//	parse/         — text edge lists with line-numbered errors
//	config/, logging/, watch/, web/, cmd/stepgraph — the CLI and HTTP surface
//
// Every algorithm has one runner. The untraced call (Search, ShortestPath,
// AllPairs, Kruskal, Prim) drives it with a disabled emitter; the traced
// call (…Steps) hands the same runner to an iter.Seq[trace.Step], so the
// result and the animation can never disagree.
//
// Quick example:
//
//	g, _ := core.Build([]core.Triple{{"A", "B", 4}, {"B", "C", 2}, {"A", "C", 10}}, false, false)
//	res, _ := engine.Run(g, engine.Request{Algorithm: engine.Dijkstra, Start: "A", End: "C"})
//	fmt.Println(res.Summary()) // dijkstra: path A → B → C (weight 6)
//
//	go install github.com/katalvlaran/stepgraph/cmd/stepgraph@latest
package stepgraph
