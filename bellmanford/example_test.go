package bellmanford_test

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/bellmanford"
	"github.com/katalvlaran/stepgraph/core"
)

// ExampleShortestPath reports a negative cycle instead of a path.
func ExampleShortestPath() {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", -5)
	g.AddEdge("C", "A", 1)

	res, err := bellmanford.ShortestPath(g, "A", bellmanford.WithEnd("C"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, len(res.Path))
	// Output: negative_cycle_detected 0
}
