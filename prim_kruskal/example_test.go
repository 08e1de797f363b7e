package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/prim_kruskal"
)

// ExampleKruskal computes the MST of a small triangle.
func ExampleKruskal() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 10)

	res, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Edges, res.TotalWeight)
	// Output: [B→C(2) A→B(4)] 6
}

// ExamplePrim shows the partial tree reported for a disconnected graph.
func ExamplePrim() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	_ = g.AddNode("C")

	res, _ := prim_kruskal.Prim(g)
	fmt.Println(res.Status, res.TotalWeight, res.Unreachable)
	// Output: disconnected 1 [C]
}
