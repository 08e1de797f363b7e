package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/bfs"
	"github.com/katalvlaran/stepgraph/core"
)

// ExampleSearch finds the fewest-hop route on a 3×3 grid.
func ExampleSearch() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 1)
			}
			if i+1 < 3 {
				g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 1)
			}
		}
	}

	res, err := bfs.Search(g, "0_0", bfs.WithEnd("2_2"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, res.Path)
	fmt.Println(res.Order)
	// Output:
	// found [0_0 0_1 0_2 1_2 2_2]
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleSearchSteps prints a compact trace.
func ExampleSearchSteps() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)

	seq, _ := bfs.SearchSteps(g, "A", bfs.WithEnd("C"))
	for s := range seq {
		fmt.Println(s.Index, s.Kind, s.Frontier, s.Status)
	}
	// Output:
	// 0 start [A] running
	// 1 visit [] running
	// 2 enqueue [B] running
	// 3 visit [] running
	// 4 enqueue [C] running
	// 5 visit [] running
	// 6 done [] found
}
