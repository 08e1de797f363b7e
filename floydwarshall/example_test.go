package floydwarshall_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/floydwarshall"
)

// ExampleAllPairs prints the distance matrix of a small directed graph.
func ExampleAllPairs() {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 3)
	g.AddEdge("B", "C", 1)
	g.AddEdge("A", "C", 7)
	g.AddEdge("C", "A", 2)

	res, err := floydwarshall.AllPairs(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, from := range res.Nodes() {
		row := make([]string, 0, 3)
		for _, to := range res.Nodes() {
			d, _ := res.Dist(from, to)
			row = append(row, fmt.Sprintf("%s→%s=%g", from, to, d))
		}
		fmt.Println(strings.Join(row, " "))
	}
	route, _ := res.Path("A", "C")
	fmt.Println(route.Path, route.Total)
	// Output:
	// A→A=0 A→B=3 A→C=4
	// B→A=3 B→B=0 B→C=1
	// C→A=2 C→B=5 C→C=0
	// [A B C] 4
}
