package dfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/dfs"
	"github.com/katalvlaran/stepgraph/trace"
)

// diamond builds the directed graph A→B, A→C, B→D, C→D, D→E, D→F.
func diamond() *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}} {
		g.AddEdge(e[0], e[1], 1)
	}

	return g
}

func TestSearch_Errors(t *testing.T) {
	_, err := dfs.Search(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.Search(diamond(), "Z")
	assert.ErrorIs(t, err, dfs.ErrStartNodeNotFound)

	_, err = dfs.SearchSteps(diamond(), "A", dfs.WithEnd("Z"))
	assert.ErrorIs(t, err, dfs.ErrEndNodeNotFound)

	_, err = dfs.Forest(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestSearch_Orders(t *testing.T) {
	res, err := dfs.Search(diamond(), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "E", "F", "C"}, res.Order)
	assert.Equal(t, []string{"E", "F", "D", "B", "C", "A"}, res.Finish)
	assert.Equal(t, 3, res.Depth["E"])
	assert.Equal(t, "D", res.Parent["F"])
	assert.Len(t, res.Tree, 5)
	assert.False(t, res.HasCycle())
	assert.Equal(t, trace.StatusCompleted, res.Status)
}

func TestSearch_WithEndStopsEarly(t *testing.T) {
	res, err := dfs.Search(diamond(), "A", dfs.WithEnd("D"))
	require.NoError(t, err)

	assert.Equal(t, trace.StatusFound, res.Status)
	assert.Equal(t, []string{"A", "B", "D"}, res.Path)
	assert.NotContains(t, res.Order, "E")
}

func TestSearch_EndIsStart(t *testing.T) {
	res, err := dfs.Search(diamond(), "A", dfs.WithEnd("A"))
	require.NoError(t, err)
	assert.Equal(t, trace.StatusFound, res.Status)
	assert.Equal(t, []string{"A"}, res.Path)
}

func TestSearch_NoPathDirected(t *testing.T) {
	res, err := dfs.Search(diamond(), "D", dfs.WithEnd("A"))
	require.NoError(t, err)
	assert.Equal(t, trace.StatusNoPath, res.Status)
	assert.Empty(t, res.Path)
}

func TestSearch_CycleDetection(t *testing.T) {
	cases := []struct {
		name     string
		directed bool
		edges    [][2]string
		cycle    bool
	}{
		{"undirected path", false, [][2]string{{"A", "B"}, {"B", "C"}}, false},
		{"undirected triangle", false, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}}, true},
		{"undirected parallel pair", false, [][2]string{{"A", "B"}, {"A", "B"}}, true},
		{"directed dag", true, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "C"}}, false},
		{"directed 3-cycle", true, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}}, true},
		{"directed 2-cycle", true, [][2]string{{"A", "B"}, {"B", "A"}}, true},
		{"self-loop only", true, [][2]string{{"A", "A"}, {"A", "B"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(core.WithDirected(tc.directed), core.WithMultigraph(true))
			for _, e := range tc.edges {
				g.AddEdge(e[0], e[1], 1)
			}
			res, err := dfs.Search(g, "A")
			require.NoError(t, err)
			assert.Equal(t, tc.cycle, res.HasCycle())
		})
	}
}

func TestForest_Components(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "D", 1)
	require.NoError(t, g.AddNode("E"))

	res, err := dfs.Forest(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Len(t, res.Finish, 5)
	assert.Len(t, res.Tree, 2)
}

func TestSearch_DeepChain(t *testing.T) {
	const n = 50000
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}
	res, err := dfs.Search(g, "v0", dfs.WithEnd(fmt.Sprintf("v%d", n)))
	require.NoError(t, err)
	assert.Len(t, res.Path, n+1)
}

func TestSearchSteps_Trace(t *testing.T) {
	seq, err := dfs.SearchSteps(diamond(), "A", dfs.WithEnd("D"))
	require.NoError(t, err)
	steps := trace.Collect(seq)
	require.NotEmpty(t, steps)

	first, last := steps[0], steps[len(steps)-1]
	assert.Equal(t, trace.KindStart, first.Kind)
	assert.Equal(t, []string{"A"}, first.Frontier)
	assert.Equal(t, trace.StatusFound, last.Status)
	require.Len(t, last.Path, 2)
	assert.Equal(t, "A", last.Path[0].From)
	assert.Equal(t, "D", last.Path[1].To)
	// Stack at the moment D is found.
	assert.Equal(t, []string{"A", "B", "D"}, last.Frontier)
}

func TestForestSteps_MatchesForest(t *testing.T) {
	g := diamond()
	g.AddEdge("X", "Y", 1)
	res, err := dfs.Forest(g)
	require.NoError(t, err)

	seq, err := dfs.ForestSteps(g)
	require.NoError(t, err)
	steps := trace.Collect(seq)
	last := steps[len(steps)-1]
	assert.Equal(t, res.Order, last.Visited)
	assert.Equal(t, res.Tree, last.Path)
	assert.Equal(t, trace.StatusCompleted, last.Status)
	assert.Empty(t, last.Frontier)
}
