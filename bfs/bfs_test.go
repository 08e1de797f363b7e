package bfs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/bfs"
	"github.com/katalvlaran/stepgraph/builder"
	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/floydwarshall"
	"github.com/katalvlaran/stepgraph/trace"
)

// triangle builds A—B(4), B—C(2), A—C(10), undirected.
func triangle(t testing.TB) *core.Graph {
	g, err := core.Build([]core.Triple{
		{From: "A", To: "B", Weight: 4},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 10},
	}, false, false)
	require.NoError(t, err)

	return g
}

func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := triangle(t)
	_, err = bfs.Search(g, "Z")
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	_, err = bfs.Search(g, "A", bfs.WithEnd("Z"))
	assert.ErrorIs(t, err, bfs.ErrEndNodeNotFound)

	_, err = bfs.SearchSteps(g, "", bfs.WithEnd("C"))
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	_, err = bfs.ForestSteps(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

// BFS prefers the fewest edges regardless of weight.
func TestSearch_FewestEdges(t *testing.T) {
	res, err := bfs.Search(triangle(t), "A", bfs.WithEnd("C"))
	require.NoError(t, err)

	assert.Equal(t, trace.StatusFound, res.Status)
	assert.Equal(t, []string{"A", "C"}, res.Path)
	assert.Equal(t, 1, res.Depth["C"])
	assert.Equal(t, "A", res.Parent["C"])
}

// On unit weights the all-pairs distance is the fewest-edges count, so every
// BFS path must match it, directed or not.
func TestSearch_FewestEdgesOnGeneratedGraphs(t *testing.T) {
	for _, directed := range []bool{false, true} {
		for seed := int64(1); seed <= 8; seed++ {
			out, err := builder.Generate(builder.RandomSparse(9, 0.25),
				builder.WithSeed(seed),
				builder.WithDirected(directed),
				builder.WithConstantWeight(1))
			require.NoError(t, err)
			g, err := out.Graph()
			require.NoError(t, err)
			all, err := floydwarshall.AllPairs(g)
			require.NoError(t, err)

			for _, end := range g.Nodes()[1:] {
				want, err := all.Dist("A", end)
				require.NoError(t, err)
				res, err := bfs.Search(g, "A", bfs.WithEnd(end))
				require.NoError(t, err)

				if math.IsInf(want, 1) {
					assert.Equal(t, trace.StatusNoPath, res.Status, "seed %d end %s", seed, end)
					continue
				}
				require.Equal(t, trace.StatusFound, res.Status, "seed %d end %s", seed, end)
				assert.Equal(t, int(want), len(res.Path)-1, "seed %d end %s", seed, end)
				assert.Equal(t, int(want), res.Depth[end], "seed %d end %s", seed, end)
			}
		}
	}
}

func TestSearch_Component(t *testing.T) {
	g := triangle(t)
	g.AddEdge("X", "Y", 1)

	res, err := bfs.Search(g, "A")
	require.NoError(t, err)
	assert.Equal(t, trace.StatusCompleted, res.Status)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.Len(t, res.Tree, 2)
	assert.NotContains(t, res.Depth, "X")
}

func TestSearch_NoPath(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	require.NoError(t, g.AddNode("C"))

	res, err := bfs.Search(g, "A", bfs.WithEnd("C"))
	require.NoError(t, err)
	assert.Equal(t, trace.StatusNoPath, res.Status)
	assert.Empty(t, res.Path)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestSearch_DirectedFollowsOutgoing(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 1)

	res, err := bfs.Search(g, "B", bfs.WithEnd("A"))
	require.NoError(t, err)
	assert.Equal(t, trace.StatusNoPath, res.Status)

	res, err = bfs.Search(g, "A", bfs.WithEnd("B"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Path)
}

func TestSearch_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "A", 1)
	g.AddEdge("A", "B", 1)

	res, err := bfs.Search(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	require.Len(t, res.Tree, 1)
	assert.False(t, res.Tree[0].IsLoop())
}

func TestForest_AllNodes(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "D", 1)
	require.NoError(t, g.AddNode("E"))

	res, err := bfs.Forest(g)
	require.NoError(t, err)
	assert.Equal(t, trace.StatusCompleted, res.Status)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	// V - components
	assert.Len(t, res.Tree, 2)
}

func TestSearchSteps_TraceShape(t *testing.T) {
	seq, err := bfs.SearchSteps(triangle(t), "A", bfs.WithEnd("C"))
	require.NoError(t, err)

	steps := trace.Collect(seq)
	require.NotEmpty(t, steps)
	for i, s := range steps {
		assert.Equal(t, i, s.Index)
		if i < len(steps)-1 {
			assert.Equal(t, trace.StatusRunning, s.Status)
			assert.False(t, s.Final())
		}
	}

	last := steps[len(steps)-1]
	assert.True(t, last.Final())
	assert.Equal(t, trace.StatusFound, last.Status)
	require.Len(t, last.Path, 1)
	assert.Equal(t, "A", last.Path[0].From)
	assert.Equal(t, "C", last.Path[0].To)
	assert.Equal(t, 10.0, last.Path[0].Weight)

	// Re-running the sequence yields the same trace.
	assert.Equal(t, steps, trace.Collect(seq))
}

func TestSearchSteps_MatchesSearch(t *testing.T) {
	g := triangle(t)
	res, err := bfs.Search(g, "B")
	require.NoError(t, err)

	seq, err := bfs.SearchSteps(g, "B")
	require.NoError(t, err)
	steps := trace.Collect(seq)
	last := steps[len(steps)-1]
	assert.Equal(t, res.Order, last.Visited)
	assert.Equal(t, res.Tree, last.Path)
	assert.Equal(t, res.Status, last.Status)
}

func TestSearchSteps_EarlyBreak(t *testing.T) {
	seq, err := bfs.SearchSteps(triangle(t), "A")
	require.NoError(t, err)

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestForestSteps_FinalCompleted(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	require.NoError(t, g.AddNode("C"))

	seq, err := bfs.ForestSteps(g)
	require.NoError(t, err)
	steps := trace.Collect(seq)
	last := steps[len(steps)-1]
	assert.Equal(t, trace.StatusCompleted, last.Status)
	assert.Equal(t, []string{"A", "B", "C"}, last.Visited)
}
