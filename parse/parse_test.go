package parse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/parse"
)

func TestRead_Rows(t *testing.T) {
	src := `# triangle
A B 4
B,C,2

A C 10.5   # trailing comment
D
`
	in, err := parse.Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []core.Triple{
		{From: "A", To: "B", Weight: 4},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 10.5},
	}, in.Triples)
	assert.Equal(t, []string{"D"}, in.Isolated)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		want error
	}{
		{"two fields", "A B 1\nA B\n", 2, parse.ErrMalformedRow},
		{"four fields", "A B 1 2\n", 1, parse.ErrMalformedRow},
		{"bad weight", "\n\nA B x\n", 3, parse.ErrBadWeight},
		{"nan weight", "A B NaN\n", 1, parse.ErrBadWeight},
		{"inf weight", "# c\nA B +Inf\n", 2, parse.ErrBadWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse.Read(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			var le *parse.LineError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, tc.line, le.Line)
			assert.Contains(t, err.Error(), "line")
		})
	}
}

func TestEdgeList_AutoUndirectedCollapsesMirrors(t *testing.T) {
	src := "A B 4\nB A 4\nB C 2\nC B 2\n"
	g, shape, err := parse.EdgeList(strings.NewReader(src), parse.Options{})
	require.NoError(t, err)
	assert.False(t, shape.Directed)
	assert.False(t, shape.Multigraph)
	assert.False(t, g.Directed())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []string{"A", "B", "C"}, g.Nodes())
}

func TestEdgeList_AutoDirected(t *testing.T) {
	src := "A B 1\nB C -5\nC A 1\n"
	g, shape, err := parse.EdgeList(strings.NewReader(src), parse.Options{})
	require.NoError(t, err)
	assert.True(t, shape.Directed)
	assert.True(t, g.Directed())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestEdgeList_AutoMultigraph(t *testing.T) {
	src := "A B 1\nB A 1\nA B 3\nB A 3\n"
	g, shape, err := parse.EdgeList(strings.NewReader(src), parse.Options{})
	require.NoError(t, err)
	assert.False(t, shape.Directed)
	assert.True(t, shape.Multigraph)
	assert.Len(t, g.ParallelGroup("A", "B"), 2)
}

func TestEdgeList_ForcedFlags(t *testing.T) {
	src := "A B 4\nB C 2\nA C 10\nD\n"
	g, shape, err := parse.EdgeList(strings.NewReader(src), parse.Options{Directed: parse.No, Multigraph: parse.No})
	require.NoError(t, err)
	assert.Equal(t, core.Shape{}, shape)
	assert.False(t, g.Directed())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasNode("D"))
	assert.Empty(t, g.Neighbors("D"))
}

func TestParseFlag(t *testing.T) {
	for in, want := range map[string]parse.Flag{
		"":      parse.Auto,
		"AUTO":  parse.Auto,
		"true":  parse.Yes,
		"yes":   parse.Yes,
		"0":     parse.No,
		"false": parse.No,
	} {
		got, err := parse.ParseFlag(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parse.ParseFlag("maybe")
	assert.Error(t, err)
	assert.Equal(t, "auto", parse.Auto.String())
	assert.True(t, parse.Auto.Resolve(true))
	assert.False(t, parse.No.Resolve(true))
}
