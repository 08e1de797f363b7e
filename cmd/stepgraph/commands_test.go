package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/builder"
	"github.com/katalvlaran/stepgraph/engine"
	"github.com/katalvlaran/stepgraph/trace"
)

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRunCmd_Text(t *testing.T) {
	in := writeInput(t, "A B 4\nB C 2\nA C 10\n")
	out, err := execute(t, "run", "-i", in, "--directed=false", "-a", "dijkstra", "-s", "A", "-e", "C")
	require.NoError(t, err)
	assert.Equal(t, "dijkstra: path A → B → C (weight 6)\n", out)
}

func TestRunCmd_JSON(t *testing.T) {
	in := writeInput(t, "A B 1\nB C -5\nC A 1\n")
	out, err := execute(t, "run", "-i", in, "-a", "bellman-ford", "-s", "A", "-o", "json")
	require.NoError(t, err)

	var res engine.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, trace.StatusNegativeCycle, res.Status)
}

func TestRunCmd_Errors(t *testing.T) {
	in := writeInput(t, "A B 1\n")

	_, err := execute(t, "run", "-a", "bfs", "-s", "A")
	assert.Error(t, err, "missing input")

	_, err = execute(t, "run", "-i", in, "-a", "astar")
	assert.ErrorIs(t, err, engine.ErrUnknownAlgorithm)

	_, err = execute(t, "run", "-i", in, "-a", "bfs", "-s", "Z")
	assert.ErrorIs(t, err, engine.ErrUnknownNode)

	bad := writeInput(t, "A B one\n")
	_, err = execute(t, "run", "-i", bad, "-a", "bfs", "-s", "A")
	assert.ErrorContains(t, err, "line 1")
}

func TestTraceCmd(t *testing.T) {
	in := writeInput(t, "A B 1\nB C 1\n")
	out, err := execute(t, "trace", "-i", in, "--directed=false", "-a", "bfs", "-s", "A", "-e", "C")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "start")
	assert.Contains(t, lines[len(lines)-1], "done")
}

func TestTraceCmd_Animate(t *testing.T) {
	in := writeInput(t, "A B 1\nB C 1\n")
	plain, err := execute(t, "trace", "-i", in, "--directed=false", "-a", "dfs", "-s", "A")
	require.NoError(t, err)
	animated, err := execute(t, "trace", "--animate", "--speed", "10", "--base-delay", "1ms",
		"-i", in, "--directed=false", "-a", "dfs", "-s", "A")
	require.NoError(t, err)
	assert.Equal(t, plain, animated)
}

func TestServeCmd_WatchNeedsFile(t *testing.T) {
	_, err := execute(t, "serve", "--watch")
	assert.ErrorContains(t, err, "--watch")
}

func TestGenCmd(t *testing.T) {
	out, err := execute(t, "gen", "--kind", "path", "-n", "3", "--min-weight", "2", "--max-weight", "2")
	require.NoError(t, err)
	assert.Equal(t, "A B 2\nB A 2\nB C 2\nC B 2\n", out)

	in := writeInput(t, out)
	res, err := execute(t, "run", "-i", in, "-a", "dijkstra", "-s", "A", "-e", "C")
	require.NoError(t, err)
	assert.Equal(t, "dijkstra: path A → B → C (weight 4)\n", res)

	out, err = execute(t, "gen", "--kind", "star", "-n", "3", "--directed=true", "--ids", "numbers", "--max-weight", "1")
	require.NoError(t, err)
	assert.Equal(t, "0 1 1\n0 2 1\n", out)

	_, err = execute(t, "gen", "--kind", "hexagram")
	assert.ErrorIs(t, err, builder.ErrUnknownKind)
	_, err = execute(t, "gen", "--min-weight", "5", "--max-weight", "1")
	assert.ErrorContains(t, err, "max-weight")
}
