package web_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/engine"
	"github.com/katalvlaran/stepgraph/playback"
	"github.com/katalvlaran/stepgraph/trace"
	"github.com/katalvlaran/stepgraph/web"
)

const triangle = "A B 4\nB A 4\nB C 2\nC B 2\nA C 10\nC A 10\n"

func newServer(t *testing.T) (*web.Server, *web.Broker) {
	t.Helper()
	b := web.NewBroker(16, nil)
	p := playback.New(playback.WithListener(web.FrameListener(b)), playback.WithBaseDelay(time.Millisecond))
	s := web.NewServer(engine.NewSession(p, nil), b, nil)
	t.Cleanup(b.Close)

	return s, b
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func TestServer_GraphRoundTrip(t *testing.T) {
	s, _ := newServer(t)
	h := s.Handler()

	rec := do(t, h, http.MethodGet, "/api/graph", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[web.GraphView](t, rec).Nodes)

	rec = do(t, h, http.MethodPut, "/api/graph", triangle)
	require.Equal(t, http.StatusOK, rec.Code)
	v := decode[web.GraphView](t, rec)
	assert.False(t, v.Directed)
	assert.Equal(t, []string{"A", "B", "C"}, v.Nodes)
	assert.Len(t, v.Edges, 3)

	rec = do(t, h, http.MethodGet, "/api/graph", "")
	assert.Equal(t, v, decode[web.GraphView](t, rec))
}

func TestServer_GraphHints(t *testing.T) {
	s, _ := newServer(t)
	rec := do(t, s.Handler(), http.MethodPut, "/api/graph?directed=true&multigraph=true", "A B 1\nB A 2\nA B 3\nC C 1\n")
	require.Equal(t, http.StatusOK, rec.Code)
	v := decode[web.GraphView](t, rec)

	require.Len(t, v.Edges, 4)
	assert.True(t, v.Edges[0].Reciprocal)
	assert.Equal(t, 0, v.Edges[0].ParallelIndex)
	assert.Equal(t, 2, v.Edges[0].ParallelCount)
	assert.Equal(t, 1, v.Edges[1].ParallelCount)
	assert.Equal(t, 1, v.Edges[2].ParallelIndex)
	assert.True(t, v.Edges[3].Loop)
	assert.False(t, v.Edges[3].Reciprocal)
}

func TestServer_BadInput(t *testing.T) {
	s, _ := newServer(t)
	h := s.Handler()

	rec := do(t, h, http.MethodPut, "/api/graph", "A B 1\nA B x\n")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "line 2")

	rec = do(t, h, http.MethodPut, "/api/graph?directed=perhaps", "A B 1\n")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/run", `{"algorithm":"bfs","start":"A"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	do(t, h, http.MethodPut, "/api/graph", triangle)
	rec = do(t, h, http.MethodPost, "/api/run", `{"algorithm":"astar"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/run", `{"algorithm":"bfs","start":"Q"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/run", `{"algo":"bfs"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/run", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/playback/rewind", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_RunAndStep(t *testing.T) {
	s, _ := newServer(t)
	h := s.Handler()
	do(t, h, http.MethodPut, "/api/graph", triangle)

	rec := do(t, h, http.MethodPost, "/api/run", `{"algorithm":"dijkstra","start":"A","end":"C"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[engine.RunOutput](t, rec)
	assert.Equal(t, trace.StatusFound, out.Result.Status)
	assert.Equal(t, []string{"A", "B", "C"}, out.Result.Path)
	assert.Equal(t, 6.0, out.Result.Total)

	steps := decode[[]trace.Step](t, do(t, h, http.MethodGet, "/api/steps", ""))
	require.NotEmpty(t, steps)

	rec = do(t, h, http.MethodPost, "/api/playback/step", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"paused"`)
	assert.Contains(t, rec.Body.String(), `"cursor":1`)

	for range steps {
		do(t, h, http.MethodPost, "/api/playback/step", "")
	}
	rec = do(t, h, http.MethodGet, "/api/playback", "")
	assert.Contains(t, rec.Body.String(), `"state":"finished"`)
	assert.Contains(t, rec.Body.String(), `"status":"found"`)

	rec = do(t, h, http.MethodPost, "/api/playback/reset", "")
	assert.Contains(t, rec.Body.String(), `"state":"ready"`)

	rec = do(t, h, http.MethodPut, "/api/playback/speed", `{"speed":99}`)
	assert.Contains(t, rec.Body.String(), `"speed":10`)
}

func TestServer_MSTOnDirectedGraph(t *testing.T) {
	s, _ := newServer(t)
	h := s.Handler()
	do(t, h, http.MethodPut, "/api/graph?directed=true", "A B 1\n")

	rec := do(t, h, http.MethodPost, "/api/run", `{"algorithm":"prim"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[engine.RunOutput](t, rec)
	assert.Equal(t, trace.StatusInvalidDirected, out.Result.Status)

	steps := decode[[]trace.Step](t, do(t, h, http.MethodGet, "/api/steps", ""))
	require.Len(t, steps, 1)
	assert.Equal(t, trace.StatusInvalidDirected, steps[0].Status)
}

func TestServer_EventsStream(t *testing.T) {
	s, _ := newServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	h := s.Handler()
	do(t, h, http.MethodPut, "/api/graph", triangle)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	sc := bufio.NewScanner(resp.Body)
	next := func() string {
		for sc.Scan() {
			if typ, ok := strings.CutPrefix(sc.Text(), "event: "); ok {
				return typ
			}
		}
		return ""
	}

	// The latest event of each type is replayed on subscribe: the frame
	// from unloading the player, then the graph.
	replayed := map[string]bool{next(): true}
	replayed[next()] = true
	assert.True(t, replayed[web.EventGraph])
	assert.True(t, replayed[web.EventFrame])

	rec := do(t, h, http.MethodPost, "/api/run", `{"algorithm":"bfs","start":"A"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	seen := map[string]bool{}
	for len(seen) < 2 {
		typ := next()
		require.NotEmpty(t, typ)
		seen[typ] = true
	}
	assert.True(t, seen[web.EventFrame])
	assert.True(t, seen[web.EventRun])
}
