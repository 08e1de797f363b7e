package engine

import (
	"context"
	"log/slog"
	"sync"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/playback"
	"github.com/katalvlaran/stepgraph/trace"
)

// RunOutput bundles what one RunAlgorithm call produced.
type RunOutput struct {
	Request Request      `json:"request"`
	Result  *Result      `json:"result"`
	Steps   []trace.Step `json:"-"`
}

// Session owns the current graph and the player replaying the latest run.
// Nothing is global: every Session is independent.
//
// Loading a graph drops the previous trace; running an algorithm replaces it
// and cancels any pending playback tick.
type Session struct {
	mu     sync.RWMutex
	graph  *core.Graph
	last   *RunOutput
	player *playback.Player
	log    *slog.Logger
}

// NewSession returns a Session without a graph. A nil player gets a default
// one; a nil logger falls back to slog.Default().
func NewSession(player *playback.Player, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if player == nil {
		player = playback.New(playback.WithLogger(logger))
	}

	return &Session{
		player: player,
		log:    logger.With(slog.String("component", "engine")),
	}
}

// LoadGraph replaces the graph wholesale with a snapshot of g and unloads
// the player. Later changes to g do not reach the session.
func (s *Session) LoadGraph(g *core.Graph) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g != nil {
		g = g.Clone()
	}
	s.graph = g
	s.last = nil
	s.player.Unload()
	if g != nil {
		s.log.Info("graph loaded",
			"nodes", g.Len(),
			"edges", g.EdgeCount(),
			"directed", g.Directed(),
			"multigraph", g.Multigraph())
	}
}

// Graph returns the current graph, nil before the first LoadGraph.
func (s *Session) Graph() *core.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph
}

// Player returns the session's player.
func (s *Session) Player() *playback.Player { return s.player }

// Last returns the output of the latest successful RunAlgorithm, if any.
func (s *Session) Last() *RunOutput {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.last
}

// RunAlgorithm runs req on the current graph, records its trace and loads
// it into the player, which ends up Ready. The untraced result and the trace
// come from the same runner.
func (s *Session) RunAlgorithm(ctx context.Context, req Request) (*RunOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := ParseAlgorithm(string(req.Algorithm))
	if err != nil {
		return nil, err
	}
	req.Algorithm = a

	res, err := Run(s.graph, req)
	if err != nil {
		s.log.WarnContext(ctx, "run rejected", "algorithm", req.Algorithm, "error", err)
		return nil, err
	}
	seq, err := Steps(s.graph, req)
	if err != nil {
		return nil, err
	}
	steps := trace.Collect(seq)

	out := &RunOutput{Request: req, Result: res, Steps: steps}
	s.last = out
	s.player.Load(steps)
	s.log.InfoContext(ctx, "algorithm run",
		"algorithm", req.Algorithm,
		"status", res.Status,
		"steps", len(steps))

	return out, nil
}
