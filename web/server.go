package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/engine"
	"github.com/katalvlaran/stepgraph/logging"
	"github.com/katalvlaran/stepgraph/parse"
	"github.com/katalvlaran/stepgraph/playback"
	"github.com/katalvlaran/stepgraph/trace"
)

// Event types sent over /api/events.
const (
	EventGraph = "graph"
	EventRun   = "run"
	EventFrame = "frame"
)

// maxBody caps uploaded edge lists and JSON bodies.
const maxBody = 4 << 20

// Server is the HTTP control surface over one engine.Session.
//
//	GET  /api/algorithms          supported algorithm names
//	GET  /api/graph               current graph with rendering hints
//	PUT  /api/graph               load an edge list (?directed=&multigraph=)
//	POST /api/run                 run an algorithm, load its trace
//	GET  /api/run                 latest run result
//	GET  /api/steps               latest trace
//	GET  /api/playback            status and overlay
//	POST /api/playback/{action}   play, pause, step or reset
//	PUT  /api/playback/speed      {"speed": n}
//	GET  /api/events              SSE stream of graph, run and frame events
type Server struct {
	router  *mux.Router
	session *engine.Session
	broker  *Broker
	log     *slog.Logger
}

// NewServer wires routes over session. Frames reach the broker through the
// player's listener, see FrameListener.
func NewServer(session *engine.Session, broker *Broker, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		router:  mux.NewRouter(),
		session: session,
		broker:  broker,
		log:     logger.With(slog.String("component", "web")),
	}
	s.routes()

	return s
}

// FrameListener returns a playback listener publishing every frame to b.
func FrameListener(b *Broker) func(playback.Frame) {
	return func(f playback.Frame) {
		_ = b.Publish(EventFrame, f)
	}
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/algorithms", s.handleAlgorithms).Methods(http.MethodGet)
	api.HandleFunc("/graph", s.handleGetGraph).Methods(http.MethodGet)
	api.HandleFunc("/graph", s.handlePutGraph).Methods(http.MethodPut, http.MethodPost)
	api.HandleFunc("/run", s.handleRun).Methods(http.MethodPost)
	api.HandleFunc("/run", s.handleLastRun).Methods(http.MethodGet)
	api.HandleFunc("/steps", s.handleSteps).Methods(http.MethodGet)
	api.HandleFunc("/playback", s.handlePlayback).Methods(http.MethodGet)
	api.HandleFunc("/playback/speed", s.handleSpeed).Methods(http.MethodPut)
	api.HandleFunc("/playback/{action:play|pause|step|reset}", s.handleAction).Methods(http.MethodPost)
	api.HandleFunc("/events", s.handleEvents).Methods(http.MethodGet)
}

// Handler returns the router wrapped in the request-logging middleware.
func (s *Server) Handler() http.Handler {
	return logging.Middleware(s.log)(s.router)
}

// LoadGraph replaces the session graph and announces it to subscribers.
func (s *Server) LoadGraph(g *core.Graph) {
	s.session.LoadGraph(g)
	_ = s.broker.Publish(EventGraph, NewGraphView(g))
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
	}
	s.broker.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}

	return nil
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, engine.Algorithms())
}

func (s *Server) handleGetGraph(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, NewGraphView(s.session.Graph()))
}

func (s *Server) handlePutGraph(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	d, err := parse.ParseFlag(q.Get("directed"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	m, err := parse.ParseFlag(q.Get("multigraph"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	g, _, err := parse.EdgeList(http.MaxBytesReader(w, r.Body, maxBody), parse.Options{Directed: d, Multigraph: m})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.LoadGraph(g)
	writeJSON(w, http.StatusOK, NewGraphView(g))
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req engine.Request
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	out, err := s.session.RunAlgorithm(r.Context(), req)
	switch {
	case errors.Is(err, engine.ErrNilGraph):
		writeError(w, http.StatusConflict, err)
		return
	case errors.Is(err, engine.ErrInvariant):
		writeError(w, http.StatusInternalServerError, err)
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err)
		return
	}
	_ = s.broker.Publish(EventRun, out)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLastRun(w http.ResponseWriter, _ *http.Request) {
	out := s.session.Last()
	if out == nil {
		writeError(w, http.StatusNotFound, errors.New("no algorithm has run on this graph"))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSteps(w http.ResponseWriter, _ *http.Request) {
	steps := s.session.Player().Steps()
	if steps == nil {
		steps = []trace.Step{}
	}
	writeJSON(w, http.StatusOK, steps)
}

func (s *Server) handlePlayback(w http.ResponseWriter, _ *http.Request) {
	p := s.session.Player()
	writeJSON(w, http.StatusOK, playback.Frame{Status: p.Status(), Overlay: p.Overlay()})
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	p := s.session.Player()
	switch mux.Vars(r)["action"] {
	case "play":
		p.Play()
	case "pause":
		p.Pause()
	case "step":
		p.Step()
	case "reset":
		p.Reset()
	}
	writeJSON(w, http.StatusOK, p.Status())
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Speed int `json:"speed"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p := s.session.Player()
	p.SetSpeed(body.Speed)
	writeJSON(w, http.StatusOK, p.Status())
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, errors.New("streaming unsupported"))
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for ev := range s.broker.Subscribe(r.Context()) {
		if err := writeSSE(w, ev); err != nil {
			logging.FromContext(r.Context(), s.log).Debug("sse write failed", "error", err)
			return
		}
		flusher.Flush()
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
