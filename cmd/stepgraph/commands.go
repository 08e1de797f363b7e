package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stepgraph/builder"
	"github.com/katalvlaran/stepgraph/config"
	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/engine"
	"github.com/katalvlaran/stepgraph/logging"
	"github.com/katalvlaran/stepgraph/parse"
	"github.com/katalvlaran/stepgraph/playback"
	"github.com/katalvlaran/stepgraph/trace"
	"github.com/katalvlaran/stepgraph/watch"
	"github.com/katalvlaran/stepgraph/web"
)

// app is what every subcommand starts from.
type app struct {
	cfg *config.Config
	log *slog.Logger
	out io.Writer
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stepgraph",
		Short: "Step-by-step graph algorithms: traversals, shortest paths, spanning trees",
		Long: `stepgraph reads a weighted edge list ("from to weight" per line) and runs
DFS, BFS, Dijkstra, Bellman-Ford, Floyd-Warshall, Kruskal or Prim on it,
either printing the result, printing every recorded step, or serving the
trace for animated playback over HTTP.`,
		SilenceUsage: true,
	}
	config.Flags(root.PersistentFlags())
	root.AddCommand(newRunCmd(), newTraceCmd(), newServeCmd(), newGenCmd())

	return root
}

func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: logger, out: cmd.OutOrStdout()}, nil
}

func (a *app) request() (engine.Request, error) {
	alg, err := engine.ParseAlgorithm(a.cfg.Algorithm)
	if err != nil {
		return engine.Request{}, err
	}

	return engine.Request{Algorithm: alg, Start: a.cfg.Start, End: a.cfg.End, WholeGraph: a.cfg.Whole}, nil
}

func (a *app) readGraph() (*core.Graph, error) {
	opts, err := a.cfg.ParseOptions()
	if err != nil {
		return nil, err
	}
	f, err := a.cfg.OpenInput()
	if err != nil {
		return nil, err
	}
	if f != os.Stdin {
		defer f.Close()
	}
	g, shape, err := parse.EdgeList(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.cfg.Input, err)
	}
	a.log.Debug("input parsed",
		"path", a.cfg.Input,
		"nodes", g.Len(),
		"edges", g.EdgeCount(),
		"directed", shape.Directed,
		"multigraph", shape.Multigraph)

	return g, nil
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run an algorithm and print its result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			g, err := a.readGraph()
			if err != nil {
				return err
			}
			req, err := a.request()
			if err != nil {
				return err
			}
			res, err := engine.Run(g, req)
			if err != nil {
				return err
			}
			if a.cfg.Output == "json" {
				return json.NewEncoder(a.out).Encode(res)
			}
			_, err = fmt.Fprintln(a.out, res.Summary())

			return err
		},
	}
}

func newTraceCmd() *cobra.Command {
	var animate bool
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print every recorded step of an algorithm run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			g, err := a.readGraph()
			if err != nil {
				return err
			}
			req, err := a.request()
			if err != nil {
				return err
			}
			seq, err := engine.Steps(g, req)
			if err != nil {
				return err
			}
			steps := trace.Collect(seq)
			if animate {
				return a.animate(cmd.Context(), steps)
			}
			for _, s := range steps {
				if err := a.printStep(s); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&animate, "animate", false, "replay the steps at --speed instead of printing them at once")

	return cmd
}

// animate replays steps through a Player on the real clock.
func (a *app) animate(ctx context.Context, steps []trace.Step) error {
	frames := make(chan playback.Frame, len(steps)+1)
	p := playback.New(
		playback.WithSpeed(a.cfg.Speed),
		playback.WithBaseDelay(a.cfg.BaseDelay),
		playback.WithLogger(a.log),
		playback.WithListener(func(f playback.Frame) {
			if f.Step != nil {
				frames <- f
			}
		}),
	)
	defer p.Close()
	p.Load(steps)
	if !p.Play() {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f := <-frames:
			if err := a.printStep(*f.Step); err != nil {
				return err
			}
			if f.Status.State == playback.StateFinished {
				return nil
			}
		}
	}
}

func (a *app) printStep(s trace.Step) error {
	if a.cfg.Output == "json" {
		return json.NewEncoder(a.out).Encode(s)
	}
	_, err := fmt.Fprintf(a.out, "%3d %-9s %s\n", s.Index, s.Kind, s.Description)

	return err
}

func newGenCmd() *cobra.Command {
	var (
		kind   string
		n, m   int
		p      float64
		seed   int64
		lo, hi int
		ids    string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a generated sample graph as an edge list",
		Long: `gen writes a path, cycle, complete, star, wheel, grid or random graph in
the edge-list format the other commands read. Undirected graphs are written
with mirrored rows so that auto-detection reads them back as undirected.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			popts, err := a.cfg.ParseOptions()
			if err != nil {
				return err
			}
			if hi < lo {
				return fmt.Errorf("--max-weight %d is below --min-weight %d", hi, lo)
			}
			cons, err := builder.Named(kind, n, m, p)
			if err != nil {
				return err
			}
			opts := []builder.Option{
				builder.WithDirected(popts.Directed.Resolve(false)),
				builder.WithSeed(seed),
				builder.WithUniformWeight(lo, hi),
			}
			switch ids {
			case "letters":
			case "numbers":
				opts = append(opts, builder.WithIDScheme(builder.DecimalIDFn))
			default:
				return fmt.Errorf("unknown --ids %q (want letters or numbers)", ids)
			}
			out, err := builder.Generate(cons, opts...)
			if err != nil {
				return err
			}
			a.log.Debug("graph generated", "kind", kind, "nodes", len(out.Nodes), "edges", len(out.Triples))
			_, err = out.WriteTo(a.out)

			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&kind, "kind", "cycle", "path, cycle, complete, star, wheel, grid or random")
	f.IntVarP(&n, "nodes", "n", 5, "node count (grid: rows)")
	f.IntVar(&m, "cols", 3, "grid columns")
	f.Float64Var(&p, "p", 0.3, "edge probability of random")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.IntVar(&lo, "min-weight", 1, "smallest edge weight")
	f.IntVar(&hi, "max-weight", 9, "largest edge weight")
	f.StringVar(&ids, "ids", "letters", "node names: letters or numbers")

	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP playback API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	if a.cfg.Watch && (a.cfg.Input == "" || a.cfg.Input == "-") {
		return errors.New("--watch needs an input file")
	}
	broker := web.NewBroker(0, a.log)
	player := playback.New(
		playback.WithSpeed(a.cfg.Speed),
		playback.WithBaseDelay(a.cfg.BaseDelay),
		playback.WithLogger(a.log),
		playback.WithListener(web.FrameListener(broker)),
	)
	defer player.Close()
	srv := web.NewServer(engine.NewSession(player, a.log), broker, a.log)

	reload := func(context.Context) error {
		g, err := a.readGraph()
		if err != nil {
			return err
		}
		srv.LoadGraph(g)
		return nil
	}
	if a.cfg.Input != "" {
		if err := reload(ctx); err != nil {
			return err
		}
	}

	var w *watch.Watcher
	if a.cfg.Watch {
		var err error
		if w, err = watch.New(a.cfg.Input, reload, watch.WithLogger(a.log)); err != nil {
			return err
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return srv.Serve(ctx, a.cfg.Listen) })
	if w != nil {
		eg.Go(func() error { return w.Run(ctx) })
	}

	return eg.Wait()
}
