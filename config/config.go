package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/stepgraph/parse"
	"github.com/katalvlaran/stepgraph/playback"
)

// EnvPrefix prefixes every environment variable, e.g. STEPGRAPH_BASE_DELAY.
const EnvPrefix = "STEPGRAPH_"

// DefaultFile is read when present and --config is not given.
const DefaultFile = "stepgraph.toml"

// Config holds every setting of the stepgraph CLI and server.
type Config struct {
	Input      string        `koanf:"input"`
	Algorithm  string        `koanf:"algorithm"`
	Start      string        `koanf:"start"`
	End        string        `koanf:"end"`
	Whole      bool          `koanf:"whole"`
	Directed   string        `koanf:"directed"`
	Multigraph string        `koanf:"multigraph"`
	Speed      int           `koanf:"speed"`
	BaseDelay  time.Duration `koanf:"base-delay"`
	Listen     string        `koanf:"listen"`
	Watch      bool          `koanf:"watch"`
	LogLevel   string        `koanf:"log-level"`
	LogFormat  string        `koanf:"log-format"`
	Output     string        `koanf:"output"`
}

func defaults() map[string]any {
	return map[string]any{
		"input":      "",
		"algorithm":  "bfs",
		"start":      "",
		"end":        "",
		"whole":      false,
		"directed":   "auto",
		"multigraph": "auto",
		"speed":      playback.DefaultSpeed,
		"base-delay": playback.DefaultBaseDelay,
		"listen":     "127.0.0.1:8080",
		"watch":      false,
		"log-level":  "info",
		"log-format": "compact",
		"output":     "text",
	}
}

// Flags registers every setting on fs, named like its koanf key.
func Flags(set *pflag.FlagSet) {
	d := defaults()
	set.String("config", "", "config file (default "+DefaultFile+" when present)")
	set.StringP("input", "i", "", "edge list file, - for stdin")
	set.StringP("algorithm", "a", d["algorithm"].(string), "dfs, bfs, dijkstra, bellman-ford, floyd-warshall, kruskal or prim")
	set.StringP("start", "s", "", "start node (Prim: root)")
	set.StringP("end", "e", "", "end node")
	set.Bool("whole", false, "traverse the whole graph (dfs, bfs)")
	set.String("directed", "auto", "auto, true or false")
	set.String("multigraph", "auto", "auto, true or false")
	set.Int("speed", playback.DefaultSpeed, "playback speed 1..10")
	set.Duration("base-delay", playback.DefaultBaseDelay, "tick delay at speed 10")
	set.String("listen", d["listen"].(string), "HTTP listen address")
	set.Bool("watch", false, "reload the input file when it changes")
	set.String("log-level", "info", "debug, info, warn or error")
	set.String("log-format", "compact", "compact or json")
	set.StringP("output", "o", "text", "text or json")
}

// Load merges, lowest priority first: defaults, the TOML config file,
// STEPGRAPH_* environment variables and the flags set on f.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	path, explicit := DefaultFile, false
	if f != nil {
		if p, err := f.GetString("config"); err == nil && p != "" {
			path, explicit = p, true
		}
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("config: flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks enumerated fields and clamps Speed.
func (c *Config) Validate() error {
	if _, err := c.ParseOptions(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("config: output %q (want text or json)", c.Output)
	}
	if c.BaseDelay <= 0 {
		return fmt.Errorf("config: base-delay must be positive, got %s", c.BaseDelay)
	}
	c.Speed = playback.ClampSpeed(c.Speed)

	return nil
}

// ParseOptions converts the shape flags for the parser.
func (c *Config) ParseOptions() (parse.Options, error) {
	d, err := parse.ParseFlag(c.Directed)
	if err != nil {
		return parse.Options{}, err
	}
	m, err := parse.ParseFlag(c.Multigraph)
	if err != nil {
		return parse.Options{}, err
	}

	return parse.Options{Directed: d, Multigraph: m}, nil
}

// OpenInput opens the input file, or stdin for "-".
func (c *Config) OpenInput() (*os.File, error) {
	switch c.Input {
	case "":
		return nil, errors.New("config: no input file (use --input)")
	case "-":
		return os.Stdin, nil
	default:
		return os.Open(c.Input)
	}
}

// mapProvider feeds a plain map to koanf.
type mapProvider map[string]any

func (p mapProvider) Read() (map[string]any, error) { return p, nil }

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider does not support ReadBytes")
}
