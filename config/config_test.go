package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/config"
	"github.com/katalvlaran/stepgraph/parse"
)

func flagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.Flags(fs)
	require.NoError(t, fs.Parse(args))

	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := config.Load(flagSet(t))
	require.NoError(t, err)

	assert.Equal(t, "bfs", cfg.Algorithm)
	assert.Equal(t, "auto", cfg.Directed)
	assert.Equal(t, 5, cfg.Speed)
	assert.Equal(t, 100*time.Millisecond, cfg.BaseDelay)
	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "text", cfg.Output)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
algorithm = "dijkstra"
start = "A"
end = "C"
speed = 3
base-delay = "250ms"
`), 0o600))

	t.Setenv("STEPGRAPH_END", "D")
	t.Setenv("STEPGRAPH_BASE_DELAY", "50ms")

	cfg, err := config.Load(flagSet(t, "--config", path, "--start", "B", "--speed", "42"))
	require.NoError(t, err)

	assert.Equal(t, "dijkstra", cfg.Algorithm, "file over defaults")
	assert.Equal(t, "D", cfg.End, "env over file")
	assert.Equal(t, 50*time.Millisecond, cfg.BaseDelay, "env over file")
	assert.Equal(t, "B", cfg.Start, "flag over file")
	assert.Equal(t, 10, cfg.Speed, "clamped")
}

func TestLoad_DefaultFileOptional(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	_, err := config.Load(flagSet(t))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFile), []byte(`watch = true`), 0o600))
	cfg, err := config.Load(flagSet(t))
	require.NoError(t, err)
	assert.True(t, cfg.Watch)
}

func TestLoad_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := config.Load(flagSet(t, "--config", "missing.toml"))
	assert.Error(t, err)

	_, err = config.Load(flagSet(t, "--directed", "sometimes"))
	assert.Error(t, err)

	_, err = config.Load(flagSet(t, "--output", "yaml"))
	assert.Error(t, err)

	_, err = config.Load(flagSet(t, "--base-delay", "0s"))
	assert.Error(t, err)
}

func TestConfig_ParseOptions(t *testing.T) {
	cfg := config.Config{Directed: "true", Multigraph: "auto"}
	opts, err := cfg.ParseOptions()
	require.NoError(t, err)
	assert.Equal(t, parse.Options{Directed: parse.Yes, Multigraph: parse.Auto}, opts)
}
