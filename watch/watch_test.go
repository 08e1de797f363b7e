package watch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/watch"
)

func TestWatcher_DebouncedReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte("A B 1\n"), 0o600))

	var calls atomic.Int32
	w, err := watch.New(path, func(context.Context) error {
		calls.Add(1)
		return nil
	}, watch.WithQuiet(50*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("A B 1\nB C 2\n"), 0o600))
	}
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "burst collapses into one reload")

	// Other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcher_ReloadErrorKeepsWatching(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	var calls atomic.Int32
	w, err := watch.New(path, func(context.Context) error {
		calls.Add(1)
		return errors.New("bad row")
	}, watch.WithQuiet(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("y"), 0o600))
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := watch.New(filepath.Join(t.TempDir(), "nope", "graph.txt"), func(context.Context) error { return nil })
	assert.Error(t, err)
}
