package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultQuiet is how long the file must stay unchanged before a reload.
const DefaultQuiet = 150 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithQuiet sets the debounce period.
func WithQuiet(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.quiet = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// Watcher calls a reload function whenever one file changes. Bursts of
// events (an editor writing in several chunks, a save by rename) collapse
// into one call once the file has been quiet for the debounce period.
type Watcher struct {
	path   string
	quiet  time.Duration
	log    *slog.Logger
	reload func(context.Context) error
	fsw    *fsnotify.Watcher
}

// New starts watching the directory holding path. Watching the directory
// rather than the file keeps working when editors replace the file.
func New(path string, reload func(context.Context) error, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch: add %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:   abs,
		quiet:  DefaultQuiet,
		log:    slog.Default(),
		reload: reload,
		fsw:    fsw,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.With(slog.String("component", "watch"))

	return w, nil
}

// Run processes events until ctx is done, then closes the watcher. Reload
// errors are logged and do not stop watching.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	w.log.Info("watching input", "path", w.path)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("input event", "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.quiet)
			} else {
				timer.Reset(w.quiet)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.reload(ctx); err != nil {
				w.log.Warn("reload failed", "path", w.path, "error", err)
				continue
			}
			w.log.Info("input reloaded", "path", w.path)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}

	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
