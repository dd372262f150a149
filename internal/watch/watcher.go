// Package watch regenerates futures whenever the manifest changes.
// It exists for the edit-generate-test loop: leave `futuregen watch`
// running, save the manifest, and the generated file is fresh by the
// time the editor regains focus.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"futuregen/internal/config"
	"futuregen/internal/emit"
)

// Stats tracks watcher activity, mostly for tests and debugging.
type Stats struct {
	Events      int
	Regenerated int
	Failures    int
	LastEvent   time.Time
}

// Watcher watches one manifest file and re-runs generation on change.
// A manifest error in watch mode is logged, not fatal: the next save
// gets another chance.
type Watcher struct {
	log      *zap.Logger
	emitter  *emit.Emitter
	manifest string // absolute path of the watched manifest
	debounce time.Duration

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool
	pending time.Time // zero when no event is waiting to settle
	stats   Stats
}

// New creates a watcher for the given manifest path. log may be nil.
func New(log *zap.Logger, manifestPath string) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(manifestPath)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		log:      log,
		emitter:  emit.New(log),
		manifest: abs,
		debounce: 200 * time.Millisecond,
		watcher:  fsw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start generates once immediately, then begins watching. It is
// non-blocking; the event loop runs in its own goroutine until Stop
// or context cancellation.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Editors replace files by rename, which drops a watch on the
	// file itself. Watching the directory survives that.
	if err := w.watcher.Add(filepath.Dir(w.manifest)); err != nil {
		return err
	}

	w.regenerate()
	go w.run(ctx)
	return nil
}

// Stop stops the event loop and waits for it to drain.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.log.Error("close watcher", zap.Error(err))
	}
}

// Snapshot returns a copy of the watcher's activity counters.
func (w *Watcher) Snapshot() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	settle := time.NewTicker(w.debounce / 2)
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("watch error", zap.Error(err))

		case <-settle.C:
			if w.takeSettled() {
				w.regenerate()
			}
		}
	}
}

// handleEvent records a relevant event for debounced processing.
// Rapid saves collapse into one regeneration.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.manifest {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}

	w.log.Debug("manifest event", zap.String("op", event.Op.String()))
	w.mu.Lock()
	w.stats.Events++
	w.stats.LastEvent = time.Now()
	w.pending = time.Now()
	w.mu.Unlock()
}

// takeSettled reports whether a pending event has outlived the
// debounce window, clearing it if so.
func (w *Watcher) takeSettled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounce {
		return false
	}
	w.pending = time.Time{}
	return true
}

// regenerate reloads the manifest and rewrites the output file.
func (w *Watcher) regenerate() {
	m, err := config.Load(w.manifest)
	if err == nil {
		err = w.emitter.GenerateFile(m, m.ResolveOutput(w.manifest))
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.stats.Failures++
		w.log.Warn("regeneration failed", zap.Error(err))
		return
	}
	w.stats.Regenerated++
}
