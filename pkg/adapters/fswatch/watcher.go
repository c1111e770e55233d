// Package fswatch watches scene and sidecar files for changes and
// emits debounced change events, so callers can re-read embedded
// metadata whenever an external tool rewrites an asset.
package fswatch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/metro3d/assetkit/pkg/core"
)

// Config configures a Watcher.
type Config struct {
	// Paths are the files to watch. Their parent directories are
	// watched so atomic replace-by-rename writes are still seen.
	Paths []string

	// Debounce collapses bursts of events on the same path. Zero
	// means 200ms.
	Debounce time.Duration

	// Buffer sizes the event channel. Zero means 16.
	Buffer int

	Logger *slog.Logger

	// ErrorHandler receives runtime watcher failures that would
	// otherwise only be logged.
	ErrorHandler func(error)
}

// Watcher emits core.Event values for a fixed set of files.
type Watcher struct {
	*worker.BaseWorker
	cfg       Config
	targets   map[string]bool
	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

// NewWatcher builds a watcher; Start must be called before events flow.
func NewWatcher(cfg Config) *Watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 200 * time.Millisecond
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = 16
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	targets := make(map[string]bool, len(cfg.Paths))
	for _, p := range cfg.Paths {
		if abs, err := filepath.Abs(p); err == nil {
			targets[abs] = true
		}
	}

	return &Watcher{
		BaseWorker: worker.NewBaseWorker("asset-watcher"),
		cfg:        cfg,
		targets:    targets,
		events:     make(chan core.Event, cfg.Buffer),
	}
}

// Events returns the channel change notifications arrive on. It is
// closed when the watcher stops.
func (w *Watcher) Events() <-chan core.Event {
	return w.events
}

// Start begins watching. It returns immediately; the event loop runs
// until ctx is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	dirs := map[string]bool{}
	for target := range w.targets {
		dirs[filepath.Dir(target)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	w.watcher = fw
	w.debouncer = newDebouncer(w.cfg.Debounce)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

// Stop requests shutdown and waits for the loop to exit.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

// State reports the worker's lifecycle state.
func (w *Watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

func (w *Watcher) run(ctx context.Context) error {
	defer close(w.events)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			w.debouncer.stopAndWait(5 * time.Second)
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.cfg.Logger.Error("fsnotify error", "error", err)
			if w.cfg.ErrorHandler != nil {
				w.cfg.ErrorHandler(err)
			}
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.targets[abs] {
		return
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}

	w.cfg.Logger.Debug("file event", "path", abs, "op", event.Op.String())

	w.debouncer.add(core.Event{
		Type:      eType,
		Path:      abs,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		defer func() {
			// The events channel closes during shutdown; a late
			// timer firing into it must not crash the process.
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

// mapEventType reduces fsnotify ops to the event types callers care
// about. Chmod-only events are noise and are dropped.
func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreated
	case event.Has(fsnotify.Write):
		return core.EventModified
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventRemoved
	default:
		return ""
	}
}
