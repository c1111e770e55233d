package fswatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/supervisor"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/stretchr/testify/require"
)

// A watcher whose fsnotify handle dies underneath it must fail its run
// loop so a supervisor can replace it.
func TestWatcherSupervisorRestarts(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "hull.scene.json")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0o644))

	created := make(chan *Watcher, 2)

	spec := supervisor.Spec{
		Name: "asset-watcher",
		Type: string(worker.TypeGoroutine),
		Factory: func() (worker.Worker, error) {
			w := NewWatcher(Config{
				Paths:    []string{target},
				Debounce: 10 * time.Millisecond,
			})
			created <- w
			return w, nil
		},
		Backoff: supervisor.Backoff{
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      1,
			ResetDuration:   50 * time.Millisecond,
			MaxRestarts:     2,
			MaxDuration:     200 * time.Millisecond,
		},
		RestartPolicy: supervisor.RestartOnFailure,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sup := supervisor.New("test-watcher", supervisor.StrategyOneForOne, spec)
	require.NoError(t, sup.Start(ctx))

	first := awaitWorker(t, created, "first")
	awaitHandle(t, first)
	_ = first.watcher.Close()

	second := awaitWorker(t, created, "second")
	require.NotSame(t, first, second, "supervisor must build a fresh watcher")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	require.NoError(t, sup.Stop(stopCtx))
}

func awaitWorker(t *testing.T, ch <-chan *Watcher, label string) *Watcher {
	t.Helper()

	select {
	case w := <-ch:
		return w
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for %s watcher", label)
		return nil
	}
}

func awaitHandle(t *testing.T, w *Watcher) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		if w.watcher != nil {
			return
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for fsnotify handle")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
