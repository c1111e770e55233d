package fswatch

import (
	"sync"
	"time"

	"github.com/metro3d/assetkit/pkg/core"
)

// debouncer collapses bursts of events per path: each new event for a
// path resets that path's timer, and only the last event fires.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: map[string]*time.Timer{},
	}
}

// add schedules emit(event) after the debounce delay, replacing any
// pending emission for the same path.
func (d *debouncer) add(event core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if t, ok := d.timers[event.Path]; ok {
		if t.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.timers[event.Path] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		delete(d.timers, event.Path)
		d.mu.Unlock()
		emit(event)
	})
}

// stopAndWait rejects new events and waits (bounded) for in-flight
// timers to finish, so the caller can safely close its channel.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for path, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, path)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
