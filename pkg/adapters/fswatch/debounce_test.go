package fswatch

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/metro3d/assetkit/pkg/core"
)

func TestDebouncerCollapsesBursts(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)

	var fired atomic.Int32
	for i := 0; i < 5; i++ {
		d.add(core.Event{Type: core.EventModified, Path: "/a"}, func(core.Event) {
			fired.Add(1)
		})
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncerSeparatePaths(t *testing.T) {
	d := newDebouncer(10 * time.Millisecond)

	var fired atomic.Int32
	emit := func(core.Event) { fired.Add(1) }
	d.add(core.Event{Path: "/a"}, emit)
	d.add(core.Event{Path: "/b"}, emit)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(2), fired.Load())
}

func TestDebouncerStopDropsPending(t *testing.T) {
	d := newDebouncer(50 * time.Millisecond)

	var fired atomic.Int32
	d.add(core.Event{Path: "/a"}, func(core.Event) { fired.Add(1) })
	d.stopAndWait(time.Second)

	// New events after stop are rejected too.
	d.add(core.Event{Path: "/b"}, func(core.Event) { fired.Add(1) })

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestMapEventType(t *testing.T) {
	assert.Equal(t, core.EventCreated, mapEventType(fsnotify.Event{Op: fsnotify.Create}))
	assert.Equal(t, core.EventModified, mapEventType(fsnotify.Event{Op: fsnotify.Write}))
	assert.Equal(t, core.EventRemoved, mapEventType(fsnotify.Event{Op: fsnotify.Remove}))
	assert.Equal(t, core.EventRemoved, mapEventType(fsnotify.Event{Op: fsnotify.Rename}))
	assert.Equal(t, core.EventType(""), mapEventType(fsnotify.Event{Op: fsnotify.Chmod}))
}
