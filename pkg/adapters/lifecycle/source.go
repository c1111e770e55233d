// Package lifecycle bridges asset change events into the generic
// lifecycle runtime, so applications already supervising workers with
// aretw0/lifecycle can consume file-watch notifications as a Source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/metro3d/assetkit/pkg/core"
)

type eventSource struct {
	events <-chan core.Event
	accept map[core.EventType]bool
	out    chan lifecycle.Event
}

// NewSource wraps a channel of asset change events as a
// lifecycle.Source. When types are given only those event types are
// forwarded; otherwise everything passes. The source drains until the
// input channel closes or the context is canceled.
func NewSource(events <-chan core.Event, types ...core.EventType) lifecycle.Source {
	var accept map[core.EventType]bool
	if len(types) > 0 {
		accept = make(map[core.EventType]bool, len(types))
		for _, t := range types {
			accept[t] = true
		}
	}
	return &eventSource{
		events: events,
		accept: accept,
		out:    make(chan lifecycle.Event),
	}
}

func (s *eventSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *eventSource) Start(ctx context.Context) error {
	// core.Event satisfies lifecycle.Event through its String method.
	// The forwarding goroutine is tracked by lifecycle.Go so runtime
	// shutdown waits for it.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if s.accept != nil && !s.accept[e.Type] {
					continue
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
