package core

import "fmt"

// EventType classifies a change noticed on a watched asset file.
type EventType string

const (
	EventCreated  EventType = "created"
	EventModified EventType = "modified"
	EventRemoved  EventType = "removed"
)

// Event describes a change to a watched scene or sidecar file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64
}

// String makes Event usable wherever a descriptive event is expected,
// including lifecycle event sources.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
