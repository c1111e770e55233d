package core

import "errors"

// Common errors.
var (
	// ErrNoSidecarPath is returned when a sidecar export has no explicit
	// path and none can be derived from a backing file.
	ErrNoSidecarPath = errors.New("no sidecar path: save the scene first or specify an export path")

	// ErrNoStore is returned by operations that need an attached-property
	// store when none was configured.
	ErrNoStore = errors.New("no property store configured")

	// ErrNoMetrics is returned by extraction when no metrics provider
	// was configured.
	ErrNoMetrics = errors.New("no geometry metrics provider configured")

	// ErrNoSidecarSink is returned by sidecar export when no sink was
	// configured.
	ErrNoSidecarSink = errors.New("no sidecar sink configured")
)
