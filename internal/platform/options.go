package platform

import (
	"log/slog"

	"github.com/metro3d/assetkit/pkg/core"
)

// options holds the internal configuration for a metadata session.
type options struct {
	logger      *slog.Logger
	metrics     core.MetricsProvider
	store       core.PropertyStore
	sidecarPath string
	noSidecar   bool
	autoExtract bool
	mustExist   bool
	configPath  string
}

// Option defines a functional option for configuring a session.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		autoExtract: true,
		mustExist:   true,
	}
}

// WithLogger sets the logger for the session and its service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics injects a custom geometry metrics provider. When set,
// the scene file's own aggregates are skipped.
func WithMetrics(m core.MetricsProvider) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithStore injects a custom property store (e.g. a mock, or a store
// backed by something other than the scene file).
func WithStore(s core.PropertyStore) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithSidecarPath sets an explicit sidecar target instead of the path
// derived from the scene file.
func WithSidecarPath(path string) Option {
	return func(o *options) {
		o.sidecarPath = path
	}
}

// WithoutSidecar disables the sidecar sink entirely.
func WithoutSidecar() Option {
	return func(o *options) {
		o.noSidecar = true
	}
}

// WithAutoExtract controls whether geometry metrics are applied to the
// record as soon as the session opens. Enabled by default.
func WithAutoExtract(enabled bool) Option {
	return func(o *options) {
		o.autoExtract = enabled
	}
}

// WithCreate allows opening a scene path that does not exist yet; the
// session starts from an empty scene and persists it on save.
func WithCreate() Option {
	return func(o *options) {
		o.mustExist = false
	}
}

// WithConfigPath sets an explicit project config file instead of the
// metro.json discovered by walking up from the scene directory.
func WithConfigPath(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}
