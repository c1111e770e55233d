package assetkit

import (
	"log/slog"

	"github.com/metro3d/assetkit/internal/platform"
	"github.com/metro3d/assetkit/pkg/core"
)

// --- Types ---

// Record is the flat, editable metadata record for one asset.
type Record = core.Record

// Document is the nested, versioned external metadata document.
type Document = core.Document

// Report describes the outcome of ingesting a foreign document.
type Report = core.Report

// FieldError is a single validation failure.
type FieldError = core.FieldError

// Stats carries geometry aggregates extracted from a scene.
type Stats = core.Stats

// Event is a change notification for a watched asset file.
type Event = core.Event

// Session binds a metadata service to the scene file it operates on.
type Session = platform.Session

// Config is the project-wide configuration discovered via metro.json.
type Config = platform.Config

// --- Configuration ---

// Option configures a session.
type Option = platform.Option

// WithLogger sets the logger for the session and its service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithMetrics injects a custom geometry metrics provider.
func WithMetrics(m core.MetricsProvider) Option {
	return platform.WithMetrics(m)
}

// WithStore injects a custom property store.
func WithStore(s core.PropertyStore) Option {
	return platform.WithStore(s)
}

// WithSidecarPath sets an explicit sidecar target path.
func WithSidecarPath(path string) Option {
	return platform.WithSidecarPath(path)
}

// WithoutSidecar disables the sidecar sink.
func WithoutSidecar() Option {
	return platform.WithoutSidecar()
}

// WithAutoExtract controls the initial metrics extraction (default on).
func WithAutoExtract(enabled bool) Option {
	return platform.WithAutoExtract(enabled)
}

// WithCreate allows opening a scene path that does not exist yet.
func WithCreate() Option {
	return platform.WithCreate()
}

// WithConfigPath sets an explicit project config file.
func WithConfigPath(path string) Option {
	return platform.WithConfigPath(path)
}

// --- Factory ---

// Open loads a scene file and builds a fully wired metadata session.
func Open(scenePath string, opts ...Option) (*Session, error) {
	return platform.Open(scenePath, opts...)
}

// NewRecord returns a record with every field at its default.
func NewRecord() *Record {
	return core.NewRecord()
}

// --- Operations ---

// Validate checks a record against the schema's constraints.
func Validate(r *Record) []FieldError {
	return core.Validate(r)
}

// Collect builds the nested external document from a record.
func Collect(r *Record) Document {
	return core.Collect(r)
}

// Ingest maps a foreign document into a record, reporting what mapped.
func Ingest(r *Record, doc Document) Report {
	return core.Ingest(r, doc)
}

// LoadRecord reads a flat record file (YAML or JSON) into a record.
func LoadRecord(path string) (*Record, Report, error) {
	return platform.LoadRecord(path)
}

// SaveRecord writes a record as a flat record file.
func SaveRecord(path string, r *Record) error {
	return platform.SaveRecord(path, r)
}
