package core

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/metro3d/assetkit/internal/json"
	"github.com/metro3d/assetkit/pkg/schema"
)

// Service orchestrates the user-facing actions over the single active
// record: extraction, validation, injection, sidecar export, read-back,
// lineage ID generation, and clearing. Every operation is synchronous
// and runs to completion on the caller's goroutine.
type Service struct {
	record  *Record
	metrics MetricsProvider
	store   PropertyStore
	sidecar SidecarSink
	logger  *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithMetrics attaches a geometry metrics provider.
func WithMetrics(p MetricsProvider) ServiceOption {
	return func(s *Service) { s.metrics = p }
}

// WithStore attaches an attached-property store.
func WithStore(store PropertyStore) ServiceOption {
	return func(s *Service) { s.store = store }
}

// WithSidecar attaches a sidecar file sink.
func WithSidecar(sink SidecarSink) ServiceOption {
	return func(s *Service) { s.sidecar = sink }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// NewService creates a Service around an empty record.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{record: NewRecord()}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Record exposes the active record for direct edits.
func (s *Service) Record() *Record {
	return s.record
}

// SetRecord replaces the active record.
func (s *Service) SetRecord(r *Record) {
	if r != nil {
		s.record = r
	}
}

// ExtractMetrics pulls scene aggregates from the metrics provider into
// the record's technical fields. An empty asset name is auto-filled
// from the backing file or scene name when the provider knows them.
func (s *Service) ExtractMetrics() (Stats, error) {
	if s.metrics == nil {
		return Stats{}, ErrNoMetrics
	}
	stats := s.metrics.SceneStats()
	ApplyStats(s.record, stats)

	if s.record.Core.AssetName == "" {
		if d, ok := s.metrics.(SceneDescriber); ok {
			if path := d.BackingPath(); path != "" {
				base := filepath.Base(path)
				s.record.Core.AssetName = strings.TrimSuffix(base, filepath.Ext(base))
			} else if name := d.SceneName(); name != "" {
				s.record.Core.AssetName = name
			}
		}
	}

	s.logger.Debug("extracted scene metrics",
		"triangles", stats.Triangles,
		"vertices", stats.Vertices,
		"materials", stats.MaterialCount)
	return stats, nil
}

// Validate checks the record against the registry constraints.
func (s *Service) Validate() []FieldError {
	return Validate(s.record)
}

// Collect builds the external document from the record.
func (s *Service) Collect() Document {
	return Collect(s.record)
}

// InjectProps validates the record, collects it, and writes it to the
// attached-property store under both the primary and the JSON backup
// key. The record is untouched on validation failure.
func (s *Service) InjectProps() (Document, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	if errs := Validate(s.record); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	doc := Collect(s.record)
	if err := InjectDocument(s.store, doc); err != nil {
		return nil, err
	}
	s.logger.Debug("injected metadata", "fields", len(doc))
	return doc, nil
}

// ExportSidecar validates, collects, and writes the document to a
// standalone file. An empty path asks the sink to derive one; the sink
// returns ErrNoSidecarPath when it cannot.
func (s *Service) ExportSidecar(path string) (string, error) {
	if s.sidecar == nil {
		return "", ErrNoSidecarSink
	}
	if errs := Validate(s.record); len(errs) > 0 {
		return "", &ValidationError{Fields: errs}
	}

	written, err := s.sidecar.Export(Collect(s.record), path)
	if err != nil {
		return "", err
	}
	s.logger.Info("exported sidecar", "path", written)
	return written, nil
}

// ReadBack ingests a previously injected document plus any foreign
// attached properties into the record, reporting what mapped and what
// did not.
func (s *Service) ReadBack() (Report, error) {
	if s.store == nil {
		return Report{}, ErrNoStore
	}

	combined := Document{}
	if reader, ok := s.store.(StoredReader); ok {
		if stored, found := reader.StoredDocument(); found {
			combined[schema.MetadataKey] = stored
		}
		for key, value := range reader.ForeignProperties() {
			combined[key] = value
		}
	} else {
		for _, key := range s.store.PropertyKeys() {
			if value, ok := s.store.Property(key); ok {
				combined[key] = value
			}
		}
	}

	report := Ingest(s.record, combined)
	s.logger.Debug("read back properties",
		"mapped", len(report.Mapped),
		"unrecognized", len(report.Raw))
	return report, nil
}

// GenerateLineageID assigns a fresh UUID v4 to the lineage field and
// returns it.
func (s *Service) GenerateLineageID() string {
	id := uuid.NewString()
	s.record.Lineage.LineageID = id
	return id
}

// Clear resets every record field to its declared default.
func (s *Service) Clear() {
	s.record.Reset()
}

// InjectDocument writes doc to the store: natively under the primary
// key when the value tree is simple enough for structured storage,
// otherwise as a JSON string; the JSON-string backup key is always
// written so a structured store's lossy representation can be
// recovered.
func InjectDocument(store PropertyStore, doc Document) error {
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if nativeFriendly(doc) {
		store.SetProperty(schema.MetadataKey, doc)
	} else {
		store.SetProperty(schema.MetadataKey, string(encoded))
	}
	store.SetProperty(schema.MetadataJSONKey, string(encoded))
	return nil
}

// nativeFriendly reports whether a value tree is restricted to the
// shapes a structured property store represents without loss: scalars,
// homogeneous scalar lists, and flat scalar maps. Deeper nesting and
// mixed-type lists fall back to the JSON string.
func nativeFriendly(v any) bool {
	switch t := v.(type) {
	case Document:
		for _, item := range t {
			if !nativeLeaf(item) {
				return false
			}
		}
		return true
	default:
		return nativeLeaf(v)
	}
}

func nativeLeaf(v any) bool {
	switch t := v.(type) {
	case nil, string, bool, int, int64, float64:
		return true
	case []string:
		return true
	case []any:
		kind := ""
		for _, item := range t {
			k := scalarKind(item)
			if k == "" {
				return false
			}
			if kind == "" {
				kind = k
			} else if kind != k {
				return false
			}
		}
		return true
	case map[string]any:
		for _, item := range t {
			if scalarKind(item) == "" {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func scalarKind(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64, float64:
		return "number"
	default:
		return ""
	}
}
