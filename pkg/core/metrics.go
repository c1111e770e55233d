package core

// Stats is the aggregate of technical properties a geometry metrics
// provider computes for a scene or a single object. Bounding box
// extents are world-space dimensions, already rounded to 4 decimals.
type Stats struct {
	Triangles     int     `json:"triCount"`
	Vertices      int     `json:"vertexCount"`
	BBoxX         float64 `json:"bboxX"`
	BBoxY         float64 `json:"bboxY"`
	BBoxZ         float64 `json:"bboxZ"`
	MaterialCount int     `json:"materialCount"`
	HasTextures   bool    `json:"hasTextures"`
	SupportsPBR   bool    `json:"supportsPBR"`
}

// MetricsProvider supplies geometry metrics computed by the host. The
// mapper never inspects geometry itself; it only consumes aggregates.
type MetricsProvider interface {
	// SceneStats aggregates over all visible mesh objects.
	SceneStats() Stats

	// ObjectStats returns per-object metrics, false if the named
	// object is not a visible mesh.
	ObjectStats(name string) (Stats, bool)

	// MeshNames lists the visible mesh objects.
	MeshNames() []string
}

// SceneDescriber is an optional extension of MetricsProvider for
// providers that know where their scene came from; used to auto-fill
// an empty asset name during extraction.
type SceneDescriber interface {
	SceneName() string
	BackingPath() string
}

// ApplyStats overwrites the record's technical fields (and the core
// triangle count) with freshly extracted metrics. Other groups are
// left untouched.
func ApplyStats(r *Record, s Stats) {
	r.Core.TriCount = s.Triangles
	r.Technical.VertexCount = s.Vertices
	r.Technical.BoundingBoxX = s.BBoxX
	r.Technical.BoundingBoxY = s.BBoxY
	r.Technical.BoundingBoxZ = s.BBoxZ
	r.Technical.MaterialCount = s.MaterialCount
	r.Technical.HasTextures = s.HasTextures
	r.Technical.SupportsPBR = s.SupportsPBR
}

// PropertyStore is the attached-property surface of the host document.
// Implementations persist whatever value types their backing storage
// supports; callers that need lossless storage go through the
// sceneprops adapter, which adds the JSON-string fallback.
type PropertyStore interface {
	SetProperty(key string, value any)
	Property(key string) (any, bool)
	PropertyKeys() []string
}

// StoredReader is implemented by property stores that can hand back a
// previously injected document and the remaining foreign properties.
type StoredReader interface {
	// StoredDocument returns the embedded metadata document, if any.
	StoredDocument() (Document, bool)

	// ForeignProperties returns all non-reserved attached properties.
	ForeignProperties() Document
}

// SidecarSink writes a collected document to a standalone file.
type SidecarSink interface {
	// Export writes doc to explicitPath, or to a derived path when
	// explicitPath is empty. It returns the path written.
	Export(doc Document, explicitPath string) (string, error)
}
