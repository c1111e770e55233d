// Package sceneprops adapts a scene's attached-property surface to the
// core PropertyStore and StoredReader ports. It knows the reserved
// metadata keys, decodes previously injected documents (structured or
// JSON-string), and filters host-internal properties out of the foreign
// set handed to the Applier.
package sceneprops

import (
	"strings"

	"github.com/metro3d/assetkit/internal/json"
	"github.com/metro3d/assetkit/pkg/core"
	"github.com/metro3d/assetkit/pkg/scene"
	"github.com/metro3d/assetkit/pkg/schema"
)

// reserved properties never surface as foreign data.
var reserved = map[string]struct{}{
	schema.MetadataKey:     {},
	schema.MetadataJSONKey: {},
}

// Store exposes a scene's Props map through the core ports.
type Store struct {
	scene *scene.Scene
}

// NewStore wraps a scene.
func NewStore(sc *scene.Scene) *Store {
	if sc.Props == nil {
		sc.Props = map[string]any{}
	}
	return &Store{scene: sc}
}

// Scene returns the wrapped scene.
func (s *Store) Scene() *scene.Scene { return s.scene }

// SetProperty implements core.PropertyStore.
func (s *Store) SetProperty(key string, value any) {
	s.scene.Props[key] = value
}

// Property implements core.PropertyStore.
func (s *Store) Property(key string) (any, bool) {
	v, ok := s.scene.Props[key]
	return v, ok
}

// PropertyKeys implements core.PropertyStore.
func (s *Store) PropertyKeys() []string {
	keys := make([]string, 0, len(s.scene.Props))
	for k := range s.scene.Props {
		keys = append(keys, k)
	}
	return keys
}

// StoredDocument returns the previously injected metadata document.
// The primary key is tried first (as a structured map, then as a JSON
// string), then the JSON backup key.
func (s *Store) StoredDocument() (core.Document, bool) {
	if v, ok := s.scene.Props[schema.MetadataKey]; ok {
		if doc, ok := decodeDocument(v); ok {
			return doc, true
		}
	}
	if v, ok := s.scene.Props[schema.MetadataJSONKey]; ok {
		if doc, ok := decodeDocument(v); ok {
			return doc, true
		}
	}
	return nil, false
}

// ForeignProperties returns attached properties that are neither
// reserved nor host-internal (underscore-prefixed).
func (s *Store) ForeignProperties() core.Document {
	out := core.Document{}
	for key, value := range s.scene.Props {
		if strings.HasPrefix(key, "_") {
			continue
		}
		if _, skip := reserved[key]; skip {
			continue
		}
		out[key] = value
	}
	return out
}

func decodeDocument(v any) (core.Document, bool) {
	switch t := v.(type) {
	case core.Document:
		return t, true
	case string:
		var doc core.Document
		if err := json.Unmarshal([]byte(t), &doc); err == nil {
			return doc, true
		}
	}
	return nil, false
}

var _ core.PropertyStore = (*Store)(nil)
var _ core.StoredReader = (*Store)(nil)
