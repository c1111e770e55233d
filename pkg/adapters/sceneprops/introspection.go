package sceneprops

import (
	"github.com/aretw0/introspection"

	"github.com/metro3d/assetkit/pkg/schema"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	SceneName     string `json:"scene_name"`
	BackingPath   string `json:"backing_path"`
	PropertyCount int    `json:"property_count"`
	HasMetadata   bool   `json:"has_metadata"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	_, hasMeta := s.scene.Props[schema.MetadataKey]
	return StoreState{
		SceneName:     s.scene.Name,
		BackingPath:   s.scene.Path,
		PropertyCount: len(s.scene.Props),
		HasMetadata:   hasMeta,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "scene-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
