package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	AssetName       string `json:"asset_name"`
	HasMetrics      bool   `json:"has_metrics"`
	StoreType       string `json:"store_type"`
	SidecarAttached bool   `json:"sidecar_attached"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	storeType := "none"
	if s.store != nil {
		storeType = "store"
		if comp, ok := s.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
	}

	return ServiceState{
		AssetName:       s.record.Core.AssetName,
		HasMetrics:      s.metrics != nil,
		StoreType:       storeType,
		SidecarAttached: s.sidecar != nil,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "metadata-service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
