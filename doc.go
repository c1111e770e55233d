// Package assetkit maps 3D asset metadata between two representations:
// a flat, editable record of snake_case fields and a nested, versioned
// JSON document suitable for registries and pipelines.
//
// A Session wires the mapper to a scene file: geometry aggregates are
// extracted from the scene's mesh objects, the collected document is
// written into the scene's attached properties and to a standalone
// .metro.json sidecar, and previously written metadata (including
// documents produced by other tools) is ingested back into the record.
//
//	s, err := assetkit.Open("hull.json")
//	if err != nil { ... }
//	s.Service().Record().Access.License = "CC-BY-4.0"
//	if _, err := s.Inject(); err != nil { ... }
//
// The pkg/adapters/gltf package embeds the same document into glTF
// scene extras, and pkg/adapters/fswatch re-reads metadata when files
// change on disk.
package assetkit
