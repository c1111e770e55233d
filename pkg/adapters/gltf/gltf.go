// Package gltf embeds and extracts asset metadata in glTF 2.0 files.
//
// Documents are parsed as generic JSON so every part of the file the
// package does not understand survives a round trip untouched. Both
// the text (.gltf) and binary (.glb) forms are supported; for .glb the
// BIN chunk is carried through verbatim.
package gltf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/metro3d/assetkit/internal/fsutil"
	"github.com/metro3d/assetkit/internal/json"
	"github.com/metro3d/assetkit/pkg/core"
	"github.com/metro3d/assetkit/pkg/schema"
)

// File is a parsed glTF document plus, for binary files, its BIN chunk.
type File struct {
	Root   map[string]any
	Binary []byte
	path   string
	isGLB  bool
}

// Load reads and parses a .gltf or .glb file. The extension decides
// the container format.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading gltf file: %w", err)
	}

	f := &File{path: path, isGLB: strings.EqualFold(filepath.Ext(path), ".glb")}

	doc := data
	if f.isGLB {
		doc, f.Binary, err = decodeGLB(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	}
	if err := json.Unmarshal(doc, &f.Root); err != nil {
		return nil, fmt.Errorf("parsing gltf json in %s: %w", path, err)
	}
	return f, nil
}

// Save writes the document back to its source path atomically.
func (f *File) Save() error {
	return f.SaveAs(f.path)
}

// SaveAs writes the document to path, keeping the container format the
// file was loaded with.
func (f *File) SaveAs(path string) error {
	doc, err := json.Marshal(f.Root)
	if err != nil {
		return fmt.Errorf("encoding gltf json: %w", err)
	}
	out := doc
	if f.isGLB {
		out = encodeGLB(doc, f.Binary)
	}
	if err := fsutil.WriteFileAtomic(path, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Path returns the file the document was loaded from.
func (f *File) Path() string { return f.path }

// Embed attaches doc to the active scene's extras under the metadata
// key. Nothing is written when the document carries no asset name.
// When metrics is non-nil and the scene holds more than one visible
// mesh, each mesh node additionally gets per-object statistics.
func (f *File) Embed(doc core.Document, metrics core.MetricsProvider) error {
	name, _ := doc["name"].(string)
	if name == "" {
		return nil
	}

	scene, err := f.activeScene()
	if err != nil {
		return err
	}
	extrasOf(scene)[schema.MetadataKey] = doc

	if metrics != nil && len(metrics.MeshNames()) > 1 {
		f.embedObjectStats(metrics)
	}
	return nil
}

// Extract reads the metadata block from the active scene's extras.
// The block may be stored as an object or as a JSON-encoded string;
// absence is not an error.
func (f *File) Extract() (core.Document, bool, error) {
	scene, err := f.activeScene()
	if err != nil {
		return nil, false, err
	}
	extras, ok := scene["extras"].(map[string]any)
	if !ok {
		return nil, false, nil
	}

	switch v := extras[schema.MetadataKey].(type) {
	case map[string]any:
		return v, true, nil
	case string:
		var doc core.Document
		if err := json.Unmarshal([]byte(v), &doc); err != nil {
			return nil, false, fmt.Errorf("parsing embedded metadata: %w", err)
		}
		return doc, true, nil
	default:
		return nil, false, nil
	}
}

func (f *File) activeScene() (map[string]any, error) {
	scenes, ok := f.Root["scenes"].([]any)
	if !ok || len(scenes) == 0 {
		return nil, fmt.Errorf("gltf document has no scenes")
	}
	idx := 0
	if n, ok := f.Root["scene"].(float64); ok && int(n) >= 0 && int(n) < len(scenes) {
		idx = int(n)
	}
	scene, ok := scenes[idx].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("gltf scene %d is not an object", idx)
	}
	return scene, nil
}

func (f *File) embedObjectStats(metrics core.MetricsProvider) {
	nodes, ok := f.Root["nodes"].([]any)
	if !ok {
		return
	}
	for _, n := range nodes {
		node, ok := n.(map[string]any)
		if !ok {
			continue
		}
		if _, hasMesh := node["mesh"]; !hasMesh {
			continue
		}
		name, _ := node["name"].(string)
		stats, ok := metrics.ObjectStats(name)
		if !ok {
			continue
		}
		extrasOf(node)[schema.ObjectStatsKey] = map[string]any{
			"triCount":    stats.Triangles,
			"vertexCount": stats.Vertices,
			"boundingBox": map[string]any{
				"x": stats.BBoxX,
				"y": stats.BBoxY,
				"z": stats.BBoxZ,
			},
		}
	}
}

// extrasOf returns the node's extras object, creating it when missing
// or when the existing value is not an object.
func extrasOf(node map[string]any) map[string]any {
	if extras, ok := node["extras"].(map[string]any); ok {
		return extras
	}
	extras := map[string]any{}
	node["extras"] = extras
	return extras
}
