// Package sidecar writes the collected metadata document to a
// standalone .metro.json file next to the scene, for tooling that
// cannot read embedded extras, and reads such files back.
package sidecar

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

// Writer exports documents to sidecar files. basePath is the backing
// scene file used to derive a default location; it may be empty, in
// which case every export needs an explicit path.
type Writer struct {
	basePath string
}

// NewWriter creates a Writer deriving default paths from basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// DerivePath turns a scene file path into its sidecar path
// (<basename>.metro.json).
func DerivePath(scenePath string) (string, error) {
	if scenePath == "" {
		return "", core.ErrNoSidecarPath
	}
	base := strings.TrimSuffix(scenePath, filepath.Ext(scenePath))
	return base + schema.SidecarExtension, nil
}

// Export implements core.SidecarSink. The document is written
// pretty-printed, UTF-8, via an atomic temp-file rename so a failed
// write never leaves a truncated sidecar.
func (w *Writer) Export(doc core.Document, explicitPath string) (string, error) {
	path := explicitPath
	if path == "" {
		derived, err := DerivePath(w.basePath)
		if err != nil {
			return "", err
		}
		path = derived
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create sidecar directory: %w", err)
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write sidecar: %w", err)
	}
	return path, nil
}

// Read loads a sidecar file into a document.
func Read(path string) (core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sidecar %s: %w", path, err)
	}
	var doc core.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid sidecar json: %w", err)
	}
	return doc, nil
}

var _ core.SidecarSink = (*Writer)(nil)
