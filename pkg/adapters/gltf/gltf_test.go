package gltf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metro3d/assetkit/internal/json"
	"github.com/metro3d/assetkit/pkg/core"
	"github.com/metro3d/assetkit/pkg/schema"
)

func minimalRoot() map[string]any {
	return map[string]any{
		"asset":  map[string]any{"version": "2.0", "generator": "test"},
		"scene":  float64(0),
		"scenes": []any{map[string]any{"nodes": []any{float64(0), float64(1)}}},
		"nodes": []any{
			map[string]any{"name": "Body", "mesh": float64(0)},
			map[string]any{"name": "Wheel", "mesh": float64(1)},
			map[string]any{"name": "Rig"},
		},
		"meshes":            []any{map[string]any{}, map[string]any{}},
		"extensionsUnknown": map[string]any{"vendor": "kept"},
	}
}

func writeGLTF(t *testing.T, root map[string]any) string {
	t.Helper()
	data, err := json.Marshal(root)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "asset.gltf")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeGLB(t *testing.T, root map[string]any, bin []byte) string {
	t.Helper()
	data, err := json.Marshal(root)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "asset.glb")
	require.NoError(t, os.WriteFile(path, encodeGLB(data, bin), 0o644))
	return path
}

type stubMetrics struct {
	stats map[string]core.Stats
}

func (m stubMetrics) SceneStats() core.Stats { return core.Stats{} }

func (m stubMetrics) ObjectStats(name string) (core.Stats, bool) {
	s, ok := m.stats[name]
	return s, ok
}

func (m stubMetrics) MeshNames() []string {
	names := make([]string, 0, len(m.stats))
	for n := range m.stats {
		names = append(names, n)
	}
	return names
}

func TestEmbedAndExtract(t *testing.T) {
	path := writeGLTF(t, minimalRoot())

	f, err := Load(path)
	require.NoError(t, err)

	doc := core.Document{"name": "Car", "license": "CC-BY-4.0"}
	require.NoError(t, f.Embed(doc, nil))
	require.NoError(t, f.Save())

	re, err := Load(path)
	require.NoError(t, err)
	got, ok, err := re.Extract()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Car", got["name"])
	assert.Equal(t, "CC-BY-4.0", got["license"])

	// Foreign content survives the round trip.
	assert.Equal(t, map[string]any{"vendor": "kept"}, re.Root["extensionsUnknown"])
}

func TestEmbedSkipsUnnamedDocument(t *testing.T) {
	f := &File{Root: minimalRoot()}

	require.NoError(t, f.Embed(core.Document{"license": "NONE"}, nil))

	_, ok, err := f.Extract()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmbedObjectStatsMultiMesh(t *testing.T) {
	f := &File{Root: minimalRoot()}
	metrics := stubMetrics{stats: map[string]core.Stats{
		"Body":  {Triangles: 100, Vertices: 60, BBoxX: 1, BBoxY: 2, BBoxZ: 3},
		"Wheel": {Triangles: 40, Vertices: 24},
	}}

	require.NoError(t, f.Embed(core.Document{"name": "Car"}, metrics))

	nodes := f.Root["nodes"].([]any)
	body := nodes[0].(map[string]any)
	extras, ok := body["extras"].(map[string]any)
	require.True(t, ok)
	stats := extras[schema.ObjectStatsKey].(map[string]any)
	assert.Equal(t, 100, stats["triCount"])
	assert.Equal(t, map[string]any{"x": 1.0, "y": 2.0, "z": 3.0}, stats["boundingBox"])

	// The non-mesh node stays untouched.
	rig := nodes[2].(map[string]any)
	_, hasExtras := rig["extras"]
	assert.False(t, hasExtras)
}

func TestEmbedObjectStatsSingleMesh(t *testing.T) {
	f := &File{Root: minimalRoot()}
	metrics := stubMetrics{stats: map[string]core.Stats{
		"Body": {Triangles: 100},
	}}

	require.NoError(t, f.Embed(core.Document{"name": "Car"}, metrics))

	body := f.Root["nodes"].([]any)[0].(map[string]any)
	_, hasExtras := body["extras"]
	assert.False(t, hasExtras)
}

func TestExtractStringForm(t *testing.T) {
	root := minimalRoot()
	block, err := json.Marshal(core.Document{"name": "Legacy"})
	require.NoError(t, err)
	root["scenes"].([]any)[0].(map[string]any)["extras"] = map[string]any{
		schema.MetadataKey: string(block),
	}

	f := &File{Root: root}
	got, ok, err := f.Extract()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Legacy", got["name"])
}

func TestExtractBadStringForm(t *testing.T) {
	root := minimalRoot()
	root["scenes"].([]any)[0].(map[string]any)["extras"] = map[string]any{
		schema.MetadataKey: "not json {",
	}

	f := &File{Root: root}
	_, _, err := f.Extract()
	assert.Error(t, err)
}

func TestGLBRoundTrip(t *testing.T) {
	bin := []byte{1, 2, 3, 4, 5} // intentionally unaligned
	path := writeGLB(t, minimalRoot(), bin)

	f, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, f.Embed(core.Document{"name": "Car"}, nil))
	require.NoError(t, f.Save())

	re, err := Load(path)
	require.NoError(t, err)
	got, ok, err := re.Extract()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Car", got["name"])

	// BIN chunk is carried through, zero-padded to alignment.
	require.GreaterOrEqual(t, len(re.Binary), len(bin))
	assert.Equal(t, bin, re.Binary[:len(bin)])
}

func TestGLBRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.glb")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a glb"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingScenes(t *testing.T) {
	f := &File{Root: map[string]any{"asset": map[string]any{"version": "2.0"}}}
	_, _, err := f.Extract()
	assert.Error(t, err)
}
