package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metro3d/assetkit/pkg/scene"
	"github.com/metro3d/assetkit/pkg/schema"
)

func writeScene(t *testing.T, dir, name string) string {
	t.Helper()
	sc := scene.New("Demo")
	sc.Objects = []scene.Object{
		{Name: "Hull", Triangles: 900, Vertices: 500, BBoxMin: [3]float64{0, 0, 0}, BBoxMax: [3]float64{2, 1, 1}},
	}
	path := filepath.Join(dir, name)
	require.NoError(t, sc.Save(path))
	return path
}

func TestOpenExtractsAndInjects(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "hull.json")

	s, err := Open(path)
	require.NoError(t, err)

	r := s.Service().Record()
	assert.Equal(t, "hull", r.Core.AssetName) // from the file name
	assert.Equal(t, 900, r.Core.TriCount)
	assert.Equal(t, 500, r.Technical.VertexCount)

	_, err = s.Inject()
	require.NoError(t, err)

	// A fresh session over the same file reads the metadata back.
	re, err := Open(path)
	require.NoError(t, err)
	report, err := re.Service().ReadBack()
	require.NoError(t, err)
	assert.Contains(t, report.Mapped, "asset_name")
}

func TestOpenMissingScene(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestOpenWithCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.json")

	s, err := Open(path, WithCreate())
	require.NoError(t, err)
	assert.Equal(t, "fresh", s.Scene().Name)

	require.NoError(t, s.Save())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenAppliesProjectDefaults(t *testing.T) {
	root := t.TempDir()
	cfg := `{"defaults": {"license": "CC-BY-4.0", "provenance_tool": "metro-pipeline"}, "sidecar_dir": "meta"}`
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte(cfg), 0o644))

	assets := filepath.Join(root, "assets")
	require.NoError(t, os.MkdirAll(assets, 0o755))
	path := writeScene(t, assets, "hull.json")

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "CC-BY-4.0", s.Service().Record().Access.License)
	assert.Equal(t, "metro-pipeline", s.Service().Record().Provenance.Tool)
	assert.Equal(t, root, s.ProjectRoot())

	// sidecar_dir redirects the derived sidecar path.
	written, err := s.ExportSidecar()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "meta", "hull"+schema.SidecarExtension), written)
	_, err = os.Stat(written)
	assert.NoError(t, err)
}

func TestOpenExplicitSidecarPath(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "hull.json")
	target := filepath.Join(dir, "custom.metro.json")

	s, err := Open(path, WithSidecarPath(target))
	require.NoError(t, err)

	written, err := s.ExportSidecar()
	require.NoError(t, err)
	assert.Equal(t, target, written)
}

func TestFindProjectRootWalksUp(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("{}"), 0o644))

	deep := filepath.Join(root, "assets", "vehicles")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	found, err := FindProjectRoot(deep)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}
