package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metro3d/assetkit/pkg/schema"
)

// mapStore is a minimal in-memory PropertyStore.
type mapStore struct {
	props map[string]any
}

func newMapStore() *mapStore {
	return &mapStore{props: map[string]any{}}
}

func (m *mapStore) SetProperty(key string, value any) { m.props[key] = value }

func (m *mapStore) Property(key string) (any, bool) {
	v, ok := m.props[key]
	return v, ok
}

func (m *mapStore) PropertyKeys() []string {
	keys := make([]string, 0, len(m.props))
	for k := range m.props {
		keys = append(keys, k)
	}
	return keys
}

// fixedMetrics is a canned MetricsProvider.
type fixedMetrics struct {
	stats Stats
	name  string
	path  string
}

func (f *fixedMetrics) SceneStats() Stats { return f.stats }

func (f *fixedMetrics) ObjectStats(string) (Stats, bool) { return f.stats, true }

func (f *fixedMetrics) MeshNames() []string { return []string{"mesh"} }

func (f *fixedMetrics) SceneName() string { return f.name }

func (f *fixedMetrics) BackingPath() string { return f.path }

func TestService_ExtractMetrics(t *testing.T) {
	provider := &fixedMetrics{
		stats: Stats{Triangles: 120, Vertices: 62, BBoxX: 1.5, MaterialCount: 2, HasTextures: true},
		name:  "Workbench",
		path:  "/assets/workbench.scene.json",
	}
	svc := NewService(WithMetrics(provider))

	stats, err := svc.ExtractMetrics()
	require.NoError(t, err)
	assert.Equal(t, 120, stats.Triangles)

	r := svc.Record()
	assert.Equal(t, 120, r.Core.TriCount)
	assert.Equal(t, 62, r.Technical.VertexCount)
	assert.Equal(t, 1.5, r.Technical.BoundingBoxX)
	assert.True(t, r.Technical.HasTextures)
	assert.Equal(t, "workbench.scene", r.Core.AssetName, "empty name auto-fills from backing file")
}

func TestService_ExtractMetrics_KeepsExistingName(t *testing.T) {
	svc := NewService(WithMetrics(&fixedMetrics{name: "Scene"}))
	svc.Record().Core.AssetName = "Named Already"

	_, err := svc.ExtractMetrics()
	require.NoError(t, err)
	assert.Equal(t, "Named Already", svc.Record().Core.AssetName)
}

func TestService_ExtractMetrics_NoProvider(t *testing.T) {
	_, err := NewService().ExtractMetrics()
	assert.ErrorIs(t, err, ErrNoMetrics)
}

func TestService_InjectProps_ValidationGate(t *testing.T) {
	store := newMapStore()
	svc := NewService(WithStore(store))
	svc.Record().Core.AssetName = "ok"
	svc.Record().Lineage.LineageID = "broken"

	_, err := svc.InjectProps()
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 1)
	assert.Empty(t, store.props, "invalid record must not be partially injected")
}

func TestService_InjectProps_DualWrite(t *testing.T) {
	store := newMapStore()
	svc := NewService(WithStore(store))
	svc.Record().Core.AssetName = "Crate"

	doc, err := svc.InjectProps()
	require.NoError(t, err)
	assert.Equal(t, "Crate", doc["name"])

	_, hasPrimary := store.props[schema.MetadataKey]
	backup, hasBackup := store.props[schema.MetadataJSONKey]
	assert.True(t, hasPrimary)
	require.True(t, hasBackup)
	assert.Contains(t, backup.(string), `"name": "Crate"`)
}

func TestService_ReadBack(t *testing.T) {
	store := newMapStore()
	store.props[schema.MetadataKey] = `{"name":"Crate","triCount":6}`
	store.props["rig_version"] = "v7"

	svc := NewService(WithStore(store))
	report, err := svc.ReadBack()
	require.NoError(t, err)

	assert.Equal(t, "Crate", svc.Record().Core.AssetName)
	assert.Equal(t, 6, svc.Record().Core.TriCount)
	assert.Contains(t, report.Mapped, "asset_name")
	assert.Equal(t, "v7", report.Raw["rig_version"])
}

func TestService_ReadBack_JSONBackupFallback(t *testing.T) {
	store := newMapStore()
	store.props[schema.MetadataJSONKey] = `{"name":"Backup"}`

	svc := NewService(WithStore(store))
	_, err := svc.ReadBack()
	require.NoError(t, err)
	assert.Equal(t, "Backup", svc.Record().Core.AssetName)
}

func TestService_GenerateLineageID(t *testing.T) {
	svc := NewService()
	id := svc.GenerateLineageID()

	assert.Equal(t, id, svc.Record().Lineage.LineageID)
	assert.True(t, IsValidUUID(id))
}

func TestService_Clear(t *testing.T) {
	svc := NewService()
	svc.Record().Core.AssetName = "something"
	svc.Record().Access.AccessLevel = "public"

	svc.Clear()
	assert.Equal(t, NewRecord(), svc.Record())
}

func TestInjectDocument_NativeVsFallback(t *testing.T) {
	store := newMapStore()

	flat := Document{"name": "x", "triCount": 3, "tags": []string{"a", "b"}}
	require.NoError(t, InjectDocument(store, flat))
	_, isNative := store.props[schema.MetadataKey].(Document)
	assert.True(t, isNative, "flat documents stay native")

	nested := Document{
		"name": "x",
		"processingParameters": map[string]any{
			"steps": []any{map[string]any{"op": "decimate"}},
		},
	}
	require.NoError(t, InjectDocument(store, nested))
	_, isString := store.props[schema.MetadataKey].(string)
	assert.True(t, isString, "deep nesting falls back to the JSON string")
}

func TestService_StateIntrospection(t *testing.T) {
	svc := NewService(WithStore(newMapStore()))
	svc.Record().Core.AssetName = "probe"

	state, ok := svc.State().(ServiceState)
	require.True(t, ok)
	assert.Equal(t, "probe", state.AssetName)
	assert.False(t, state.HasMetrics)
	assert.Equal(t, "metadata-service", svc.ComponentType())
}
