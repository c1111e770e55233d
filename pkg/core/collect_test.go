package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metro3d/assetkit/pkg/schema"
)

func TestCollect_EmptyRecordOmitsOptionals(t *testing.T) {
	doc := Collect(NewRecord())

	// Required keys plus the derived MIME type; nothing else.
	assert.Equal(t, Document{
		"_schemaVersion":      "1.0.0",
		"format":              "glb",
		"accessLevel":         "private",
		"attributionRequired": false,
		"encodingFormat":      "model/gltf-binary",
	}, doc)
}

func TestCollect_EndToEnd(t *testing.T) {
	r := NewRecord()
	r.Core.AssetName = "Cube"
	r.Core.AssetFormat = "glb"
	r.Core.TriCount = 12
	r.Core.Tags = "a, b"

	assert.Equal(t, Document{
		"_schemaVersion":      "1.0.0",
		"name":                "Cube",
		"format":              "glb",
		"triCount":            12,
		"tags":                []string{"a", "b"},
		"accessLevel":         "private",
		"attributionRequired": false,
		"encodingFormat":      "model/gltf-binary",
	}, Collect(r))
}

func TestCollect_BoundingBoxRounding(t *testing.T) {
	r := NewRecord()
	r.Technical.BoundingBoxX = 1.23456
	r.Technical.BoundingBoxY = 2.0
	r.Technical.BoundingBoxZ = 0.00004

	doc := Collect(r)
	bbox, ok := doc["boundingBox"].(Document)
	require.True(t, ok)
	assert.Equal(t, 1.2346, bbox["x"])
	assert.Equal(t, 2.0, bbox["y"])
	assert.Equal(t, 0.0, bbox["z"])
}

func TestCollect_DerivedFromAsset(t *testing.T) {
	r := NewRecord()

	r.Lineage.DerivedFromAsset = "uri-1"
	assert.Equal(t, "uri-1", Collect(r)["derivedFromAsset"], "single ref collapses to a string")

	r.Lineage.DerivedFromAsset = "uri-1, uri-2"
	assert.Equal(t, []string{"uri-1", "uri-2"}, Collect(r)["derivedFromAsset"])
}

func TestCollect_NestedGroupsOnlyWhenSet(t *testing.T) {
	r := NewRecord()
	doc := Collect(r)
	for _, key := range []string{
		"provenance", "boundingBox", "materialProperties",
		"qualityMetrics", "theme", "visualizationCapabilities",
		"usageGuidelines",
	} {
		_, present := doc[key]
		assert.False(t, present, "%s must be omitted when empty", key)
	}

	r.Provenance.Tool = "photogrammetry-rig 2.1"
	r.Project.ThemeCode = "ENVI"
	r.Project.SupportsAR = true
	r.Technical.MaterialCount = 3

	doc = Collect(r)
	assert.Equal(t, Document{"tool": "photogrammetry-rig 2.1"}, doc["provenance"])
	assert.Equal(t, Document{"code": "ENVI"}, doc["theme"])
	assert.Equal(t, Document{"supportsVR": false, "supportsAR": true}, doc["visualizationCapabilities"])
	assert.Equal(t, Document{"materialCount": 3, "hasTextures": false, "supportsPBR": false}, doc["materialProperties"])
}

func TestCollect_ProcessingParameters(t *testing.T) {
	r := NewRecord()

	r.Technical.ProcessingParameters = `{"iso":200,"samples":64}`
	doc := Collect(r)
	params, ok := doc["processingParameters"].(map[string]any)
	require.True(t, ok, "valid JSON text parses into a structure")
	assert.Equal(t, float64(200), params["iso"])

	r.Technical.ProcessingParameters = "exposure bracketing, 5 shots"
	doc = Collect(r)
	assert.Equal(t, "exposure bracketing, 5 shots", doc["processingParameters"],
		"unparseable text falls back to the verbatim string")
}

func TestCollect_EnumNoneOmitted(t *testing.T) {
	r := NewRecord()
	doc := Collect(r)
	_, hasUseCase := doc["useCase"]
	_, hasLicense := doc["license"]
	_, hasPhase := doc["projectPhase"]
	assert.False(t, hasUseCase)
	assert.False(t, hasLicense)
	assert.False(t, hasPhase)

	r.Core.UseCase = "UC3"
	r.Access.License = "MIT"
	r.Project.ProjectPhase = "production"
	doc = Collect(r)
	assert.Equal(t, "UC3", doc["useCase"])
	assert.Equal(t, "MIT", doc["license"])
	assert.Equal(t, "production", doc["projectPhase"])
}

func TestCollect_SchemaVersionAlwaysPresent(t *testing.T) {
	assert.Equal(t, schema.Version, Collect(NewRecord())[schema.VersionKey])
}
