package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMapRoundTrip(t *testing.T) {
	for field, path := range FieldToAPI {
		got, ok := ExternalToInternal(path)
		require.True(t, ok, "path %q has no inverse entry", path)
		assert.Equal(t, field, got, "round trip for %q", field)
	}
}

func TestInternalToExternal_Unknown(t *testing.T) {
	_, ok := InternalToExternal("no_such_field")
	assert.False(t, ok)
}

func TestFormatToMIME_CoversAllFormats(t *testing.T) {
	for _, f := range Formats.Members() {
		mime, ok := FormatToMIME(f)
		require.True(t, ok, "format %q has no MIME mapping", f)
		assert.NotEmpty(t, mime)
	}
}

func TestEnumValid(t *testing.T) {
	assert.True(t, Formats.Valid("glb"))
	assert.False(t, Formats.Valid("GLB"))
	assert.True(t, AccessLevels.Valid("private"))
	assert.False(t, AccessLevels.Valid("owner"))
	assert.True(t, UseCases.Valid("UC3"))
	assert.True(t, ProjectPhases.Valid(NoneValue))
	assert.True(t, Licenses.Valid("CC0-1.0"))
	assert.False(t, Licenses.Valid("cc0-1.0"))
}

func TestAliasToField(t *testing.T) {
	tests := []struct {
		key   string
		field string
		ok    bool
	}{
		{"title", "asset_name", true},
		{"TITLE", "asset_name", true},
		{"keywords", "tags", true},
		{"copyright", "license", true},
		{"generator", "provenance_tool", true},
		{"dcat:keyword", "tags", true},
		{"unrelated", "", false},
	}
	for _, tc := range tests {
		field, ok := AliasToField(tc.key)
		assert.Equal(t, tc.ok, ok, "key %q", tc.key)
		assert.Equal(t, tc.field, field, "key %q", tc.key)
	}
}

func TestKnownExternalKey(t *testing.T) {
	assert.True(t, KnownExternalKey("name"))
	assert.True(t, KnownExternalKey("asset_name"))
	assert.True(t, KnownExternalKey("provenance"))
	assert.True(t, KnownExternalKey("boundingBox.x"))
	assert.True(t, KnownExternalKey("title"))
	assert.True(t, KnownExternalKey(VersionKey))
	assert.True(t, KnownExternalKey("encodingFormat"))
	assert.False(t, KnownExternalKey("foo"))
}
