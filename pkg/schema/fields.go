package schema

import "strings"

// FieldToAPI maps internal snake_case field names to the dotted
// camelCase paths of the registry API document.
var FieldToAPI = map[string]string{
	// Core
	"asset_name":   "name",
	"description":  "description",
	"asset_format": "format",
	"tri_count":    "triCount",
	"tags":         "tags",
	"use_case":     "useCase",
	// Provenance
	"provenance_tool":        "provenance.tool",
	"provenance_source_data": "provenance.sourceData",
	// Access control
	"access_level":         "accessLevel",
	"license":              "license",
	"attribution_required": "attributionRequired",
	// Lineage
	"lineage_id":         "lineageId",
	"derived_from_asset": "derivedFromAsset",
	// Technical
	"lod_levels":            "lodLevels",
	"bounding_box_x":        "boundingBox.x",
	"bounding_box_y":        "boundingBox.y",
	"bounding_box_z":        "boundingBox.z",
	"material_count":        "materialProperties.materialCount",
	"has_textures":          "materialProperties.hasTextures",
	"supports_pbr":          "materialProperties.supportsPBR",
	"vertex_count":          "qualityMetrics.vertexCount",
	"scientific_domain":     "scientificDomain",
	"source_data_format":    "sourceDataFormat",
	"processing_parameters": "processingParameters",
	// Project
	"project_phase":           "projectPhase",
	"theme_scheme":            "theme.scheme",
	"theme_code":              "theme.code",
	"supports_vr":             "visualizationCapabilities.supportsVR",
	"supports_ar":             "visualizationCapabilities.supportsAR",
	"usage_constraints":       "usageConstraints",
	"usage_guidelines_viewer": "usageGuidelines.recommended_viewer",
	"usage_guidelines_notes":  "usageGuidelines.notes",
	"deployment_notes":        "deploymentNotes",
	"geo_restrictions":        "geoRestrictions",
	"access_scope":            "accessScope",
}

// APIToField is the inverse of FieldToAPI, derived at init.
var APIToField = func() map[string]string {
	m := make(map[string]string, len(FieldToAPI))
	for k, v := range FieldToAPI {
		m[v] = k
	}
	return m
}()

// InternalToExternal translates an internal field name to its dotted
// API path. The second return is false for unknown fields.
func InternalToExternal(field string) (string, bool) {
	path, ok := FieldToAPI[field]
	return path, ok
}

// ExternalToInternal translates a dotted API path back to the internal
// field name. InternalToExternal and ExternalToInternal round-trip for
// every field in FieldToAPI.
func ExternalToInternal(path string) (string, bool) {
	field, ok := APIToField[path]
	return field, ok
}

// aliases maps foreign/legacy keys seen in glTF extras and other tools'
// custom properties to internal field names. Lookup is case-insensitive.
// This is an alternate vocabulary layered on top of FieldToAPI and is
// deliberately not round-trip-safe with it.
var aliases = map[string]string{
	"title":         "asset_name",
	"name":          "asset_name",
	"description":   "description",
	"author":        "provenance_tool",
	"generator":     "provenance_tool",
	"generatedwith": "provenance_tool",
	"license":       "license",
	"copyright":     "license",
	"tags":          "tags",
	"keywords":      "tags",
	"dcat:keyword":  "tags",
}

// AliasToField resolves a foreign key to an internal field name.
func AliasToField(key string) (string, bool) {
	field, ok := aliases[strings.ToLower(key)]
	return field, ok
}

// derivedKeys are emitted by the collector but have no record field of
// their own; they are recognized so re-ingesting a collected document
// never reports its own output as foreign.
var derivedKeys = map[string]bool{
	"encodingFormat": true,
}

// KnownExternalKey reports whether key is recognizable at the top level
// of a foreign document: an internal field name, a top-level API key
// (or sub-object prefix such as "provenance"), a known alias, or a
// derived output key.
func KnownExternalKey(key string) bool {
	if key == VersionKey || derivedKeys[key] {
		return true
	}
	if _, ok := FieldToAPI[key]; ok {
		return true
	}
	if _, ok := APIToField[key]; ok {
		return true
	}
	top := key
	if i := strings.IndexByte(key, '.'); i >= 0 {
		top = key[:i]
	}
	for path := range APIToField {
		if p, _, found := strings.Cut(path, "."); found && p == top {
			return true
		}
	}
	if _, ok := AliasToField(key); ok {
		return true
	}
	return false
}
