package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/metro3d/assetkit/internal/json"
	"github.com/metro3d/assetkit/pkg/schema"
)

// Report is the outcome of ingesting a foreign document: which internal
// fields were populated, and the top-level keys that matched nothing.
// Raw keys are surfaced rather than dropped so the user can see exactly
// what would otherwise be lost.
type Report struct {
	Mapped []string
	Raw    Document
}

// Apply writes every recognized value of doc into the record and
// returns the internal names of the fields it touched.
//
// For each field the keys below are tried in order, the internal
// snake_case key first and then the external/alias vocabulary; the
// first present key wins. Coercion failures and invalid enum values
// skip that one field; no single field can abort the rest.
func Apply(r *Record, doc Document) []string {
	var mapped []string
	note := func(field string, ok bool) {
		if ok {
			mapped = append(mapped, field)
		}
	}

	// Core
	note("asset_name", setString(doc, &r.Core.AssetName, "asset_name", "name", "title"))
	note("description", setString(doc, &r.Core.Description, "description"))
	note("asset_format", setEnum(doc, &r.Core.AssetFormat, schema.Formats, "asset_format", "format"))
	note("tri_count", setInt(doc, &r.Core.TriCount, "tri_count", "triCount", "triangleCount"))
	note("tags", setList(doc, &r.Core.Tags, "tags", "keywords", "dcat:keyword"))
	note("use_case", setEnum(doc, &r.Core.UseCase, schema.UseCases, "use_case", "useCase"))

	// Provenance
	note("provenance_tool", setString(doc, &r.Provenance.Tool,
		"provenance_tool", "provenance.tool", "generatedWith", "author", "generator"))
	note("provenance_source_data", setList(doc, &r.Provenance.SourceData,
		"provenance_source_data", "provenance.sourceData"))

	// Access control
	note("access_level", setEnum(doc, &r.Access.AccessLevel, schema.AccessLevels, "access_level", "accessLevel"))
	note("license", setEnum(doc, &r.Access.License, schema.Licenses, "license", "copyright"))
	note("attribution_required", setBool(doc, &r.Access.AttributionRequired,
		"attribution_required", "attributionRequired"))

	// Lineage
	note("lineage_id", setString(doc, &r.Lineage.LineageID, "lineage_id", "lineageId"))
	note("derived_from_asset", setList(doc, &r.Lineage.DerivedFromAsset,
		"derived_from_asset", "derivedFromAsset"))

	// Technical
	note("vertex_count", setInt(doc, &r.Technical.VertexCount,
		"vertex_count", "vertexCount", "qualityMetrics.vertexCount"))
	note("bounding_box_x", setFloat(doc, &r.Technical.BoundingBoxX, "bounding_box_x", "boundingBox.x"))
	note("bounding_box_y", setFloat(doc, &r.Technical.BoundingBoxY, "bounding_box_y", "boundingBox.y"))
	note("bounding_box_z", setFloat(doc, &r.Technical.BoundingBoxZ, "bounding_box_z", "boundingBox.z"))
	note("material_count", setInt(doc, &r.Technical.MaterialCount,
		"material_count", "materialProperties.materialCount"))
	note("has_textures", setBool(doc, &r.Technical.HasTextures,
		"has_textures", "materialProperties.hasTextures"))
	note("supports_pbr", setBool(doc, &r.Technical.SupportsPBR,
		"supports_pbr", "materialProperties.supportsPBR"))
	note("lod_levels", setInt(doc, &r.Technical.LODLevels, "lod_levels", "lodLevels"))
	note("scientific_domain", setString(doc, &r.Technical.ScientificDomain,
		"scientific_domain", "scientificDomain"))
	note("source_data_format", setString(doc, &r.Technical.SourceDataFormat,
		"source_data_format", "sourceDataFormat"))
	note("processing_parameters", setParams(doc, &r.Technical.ProcessingParameters,
		"processing_parameters", "processingParameters"))

	// Project
	note("project_phase", setEnum(doc, &r.Project.ProjectPhase, schema.ProjectPhases,
		"project_phase", "projectPhase"))
	note("theme_scheme", setString(doc, &r.Project.ThemeScheme, "theme_scheme", "theme.scheme"))
	note("theme_code", setString(doc, &r.Project.ThemeCode, "theme_code", "theme.code"))
	note("supports_vr", setBool(doc, &r.Project.SupportsVR,
		"supports_vr", "visualizationCapabilities.supportsVR"))
	note("supports_ar", setBool(doc, &r.Project.SupportsAR,
		"supports_ar", "visualizationCapabilities.supportsAR"))
	note("usage_constraints", setString(doc, &r.Project.UsageConstraints,
		"usage_constraints", "usageConstraints"))
	note("usage_guidelines_viewer", setString(doc, &r.Project.UsageGuidelinesViewer,
		"usage_guidelines_viewer", "usageGuidelines.recommended_viewer"))
	note("usage_guidelines_notes", setString(doc, &r.Project.UsageGuidelinesNotes,
		"usage_guidelines_notes", "usageGuidelines.notes"))
	note("deployment_notes", setString(doc, &r.Project.DeploymentNotes,
		"deployment_notes", "deploymentNotes"))
	note("geo_restrictions", setList(doc, &r.Project.GeoRestrictions,
		"geo_restrictions", "geoRestrictions"))
	note("access_scope", setList(doc, &r.Project.AccessScope, "access_scope", "accessScope"))

	return mapped
}

// Ingest applies doc to the record and partitions its top-level keys
// into mapped fields and the unrecognized remainder. A nested
// metro_metadata block (structured or JSON-encoded string) is unwrapped
// and ingested first, so previously embedded documents round-trip.
func Ingest(r *Record, doc Document) Report {
	report := Report{Raw: Document{}}
	seen := map[string]struct{}{}

	if stored, ok := storedBlock(doc); ok {
		for _, f := range Apply(r, stored) {
			seen[f] = struct{}{}
		}
	}

	for _, f := range Apply(r, doc) {
		seen[f] = struct{}{}
	}

	for key, value := range doc {
		if strings.HasPrefix(key, "_") {
			continue
		}
		if key == schema.MetadataKey || key == schema.MetadataJSONKey {
			continue
		}
		if schema.KnownExternalKey(key) {
			continue
		}
		report.Raw[key] = value
	}

	report.Mapped = make([]string, 0, len(seen))
	for f := range seen {
		report.Mapped = append(report.Mapped, f)
	}
	sort.Strings(report.Mapped)
	return report
}

// storedBlock extracts a nested metro_metadata document, tolerating
// both a structured map and a JSON-encoded string, with the _json
// backup key as fallback.
func storedBlock(doc Document) (Document, bool) {
	if v, ok := doc[schema.MetadataKey]; ok {
		if d, ok := asDocument(v); ok {
			return d, true
		}
	}
	if v, ok := doc[schema.MetadataJSONKey]; ok {
		if d, ok := asDocument(v); ok {
			return d, true
		}
	}
	return nil, false
}

func asDocument(v any) (Document, bool) {
	switch t := v.(type) {
	case Document:
		return t, true
	case string:
		var d Document
		if err := json.Unmarshal([]byte(t), &d); err == nil {
			return d, true
		}
	}
	return nil, false
}

// lookup resolves a key against doc. Dotted keys additionally resolve
// through the corresponding nested sub-object ("boundingBox.x" matches
// both a literal flat key and doc["boundingBox"]["x"]). An exact miss
// falls back to a case-insensitive scan so foreign vocabularies like
// "Title" still resolve.
func lookup(doc Document, key string) (any, bool) {
	if v, ok := doc[key]; ok {
		return v, true
	}
	if prefix, rest, found := strings.Cut(key, "."); found {
		if sub, ok := doc[prefix].(map[string]any); ok {
			if v, ok := sub[rest]; ok {
				return v, true
			}
		}
	}
	for k, v := range doc {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func setString(doc Document, dst *string, keys ...string) bool {
	for _, key := range keys {
		v, ok := lookup(doc, key)
		if !ok || v == nil {
			continue
		}
		if s := stringify(v); s != "" {
			*dst = s
			return true
		}
	}
	return false
}

func setInt(doc Document, dst *int, keys ...string) bool {
	for _, key := range keys {
		v, ok := lookup(doc, key)
		if !ok || v == nil {
			continue
		}
		n, ok := toInt(v)
		if !ok {
			continue // coercion failure skips the field, never errors
		}
		if n < 0 {
			n = 0
		}
		*dst = n
		return true
	}
	return false
}

func setFloat(doc Document, dst *float64, keys ...string) bool {
	for _, key := range keys {
		v, ok := lookup(doc, key)
		if !ok || v == nil {
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			continue
		}
		if f < 0 {
			f = 0
		}
		*dst = f
		return true
	}
	return false
}

func setBool(doc Document, dst *bool, keys ...string) bool {
	for _, key := range keys {
		v, ok := lookup(doc, key)
		if !ok {
			continue
		}
		*dst = truthy(v)
		return true
	}
	return false
}

func setEnum(doc Document, dst *string, enum schema.Enum, keys ...string) bool {
	for _, key := range keys {
		v, ok := lookup(doc, key)
		if !ok || v == nil {
			continue
		}
		s := stringify(v)
		if !enum.Valid(s) {
			continue // invalid enum values are silently skipped
		}
		*dst = s
		return true
	}
	return false
}

// setList accepts a native list or a comma-separated string and
// normalizes it to the record's comma-joined representation.
func setList(doc Document, dst *string, keys ...string) bool {
	for _, key := range keys {
		v, ok := lookup(doc, key)
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case []string:
			if len(t) == 0 {
				continue
			}
			*dst = JoinList(t)
		case []any:
			if len(t) == 0 {
				continue
			}
			items := make([]string, 0, len(t))
			for _, item := range t {
				items = append(items, stringify(item))
			}
			*dst = JoinList(items)
		default:
			s := stringify(v)
			if s == "" {
				continue
			}
			*dst = s
		}
		return true
	}
	return false
}

// setParams stores processing parameters, re-encoding structured values
// as JSON text so the record keeps a single string field.
func setParams(doc Document, dst *string, keys ...string) bool {
	for _, key := range keys {
		v, ok := lookup(doc, key)
		if !ok || v == nil {
			continue
		}
		switch v.(type) {
		case map[string]any, []any:
			b, err := json.Marshal(v)
			if err != nil {
				continue
			}
			*dst = string(b)
		default:
			s := stringify(v)
			if s == "" {
				continue
			}
			*dst = s
		}
		return true
	}
	return false
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case float32:
		return int(t), true
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), true
		}
		if f, err := t.Float64(); err == nil {
			return int(f), true
		}
		return 0, false
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return int(f), true
		}
		return 0, false
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// truthy implements the permissive boolean coercion used on import:
// parseable boolean strings are honored, any other non-empty value is
// treated as set.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
			return b
		}
		return strings.TrimSpace(t) != ""
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case nil:
		return false
	default:
		return true
	}
}
