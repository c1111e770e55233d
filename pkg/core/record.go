// Package core implements the METRO metadata mapper: the flat editable
// record, the validator, the collector that builds the nested registry
// document, and the applier that ingests foreign documents back into
// the record. It has no host or storage dependency; persistence is
// behind the PropertyStore and SidecarSink ports.
package core

import "strings"

// CoreGroup holds the asset identification fields.
type CoreGroup struct {
	AssetName   string `yaml:"asset_name" json:"asset_name"`
	Description string `yaml:"description" json:"description"`
	AssetFormat string `yaml:"asset_format" json:"asset_format"`
	TriCount    int    `yaml:"tri_count" json:"tri_count"`
	Tags        string `yaml:"tags" json:"tags"` // comma-separated, up to 20
	UseCase     string `yaml:"use_case" json:"use_case"`
}

// ProvenanceGroup holds origin information.
type ProvenanceGroup struct {
	Tool       string `yaml:"provenance_tool" json:"provenance_tool"`
	SourceData string `yaml:"provenance_source_data" json:"provenance_source_data"` // comma-separated URIs
}

// AccessGroup holds access control and licensing fields.
type AccessGroup struct {
	AccessLevel         string `yaml:"access_level" json:"access_level"`
	License             string `yaml:"license" json:"license"`
	AttributionRequired bool   `yaml:"attribution_required" json:"attribution_required"`
}

// LineageGroup holds version lineage and derivation tracking.
type LineageGroup struct {
	LineageID        string `yaml:"lineage_id" json:"lineage_id"` // UUID v4 or empty
	DerivedFromAsset string `yaml:"derived_from_asset" json:"derived_from_asset"`
}

// TechnicalGroup holds auto-extracted and manual technical fields.
type TechnicalGroup struct {
	VertexCount          int     `yaml:"vertex_count" json:"vertex_count"`
	BoundingBoxX         float64 `yaml:"bounding_box_x" json:"bounding_box_x"`
	BoundingBoxY         float64 `yaml:"bounding_box_y" json:"bounding_box_y"`
	BoundingBoxZ         float64 `yaml:"bounding_box_z" json:"bounding_box_z"`
	MaterialCount        int     `yaml:"material_count" json:"material_count"`
	HasTextures          bool    `yaml:"has_textures" json:"has_textures"`
	SupportsPBR          bool    `yaml:"supports_pbr" json:"supports_pbr"`
	LODLevels            int     `yaml:"lod_levels" json:"lod_levels"`
	ScientificDomain     string  `yaml:"scientific_domain" json:"scientific_domain"`
	SourceDataFormat     string  `yaml:"source_data_format" json:"source_data_format"`
	ProcessingParameters string  `yaml:"processing_parameters" json:"processing_parameters"` // JSON text or free-form
}

// ProjectGroup holds project-level and deployment fields.
type ProjectGroup struct {
	ProjectPhase          string `yaml:"project_phase" json:"project_phase"`
	ThemeScheme           string `yaml:"theme_scheme" json:"theme_scheme"`
	ThemeCode             string `yaml:"theme_code" json:"theme_code"`
	SupportsVR            bool   `yaml:"supports_vr" json:"supports_vr"`
	SupportsAR            bool   `yaml:"supports_ar" json:"supports_ar"`
	UsageConstraints      string `yaml:"usage_constraints" json:"usage_constraints"`
	UsageGuidelinesViewer string `yaml:"usage_guidelines_viewer" json:"usage_guidelines_viewer"`
	UsageGuidelinesNotes  string `yaml:"usage_guidelines_notes" json:"usage_guidelines_notes"`
	DeploymentNotes       string `yaml:"deployment_notes" json:"deployment_notes"`
	GeoRestrictions       string `yaml:"geo_restrictions" json:"geo_restrictions"` // comma-separated ISO 3166 codes
	AccessScope           string `yaml:"access_scope" json:"access_scope"`         // comma-separated scopes
}

// Record is the flat, user-editable metadata for one scene. List-ish
// fields are stored as comma-separated strings, matching the editable
// field representation; the Collector splits them on output.
type Record struct {
	Core       CoreGroup       `yaml:"core" json:"core"`
	Provenance ProvenanceGroup `yaml:"provenance" json:"provenance"`
	Access     AccessGroup     `yaml:"access" json:"access"`
	Lineage    LineageGroup    `yaml:"lineage" json:"lineage"`
	Technical  TechnicalGroup  `yaml:"technical" json:"technical"`
	Project    ProjectGroup    `yaml:"project" json:"project"`
}

// NewRecord returns a record with every field at its declared default.
func NewRecord() *Record {
	r := &Record{}
	r.Reset()
	return r
}

// Reset restores every field to its declared default.
func (r *Record) Reset() {
	*r = Record{}
	r.Core.AssetFormat = "glb"
	r.Core.UseCase = "NONE"
	r.Access.AccessLevel = "private"
	r.Access.License = "NONE"
	r.Project.ProjectPhase = "NONE"
}

// Flat returns the record as a flat internal-key document, the shape
// used by editable record files. Every field is present, zero values
// included, so a file written from Flat reads back into an identical
// record.
func (r *Record) Flat() Document {
	return Document{
		"asset_name":              r.Core.AssetName,
		"description":             r.Core.Description,
		"asset_format":            r.Core.AssetFormat,
		"tri_count":               r.Core.TriCount,
		"tags":                    r.Core.Tags,
		"use_case":                r.Core.UseCase,
		"provenance_tool":         r.Provenance.Tool,
		"provenance_source_data":  r.Provenance.SourceData,
		"access_level":            r.Access.AccessLevel,
		"license":                 r.Access.License,
		"attribution_required":    r.Access.AttributionRequired,
		"lineage_id":              r.Lineage.LineageID,
		"derived_from_asset":      r.Lineage.DerivedFromAsset,
		"vertex_count":            r.Technical.VertexCount,
		"bounding_box_x":          r.Technical.BoundingBoxX,
		"bounding_box_y":          r.Technical.BoundingBoxY,
		"bounding_box_z":          r.Technical.BoundingBoxZ,
		"material_count":          r.Technical.MaterialCount,
		"has_textures":            r.Technical.HasTextures,
		"supports_pbr":            r.Technical.SupportsPBR,
		"lod_levels":              r.Technical.LODLevels,
		"scientific_domain":       r.Technical.ScientificDomain,
		"source_data_format":      r.Technical.SourceDataFormat,
		"processing_parameters":   r.Technical.ProcessingParameters,
		"project_phase":           r.Project.ProjectPhase,
		"theme_scheme":            r.Project.ThemeScheme,
		"theme_code":              r.Project.ThemeCode,
		"supports_vr":             r.Project.SupportsVR,
		"supports_ar":             r.Project.SupportsAR,
		"usage_constraints":       r.Project.UsageConstraints,
		"usage_guidelines_viewer": r.Project.UsageGuidelinesViewer,
		"usage_guidelines_notes":  r.Project.UsageGuidelinesNotes,
		"deployment_notes":        r.Project.DeploymentNotes,
		"geo_restrictions":        r.Project.GeoRestrictions,
		"access_scope":            r.Project.AccessScope,
	}
}

// Document is the nested, versioned external representation. It is
// built on demand by Collect, never mutated in place, and discarded
// after serialization.
type Document = map[string]any

// SplitList parses a comma-separated string into trimmed, non-empty
// entries.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList renders entries back into the record's comma-joined string
// representation.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
