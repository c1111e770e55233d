package core

import (
	"math"

	"github.com/metro3d/assetkit/internal/json"
	"github.com/metro3d/assetkit/pkg/schema"
)

// Collect builds the nested external document from the flat record.
//
// A field appears in the output only when its source value is non-empty
// and non-default; booleans and the required enums (format, accessLevel,
// attributionRequired) are always emitted because their defaults are
// meaningful. Nested sub-objects appear only when at least one of their
// sub-fields is set. The record is not modified.
func Collect(r *Record) Document {
	doc := Document{
		schema.VersionKey: schema.Version,
	}

	// Core
	if r.Core.AssetName != "" {
		doc["name"] = r.Core.AssetName
	}
	if r.Core.Description != "" {
		doc["description"] = r.Core.Description
	}
	doc["format"] = r.Core.AssetFormat
	if r.Core.TriCount > 0 {
		doc["triCount"] = r.Core.TriCount
	}
	if tags := SplitList(r.Core.Tags); len(tags) > 0 {
		doc["tags"] = tags
	}
	if r.Core.UseCase != schema.NoneValue {
		doc["useCase"] = r.Core.UseCase
	}

	// Provenance
	provenance := Document{}
	if r.Provenance.Tool != "" {
		provenance["tool"] = r.Provenance.Tool
	}
	if refs := SplitList(r.Provenance.SourceData); len(refs) > 0 {
		provenance["sourceData"] = refs
	}
	if len(provenance) > 0 {
		doc["provenance"] = provenance
	}

	// Access control
	doc["accessLevel"] = r.Access.AccessLevel
	if r.Access.License != schema.NoneValue {
		doc["license"] = r.Access.License
	}
	doc["attributionRequired"] = r.Access.AttributionRequired

	// Lineage
	if r.Lineage.LineageID != "" {
		doc["lineageId"] = r.Lineage.LineageID
	}
	if uris := SplitList(r.Lineage.DerivedFromAsset); len(uris) > 0 {
		if len(uris) == 1 {
			doc["derivedFromAsset"] = uris[0]
		} else {
			doc["derivedFromAsset"] = uris
		}
	}

	// Technical
	if r.Technical.LODLevels > 0 {
		doc["lodLevels"] = r.Technical.LODLevels
	}
	if r.Technical.BoundingBoxX > 0 || r.Technical.BoundingBoxY > 0 || r.Technical.BoundingBoxZ > 0 {
		doc["boundingBox"] = Document{
			"x": Round4(r.Technical.BoundingBoxX),
			"y": Round4(r.Technical.BoundingBoxY),
			"z": Round4(r.Technical.BoundingBoxZ),
		}
	}
	if r.Technical.MaterialCount > 0 || r.Technical.HasTextures || r.Technical.SupportsPBR {
		doc["materialProperties"] = Document{
			"materialCount": r.Technical.MaterialCount,
			"hasTextures":   r.Technical.HasTextures,
			"supportsPBR":   r.Technical.SupportsPBR,
		}
	}
	if r.Technical.VertexCount > 0 {
		doc["qualityMetrics"] = Document{
			"vertexCount": r.Technical.VertexCount,
		}
	}
	if r.Technical.ScientificDomain != "" {
		doc["scientificDomain"] = r.Technical.ScientificDomain
	}
	if r.Technical.SourceDataFormat != "" {
		doc["sourceDataFormat"] = r.Technical.SourceDataFormat
	}
	if params := r.Technical.ProcessingParameters; params != "" {
		doc["processingParameters"] = parseParams(params)
	}

	// Project
	if r.Project.ProjectPhase != schema.NoneValue {
		doc["projectPhase"] = r.Project.ProjectPhase
	}
	if r.Project.ThemeScheme != "" || r.Project.ThemeCode != "" {
		theme := Document{}
		if r.Project.ThemeScheme != "" {
			theme["scheme"] = r.Project.ThemeScheme
		}
		if r.Project.ThemeCode != "" {
			theme["code"] = r.Project.ThemeCode
		}
		doc["theme"] = theme
	}
	if r.Project.SupportsVR || r.Project.SupportsAR {
		doc["visualizationCapabilities"] = Document{
			"supportsVR": r.Project.SupportsVR,
			"supportsAR": r.Project.SupportsAR,
		}
	}
	if r.Project.UsageConstraints != "" {
		doc["usageConstraints"] = r.Project.UsageConstraints
	}
	if r.Project.UsageGuidelinesViewer != "" || r.Project.UsageGuidelinesNotes != "" {
		guidelines := Document{}
		if r.Project.UsageGuidelinesViewer != "" {
			guidelines["recommended_viewer"] = r.Project.UsageGuidelinesViewer
		}
		if r.Project.UsageGuidelinesNotes != "" {
			guidelines["notes"] = r.Project.UsageGuidelinesNotes
		}
		doc["usageGuidelines"] = guidelines
	}
	if r.Project.DeploymentNotes != "" {
		doc["deploymentNotes"] = r.Project.DeploymentNotes
	}
	if codes := SplitList(r.Project.GeoRestrictions); len(codes) > 0 {
		doc["geoRestrictions"] = codes
	}
	if scopes := SplitList(r.Project.AccessScope); len(scopes) > 0 {
		doc["accessScope"] = scopes
	}

	// Derived encoding format
	if mime, ok := schema.FormatToMIME(r.Core.AssetFormat); ok {
		doc["encodingFormat"] = mime
	}

	return doc
}

// parseParams decodes processing parameters as JSON when possible and
// falls back to the verbatim string otherwise. The fallback is silent:
// unparseable parameters are user text, not an error.
func parseParams(params string) any {
	var v any
	if err := json.Unmarshal([]byte(params), &v); err != nil {
		return params
	}
	return v
}

// Round4 rounds to 4 decimal places, the precision used for bounding
// box dimensions throughout the schema.
func Round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
