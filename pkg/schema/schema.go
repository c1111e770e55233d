// Package schema holds the static lookup tables of the METRO asset
// registry schema: enumerated value sets, the internal-field to
// external-field name map and its inverse, the format-to-MIME map,
// and the foreign-key alias table used during import.
//
// Everything in this package is pure data. There is no mutable state;
// the inverse map is derived once at init.
package schema

const (
	// Version is the schema version stamped into every collected document.
	Version = "1.0.0"

	// MetadataKey is the attached-property key carrying the full document.
	MetadataKey = "metro_metadata"

	// MetadataJSONKey is the JSON-string backup written alongside
	// MetadataKey for lossless recovery from hosts whose native property
	// storage cannot represent nested values.
	MetadataJSONKey = "metro_metadata_json"

	// ObjectStatsKey is the per-node extras key for mesh statistics.
	ObjectStatsKey = "metro_object_stats"

	// VersionKey is the document key carrying Version.
	VersionKey = "_schemaVersion"

	// SidecarExtension is the suffix of standalone metadata files.
	SidecarExtension = ".metro.json"
)
