package schema

// formatToMIME matches the registry API's encoding map. Every member of
// Formats has an entry.
var formatToMIME = map[string]string{
	"gltf":  "model/gltf+json",
	"glb":   "model/gltf-binary",
	"usdz":  "model/vnd.usdz+zip",
	"blend": "application/x-blender",
	"fbx":   "application/x-fbx",
	"obj":   "model/obj",
	"stl":   "model/stl",
	"ply":   "application/x-ply",
}

// FormatToMIME returns the MIME type for an asset format identifier.
func FormatToMIME(format string) (string, bool) {
	mime, ok := formatToMIME[format]
	return mime, ok
}
