package schema

// Enum is a closed set of string identifiers with a default member.
type Enum struct {
	Name    string
	Default string
	members []string
	index   map[string]struct{}
}

func newEnum(name, def string, members ...string) Enum {
	idx := make(map[string]struct{}, len(members))
	for _, m := range members {
		idx[m] = struct{}{}
	}
	return Enum{Name: name, Default: def, members: members, index: idx}
}

// Valid reports whether v is a member of the enum.
func (e Enum) Valid(v string) bool {
	_, ok := e.index[v]
	return ok
}

// Members returns the identifiers in declaration order.
func (e Enum) Members() []string {
	out := make([]string, len(e.members))
	copy(out, e.members)
	return out
}

// NoneValue marks enum fields that are omitted from collected documents.
const NoneValue = "NONE"

var (
	// Formats enumerates supported asset file formats.
	Formats = newEnum("format", "glb",
		"gltf", "glb", "usdz", "blend", "fbx", "obj", "stl", "ply")

	// AccessLevels enumerates who can access an asset.
	AccessLevels = newEnum("access_level", "private",
		"private", "group", "institution", "consortium",
		"approval_required", "public")

	// UseCases enumerates the project use cases an asset can belong to.
	UseCases = newEnum("use_case", NoneValue,
		NoneValue, "UC2", "UC3", "UC4", "UC5")

	// ProjectPhases enumerates asset maturity stages.
	ProjectPhases = newEnum("project_phase", NoneValue,
		NoneValue, "prototype", "development", "production", "archived")

	// Licenses enumerates common license identifiers.
	Licenses = newEnum("license", NoneValue,
		NoneValue,
		"CC-BY-4.0", "CC-BY-SA-4.0", "CC-BY-NC-4.0", "CC-BY-NC-SA-4.0",
		"CC0-1.0", "MIT", "Apache-2.0", "OTHER")
)
