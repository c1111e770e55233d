// Package scene models the host document the metadata toolkit operates
// on: a scene description with mesh objects and attached properties.
// It stands in for the 3D editor's scene graph, supplying the geometry
// aggregates the mapper consumes and the property surface the
// persistence adapters write to.
package scene

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/metro3d/assetkit/internal/fsutil"
	"github.com/metro3d/assetkit/internal/json"
	"github.com/metro3d/assetkit/pkg/core"
)

// Object is a single node of the scene graph. The zero value is a
// visible mesh with no geometry.
type Object struct {
	Name        string     `yaml:"name" json:"name"`
	Kind        string     `yaml:"kind,omitempty" json:"kind,omitempty"` // empty means "mesh"
	Hidden      bool       `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Triangles   int        `yaml:"triangles" json:"triangles"`
	Vertices    int        `yaml:"vertices" json:"vertices"`
	BBoxMin     [3]float64 `yaml:"bbox_min" json:"bbox_min"` // world space
	BBoxMax     [3]float64 `yaml:"bbox_max" json:"bbox_max"`
	Materials   []string   `yaml:"materials,omitempty" json:"materials,omitempty"`
	HasTextures bool       `yaml:"has_textures,omitempty" json:"has_textures,omitempty"`
	SupportsPBR bool       `yaml:"supports_pbr,omitempty" json:"supports_pbr,omitempty"`
}

// IsMesh reports whether the object contributes geometry.
func (o Object) IsMesh() bool {
	return o.Kind == "" || o.Kind == "mesh"
}

// Scene is the host document: a named set of objects plus free-form
// attached properties. Path is the backing file, empty for unsaved
// scenes.
type Scene struct {
	Name    string         `yaml:"name" json:"name"`
	Objects []Object       `yaml:"objects,omitempty" json:"objects,omitempty"`
	Props   map[string]any `yaml:"properties,omitempty" json:"properties,omitempty"`

	Path string `yaml:"-" json:"-"`
}

// New creates an empty, unsaved scene.
func New(name string) *Scene {
	return &Scene{Name: name, Props: map[string]any{}}
}

// Load reads a scene description from a JSON or YAML file, chosen by
// extension.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}

	s := &Scene{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("invalid scene yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("invalid scene json: %w", err)
		}
	}

	if s.Props == nil {
		s.Props = map[string]any{}
	}
	s.Path = path
	return s, nil
}

// Save writes the scene back to its backing file (or to path when the
// scene is unsaved), atomically.
func (s *Scene) Save(path string) error {
	if path == "" {
		path = s.Path
	}
	if path == "" {
		return fmt.Errorf("scene %q has no backing file", s.Name)
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(s)
	default:
		data, err = json.MarshalIndent(s, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to serialize scene: %w", err)
	}

	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scene %s: %w", path, err)
	}
	s.Path = path
	return nil
}

// visibleMeshes returns the objects that count toward scene metrics.
func (s *Scene) visibleMeshes() []Object {
	var out []Object
	for _, o := range s.Objects {
		if o.IsMesh() && !o.Hidden {
			out = append(out, o)
		}
	}
	return out
}

// SceneStats aggregates metrics over all visible mesh objects: total
// triangles and vertices, distinct material count, any-textures and
// any-PBR flags, and the world-space bounding box of the union.
func (s *Scene) SceneStats() core.Stats {
	meshes := s.visibleMeshes()
	if len(meshes) == 0 {
		return core.Stats{}
	}

	stats := core.Stats{}
	materials := map[string]struct{}{}
	min := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}

	for _, o := range meshes {
		stats.Triangles += o.Triangles
		stats.Vertices += o.Vertices
		for _, m := range o.Materials {
			materials[m] = struct{}{}
		}
		stats.HasTextures = stats.HasTextures || o.HasTextures
		stats.SupportsPBR = stats.SupportsPBR || o.SupportsPBR
		for i := 0; i < 3; i++ {
			min[i] = math.Min(min[i], o.BBoxMin[i])
			max[i] = math.Max(max[i], o.BBoxMax[i])
		}
	}

	stats.MaterialCount = len(materials)
	stats.BBoxX = core.Round4(max[0] - min[0])
	stats.BBoxY = core.Round4(max[1] - min[1])
	stats.BBoxZ = core.Round4(max[2] - min[2])
	return stats
}

// ObjectStats returns metrics for a single visible mesh object.
func (s *Scene) ObjectStats(name string) (core.Stats, bool) {
	for _, o := range s.visibleMeshes() {
		if o.Name != name {
			continue
		}
		materials := map[string]struct{}{}
		for _, m := range o.Materials {
			materials[m] = struct{}{}
		}
		return core.Stats{
			Triangles:     o.Triangles,
			Vertices:      o.Vertices,
			BBoxX:         core.Round4(o.BBoxMax[0] - o.BBoxMin[0]),
			BBoxY:         core.Round4(o.BBoxMax[1] - o.BBoxMin[1]),
			BBoxZ:         core.Round4(o.BBoxMax[2] - o.BBoxMin[2]),
			MaterialCount: len(materials),
			HasTextures:   o.HasTextures,
			SupportsPBR:   o.SupportsPBR,
		}, true
	}
	return core.Stats{}, false
}

// MeshNames lists the visible mesh objects in scene order.
func (s *Scene) MeshNames() []string {
	meshes := s.visibleMeshes()
	names := make([]string, 0, len(meshes))
	for _, o := range meshes {
		names = append(names, o.Name)
	}
	return names
}

// SceneName implements core.SceneDescriber.
func (s *Scene) SceneName() string { return s.Name }

// BackingPath implements core.SceneDescriber.
func (s *Scene) BackingPath() string { return s.Path }

var _ core.MetricsProvider = (*Scene)(nil)
var _ core.SceneDescriber = (*Scene)(nil)
