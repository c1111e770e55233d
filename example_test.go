package assetkit_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/metro3d/assetkit"
	"github.com/metro3d/assetkit/pkg/scene"
)

// Example shows the full round trip: open a scene, fill in metadata,
// embed it, and read it back through a fresh session.
func Example() {
	dir, err := os.MkdirTemp("", "assetkit-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	sc := scene.New("Hull")
	sc.Objects = []scene.Object{
		{Name: "Hull", Triangles: 900, Vertices: 500, BBoxMax: [3]float64{2, 1, 1}},
	}
	path := filepath.Join(dir, "hull.json")
	if err := sc.Save(path); err != nil {
		log.Fatal(err)
	}

	s, err := assetkit.Open(path)
	if err != nil {
		log.Fatal(err)
	}

	r := s.Service().Record()
	r.Access.License = "CC-BY-4.0"
	r.Core.Tags = "demo, hull"

	if _, err := s.Inject(); err != nil {
		log.Fatal(err)
	}

	re, err := assetkit.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	report, err := re.Service().ReadBack()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(re.Service().Record().Access.License, len(report.Mapped) > 0)
	// Output: CC-BY-4.0 true
}
