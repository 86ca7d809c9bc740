// Package scene loads object definitions for the viewer from YAML.
package scene

import (
	"embed"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/vectorviewer/internal/body"
	"github.com/Faultbox/vectorviewer/internal/geometry"
	"github.com/Faultbox/vectorviewer/pkg/math"
)

//go:embed scenes/*.yaml
var builtin embed.FS

// File is the on-disk scene format.
type File struct {
	Objects []ObjectDef `yaml:"objects"`
}

// ObjectDef describes one rigid object.
type ObjectDef struct {
	Name     string       `yaml:"name"`
	Position [3]float64   `yaml:"position"`
	Angles   [3]float64   `yaml:"angles"` // degrees
	Speed    [3]float64   `yaml:"speed"`  // degrees per frame
	Nodes    [][3]float64 `yaml:"nodes"`
	Surfaces []SurfaceDef `yaml:"surfaces"`
}

// SurfaceDef describes one polygon of an object.
type SurfaceDef struct {
	ID        int      `yaml:"id"`
	Color     [3]uint8 `yaml:"color"`
	EdgeWidth int      `yaml:"edge_width"`
	Nodes     []int    `yaml:"nodes"`
}

// Load reads and builds a scene file.
func Load(path string) ([]*body.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	objs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return objs, nil
}

// Builtin builds one of the embedded scenes by name, e.g. "cube".
func Builtin(name string) ([]*body.Object, error) {
	data, err := builtin.ReadFile("scenes/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("builtin scene %q: %w", name, err)
	}
	return Parse(data)
}

// Parse decodes YAML and builds the objects it describes.
func Parse(data []byte) ([]*body.Object, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return f.Build()
}

// Build creates the objects. It fails on the first object with bad topology.
func (f File) Build() ([]*body.Object, error) {
	if len(f.Objects) == 0 {
		return nil, fmt.Errorf("scene has no objects")
	}

	objs := make([]*body.Object, 0, len(f.Objects))
	for i, def := range f.Objects {
		o, err := def.Build()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		objs = append(objs, o)
	}
	return objs, nil
}

// Build creates a single object.
func (d ObjectDef) Build() (*body.Object, error) {
	points := make([]math.Vec3, len(d.Nodes))
	for i, n := range d.Nodes {
		points[i] = vec3(n)
	}

	surfaces := make([]geometry.Surface, len(d.Surfaces))
	for i, s := range d.Surfaces {
		c := color.RGBA{R: s.Color[0], G: s.Color[1], B: s.Color[2], A: 255}
		surfaces[i] = geometry.NewSurface(s.ID, c, s.EdgeWidth, s.Nodes)
	}

	o, err := body.New(d.Name, geometry.NewVertexSet(points), surfaces)
	if err != nil {
		return nil, err
	}
	o.Position = vec3(d.Position)
	o.Angles = vec3(d.Angles)
	o.Speed = vec3(d.Speed)
	return o, nil
}

func vec3(a [3]float64) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
