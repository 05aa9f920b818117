package scene

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/sat"
	"github.com/osuushi/sat/advanced"
	"github.com/pkg/errors"
)

// A named polygon. Names come from the input file when it has them, and are
// generated otherwise.
type Shape struct {
	Name string
	sat.Polygon
}

// An ordered collection of shapes to test against each other.
type Scene struct {
	Shapes []Shape
}

// Two shapes that overlap, in scene order.
type Pair struct {
	A, B string
}

// Load a scene from a file, choosing the format by extension: .yaml and .yml
// are YAML scenes, .svg files are SVG drawings, and anything else is read as
// plain point lists.
func Load(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening scene")
	}
	defer file.Close()

	var scene *Scene
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		scene, err = ReadYAML(file)
	case ".svg":
		scene, err = ReadSVG(file)
	default:
		scene, err = ReadText(file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return scene, nil
}

// Add a shape after checking that the overlap test can give a meaningful
// answer for it.
func (s *Scene) Add(name string, polygon sat.Polygon) error {
	if len(polygon.Vertices()) == 0 {
		return errors.Wrapf(sat.ErrInvalidPolygon, "shape %q", name)
	}
	if !advanced.IsConvex(polygon) {
		return errors.Errorf("shape %q is not convex", name)
	}
	for _, shape := range s.Shapes {
		if shape.Name == name {
			return errors.Errorf("duplicate shape name %q", name)
		}
	}
	s.Shapes = append(s.Shapes, Shape{Name: name, Polygon: polygon})
	return nil
}

// Find the shape with the given name, or nil.
func (s *Scene) Lookup(name string) *Shape {
	for i := range s.Shapes {
		if s.Shapes[i].Name == name {
			return &s.Shapes[i]
		}
	}
	return nil
}

// Test every pair of shapes and return the ones that overlap. This is the
// brute force O(n²) sweep; it is meant for inspecting small scenes, not for
// driving a physics step.
func (s *Scene) Overlaps() ([]Pair, error) {
	var pairs []Pair
	for i, a := range s.Shapes {
		for _, b := range s.Shapes[i+1:] {
			overlaps, err := sat.Overlap(a.Polygon, b.Polygon)
			if err != nil {
				return nil, errors.Wrapf(err, "testing %q against %q", a.Name, b.Name)
			}
			if overlaps {
				pairs = append(pairs, Pair{A: a.Name, B: b.Name})
			}
		}
	}
	return pairs, nil
}
