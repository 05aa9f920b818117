package scene

import (
	"fmt"
	"io"

	"github.com/osuushi/sat"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// On disk form of a scene:
//
//	shapes:
//	  - name: floor
//	    box: {x: 0, y: 0, w: 10, h: 1}
//	  - name: ramp
//	    points: [[2, 1], [6, 1], [6, 3]]
type yamlScene struct {
	Shapes []yamlShape `yaml:"shapes"`
}

type yamlShape struct {
	Name   string       `yaml:"name"`
	Box    *yamlBox     `yaml:"box,omitempty"`
	Points [][]float64 `yaml:"points,omitempty"`
}

type yamlBox struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func ReadYAML(in io.Reader) (*Scene, error) {
	var doc yamlScene
	decoder := yaml.NewDecoder(in)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding yaml scene")
	}

	scene := &Scene{}
	for i, shape := range doc.Shapes {
		name := shape.Name
		if name == "" {
			name = fmt.Sprintf("shape%d", i+1)
		}
		polygon, err := shape.polygon()
		if err != nil {
			return nil, errors.Wrapf(err, "shape %q", name)
		}
		if err := scene.Add(name, polygon); err != nil {
			return nil, err
		}
	}
	return scene, nil
}

func (s yamlShape) polygon() (sat.Polygon, error) {
	switch {
	case s.Box != nil && s.Points != nil:
		return nil, errors.New("a shape has either a box or points, not both")
	case s.Box != nil:
		if s.Box.W <= 0 || s.Box.H <= 0 {
			return nil, errors.Errorf("box size must be positive, got %gx%g", s.Box.W, s.Box.H)
		}
		return sat.NewBox(s.Box.X, s.Box.Y, s.Box.W, s.Box.H), nil
	default:
		points := make([]sat.Vector, len(s.Points))
		for i, p := range s.Points {
			if len(p) != 2 {
				return nil, errors.Errorf("point %d has %d coordinates, expected 2", i, len(p))
			}
			points[i] = sat.Vector{X: p[0], Y: p[1]}
		}
		return sat.NewHull(points...), nil
	}
}
