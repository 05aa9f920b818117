package scene

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/sat"
	"github.com/pkg/errors"
)

// Read shapes out of an SVG drawing. Every <rect> becomes a box and every
// <polygon> a hull, in document order, named by their id attributes.
// Transforms, paths and everything else are ignored. Coordinates are taken as
// they are, so the scene is mirrored vertically compared to how the drawing
// looks; overlap is unaffected.
func ReadSVG(in io.Reader) (*Scene, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	scene := &Scene{}
	var walkErr error
	walk(root, func(el *svgparser.Element) bool {
		var polygon sat.Polygon
		switch el.Name {
		case "rect":
			polygon, walkErr = svgRect(el)
		case "polygon":
			polygon, walkErr = svgPolygon(el)
		default:
			return true
		}
		name := el.Attributes["id"]
		if name == "" {
			name = fmt.Sprintf("%s%d", el.Name, len(scene.Shapes)+1)
		}
		if walkErr != nil {
			walkErr = errors.Wrapf(walkErr, "shape %q", name)
			return false
		}
		walkErr = scene.Add(name, polygon)
		return walkErr == nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return scene, nil
}

// Depth first, in document order. Stops when fn returns false.
func walk(el *svgparser.Element, fn func(*svgparser.Element) bool) bool {
	if !fn(el) {
		return false
	}
	for _, child := range el.Children {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

func svgRect(el *svgparser.Element) (sat.Polygon, error) {
	var values [4]float64
	for i, attr := range []string{"x", "y", "width", "height"} {
		raw, ok := el.Attributes[attr]
		if !ok {
			// x and y default to zero
			if i < 2 {
				continue
			}
			return nil, errors.Errorf("rect is missing %s", attr)
		}
		value, err := strconv.ParseFloat(strings.TrimSuffix(raw, "px"), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s", attr)
		}
		values[i] = value
	}
	if values[2] <= 0 || values[3] <= 0 {
		return nil, errors.Errorf("rect size must be positive, got %gx%g", values[2], values[3])
	}
	return sat.NewBox(values[0], values[1], values[2], values[3]), nil
}

func svgPolygon(el *svgparser.Element) (sat.Polygon, error) {
	// Points may be separated by commas, whitespace, or both
	fields := strings.FieldsFunc(el.Attributes["points"], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", el.Attributes["points"])
	}
	points := make([]sat.Vector, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, sat.Vector{X: x, Y: y})
	}
	return sat.NewHull(points...), nil
}
