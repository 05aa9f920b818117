package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW *Hull. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Hull {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Vector, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Vector{X: x, Y: y})
	}
	result := NewHull(points...)

	// Ensure that the polygon is CCW
	if IsCW(result) {
		result = Reverse(result)
	}
	return result
}

// Ad hoc shapes that aren't worth a fixture file

type emptyPolygon struct{}

func (emptyPolygon) Vertices() []Vector { return nil }

func Triangle(a, b, c Vector) *Hull {
	return NewHull(a, b, c)
}

func Diamond(center Vector, radius float64) *Hull {
	return NewHull(
		Vector{X: center.X, Y: center.Y - radius},
		Vector{X: center.X + radius, Y: center.Y},
		Vector{X: center.X, Y: center.Y + radius},
		Vector{X: center.X - radius, Y: center.Y},
	)
}

// Every shape the symmetry and reflexivity tests sweep over
func AllShapes() []Polygon {
	return []Polygon{
		NewBox(0, 0, 1, 2),
		NewBox(0.5, 0.5, 1, 1),
		NewBox(2, 2, 1, 1),
		NewBox(-3, 1, 4, 0.5),
		Diamond(Vector{X: 1, Y: 1}, 1),
		Regular(3, Vector{}, 1),
		Regular(7, Vector{X: 2, Y: -1}, 1.5),
		Triangle(Vector{X: 0, Y: 0}, Vector{X: 4, Y: 0}, Vector{X: 0, Y: 3}),
		Reverse(Regular(5, Vector{X: -1, Y: 0}, 2)),
		LoadFixture("hexagon"),
		LoadFixture("wedge"),
	}
}
