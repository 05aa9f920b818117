package advanced

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Flatten a polygon onto an axis, keeping the smallest and largest dot
// products of its vertices. Panics with ErrInvalidPolygon if the polygon has
// no vertices.
func Project(axis Vector, polygon Polygon) Projection {
	vertices := polygon.Vertices()
	if len(vertices) == 0 {
		fatal(ErrInvalidPolygon, "projecting %T onto %v", polygon, axis)
	}

	projection := newProjection(axis, vertices[0])
	for _, vertex := range vertices[1:] {
		projection.add(vertex)
	}
	return projection
}

func newProjection(axis, init Vector) Projection {
	dot := r2.Dot(axis, init)
	return Projection{axis: axis, Min: dot, Max: dot}
}

// Widen the interval to include a point
func (p *Projection) add(point Vector) {
	dot := r2.Dot(p.axis, point)
	if dot < p.Min {
		p.Min = dot
	}
	if dot > p.Max {
		p.Max = dot
	}
}

// Do the two intervals share any interior? Intervals that only touch at an
// endpoint do not overlap.
//
// Both projections must come from the same axis for the answer to mean
// anything. Projections built by hand (with no axis) compare by their bounds
// alone.
func (p Projection) Overlaps(other Projection) bool {
	return p.Max > other.Min && p.Min < other.Max
}

// The axis the polygon was projected onto. The zero vector for projections
// built directly from bounds.
func (p Projection) Axis() Vector {
	return p.axis
}

func (p Projection) String() string {
	return fmt.Sprintf("[%g, %g] on (%g, %g)", p.Min, p.Max, p.axis.X, p.axis.Y)
}
