package advanced

import "gonum.org/v1/gonum/spatial/r2"

// Vectors are plain values. Nothing in this package holds on to one past the
// call that produced it.
type Vector = r2.Vec

// Any convex shape can take part in overlap tests by listing its vertices.
//
// The vertices must be in a consistent winding order (either direction) and
// must describe a convex polygon. Convexity is not checked: a concave vertex
// list gives wrong answers rather than errors. A polygon with no vertices is a
// programming error, and the engine panics when it sees one.
//
// Vertices must not mutate the shape, and must return the same sequence on
// every call until the caller changes the shape's geometry.
type Polygon interface {
	Vertices() []Vector
}

// The interval a polygon covers when flattened onto an axis.
type Projection struct {
	axis     Vector
	Min, Max float64
}

// Rotate a vector a quarter turn counterclockwise.
func Perp(v Vector) Vector {
	return Vector{X: -v.Y, Y: v.X}
}
