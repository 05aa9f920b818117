package advanced

import "gonum.org/v1/gonum/spatial/r2"

// Shoelace area. Positive for counterclockwise polygons, negative for
// clockwise ones.
func SignedArea(polygon Polygon) float64 {
	vertices := polygon.Vertices()
	var area float64
	for i, vertex := range vertices {
		nextVertex := vertices[CircularIndex(i+1, len(vertices))]
		area += r2.Cross(vertex, nextVertex)
	}
	return area / 2
}

func IsCCW(polygon Polygon) bool {
	return SignedArea(polygon) > 0
}

func IsCW(polygon Polygon) bool {
	return SignedArea(polygon) < 0
}

// Check that every turn along the boundary goes the same way. Collinear
// vertices are allowed. This does not catch polygons that wind around more
// than once, but the overlap test has no use for those either.
//
// Polygons with fewer than three vertices are points or segments, which are
// trivially convex.
func IsConvex(polygon Polygon) bool {
	vertices := polygon.Vertices()
	n := len(vertices)
	if n < 3 {
		return true
	}

	var sign float64
	for i := range vertices {
		a := vertices[i]
		b := vertices[CircularIndex(i+1, n)]
		c := vertices[CircularIndex(i+2, n)]
		turn := r2.Cross(r2.Sub(b, a), r2.Sub(c, b))
		if Equal(turn, 0) {
			continue
		}
		if sign == 0 {
			sign = turn
			continue
		}
		if (turn > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// A hull with the polygon's vertices in the opposite winding order.
func Reverse(polygon Polygon) *Hull {
	vertices := polygon.Vertices()
	points := make([]Vector, 0, len(vertices))
	for i := len(vertices) - 1; i >= 0; i-- {
		points = append(points, vertices[i])
	}
	return &Hull{points: points}
}
