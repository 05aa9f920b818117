package advanced

// Test two convex polygons for overlap using the separating axis theorem.
//
// Two convex shapes are disjoint exactly when some line separates them, and if
// such a line exists, one can always be found parallel to an edge of one of
// the shapes. So we project both shapes onto the normal of every edge. If any
// pair of intervals is disjoint, that normal is a separating axis and the
// shapes do not overlap. Shapes that only touch along an edge or at a corner
// are reported as not overlapping.
//
// Panics with ErrInvalidPolygon if either polygon has no vertices.
func Overlap(a, b Polygon) bool {
	_, separated := SeparatingAxis(a, b)
	return !separated
}

// Find the first axis on which the projections of a and b are disjoint. The
// second result is false if there is no such axis, which means the polygons
// overlap.
//
// Panics with ErrInvalidPolygon if either polygon has no vertices.
func SeparatingAxis(a, b Polygon) (Vector, bool) {
	checkVertices(a)
	checkVertices(b)

	for _, axis := range Axes(a, b) {
		if !Project(axis, a).Overlaps(Project(axis, b)) {
			return axis, true
		}
	}
	return Vector{}, false
}

// An empty polygon contributes no axes, so with nothing to project it could
// slip through the axis loop and produce an answer. Catch it up front.
func checkVertices(polygon Polygon) {
	if len(polygon.Vertices()) == 0 {
		fatal(ErrInvalidPolygon, "testing overlap of %T", polygon)
	}
}
