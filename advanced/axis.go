package advanced

import "gonum.org/v1/gonum/spatial/r2"

// Candidate separating axes for a single polygon: one per edge, perpendicular
// to it. The axes are not normalized. Both polygons are always projected onto
// the same axis, so scale cannot change the outcome of an interval comparison.
//
// Which side the normal points to depends on the winding order, and does not
// matter either; an interval flipped on both polygons overlaps exactly when the
// unflipped one does.
func EdgeNormals(polygon Polygon) []Vector {
	vertices := polygon.Vertices()
	axes := make([]Vector, len(vertices))
	for i, vertex := range vertices {
		nextVertex := vertices[CircularIndex(i+1, len(vertices))]
		axes[i] = Perp(r2.Sub(vertex, nextVertex))
	}
	return axes
}

// The full candidate axis set for an overlap test between two polygons. Parallel
// axes (two boxes share all of their directions, for example) are not merged.
// That only repeats work, and merging them would cost a comparison per pair.
func Axes(a, b Polygon) []Vector {
	return append(EdgeNormals(a), EdgeNormals(b)...)
}
