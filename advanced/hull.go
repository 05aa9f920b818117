package advanced

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// An arbitrary convex polygon given by its vertices. This is the shape to use
// for anything that isn't a box: triangles, rotated rectangles, convex hulls of
// sprites, and so on.
type Hull struct {
	points []Vector
}

// Make a hull from a list of points in winding order. The points are copied,
// so changing the caller's slice later has no effect on the hull.
func NewHull(points ...Vector) *Hull {
	return &Hull{points: append([]Vector(nil), points...)}
}

// A regular polygon with n sides, with its first vertex directly to the right
// of the center. The winding is counterclockwise.
func Regular(n int, center Vector, radius float64) *Hull {
	points := make([]Vector, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = r2.Add(center, Vector{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return &Hull{points: points}
}

func (h *Hull) Vertices() []Vector {
	return h.points
}

// Move every vertex by a displacement.
func (h *Hull) Translate(delta Vector) {
	for i, p := range h.points {
		h.points[i] = r2.Add(p, delta)
	}
}

func (h *Hull) String() string {
	var sb strings.Builder
	sb.WriteString("Hull {")
	for i, p := range h.points {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%g, %g)", p.X, p.Y)
	}
	sb.WriteString("}")
	return sb.String()
}
