package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestEdgeNormals_Box(t *testing.T) {
	normals := EdgeNormals(NewBox(0, 0, 1, 2))
	assert.Equal(t, []Vector{
		{X: 2, Y: 0},  // left edge, going up
		{X: 0, Y: -1}, // top edge, going right
		{X: -2, Y: 0}, // right edge, going down
		{X: 0, Y: 1},  // bottom edge, going left
	}, normals)
}

func TestEdgeNormals_PerpendicularToEdges(t *testing.T) {
	for _, shape := range AllShapes() {
		vertices := shape.Vertices()
		normals := EdgeNormals(shape)
		assert.Len(t, normals, len(vertices))
		for i, normal := range normals {
			edge := r2.Sub(vertices[i], vertices[CircularIndex(i+1, len(vertices))])
			assert.InDelta(t, 0, r2.Dot(edge, normal), Epsilon, "normal %d of %v", i, shape)
			assert.InDelta(t, r2.Norm(edge), r2.Norm(normal), Epsilon)
		}
	}
}

func TestAxes(t *testing.T) {
	box := NewBox(0, 0, 1, 1)
	triangle := Regular(3, Vector{}, 1)

	axes := Axes(box, triangle)
	assert.Len(t, axes, 7)
	assert.Equal(t, EdgeNormals(box), axes[:4])
	assert.Equal(t, EdgeNormals(triangle), axes[4:])

	// Two boxes share directions, but nothing is merged
	assert.Len(t, Axes(box, NewBox(5, 5, 2, 2)), 8)
}

func TestPerp(t *testing.T) {
	assert.Equal(t, Vector{X: -2, Y: 1}, Perp(Vector{X: 1, Y: 2}))
	// Four quarter turns come back around
	v := Vector{X: 3, Y: -7}
	assert.Equal(t, v, Perp(Perp(Perp(Perp(v)))))
}
