package advanced

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// An axis aligned box. The vertices are cached and rebuilt whenever the origin
// or size changes.
type BoxCollider struct {
	origin   Vector
	size     Vector
	vertices [4]Vector
}

// Create a new BoxCollider, where x and y are the bottom left corner of the
// collider, and w and h are the width and height of the collider, respectively.
func NewBox(x, y, w, h float64) *BoxCollider {
	box := &BoxCollider{
		origin: Vector{X: x, Y: y},
		size:   Vector{X: w, Y: h},
	}
	box.rebuild()
	return box
}

// The corners, starting at the origin and going clockwise: bottom left, top
// left, top right, bottom right.
func (b *BoxCollider) Vertices() []Vector {
	return b.vertices[:]
}

func (b *BoxCollider) Origin() Vector {
	return b.origin
}

func (b *BoxCollider) Size() Vector {
	return b.size
}

func (b *BoxCollider) SetOrigin(x, y float64) {
	b.origin = Vector{X: x, Y: y}
	b.rebuild()
}

func (b *BoxCollider) SetSize(w, h float64) {
	b.size = Vector{X: w, Y: h}
	b.rebuild()
}

// Move the box by a displacement.
func (b *BoxCollider) Translate(delta Vector) {
	b.origin = r2.Add(b.origin, delta)
	b.rebuild()
}

func (b *BoxCollider) rebuild() {
	b.vertices[0] = b.origin
	b.vertices[1] = r2.Add(b.origin, Vector{Y: b.size.Y})
	b.vertices[2] = r2.Add(b.origin, b.size)
	b.vertices[3] = r2.Add(b.origin, Vector{X: b.size.X})
}

func (b *BoxCollider) String() string {
	return fmt.Sprintf("BoxCollider {x: %g, y: %g, w: %g, h: %g}", b.origin.X, b.origin.Y, b.size.X, b.size.Y)
}
