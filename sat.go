// Separating axis overlap tests for convex polygons in the plane.
//
// Any type with a Vertices method listing the corners of a convex polygon, in
// either winding order, can be tested against any other. The answer is a plain
// boolean: shapes that share interior overlap, shapes that merely touch along
// an edge or at a corner do not. Contact points and penetration depth are not
// computed.
//
// The functions in this package return errors for malformed polygons. The
// advanced package exposes the same engine with panics instead, along with the
// axis and projection building blocks.
package sat

import "github.com/osuushi/sat/advanced"

type Vector = advanced.Vector
type Polygon = advanced.Polygon
type Projection = advanced.Projection
type BoxCollider = advanced.BoxCollider
type Hull = advanced.Hull

var ErrInvalidPolygon = advanced.ErrInvalidPolygon

// Create an axis aligned box whose bottom left corner is (x, y).
func NewBox(x, y, w, h float64) *BoxCollider {
	return advanced.NewBox(x, y, w, h)
}

// Create a convex polygon from points in winding order.
func NewHull(points ...Vector) *Hull {
	return advanced.NewHull(points...)
}

// Report whether two convex polygons overlap.
//
// The polygons must be convex, which is not validated. If either polygon has
// no vertices, the result is false with an error wrapping ErrInvalidPolygon.
func Overlap(a, b Polygon) (result bool, err error) {
	defer func() {
		recoveredErr := advanced.HandleSATPanicRecover(recover())
		if recoveredErr != nil {
			result = false
			err = recoveredErr
		}
	}()
	return advanced.Overlap(a, b), nil
}

// Flatten a polygon onto an axis. This is the raw interval data behind
// Overlap, for callers that want to do their own analysis.
func Project(axis Vector, polygon Polygon) (result Projection, err error) {
	defer func() {
		recoveredErr := advanced.HandleSATPanicRecover(recover())
		if recoveredErr != nil {
			result = Projection{}
			err = recoveredErr
		}
	}()
	return advanced.Project(axis, polygon), nil
}
