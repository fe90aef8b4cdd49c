// Package xform applies affine transforms to geom entities. Transforms are
// backed by sdfx 4x4 matrices, so they compose with the rest of the sdfx
// toolchain.
package xform

import (
	"fmt"
	"math"

	"github.com/chazu/planar/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Transform is an affine map of three-dimensional space.
type Transform struct {
	m sdf.M44
}

// Identity returns the transform that leaves every point in place.
func Identity() Transform {
	return Transform{m: sdf.Identity3d()}
}

// Translate returns a translation by (x, y, z).
func Translate(x, y, z float64) Transform {
	return Transform{m: sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})}
}

// Rotate returns a rotation by Euler angles in degrees, applied about the X
// axis first, then Y, then Z.
func Rotate(x, y, z float64) Transform {
	xRad := x * math.Pi / 180.0
	yRad := y * math.Pi / 180.0
	zRad := z * math.Pi / 180.0

	return Transform{m: sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))}
}

// Scale returns a per-axis scale about the origin.
func Scale(x, y, z float64) Transform {
	return Transform{m: sdf.Scale3d(v3.Vec{X: x, Y: y, Z: z})}
}

// FromMatrix wraps an existing sdfx matrix.
func FromMatrix(m sdf.M44) Transform {
	return Transform{m: m}
}

// Matrix returns the underlying sdfx matrix.
func (t Transform) Matrix() sdf.M44 { return t.m }

// Then returns the transform that applies t and then next.
func (t Transform) Then(next Transform) Transform {
	return Transform{m: next.m.Mul(t.m)}
}

// Point maps a position.
func (t Transform) Point(p geom.Point) geom.Point {
	return geom.PointFromSDF(t.m.MulPosition(p.SDF()))
}

// Vector maps a free vector: translation has no effect on it.
func (t Transform) Vector(v geom.Vector) geom.Vector {
	return t.Point(geom.Origin.Add(v)).Sub(t.Point(geom.Origin))
}

// Line maps the line's anchor and the point one direction-length along it.
func (t Transform) Line(l geom.Line) geom.Line {
	a := l.Anchor()
	return geom.LineThrough(t.Point(a), t.Point(a.Add(l.Direction())))
}

// Plane maps three points spanning the plane and rebuilds it from them.
// The normal's orientation is kept for transforms that preserve handedness.
func (t Transform) Plane(e geom.Plane) geom.Plane {
	a, n := e.Anchor(), e.Normal()
	u := n.Cross(leastAlignedAxis(n))
	w := n.Cross(u)
	return geom.PlaneThrough(t.Point(a), t.Point(a.Add(u)), t.Point(a.Add(w)))
}

// Apply maps any three-dimensional entity. Two-dimensional entities are
// rejected since a general transform would move them out of the z = 0 plane.
func (t Transform) Apply(e geom.Entity) (geom.Entity, error) {
	switch x := e.(type) {
	case geom.Point:
		return t.Point(x), nil
	case geom.Vector:
		return t.Vector(x), nil
	case geom.Line:
		return t.Line(x), nil
	case geom.Plane:
		return t.Plane(x), nil
	default:
		return nil, fmt.Errorf("xform: cannot transform a %s", e.Kind())
	}
}

// leastAlignedAxis returns the unit axis along which n has the smallest
// absolute component, so n×axis is never the zero vector for non-zero n.
func leastAlignedAxis(n geom.Vector) geom.Vector {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case ax <= ay && ax <= az:
		return geom.NewVector(1, 0, 0)
	case ay <= az:
		return geom.NewVector(0, 1, 0)
	default:
		return geom.NewVector(0, 0, 1)
	}
}
