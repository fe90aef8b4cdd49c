package geom

import "math"

// Plane is the set {p : normal·(p − anchor) = 0}. A plane with a zero normal
// is degenerate.
type Plane struct {
	anchor Point
	normal Vector
}

// NewPlane returns the plane through anchor perpendicular to normal.
func NewPlane(anchor Point, normal Vector) Plane {
	return Plane{anchor: anchor, normal: normal}
}

// PlaneThrough returns the plane through three points. The normal is
// (p2 − p1)×(p3 − p1) and p1 is the anchor. Collinear points produce a
// degenerate plane.
func PlaneThrough(p1, p2, p3 Point) Plane {
	return Plane{anchor: p1, normal: p2.Sub(p1).Cross(p3.Sub(p1))}
}

// Kind implements Entity.
func (e Plane) Kind() Kind { return KindPlane }

// Anchor returns the point the plane was constructed with.
func (e Plane) Anchor() Point { return e.anchor }

// Normal returns the plane's normal vector.
func (e Plane) Normal() Vector { return e.normal }

// IsDegenerate reports whether the normal is the zero vector.
func (e Plane) IsDegenerate() bool { return e.normal.IsZero() }

// D returns the constant term of the implicit equation ax + by + cz + d = 0.
func (e Plane) D() float64 { return e.dAt(e.anchor) }

// dAt returns −normal·p, the constant term the implicit equation would need
// for p to satisfy it.
func (e Plane) dAt(p Point) float64 {
	return -(e.normal.X*p.X + e.normal.Y*p.Y + e.normal.Z*p.Z)
}

// Contains reports whether p satisfies the plane's implicit equation exactly.
func (e Plane) Contains(p Point) bool {
	return e.dAt(e.anchor) == e.dAt(p)
}

// IsParallel reports whether the normals are parallel.
func (e Plane) IsParallel(o Plane) bool {
	return e.normal.IsParallel(o.normal)
}

// IsOrthogonal reports whether the normals are orthogonal.
func (e Plane) IsOrthogonal(o Plane) bool {
	return e.normal.IsOrthogonal(o.normal)
}

// Intersection returns the line where e and o meet. It reports false when the
// normals are parallel, which covers both parallel and coincident planes.
//
// The direction is n1×n2. The anchor is found by fixing the coordinate on the
// direction's first non-zero axis to 0 and solving the remaining 2x2 system,
// whose determinant is exactly that direction component.
func (e Plane) Intersection(o Plane) (Line, bool) {
	if e.IsParallel(o) {
		return Line{}, false
	}
	n1, n2 := e.normal, o.normal
	dir := n1.Cross(n2)
	axis := firstNonZero(dir)
	if axis == AxisNone {
		return Line{}, false
	}
	d1, d2 := e.D(), o.D()
	det := component(dir, axis)

	// j and k are the other two axes in cyclic order after axis.
	j, k := (axis+1)%3, (axis+2)%3
	uj := (d2*component(n1, k) - d1*component(n2, k)) / det
	uk := (d1*component(n2, j) - d2*component(n1, j)) / det

	var coords [3]float64
	coords[j] = uj
	coords[k] = uk
	anchor := Point{X: coords[AxisX], Y: coords[AxisY], Z: coords[AxisZ]}
	return NewLine(anchor, dir), true
}

// Distance returns the signed distance from p to e, positive on the side the
// normal points to.
func (e Plane) Distance(p Point) float64 {
	num := e.normal.X*p.X + e.normal.Y*p.Y + e.normal.Z*p.Z + e.D()
	n := e.normal
	den := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	return num / den
}

// Equal reports whether e and o describe the same point set: parallel normals
// and o's anchor on e.
func (e Plane) Equal(o Plane) bool {
	return e.IsParallel(o) && e.Contains(o.anchor)
}

// String renders the general equation "ax + by + cz + d = 0".
func (e Plane) String() string {
	return FormatFloat(e.normal.X) + "x + " + FormatFloat(e.normal.Y) + "y + " +
		FormatFloat(e.normal.Z) + "z + " + FormatFloat(e.D()) + " = 0"
}

// DistanceBetweenPointAndPlane returns the signed distance from p to e.
func DistanceBetweenPointAndPlane(p Point, e Plane) float64 {
	return e.Distance(p)
}
