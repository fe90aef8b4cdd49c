package geom

import "math"

// Line is the set {anchor + t·direction : t ∈ ℝ}. A line with a zero
// direction is degenerate: it contains no points and intersects nothing.
type Line struct {
	anchor    Point
	direction Vector
}

// NewLine returns the line through anchor along direction.
func NewLine(anchor Point, direction Vector) Line {
	return Line{anchor: anchor, direction: direction}
}

// LineThrough returns the line anchored at p1 with direction p2 − p1.
func LineThrough(p1, p2 Point) Line {
	return Line{anchor: p1, direction: p2.Sub(p1)}
}

// Kind implements Entity.
func (l Line) Kind() Kind { return KindLine }

// Anchor returns the point the line was constructed with.
func (l Line) Anchor() Point { return l.anchor }

// Direction returns the line's direction vector.
func (l Line) Direction() Vector { return l.direction }

// IsDegenerate reports whether the direction is the zero vector.
func (l Line) IsDegenerate() bool { return l.direction.IsZero() }

// At returns anchor + t·direction.
func (l Line) At(t float64) Point {
	return l.anchor.Add(l.direction.Scale(t))
}

// Contains reports whether p lies on l. The parameter t is solved on the
// direction's first non-zero component, then all three offsets from the
// anchor must equal direction·t exactly.
func (l Line) Contains(p Point) bool {
	axis := firstNonZero(l.direction)
	if axis == AxisNone {
		return false
	}
	w := p.Sub(l.anchor)
	t := component(w, axis) / component(l.direction, axis)
	return w.X == l.direction.X*t &&
		w.Y == l.direction.Y*t &&
		w.Z == l.direction.Z*t
}

// IsParallel reports whether the two lines' directions are parallel.
func (l Line) IsParallel(o Line) bool {
	return l.direction.IsParallel(o.direction)
}

// Intersection returns the single point shared by l and o. It reports false
// when the lines are coincident (infinitely many shared points), parallel,
// skew, or either is degenerate.
func (l Line) Intersection(o Line) (Point, bool) {
	if l.Equal(o) {
		return Point{}, false
	}
	if l.IsDegenerate() || o.IsDegenerate() {
		return Point{}, false
	}
	n := l.direction.Cross(o.direction)
	nn := n.Dot(n)
	if nn == 0 {
		return Point{}, false
	}
	// anchor + t·d1 is the point of l closest to o; t = ((w×d2)·n)/|n|².
	w := o.anchor.Sub(l.anchor)
	t := w.Cross(o.direction).Dot(n) / nn
	candidate := l.At(t)
	if !o.Contains(candidate) {
		return Point{}, false
	}
	return candidate, true
}

// Magnitude is positive infinity: a line is unbounded.
func (l Line) Magnitude() float64 { return math.Inf(1) }

// Unit returns the unit vector of the line's direction.
func (l Line) Unit() Vector { return l.direction.Unit() }

// Equal reports whether l and o describe the same point set: o's anchor
// and o's anchor + direction must both lie on l.
func (l Line) Equal(o Line) bool {
	return l.Contains(o.anchor) && l.Contains(o.anchor.Add(o.direction))
}

// String renders the three parametric equations, one per line:
//
//	x = x0 + dxt
//	y = y0 + dyt
//	z = z0 + dzt
func (l Line) String() string {
	return "x = " + FormatFloat(l.anchor.X) + " + " + FormatFloat(l.direction.X) + "t\n" +
		"y = " + FormatFloat(l.anchor.Y) + " + " + FormatFloat(l.direction.Y) + "t\n" +
		"z = " + FormatFloat(l.anchor.Z) + " + " + FormatFloat(l.direction.Z) + "t"
}
