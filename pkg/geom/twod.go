package geom

import "math"

// Point2D is a point in the plane z = 0.
type Point2D struct {
	X, Y float64
}

// NewPoint2D returns the point (x, y).
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Kind implements Entity.
func (p Point2D) Kind() Kind { return KindPoint2D }

// Point returns p as a three-dimensional point with z = 0.
func (p Point2D) Point() Point { return Point{X: p.X, Y: p.Y} }

// Distance returns the Euclidean distance between p and o.
func (p Point2D) Distance(o Point2D) float64 {
	return p.Point().Distance(o.Point())
}

// Equal reports exact per-coordinate equality.
func (p Point2D) Equal(o Point2D) bool {
	return p.X == o.X && p.Y == o.Y
}

// String renders p as the pair (x, y).
func (p Point2D) String() string {
	return "(" + FormatFloat(p.X) + ", " + FormatFloat(p.Y) + ")"
}

// Line2D is a Line confined to the plane z = 0.
type Line2D struct {
	line Line
}

// LineThrough2D returns the line anchored at p1 with direction p2 − p1.
func LineThrough2D(p1, p2 Point2D) Line2D {
	return Line2D{line: LineThrough(p1.Point(), p2.Point())}
}

// NewLine2D returns the line through anchor with direction <dx, dy>.
func NewLine2D(anchor Point2D, dx, dy float64) Line2D {
	return Line2D{line: NewLine(anchor.Point(), Vector{X: dx, Y: dy})}
}

// Kind implements Entity.
func (l Line2D) Kind() Kind { return KindLine2D }

// Line returns l as a three-dimensional line.
func (l Line2D) Line() Line { return l.line }

// Anchor returns the point the line was constructed with.
func (l Line2D) Anchor() Point2D {
	return Point2D{X: l.line.anchor.X, Y: l.line.anchor.Y}
}

// Direction returns the direction vector; its z component is always 0.
func (l Line2D) Direction() Vector { return l.line.direction }

// IsVertical reports whether the line runs parallel to the y axis.
func (l Line2D) IsVertical() bool { return l.line.direction.X == 0 }

// Contains reports whether p lies on l.
func (l Line2D) Contains(p Point2D) bool { return l.line.Contains(p.Point()) }

// IsParallel reports whether the two lines' directions are parallel.
func (l Line2D) IsParallel(o Line2D) bool { return l.line.IsParallel(o.line) }

// Intersection returns the single point shared by l and o. It reports false
// for parallel distinct lines and for coincident lines.
func (l Line2D) Intersection(o Line2D) (Point2D, bool) {
	p, ok := l.line.Intersection(o.line)
	if !ok {
		return Point2D{}, false
	}
	return Point2D{X: p.X, Y: p.Y}, true
}

// Magnitude is positive infinity.
func (l Line2D) Magnitude() float64 { return l.line.Magnitude() }

// Unit returns the unit vector of the line's direction.
func (l Line2D) Unit() Vector { return l.line.Unit() }

// Distance returns the perpendicular distance from p to l:
// |dx·(py − y0) − dy·(px − x0)| / hypot(dx, dy).
func (l Line2D) Distance(p Point2D) float64 {
	a, d := l.line.anchor, l.line.direction
	num := d.X*(p.Y-a.Y) - d.Y*(p.X-a.X)
	return math.Abs(num) / math.Hypot(d.X, d.Y)
}

// SlopeIntercept returns m and b of y = mx + b. ok is false for a vertical
// line, which has no such form.
func (l Line2D) SlopeIntercept() (m, b float64, ok bool) {
	if l.IsVertical() {
		return 0, 0, false
	}
	a, d := l.line.anchor, l.line.direction
	m = d.Y / d.X
	b = a.Y + (-a.X*d.Y)/d.X
	return m, b, true
}

// Equal reports whether l and o describe the same point set.
func (l Line2D) Equal(o Line2D) bool { return l.line.Equal(o.line) }

// String renders l in slope-intercept form "y = mx + b". A vertical line
// renders as "x = c".
func (l Line2D) String() string {
	m, b, ok := l.SlopeIntercept()
	if !ok {
		return "x = " + FormatFloat(l.line.anchor.X)
	}
	return "y = " + FormatFloat(m) + "x + " + FormatFloat(b)
}

// DistanceBetweenPoint2DAndLine2D returns the perpendicular distance from p
// to l.
func DistanceBetweenPoint2DAndLine2D(p Point2D, l Line2D) float64 {
	return l.Distance(p)
}
