package geom

// Point is a fixed position in three-dimensional space.
type Point struct {
	X, Y, Z float64
}

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin is (0, 0, 0).
var Origin = Point{}

// Kind implements Entity.
func (p Point) Kind() Kind { return KindPoint }

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Vector {
	return Vector{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// Add returns p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Distance returns the Euclidean distance between p and o.
func (p Point) Distance(o Point) float64 {
	return o.Sub(p).Magnitude()
}

// Equal reports exact per-coordinate equality.
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y && p.Z == o.Z
}

// String renders p as the ordered triple (x, y, z).
func (p Point) String() string {
	return "(" + FormatFloat(p.X) + ", " + FormatFloat(p.Y) + ", " + FormatFloat(p.Z) + ")"
}

// DistanceBetweenPoints returns the Euclidean distance between p1 and p2.
func DistanceBetweenPoints(p1, p2 Point) float64 {
	return p1.Distance(p2)
}
