package geom

import "math"

// Vector is a free direction and magnitude in three-dimensional space.
// The zero vector is permitted but has no direction; operations that
// normalize it produce NaN components.
type Vector struct {
	X, Y, Z float64
}

// NewVector returns the vector <x, y, z>.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// VectorFromPoint returns the position vector of p, from the origin to p.
func VectorFromPoint(p Point) Vector {
	return Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// VectorWithMagnitude returns a vector parallel to v whose length is
// |length|. A negative length reverses the direction. v must not be the
// zero vector.
func VectorWithMagnitude(v Vector, length float64) Vector {
	mag := v.Magnitude()
	return Vector{
		X: length * v.X / mag,
		Y: length * v.Y / mag,
		Z: length * v.Z / mag,
	}
}

// Kind implements Entity.
func (v Vector) Kind() Kind { return KindVector }

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Magnitude returns the Euclidean norm of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Unit returns the unit vector parallel to v.
func (v Vector) Unit() Vector {
	mag := v.Magnitude()
	return Vector{X: v.X / mag, Y: v.Y / mag, Z: v.Z / mag}
}

// Neg returns v pointing the other way.
func (v Vector) Neg() Vector { return Vector{X: -v.X, Y: -v.Y, Z: -v.Z} }

// Add returns the componentwise sum v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns the vector parallel to v with magnitude |v|*k. A negative k
// reverses the direction. The result is computed componentwise so that
// scaling by an exact ratio reproduces the expected components exactly.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Dot returns the dot product v·o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v×o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		X: det2(v.Y, o.Y, v.Z, o.Z),
		Y: det2(v.Z, o.Z, v.X, o.X),
		Z: det2(v.X, o.X, v.Y, o.Y),
	}
}

// Angle returns the angle between v and o in radians, in [0, π].
// The cosine is clamped into [-1, 1] before acos; a zero vector on either
// side yields NaN.
func (v Vector) Angle(o Vector) float64 {
	cos := v.Dot(o) / (v.Magnitude() * o.Magnitude())
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// IsOrthogonal reports whether v·o is exactly zero.
func (v Vector) IsOrthogonal(o Vector) bool {
	return v.Dot(o) == 0
}

// IsParallel reports whether v is an exact scalar multiple of o. The ratio is
// taken on o's first non-zero component (x, then y, then z); if o is the zero
// vector the result is false.
func (v Vector) IsParallel(o Vector) bool {
	axis := firstNonZero(o)
	if axis == AxisNone {
		return false
	}
	k := component(v, axis) / component(o, axis)
	return o.Scale(k).Equal(v)
}

// Equal reports exact per-component equality.
func (v Vector) Equal(o Vector) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// String renders v as <x, y, z>.
func (v Vector) String() string {
	return "<" + FormatFloat(v.X) + ", " + FormatFloat(v.Y) + ", " + FormatFloat(v.Z) + ">"
}

// det2 returns the determinant of the 2x2 matrix [a b; c d].
func det2(a, b, c, d float64) float64 {
	return a*d - b*c
}

// Sum returns a + b.
func Sum(a, b Vector) Vector { return a.Add(b) }

// Scale returns v scaled to magnitude |v|*k.
func Scale(v Vector, k float64) Vector { return v.Scale(k) }

// DotProduct returns a·b.
func DotProduct(a, b Vector) float64 { return a.Dot(b) }

// CrossProduct returns a×b.
func CrossProduct(a, b Vector) Vector { return a.Cross(b) }

// Angle returns the angle between a and b in radians.
func Angle(a, b Vector) float64 { return a.Angle(b) }

// IsOrthogonal reports whether a·b is exactly zero.
func IsOrthogonal(a, b Vector) bool { return a.IsOrthogonal(b) }

// IsParallel reports whether a is an exact scalar multiple of b.
func IsParallel(a, b Vector) bool { return a.IsParallel(b) }
