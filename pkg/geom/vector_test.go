package geom

import (
	"math"
	"testing"
)

// approx reports whether a and b differ by at most 1e-9.
func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func vecApprox(a, b Vector) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestVectorMagnitude(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want float64
	}{
		{"zero", Vector{}, 0},
		{"unit x", NewVector(1, 0, 0), 1},
		{"3-4-0", NewVector(3, 4, 0), 5},
		{"2-3-6", NewVector(2, 3, 6), 7},
		{"negative", NewVector(-2, -3, -6), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Magnitude(); got != tt.want {
				t.Errorf("Magnitude() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVectorUnit(t *testing.T) {
	u := NewVector(3, 4, 0).Unit()
	if !vecApprox(u, NewVector(0.6, 0.8, 0)) {
		t.Errorf("Unit() = %v, want <0.6, 0.8, 0>", u)
	}
	if !approx(u.Magnitude(), 1) {
		t.Errorf("|Unit()| = %v, want 1", u.Magnitude())
	}
}

func TestVectorUnitIdempotent(t *testing.T) {
	for _, v := range []Vector{
		NewVector(1, 0, 0),
		NewVector(0, -1, 0),
		NewVector(0.6, 0.8, 0),
		NewVector(1, 2, 3).Unit(),
	} {
		if got := v.Unit(); !vecApprox(got, v) {
			t.Errorf("%v.Unit() = %v, want unchanged", v, got)
		}
	}
	// Axis-aligned unit vectors are reproduced exactly.
	if got := NewVector(0, 0, 1).Unit(); !got.Equal(NewVector(0, 0, 1)) {
		t.Errorf("<0, 0, 1>.Unit() = %v, want exact", got)
	}
}

func TestVectorUnitZeroIsNaN(t *testing.T) {
	u := Vector{}.Unit()
	if !math.IsNaN(u.X) || !math.IsNaN(u.Y) || !math.IsNaN(u.Z) {
		t.Errorf("zero.Unit() = %v, want NaN components", u)
	}
}

func TestVectorWithMagnitude(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector
		length float64
		want   Vector
	}{
		{"grow", NewVector(3, 4, 0), 10, NewVector(6, 8, 0)},
		{"shrink", NewVector(0, 0, 8), 2, NewVector(0, 0, 2)},
		{"negative reverses", NewVector(3, 4, 0), -5, NewVector(-3, -4, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VectorWithMagnitude(tt.v, tt.length)
			if !vecApprox(got, tt.want) {
				t.Errorf("VectorWithMagnitude(%v, %v) = %v, want %v", tt.v, tt.length, got, tt.want)
			}
		})
	}
}

func TestVectorFromPoint(t *testing.T) {
	if got := VectorFromPoint(NewPoint(1, -2, 3)); !got.Equal(NewVector(1, -2, 3)) {
		t.Errorf("VectorFromPoint() = %v, want <1, -2, 3>", got)
	}
}

func TestSum(t *testing.T) {
	got := Sum(NewVector(1, 2, 3), NewVector(4, -5, 6))
	if !got.Equal(NewVector(5, -3, 9)) {
		t.Errorf("Sum() = %v, want <5, -3, 9>", got)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		k    float64
		want Vector
	}{
		{"double", NewVector(1, 2, 3), 2, NewVector(2, 4, 6)},
		{"half", NewVector(2, 4, 6), 0.5, NewVector(1, 2, 3)},
		{"negative reverses", NewVector(1, -2, 3), -1, NewVector(-1, 2, -3)},
		{"zero scalar", NewVector(1, 2, 3), 0, Vector{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scale(tt.v, tt.k)
			if !got.Equal(tt.want) {
				t.Errorf("Scale(%v, %v) = %v, want %v", tt.v, tt.k, got, tt.want)
			}
			if wantMag := tt.v.Magnitude() * math.Abs(tt.k); !approx(got.Magnitude(), wantMag) {
				t.Errorf("|Scale(%v, %v)| = %v, want %v", tt.v, tt.k, got.Magnitude(), wantMag)
			}
		})
	}
}

func TestDotProduct(t *testing.T) {
	if got := DotProduct(NewVector(1, 2, 3), NewVector(4, -5, 6)); got != 12 {
		t.Errorf("DotProduct() = %v, want 12", got)
	}
}

func TestCrossProduct(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want Vector
	}{
		{"x cross y", NewVector(1, 0, 0), NewVector(0, 1, 0), NewVector(0, 0, 1)},
		{"y cross x", NewVector(0, 1, 0), NewVector(1, 0, 0), NewVector(0, 0, -1)},
		{"general", NewVector(1, 2, 3), NewVector(4, 5, 6), NewVector(-3, 6, -3)},
		{"parallel", NewVector(1, 2, 3), NewVector(2, 4, 6), Vector{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CrossProduct(tt.a, tt.b); !got.Equal(tt.want) {
				t.Errorf("CrossProduct(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCrossIsOrthogonalToOperand(t *testing.T) {
	pairs := [][2]Vector{
		{NewVector(1, 2, 3), NewVector(4, 5, 6)},
		{NewVector(1, 0, 0), NewVector(0, 1, 0)},
		{NewVector(-2, 7, 1), NewVector(3, 3, -4)},
		{NewVector(10, 0, -1), NewVector(0, 2, 5)},
	}
	for _, p := range pairs {
		v, w := p[0], p[1]
		c := v.Cross(w)
		if !IsOrthogonal(v, c) {
			t.Errorf("IsOrthogonal(%v, %v) = false, want true", v, c)
		}
		if !IsOrthogonal(w, c) {
			t.Errorf("IsOrthogonal(%v, %v) = false, want true", w, c)
		}
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want float64
	}{
		{"same", NewVector(1, 0, 0), NewVector(2, 0, 0), 0},
		{"right", NewVector(1, 0, 0), NewVector(0, 3, 0), math.Pi / 2},
		{"opposite", NewVector(1, 1, 1), NewVector(-1, -1, -1), math.Pi},
		{"forty-five", NewVector(1, 0, 0), NewVector(1, 1, 0), math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Angle(tt.a, tt.b); !approx(got, tt.want) {
				t.Errorf("Angle(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAngleClampsRounding(t *testing.T) {
	// The cosine of a vector with itself can round just above 1.
	v := NewVector(0.1, 0.2, 0.3)
	if got := Angle(v, v); math.IsNaN(got) {
		t.Fatalf("Angle(v, v) = NaN, want 0")
	}
}

func TestAngleZeroVectorIsNaN(t *testing.T) {
	if got := Angle(Vector{}, NewVector(1, 0, 0)); !math.IsNaN(got) {
		t.Errorf("Angle(zero, x) = %v, want NaN", got)
	}
}

func TestIsOrthogonal(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want bool
	}{
		{"axes", NewVector(1, 0, 0), NewVector(0, 1, 0), true},
		{"general", NewVector(1, 2, 3), NewVector(3, 0, -1), true},
		{"not", NewVector(1, 1, 0), NewVector(1, 0, 0), false},
		{"zero", Vector{}, NewVector(1, 2, 3), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOrthogonal(tt.a, tt.b); got != tt.want {
				t.Errorf("IsOrthogonal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsParallel(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want bool
	}{
		{"multiple", NewVector(2, 4, 6), NewVector(1, 2, 3), true},
		{"axes", NewVector(1, 0, 0), NewVector(0, 1, 0), false},
		{"antiparallel", NewVector(-1, -2, -3), NewVector(1, 2, 3), true},
		{"pivot on y", NewVector(0, 3, 6), NewVector(0, 1, 2), true},
		{"pivot on z", NewVector(0, 0, -4), NewVector(0, 0, 2), true},
		{"x pivot but y differs", NewVector(2, 5, 6), NewVector(1, 2, 3), false},
		{"zero reference", NewVector(1, 2, 3), Vector{}, false},
		{"both zero", Vector{}, Vector{}, false},
		{"zero against non-zero", Vector{}, NewVector(1, 2, 3), true},
		{"itself", NewVector(0.1, 0.7, 3), NewVector(0.1, 0.7, 3), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsParallel(tt.a, tt.b); got != tt.want {
				t.Errorf("IsParallel(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVectorEqual(t *testing.T) {
	if !NewVector(1, 2, 3).Equal(NewVector(1, 2, 3)) {
		t.Error("Equal() = false for identical vectors")
	}
	if NewVector(1, 2, 3).Equal(NewVector(1, 2, 3.0000001)) {
		t.Error("Equal() = true for vectors differing in z")
	}
}

func TestVectorString(t *testing.T) {
	tests := []struct {
		v    Vector
		want string
	}{
		{NewVector(1, 2, 3), "<1, 2, 3>"},
		{NewVector(-0.5, 0, 2.25), "<-0.5, 0, 2.25>"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	tests := []struct {
		v    Vector
		want Axis
	}{
		{NewVector(1, 1, 1), AxisX},
		{NewVector(0, 2, 1), AxisY},
		{NewVector(0, 0, -3), AxisZ},
		{Vector{}, AxisNone},
	}
	for _, tt := range tests {
		if got := firstNonZero(tt.v); got != tt.want {
			t.Errorf("firstNonZero(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
