package geom

import (
	"math"
	"testing"
)

func TestPoint2D(t *testing.T) {
	p := NewPoint2D(1.5, -2)
	if got := p.String(); got != "(1.5, -2)" {
		t.Errorf("String() = %q, want %q", got, "(1.5, -2)")
	}
	if got := p.Point(); !got.Equal(NewPoint(1.5, -2, 0)) {
		t.Errorf("Point() = %v, want (1.5, -2, 0)", got)
	}
	if got := p.Distance(NewPoint2D(4.5, 2)); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if !p.Equal(NewPoint2D(1.5, -2)) || p.Equal(NewPoint2D(1.5, 2)) {
		t.Error("Equal() mismatch")
	}
}

func TestLine2DString(t *testing.T) {
	tests := []struct {
		name string
		l    Line2D
		want string
	}{
		{"slope two", LineThrough2D(NewPoint2D(0, 1), NewPoint2D(1, 3)), "y = 2x + 1"},
		{"fractional", LineThrough2D(NewPoint2D(1, 1), NewPoint2D(3, 2)), "y = 0.5x + 0.5"},
		{"horizontal", LineThrough2D(NewPoint2D(-4, 7), NewPoint2D(2, 7)), "y = 0x + 7"},
		{"vertical", LineThrough2D(NewPoint2D(2, 0), NewPoint2D(2, 5)), "x = 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLine2DSlopeInterceptVertical(t *testing.T) {
	l := LineThrough2D(NewPoint2D(2, 0), NewPoint2D(2, 5))
	if !l.IsVertical() {
		t.Fatal("IsVertical() = false, want true")
	}
	if _, _, ok := l.SlopeIntercept(); ok {
		t.Error("SlopeIntercept() ok = true for vertical line")
	}
}

func TestDistanceBetweenPoint2DAndLine2D(t *testing.T) {
	tests := []struct {
		name string
		p    Point2D
		l    Line2D
		want float64
	}{
		// dx·px + dy·py + x0·dy would give 3 here; the perpendicular distance is 4.
		{"x axis offset anchor", NewPoint2D(3, 4), NewLine2D(NewPoint2D(5, 0), 1, 0), 4},
		{"below x axis", NewPoint2D(0, -2), NewLine2D(NewPoint2D(0, 0), 3, 0), 2},
		{"diagonal", NewPoint2D(0, 2), LineThrough2D(NewPoint2D(0, 0), NewPoint2D(1, 1)), math.Sqrt2},
		{"on line", NewPoint2D(2, 2), LineThrough2D(NewPoint2D(0, 0), NewPoint2D(1, 1)), 0},
		{"vertical", NewPoint2D(-1, 9), LineThrough2D(NewPoint2D(2, 0), NewPoint2D(2, 5)), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistanceBetweenPoint2DAndLine2D(tt.p, tt.l); !approx(got, tt.want) {
				t.Errorf("DistanceBetweenPoint2DAndLine2D(%v, %q) = %v, want %v", tt.p, tt.l, got, tt.want)
			}
		})
	}
}

func TestLine2DIntersection(t *testing.T) {
	diag := LineThrough2D(NewPoint2D(0, 0), NewPoint2D(1, 1))
	anti := LineThrough2D(NewPoint2D(0, 2), NewPoint2D(2, 0))

	p, ok := diag.Intersection(anti)
	if !ok {
		t.Fatal("Intersection() ok = false, want true")
	}
	if !p.Equal(NewPoint2D(1, 1)) {
		t.Errorf("Intersection() = %v, want (1, 1)", p)
	}

	shifted := LineThrough2D(NewPoint2D(0, 1), NewPoint2D(1, 2))
	if _, ok := diag.Intersection(shifted); ok {
		t.Error("Intersection() ok = true for parallel distinct lines")
	}
	same := LineThrough2D(NewPoint2D(3, 3), NewPoint2D(-1, -1))
	if _, ok := diag.Intersection(same); ok {
		t.Error("Intersection() ok = true for coincident lines")
	}
	if !diag.Equal(same) {
		t.Error("Equal() = false for coincident lines")
	}
	if !diag.IsParallel(shifted) {
		t.Error("IsParallel() = false for parallel lines")
	}
}

func TestLine2DContainsStaysPlanar(t *testing.T) {
	l := LineThrough2D(NewPoint2D(1, 1), NewPoint2D(3, 5))
	if !l.Contains(NewPoint2D(2, 3)) {
		t.Error("Contains((2, 3)) = false, want true")
	}
	if l.Contains(NewPoint2D(2, 4)) {
		t.Error("Contains((2, 4)) = true, want false")
	}
	if d := l.Direction(); d.Z != 0 {
		t.Errorf("Direction().Z = %v, want 0", d.Z)
	}
	if !l.Anchor().Equal(NewPoint2D(1, 1)) {
		t.Errorf("Anchor() = %v, want (1, 1)", l.Anchor())
	}
	if !math.IsInf(l.Magnitude(), 1) {
		t.Errorf("Magnitude() = %v, want +Inf", l.Magnitude())
	}
}
