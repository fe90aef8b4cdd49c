package geom

import "strconv"

// Axis names a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisNone // returned when every component is zero
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "none"
	}
}

// firstNonZero returns the first axis, in x, y, z order, whose component of
// v is non-zero. Every solve-by-one-component routine in this package picks
// its pivot here so that ties break the same way everywhere.
func firstNonZero(v Vector) Axis {
	switch {
	case v.X != 0:
		return AxisX
	case v.Y != 0:
		return AxisY
	case v.Z != 0:
		return AxisZ
	default:
		return AxisNone
	}
}

// component returns the coordinate of v along a. AxisNone yields 0.
func component(v Vector, a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	default:
		return 0
	}
}

// FormatFloat renders f the way every String method does: shortest
// round-tripping form, with negative zero rendered as 0.
func FormatFloat(f float64) string {
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
