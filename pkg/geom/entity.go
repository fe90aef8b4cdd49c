package geom

import "fmt"

// Kind identifies the concrete type behind an Entity.
type Kind int

const (
	KindVector Kind = iota
	KindPoint
	KindLine
	KindPlane
	KindPoint2D
	KindLine2D
)

func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindPlane:
		return "plane"
	case KindPoint2D:
		return "point2d"
	case KindLine2D:
		return "line2d"
	default:
		return "unknown"
	}
}

// Entity is implemented by every geometric value in this package.
// String renders the entity's documented display form.
type Entity interface {
	fmt.Stringer
	Kind() Kind
}

// Equaler is an Entity with value equality against its own type.
type Equaler[T any] interface {
	Entity
	Equal(other T) bool
}

// Compile-time checks.
var (
	_ Equaler[Vector]  = Vector{}
	_ Equaler[Point]   = Point{}
	_ Equaler[Line]    = Line{}
	_ Equaler[Plane]   = Plane{}
	_ Equaler[Point2D] = Point2D{}
	_ Equaler[Line2D]  = Line2D{}
)

// Equal reports whether a and b are the same kind of entity and are
// value-equal. Entities of different kinds are never equal.
func Equal(a, b Entity) bool {
	switch x := a.(type) {
	case Vector:
		y, ok := b.(Vector)
		return ok && x.Equal(y)
	case Point:
		y, ok := b.(Point)
		return ok && x.Equal(y)
	case Line:
		y, ok := b.(Line)
		return ok && x.Equal(y)
	case Plane:
		y, ok := b.(Plane)
		return ok && x.Equal(y)
	case Point2D:
		y, ok := b.(Point2D)
		return ok && x.Equal(y)
	case Line2D:
		y, ok := b.(Line2D)
		return ok && x.Equal(y)
	default:
		return false
	}
}
