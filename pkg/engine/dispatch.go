package engine

import (
	"fmt"

	"github.com/chazu/planar/pkg/geom"
)

// The functions below route a binary script operation to the geom method
// for the given pair of kinds. Unsupported pairs are errors, not false.

func unsupported(op string, a, b geom.Entity) error {
	return fmt.Errorf("%s is not defined for a %s and a %s", op, a.Kind(), b.Kind())
}

func isOrthogonal(a, b geom.Entity) (bool, error) {
	switch x := a.(type) {
	case geom.Vector:
		if y, ok := b.(geom.Vector); ok {
			return x.IsOrthogonal(y), nil
		}
	case geom.Plane:
		if y, ok := b.(geom.Plane); ok {
			return x.IsOrthogonal(y), nil
		}
	}
	return false, unsupported("orthogonality", a, b)
}

func isParallel(a, b geom.Entity) (bool, error) {
	switch x := a.(type) {
	case geom.Vector:
		if y, ok := b.(geom.Vector); ok {
			return x.IsParallel(y), nil
		}
	case geom.Line:
		if y, ok := b.(geom.Line); ok {
			return x.IsParallel(y), nil
		}
	case geom.Line2D:
		if y, ok := b.(geom.Line2D); ok {
			return x.IsParallel(y), nil
		}
	case geom.Plane:
		if y, ok := b.(geom.Plane); ok {
			return x.IsParallel(y), nil
		}
	}
	return false, unsupported("parallelism", a, b)
}

// contains reports whether container a holds point b.
func contains(a, b geom.Entity) (bool, error) {
	switch x := a.(type) {
	case geom.Line:
		if p, ok := b.(geom.Point); ok {
			return x.Contains(p), nil
		}
	case geom.Plane:
		if p, ok := b.(geom.Point); ok {
			return x.Contains(p), nil
		}
	case geom.Line2D:
		if p, ok := b.(geom.Point2D); ok {
			return x.Contains(p), nil
		}
	}
	return false, unsupported("containment", a, b)
}

// intersection returns the single intersection of a and b. ok is false when
// there is none, or when a and b coincide.
func intersection(a, b geom.Entity) (geom.Entity, bool, error) {
	switch x := a.(type) {
	case geom.Line:
		if y, same := b.(geom.Line); same {
			p, ok := x.Intersection(y)
			return p, ok, nil
		}
	case geom.Line2D:
		if y, same := b.(geom.Line2D); same {
			p, ok := x.Intersection(y)
			return p, ok, nil
		}
	case geom.Plane:
		if y, same := b.(geom.Plane); same {
			l, ok := x.Intersection(y)
			return l, ok, nil
		}
	}
	return nil, false, unsupported("intersection", a, b)
}

// distance accepts its arguments in either order. Point-to-plane distance
// is signed.
func distance(a, b geom.Entity) (float64, error) {
	switch x := a.(type) {
	case geom.Point:
		switch y := b.(type) {
		case geom.Point:
			return geom.DistanceBetweenPoints(x, y), nil
		case geom.Plane:
			return geom.DistanceBetweenPointAndPlane(x, y), nil
		}
	case geom.Plane:
		if y, ok := b.(geom.Point); ok {
			return geom.DistanceBetweenPointAndPlane(y, x), nil
		}
	case geom.Point2D:
		switch y := b.(type) {
		case geom.Point2D:
			return x.Distance(y), nil
		case geom.Line2D:
			return geom.DistanceBetweenPoint2DAndLine2D(x, y), nil
		}
	case geom.Line2D:
		if y, ok := b.(geom.Point2D); ok {
			return geom.DistanceBetweenPoint2DAndLine2D(y, x), nil
		}
	}
	return 0, unsupported("distance", a, b)
}
