package geom

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/golang/geo/r3"
)

// SDF returns v as an sdfx vector.
func (v Vector) SDF() v3.Vec { return v3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

// VectorFromSDF converts an sdfx vector.
func VectorFromSDF(v v3.Vec) Vector { return Vector{X: v.X, Y: v.Y, Z: v.Z} }

// SDF returns p's position vector as an sdfx vector.
func (p Point) SDF() v3.Vec { return v3.Vec{X: p.X, Y: p.Y, Z: p.Z} }

// PointFromSDF converts an sdfx position vector.
func PointFromSDF(v v3.Vec) Point { return Point{X: v.X, Y: v.Y, Z: v.Z} }

// SDF returns p as an sdfx 2D vector.
func (p Point2D) SDF() v2.Vec { return v2.Vec{X: p.X, Y: p.Y} }

// Point2DFromSDF converts an sdfx 2D vector.
func Point2DFromSDF(v v2.Vec) Point2D { return Point2D{X: v.X, Y: v.Y} }

// R3 returns v as an r3 vector.
func (v Vector) R3() r3.Vector { return r3.Vector{X: v.X, Y: v.Y, Z: v.Z} }

// VectorFromR3 converts an r3 vector.
func VectorFromR3(v r3.Vector) Vector { return Vector{X: v.X, Y: v.Y, Z: v.Z} }

// R3 returns p's position vector as an r3 vector.
func (p Point) R3() r3.Vector { return r3.Vector{X: p.X, Y: p.Y, Z: p.Z} }

// PointFromR3 converts an r3 position vector.
func PointFromR3(v r3.Vector) Point { return Point{X: v.X, Y: v.Y, Z: v.Z} }
