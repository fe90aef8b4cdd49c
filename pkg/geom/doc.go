// Package geom implements points, vectors, lines and planes in two- and
// three-dimensional space.
//
// Every type is an immutable value. Predicates (Equal, Contains, IsParallel,
// IsOrthogonal) compare floating-point values exactly, without tolerance, so
// coordinates derived from earlier computations may fail them even when the
// underlying geometry agrees. Division by zero is not guarded: normalizing a
// zero vector or measuring against a degenerate line or plane yields IEEE-754
// NaN or Inf rather than an error.
package geom
