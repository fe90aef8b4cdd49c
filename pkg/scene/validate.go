package scene

import (
	"fmt"
	"math"

	"github.com/chazu/planar/pkg/geom"
)

// ValidationSeverity indicates whether a validation finding makes an entity
// unusable or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // entity is unusable
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Name     string             // which entity has the problem (empty if scene-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Name, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Name    string
	Message string
}

func (w ValidationWarning) String() string {
	if w.Name == "" {
		return w.Message
	}
	return w.Name + ": " + w.Message
}

// ValidationResult bundles errors and warnings from all validation tiers.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether there are no errors.
func (r ValidationResult) OK() bool { return len(r.Errors) == 0 }

// Validate runs the structural checks and returns every finding. An empty
// slice means the scene is consistent. It never mutates the scene.
func Validate(s *Scene) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateOrder(s)...)
	errs = append(errs, validateNames(s)...)
	return errs
}

// ValidateAll runs structural and geometric checks and separates errors from
// warnings.
func ValidateAll(s *Scene) ValidationResult {
	var result ValidationResult
	for _, e := range Validate(s) {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{Name: e.Name, Message: e.Message})
		} else {
			result.Errors = append(result.Errors, e)
		}
	}

	geomErrs, geomWarnings := validateGeometry(s)
	result.Errors = append(result.Errors, geomErrs...)
	result.Warnings = append(result.Warnings, geomWarnings...)
	return result
}

// validateOrder checks that Order, NameIndex and Entries describe the same
// set of names.
func validateOrder(s *Scene) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(s.Order))
	for i, name := range s.Order {
		if seen[name] {
			errs = append(errs, ValidationError{
				Name:     name,
				Message:  "name appears more than once in definition order",
				Severity: SeverityError,
			})
			continue
		}
		seen[name] = true
		if _, ok := s.Entries[name]; !ok {
			errs = append(errs, ValidationError{
				Name:     name,
				Message:  "name in definition order has no entry",
				Severity: SeverityError,
			})
		}
		if idx, ok := s.NameIndex[name]; ok && idx != i {
			errs = append(errs, ValidationError{
				Name:     name,
				Message:  fmt.Sprintf("name index points to %d, definition order has %d", idx, i),
				Severity: SeverityError,
			})
		}
	}
	for name := range s.Entries {
		if !seen[name] {
			errs = append(errs, ValidationError{
				Name:     name,
				Message:  "entry missing from definition order",
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateNames checks that each entry is stored under its own name and
// holds an entity.
func validateNames(s *Scene) []ValidationError {
	var errs []ValidationError
	for key, entry := range s.Entries {
		if entry == nil || entry.Entity == nil {
			errs = append(errs, ValidationError{
				Name:     key,
				Message:  "entry has no entity",
				Severity: SeverityError,
			})
			continue
		}
		if entry.Name != key {
			errs = append(errs, ValidationError{
				Name:     key,
				Message:  fmt.Sprintf("entry is stored under %q but named %q", key, entry.Name),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateGeometry flags degenerate and non-finite entities.
func validateGeometry(s *Scene) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning

	for _, entry := range s.All() {
		if entry.Entity == nil {
			continue
		}
		if !finite(entry.Entity) {
			errs = append(errs, ValidationError{
				Name:     entry.Name,
				Message:  fmt.Sprintf("%s has a non-finite coordinate", entry.Kind()),
				Severity: SeverityError,
			})
			continue
		}

		switch e := entry.Entity.(type) {
		case geom.Vector:
			if e.IsZero() {
				warnings = append(warnings, ValidationWarning{
					Name:    entry.Name,
					Message: "zero vector has no direction",
				})
			}
		case geom.Line:
			if e.IsDegenerate() {
				errs = append(errs, ValidationError{
					Name:     entry.Name,
					Message:  "line direction is the zero vector",
					Severity: SeverityError,
				})
			}
		case geom.Line2D:
			if e.Line().IsDegenerate() {
				errs = append(errs, ValidationError{
					Name:     entry.Name,
					Message:  "line direction is the zero vector",
					Severity: SeverityError,
				})
			} else if e.IsVertical() {
				warnings = append(warnings, ValidationWarning{
					Name:    entry.Name,
					Message: "vertical line has no slope-intercept form",
				})
			}
		case geom.Plane:
			if e.IsDegenerate() {
				errs = append(errs, ValidationError{
					Name:     entry.Name,
					Message:  "plane normal is the zero vector (collinear defining points?)",
					Severity: SeverityError,
				})
			}
		}
	}

	return errs, warnings
}

// finite reports whether every coordinate of e is neither NaN nor infinite.
func finite(e geom.Entity) bool {
	var vals []float64
	switch x := e.(type) {
	case geom.Vector:
		vals = []float64{x.X, x.Y, x.Z}
	case geom.Point:
		vals = []float64{x.X, x.Y, x.Z}
	case geom.Point2D:
		vals = []float64{x.X, x.Y}
	case geom.Line:
		a, d := x.Anchor(), x.Direction()
		vals = []float64{a.X, a.Y, a.Z, d.X, d.Y, d.Z}
	case geom.Line2D:
		a, d := x.Anchor(), x.Direction()
		vals = []float64{a.X, a.Y, d.X, d.Y}
	case geom.Plane:
		a, n := x.Anchor(), x.Normal()
		vals = []float64{a.X, a.Y, a.Z, n.X, n.Y, n.Z}
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
