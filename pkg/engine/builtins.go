package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chazu/planar/pkg/geom"
	"github.com/chazu/planar/pkg/scene"
	"github.com/chazu/planar/pkg/xform"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms planar Lisp source code before passing it to
// zygomys. It performs three transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: is-parallel -> is_parallel
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
//  3. Line comments: ; and ;; become //, which is what zygomys reads.
//
// All transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp type for passing geometric values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpEntity wraps a geom.Entity so it can be returned from one builtin and
// consumed by another. It prints in the entity's display form.
type sexpEntity struct {
	e geom.Entity
}

func (s *sexpEntity) SexpString(ps *zygo.PrintState) string { return s.e.String() }
func (s *sexpEntity) Type() *zygo.RegisteredType { return nil }

func wrap(e geom.Entity) zygo.Sexp { return &sexpEntity{e: e} }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value: treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toFloats extracts exactly n numbers from args.
func toFloats(fn string, args []zygo.Sexp, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires exactly %d numbers, got %d arguments", fn, n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", fn, i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toEntity extracts a geom.Entity from a sexpEntity.
func toEntity(s zygo.Sexp) (geom.Entity, error) {
	if e, ok := s.(*sexpEntity); ok {
		return e.e, nil
	}
	return nil, fmt.Errorf("expected geometric entity, got %T (%s)", s, s.SexpString(nil))
}

// as extracts an entity of one concrete type.
func as[T geom.Entity](s zygo.Sexp, kind geom.Kind) (T, error) {
	var zero T
	e, err := toEntity(s)
	if err != nil {
		return zero, err
	}
	v, ok := e.(T)
	if !ok {
		return zero, fmt.Errorf("expected %s, got %s", kind, e.Kind())
	}
	return v, nil
}

// toEntities extracts exactly n entities from args.
func toEntities(fn string, args []zygo.Sexp, n int) ([]geom.Entity, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires exactly %d arguments, got %d", fn, n, len(args))
	}
	out := make([]geom.Entity, n)
	for i, a := range args {
		e, err := toEntity(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", fn, i+1, err)
		}
		out[i] = e
	}
	return out, nil
}

// display renders a value for show: entities in their display form, numbers
// in shortest form, keywords with their leading colon.
func display(s zygo.Sexp) string {
	switch v := s.(type) {
	case *sexpEntity:
		return v.e.String()
	case *zygo.SexpFloat:
		return geom.FormatFloat(v.Val)
	case *zygo.SexpInt:
		return strconv.FormatInt(int64(v.Val), 10)
	case *zygo.SexpBool:
		return strconv.FormatBool(v.Val)
	case *zygo.SexpStr:
		if name, ok := isKW(v); ok {
			return ":" + name
		}
		return v.S
	}
	if s == zygo.SexpNull {
		return "none"
	}
	return s.SexpString(nil)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs all planar builtins into a zygomys environment.
// The builtins operate on the provided Scene, populating it during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals and
// kebab-case names (is-parallel) match their registered underscore form.
func registerBuiltins(env *zygo.Zlisp, s *scene.Scene) {

	// -----------------------------------------------------------------------
	// (point 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		xs, err := toFloats("point", args, 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		return wrap(geom.NewPoint(xs[0], xs[1], xs[2])), nil
	})

	// -----------------------------------------------------------------------
	// (point2d 1 2)
	// -----------------------------------------------------------------------
	env.AddFunction("point2d", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		xs, err := toFloats("point2d", args, 2)
		if err != nil {
			return zygo.SexpNull, err
		}
		return wrap(geom.NewPoint2D(xs[0], xs[1])), nil
	})

	// -----------------------------------------------------------------------
	// (vector 1 2 3)
	// (vector p)                   position vector of a point
	// (vector v :magnitude 5)      direction of v, length 5
	// -----------------------------------------------------------------------
	env.AddFunction("vector", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		var v geom.Vector
		switch len(pa.positional) {
		case 1:
			e, err := toEntity(pa.positional[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vector: %w", err)
			}
			switch x := e.(type) {
			case geom.Vector:
				v = x
			case geom.Point:
				v = geom.VectorFromPoint(x)
			default:
				return zygo.SexpNull, fmt.Errorf("vector: expected point or vector, got %s", e.Kind())
			}
		case 3:
			xs, err := toFloats("vector", pa.positional, 3)
			if err != nil {
				return zygo.SexpNull, err
			}
			v = geom.NewVector(xs[0], xs[1], xs[2])
		default:
			return zygo.SexpNull, fmt.Errorf("vector requires 3 numbers, a point, or a vector, got %d arguments", len(pa.positional))
		}

		if m, ok := pa.kw["magnitude"]; ok {
			f, err := toFloat64(m)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vector: magnitude: %w", err)
			}
			v = geom.VectorWithMagnitude(v, f)
		}
		return wrap(v), nil
	})

	// -----------------------------------------------------------------------
	// (line p1 p2)  or  (line anchor direction)
	// -----------------------------------------------------------------------
	env.AddFunction("line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("line requires two points, or a point and a vector, got %d arguments", len(args))
		}
		anchor, err := as[geom.Point](args[0], geom.KindPoint)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("line: anchor: %w", err)
		}
		second, err := toEntity(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("line: %w", err)
		}
		switch x := second.(type) {
		case geom.Point:
			return wrap(geom.LineThrough(anchor, x)), nil
		case geom.Vector:
			return wrap(geom.NewLine(anchor, x)), nil
		}
		return zygo.SexpNull, fmt.Errorf("line: expected point or vector, got %s", second.Kind())
	})

	// -----------------------------------------------------------------------
	// (line2d p1 p2)  or  (line2d anchor dx dy)
	// -----------------------------------------------------------------------
	env.AddFunction("line2d", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 && len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("line2d requires two 2D points, or a 2D point and dx dy, got %d arguments", len(args))
		}
		anchor, err := as[geom.Point2D](args[0], geom.KindPoint2D)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("line2d: anchor: %w", err)
		}
		if len(args) == 2 {
			p2, err := as[geom.Point2D](args[1], geom.KindPoint2D)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("line2d: %w", err)
			}
			return wrap(geom.LineThrough2D(anchor, p2)), nil
		}
		d, err := toFloats("line2d", args[1:], 2)
		if err != nil {
			return zygo.SexpNull, err
		}
		return wrap(geom.NewLine2D(anchor, d[0], d[1])), nil
	})

	// -----------------------------------------------------------------------
	// (plane anchor normal)  or  (plane p1 p2 p3)
	// -----------------------------------------------------------------------
	env.AddFunction("plane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		switch len(args) {
		case 2:
			anchor, err := as[geom.Point](args[0], geom.KindPoint)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("plane: anchor: %w", err)
			}
			normal, err := as[geom.Vector](args[1], geom.KindVector)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("plane: normal: %w", err)
			}
			return wrap(geom.NewPlane(anchor, normal)), nil
		case 3:
			var pts [3]geom.Point
			for i := range pts {
				p, err := as[geom.Point](args[i], geom.KindPoint)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("plane: point %d: %w", i+1, err)
				}
				pts[i] = p
			}
			return wrap(geom.PlaneThrough(pts[0], pts[1], pts[2])), nil
		}
		return zygo.SexpNull, fmt.Errorf("plane requires a point and a normal, or three points, got %d arguments", len(args))
	})

	// -----------------------------------------------------------------------
	// (magnitude v)  lines report +Inf
	// -----------------------------------------------------------------------
	env.AddFunction("magnitude", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		es, err := toEntities("magnitude", args, 1)
		if err != nil {
			return zygo.SexpNull, err
		}
		switch x := es[0].(type) {
		case geom.Vector:
			return &zygo.SexpFloat{Val: x.Magnitude()}, nil
		case geom.Line:
			return &zygo.SexpFloat{Val: x.Magnitude()}, nil
		case geom.Line2D:
			return &zygo.SexpFloat{Val: x.Magnitude()}, nil
		}
		return zygo.SexpNull, fmt.Errorf("magnitude: expected vector or line, got %s", es[0].Kind())
	})

	// -----------------------------------------------------------------------
	// (unit v)
	// -----------------------------------------------------------------------
	env.AddFunction("unit", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		es, err := toEntities("unit", args, 1)
		if err != nil {
			return zygo.SexpNull, err
		}
		switch x := es[0].(type) {
		case geom.Vector:
			return wrap(x.Unit()), nil
		case geom.Line:
			return wrap(x.Unit()), nil
		case geom.Line2D:
			return wrap(x.Unit()), nil
		}
		return zygo.SexpNull, fmt.Errorf("unit: expected vector or line, got %s", es[0].Kind())
	})

	// -----------------------------------------------------------------------
	// (sum v1 v2 ...)
	// -----------------------------------------------------------------------
	env.AddFunction("sum", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("sum requires at least 2 vectors, got %d", len(args))
		}
		var total geom.Vector
		for i, a := range args {
			v, err := as[geom.Vector](a, geom.KindVector)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("sum: argument %d: %w", i+1, err)
			}
			total = geom.Sum(total, v)
		}
		return wrap(total), nil
	})

	// -----------------------------------------------------------------------
	// (scale v 2)            vector times scalar
	// (scale entity 1 2 3)   per-axis scale transform
	// -----------------------------------------------------------------------
	env.AddFunction("scale", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		switch len(args) {
		case 2:
			v, err := as[geom.Vector](args[0], geom.KindVector)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("scale: %w", err)
			}
			k, err := toFloat64(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("scale: factor: %w", err)
			}
			return wrap(geom.Scale(v, k)), nil
		case 4:
			return applyTransform("scale", args, xform.Scale)
		}
		return zygo.SexpNull, fmt.Errorf("scale requires a vector and a factor, or an entity and 3 factors, got %d arguments", len(args))
	})

	// -----------------------------------------------------------------------
	// (dot a b) (cross a b) (angle a b)
	// -----------------------------------------------------------------------
	env.AddFunction("dot", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a, b, err := vectorPair("dot", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &zygo.SexpFloat{Val: geom.DotProduct(a, b)}, nil
	})

	env.AddFunction("cross", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a, b, err := vectorPair("cross", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return wrap(geom.CrossProduct(a, b)), nil
	})

	env.AddFunction("angle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a, b, err := vectorPair("angle", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &zygo.SexpFloat{Val: geom.Angle(a, b)}, nil
	})

	// -----------------------------------------------------------------------
	// (is-orthogonal a b) (is-parallel a b) (contains container p) (equal a b)
	// -----------------------------------------------------------------------
	env.AddFunction("is_orthogonal", predicate("is-orthogonal", isOrthogonal))
	env.AddFunction("is_parallel", predicate("is-parallel", isParallel))
	env.AddFunction("contains", predicate("contains", contains))
	env.AddFunction("equal", predicate("equal", func(a, b geom.Entity) (bool, error) {
		return geom.Equal(a, b), nil
	}))

	// -----------------------------------------------------------------------
	// (intersection a b)  nil when there is no single intersection
	// -----------------------------------------------------------------------
	env.AddFunction("intersection", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		es, err := toEntities("intersection", args, 2)
		if err != nil {
			return zygo.SexpNull, err
		}
		e, ok, err := intersection(es[0], es[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("intersection: %w", err)
		}
		if !ok {
			return zygo.SexpNull, nil
		}
		return wrap(e), nil
	})

	// -----------------------------------------------------------------------
	// (distance a b)
	// -----------------------------------------------------------------------
	env.AddFunction("distance", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		es, err := toEntities("distance", args, 2)
		if err != nil {
			return zygo.SexpNull, err
		}
		d, err := distance(es[0], es[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("distance: %w", err)
		}
		return &zygo.SexpFloat{Val: d}, nil
	})

	// -----------------------------------------------------------------------
	// (translate e dx dy dz)
	// (rotate e :x 90 :y 0 :z 45)   degrees, applied x then y then z
	// -----------------------------------------------------------------------
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("translate requires an entity and 3 offsets, got %d arguments", len(args))
		}
		return applyTransform("translate", args, xform.Translate)
	})

	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("rotate requires one entity, got %d", len(pa.positional))
		}
		var deg [3]float64
		for i, axis := range []string{"x", "y", "z"} {
			v, ok := pa.kw[axis]
			if !ok {
				continue
			}
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rotate: %s: %w", axis, err)
			}
			deg[i] = f
		}
		e, err := toEntity(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
		}
		out, err := xform.Rotate(deg[0], deg[1], deg[2]).Apply(e)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
		}
		return wrap(out), nil
	})

	// -----------------------------------------------------------------------
	// (defentity "name" expr)
	// -----------------------------------------------------------------------
	env.AddFunction("defentity", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defentity requires a name and a body expression")
		}
		entName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defentity: name: %w", err)
		}
		e, err := toEntity(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defentity: %w", err)
		}
		if _, err := s.Define(entName, e); err != nil {
			return zygo.SexpNull, fmt.Errorf("defentity: %w", err)
		}
		return args[1], nil
	})

	// -----------------------------------------------------------------------
	// (entity "name")
	// -----------------------------------------------------------------------
	env.AddFunction("entity", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("entity requires a name argument")
		}
		entName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("entity: name: %w", err)
		}
		e := s.Lookup(entName)
		if e == nil {
			return zygo.SexpNull, fmt.Errorf("entity: no entity named %q", entName)
		}
		return wrap(e), nil
	})

	// -----------------------------------------------------------------------
	// (kind e)
	// -----------------------------------------------------------------------
	env.AddFunction("kind", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		es, err := toEntities("kind", args, 1)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &zygo.SexpStr{S: es[0].Kind().String()}, nil
	})

	// -----------------------------------------------------------------------
	// (show x ...)  appends one output line, arguments separated by spaces
	// -----------------------------------------------------------------------
	env.AddFunction("show", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = display(a)
		}
		s.Emit(strings.Join(parts, " "))
		return zygo.SexpNull, nil
	})
}

// vectorPair extracts the two vector arguments of a binary vector operation.
func vectorPair(fn string, args []zygo.Sexp) (geom.Vector, geom.Vector, error) {
	if len(args) != 2 {
		return geom.Vector{}, geom.Vector{}, fmt.Errorf("%s requires exactly 2 vectors, got %d arguments", fn, len(args))
	}
	a, err := as[geom.Vector](args[0], geom.KindVector)
	if err != nil {
		return geom.Vector{}, geom.Vector{}, fmt.Errorf("%s: argument 1: %w", fn, err)
	}
	b, err := as[geom.Vector](args[1], geom.KindVector)
	if err != nil {
		return geom.Vector{}, geom.Vector{}, fmt.Errorf("%s: argument 2: %w", fn, err)
	}
	return a, b, nil
}

// predicate adapts a binary entity test into a zygomys builtin.
func predicate(fn string, test func(a, b geom.Entity) (bool, error)) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		es, err := toEntities(fn, args, 2)
		if err != nil {
			return zygo.SexpNull, err
		}
		ok, err := test(es[0], es[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
		}
		return &zygo.SexpBool{Val: ok}, nil
	}
}

// applyTransform builds a transform from the three numbers following the
// entity in args and applies it.
func applyTransform(fn string, args []zygo.Sexp, build func(x, y, z float64) xform.Transform) (zygo.Sexp, error) {
	e, err := toEntity(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
	}
	xs, err := toFloats(fn, args[1:], 3)
	if err != nil {
		return zygo.SexpNull, err
	}
	out, err := build(xs[0], xs[1], xs[2]).Apply(e)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
	}
	return wrap(out), nil
}
