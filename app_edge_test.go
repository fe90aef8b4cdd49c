package main

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// 1. Empty source: 0 entities, 0 errors, non-nil slices.
// ---------------------------------------------------------------------------

func TestE2EEmptySourceExtended(t *testing.T) {
	app := NewApp()
	result := app.Evaluate("")

	if len(result.Errors) != 0 {
		t.Errorf("expected 0 errors for empty source, got %d", len(result.Errors))
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected 0 warnings for empty source, got %d", len(result.Warnings))
	}
	// Ensure slices are non-nil (JSON should serialize as [] not null).
	if result.Output == nil {
		t.Error("Output should be non-nil empty slice, got nil")
	}
	if result.Entities == nil {
		t.Error("Entities should be non-nil empty slice, got nil")
	}
	if result.Errors == nil {
		t.Error("Errors should be non-nil empty slice, got nil")
	}
	if result.Warnings == nil {
		t.Error("Warnings should be non-nil empty slice, got nil")
	}
}

// ---------------------------------------------------------------------------
// 2. Syntax errors carry a message and, where zygomys reports one, a line.
// ---------------------------------------------------------------------------

func TestE2ESyntaxErrorWithLineInfo(t *testing.T) {
	app := NewApp()

	// Valid code on line 1, broken code on line 2 so line info is meaningful.
	source := "(+ 1 2)\n(defentity \"test\""
	result := app.Evaluate(source)

	if len(result.Errors) == 0 {
		t.Fatal("expected at least one eval error for unmatched parens")
	}
	e := result.Errors[0]
	if e.Message == "" {
		t.Error("syntax error should have a non-empty message")
	}
	t.Logf("syntax error: line=%d, col=%d, message=%q", e.Line, e.Col, e.Message)
}

// ---------------------------------------------------------------------------
// 3. Undefined entity reference -> eval error naming it.
// ---------------------------------------------------------------------------

func TestE2EUndefinedEntityReference(t *testing.T) {
	app := NewApp()

	source := `
(defentity "p" (point 0 0 0))
(show (distance (entity "p") (entity "nonexistent")))
`
	result := app.Evaluate(source)

	if len(result.Errors) == 0 {
		t.Fatal("expected eval error for undefined entity reference")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e.Message, "nonexistent") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected error mentioning 'nonexistent', got: %v", result.Errors)
	}
	if len(result.Entities) != 0 {
		t.Errorf("expected 0 entities on error, got %d", len(result.Entities))
	}
}

// ---------------------------------------------------------------------------
// 4. Rapid sequential evaluation recovers between error and success states.
// ---------------------------------------------------------------------------

func TestE2ERapidEvaluationAlternating(t *testing.T) {
	// Calls are sequential because zygomys has internal global state that is
	// not safe for concurrent sandbox creation.
	app := NewApp()

	sources := []string{
		`(defentity "ok" (point 1 1 1))`,
		`(defentity "broken"`,
		``,
		`(entity "missing")`,
		`(defentity "also-ok" (vector 1 0 0))`,
		`(+ 1 2)`,
		`;; just a comment`,
		`(defentity "fine" (plane (point 0 0 0) (vector 0 0 1)))`,
		`(undefined-func 1 2 3)`,
		`(defentity "last" (line (point 0 0 0) (point 1 2 3)))`,
	}
	wantErr := []bool{false, true, false, true, false, false, false, false, true, false}

	for i, source := range sources {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("iteration %d panicked on source %q: %v", i, source, r)
				}
			}()
			result := app.Evaluate(source)
			if got := len(result.Errors) > 0; got != wantErr[i] {
				t.Errorf("iteration %d (%q): has errors = %v, want %v (%v)", i, source, got, wantErr[i], result.Errors)
			}
		}()
	}
}

// ---------------------------------------------------------------------------
// 5. Comments and whitespace only.
// ---------------------------------------------------------------------------

func TestE2ECommentsOnly(t *testing.T) {
	app := NewApp()
	result := app.Evaluate(";; just a comment\n; another one with :keyword and is-parallel\n")

	if len(result.Errors) != 0 {
		t.Errorf("expected 0 errors for comments-only source, got %v", result.Errors)
	}
	if len(result.Entities) != 0 {
		t.Errorf("expected 0 entities, got %d", len(result.Entities))
	}
}

// ---------------------------------------------------------------------------
// 6. Arithmetic feeds constructors.
// ---------------------------------------------------------------------------

func TestE2ENestedArithmeticDef(t *testing.T) {
	app := NewApp()
	source := `
(def side 3)
(def height (* side 2))
(defentity "corner" (point side (+ side 1) height))
(show (entity "corner"))
`
	result := app.Evaluate(source)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Output) != 1 || result.Output[0] != "(3, 4, 6)" {
		t.Errorf("Output = %q, want [(3, 4, 6)]", result.Output)
	}
}

func TestE2EFloatingPointCoordinates(t *testing.T) {
	app := NewApp()
	result := app.Evaluate(`(show (point 0.5 -1.25 2.0))`)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Output) != 1 || result.Output[0] != "(0.5, -1.25, 2)" {
		t.Errorf("Output = %q, want [(0.5, -1.25, 2)]", result.Output)
	}
}

// ---------------------------------------------------------------------------
// 7. Intersections that do not exist yield none rather than an error.
// ---------------------------------------------------------------------------

func TestE2ESkewLines(t *testing.T) {
	app := NewApp()
	source := `
(def a (line (point 0 0 0) (vector 1 0 0)))
(def b (line (point 0 1 1) (vector 0 0 1)))
(show (intersection a b))
`
	result := app.Evaluate(source)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Output) != 1 || result.Output[0] != "none" {
		t.Errorf("Output = %q, want [none]", result.Output)
	}
}

// ---------------------------------------------------------------------------
// 8. Defining an absent intersection is an error.
// ---------------------------------------------------------------------------

func TestE2EDefineNone(t *testing.T) {
	app := NewApp()
	source := `
(defentity "x" (intersection (plane (point 0 0 0) (vector 0 0 1)) (plane (point 0 0 1) (vector 0 0 1))))
`
	result := app.Evaluate(source)

	if len(result.Errors) == 0 {
		t.Fatal("expected an error for defining a missing intersection")
	}
}

// ---------------------------------------------------------------------------
// 9. Non-finite coordinates are validation errors.
// ---------------------------------------------------------------------------

func TestE2ENonFinite(t *testing.T) {
	app := NewApp()
	source := `(defentity "u" (unit (vector 0 0 0)))`
	result := app.Evaluate(source)

	if len(result.Errors) != 1 || result.Errors[0].Name != "u" {
		t.Fatalf("Errors = %v, want one error for u", result.Errors)
	}
	if !strings.Contains(result.Errors[0].Message, "non-finite") {
		t.Errorf("message = %q, want mention of non-finite", result.Errors[0].Message)
	}
	if len(result.Entities) != 1 {
		t.Errorf("expected the entity to still be listed, got %d", len(result.Entities))
	}
}
