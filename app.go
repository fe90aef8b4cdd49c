package main

import (
	"log"

	"github.com/chazu/planar/pkg/engine"
)

// App evaluates planar scripts and shapes the results for output.
type App struct {
	engine *engine.Engine
}

// EntityData is a JSON-serializable named entity.
type EntityData struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Display string `json:"display"`
}

// EvalErrorData is a JSON-serializable eval error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// EvalResult is the full result of evaluating one script.
type EvalResult struct {
	Output   []string        `json:"output"`
	Entities []EntityData    `json:"entities"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewApp creates a new App with the default configuration.
func NewApp() *App {
	return NewAppFromConfig(DefaultConfig())
}

// NewAppFromConfig creates a new App whose engine uses conf's timeout.
func NewAppFromConfig(conf Config) *App {
	eng := engine.NewEngine()
	if d := conf.EvalTimeout(); d > 0 {
		eng.Timeout = d
	}
	return &App{engine: eng}
}

// Evaluate takes Lisp source and returns output lines, the named entities
// and any errors or warnings.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Output:   []string{},
		Entities: []EntityData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source and validate the scene.
	res, err := a.engine.Check(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	// Step 2: Convert errors and warnings.
	for _, e := range res.Errors {
		result.Errors = append(result.Errors, EvalErrorData{
			Line:    e.Line,
			Col:     e.Col,
			Name:    e.Name,
			Message: e.Message,
		})
	}
	for _, w := range res.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{
			Line:    w.Line,
			Col:     w.Col,
			Name:    w.Name,
			Message: w.Message,
		})
	}
	if res.Scene == nil {
		return result
	}

	// Step 3: Collect output and entities in definition order.
	result.Output = append(result.Output, res.Scene.Output...)
	for _, entry := range res.Scene.All() {
		result.Entities = append(result.Entities, EntityData{
			Name:    entry.Name,
			Kind:    entry.Kind().String(),
			Display: entry.Entity.String(),
		})
	}

	return result
}
