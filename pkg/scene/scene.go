package scene

import (
	"fmt"

	"github.com/chazu/planar/pkg/geom"
)

// Entry is one named entity in a scene.
type Entry struct {
	Name   string      `json:"name"`
	Entity geom.Entity `json:"-"`
}

// Kind returns the kind of the entry's entity.
func (e *Entry) Kind() geom.Kind { return e.Entity.Kind() }

// Scene is the result of evaluating a script. It is never mutated once the
// evaluation that built it has returned.
type Scene struct {
	Entries   map[string]*Entry `json:"entries"`
	Order     []string          `json:"order"` // definition order
	Output    []string          `json:"output"`
	NameIndex map[string]int    `json:"-"` // name -> position in Order
}

// New creates an empty Scene.
func New() *Scene {
	return &Scene{
		Entries:   make(map[string]*Entry),
		NameIndex: make(map[string]int),
	}
}

// Define adds a named entity. Names must be non-empty and unique.
func (s *Scene) Define(name string, e geom.Entity) (*Entry, error) {
	if name == "" {
		return nil, fmt.Errorf("scene: entity name must not be empty")
	}
	if e == nil {
		return nil, fmt.Errorf("scene: entity %q is nil", name)
	}
	if _, exists := s.Entries[name]; exists {
		return nil, fmt.Errorf("scene: entity %q already defined", name)
	}
	entry := &Entry{Name: name, Entity: e}
	s.Entries[name] = entry
	s.NameIndex[name] = len(s.Order)
	s.Order = append(s.Order, name)
	return entry, nil
}

// Lookup returns the entity with the given name, or nil.
func (s *Scene) Lookup(name string) geom.Entity {
	entry, ok := s.Entries[name]
	if !ok {
		return nil
	}
	return entry.Entity
}

// MustLookup returns the entity with the given name, or panics.
func (s *Scene) MustLookup(name string) geom.Entity {
	e := s.Lookup(name)
	if e == nil {
		panic(fmt.Sprintf("scene: no entity named %q", name))
	}
	return e
}

// Get returns the entry with the given name, or nil.
func (s *Scene) Get(name string) *Entry {
	return s.Entries[name]
}

// Emit appends a line of output.
func (s *Scene) Emit(line string) {
	s.Output = append(s.Output, line)
}

// Named returns the entries of the given kind in definition order.
func (s *Scene) Named(kind geom.Kind) []*Entry {
	var out []*Entry
	for _, name := range s.Order {
		if entry := s.Entries[name]; entry != nil && entry.Kind() == kind {
			out = append(out, entry)
		}
	}
	return out
}

// All returns every entry in definition order.
func (s *Scene) All() []*Entry {
	out := make([]*Entry, 0, len(s.Order))
	for _, name := range s.Order {
		if entry := s.Entries[name]; entry != nil {
			out = append(out, entry)
		}
	}
	return out
}

// Len returns the number of named entities.
func (s *Scene) Len() int {
	return len(s.Entries)
}
