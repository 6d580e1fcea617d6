package catalog

import (
	"io"
	"sync"
)

// Family groups patterns by design intent.
type Family string

const (
	FamilyCreational Family = "creational"
	FamilyStructural Family = "structural"
	FamilyBehavioral Family = "behavioral"
)

// Families in canonical listing order.
func Families() []Family {
	return []Family{FamilyCreational, FamilyStructural, FamilyBehavioral}
}

// Pattern defines a runnable pattern demonstration.
type Pattern interface {
	Name() string
	Family() Family
	Summary() string
	Demo(w io.Writer) error
}

// Registry stores patterns by name, preserving registration order.
type Registry struct {
	repo  map[string]Pattern
	order []string
	mu    sync.RWMutex
}

// NewRegistry initializes an empty pattern registry.
func NewRegistry() *Registry {
	return &Registry{
		repo: make(map[string]Pattern),
	}
}

// Register adds a pattern by name. Re-registering a name replaces the
// pattern but keeps its original position.
func (r *Registry) Register(p Pattern) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.repo[p.Name()]; !exists {
		r.order = append(r.order, p.Name())
	}
	r.repo[p.Name()] = p
}

// Get returns a pattern by name.
func (r *Registry) Get(name string) (Pattern, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.repo[name]
	return p, ok
}

// Names returns registration order as a snapshot.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns every pattern in registration order as a snapshot.
func (r *Registry) All() []Pattern {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Pattern, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.repo[name])
	}
	return out
}

// ByFamily returns the family's patterns in registration order.
func (r *Registry) ByFamily(f Family) []Pattern {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Pattern
	for _, name := range r.order {
		if p := r.repo[name]; p.Family() == f {
			out = append(out, p)
		}
	}
	return out
}

// Len reports the number of registered patterns.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// entry is the concrete Pattern used by the default wiring.
type entry struct {
	name    string
	family  Family
	summary string
	demo    func(io.Writer) error
}

func (e entry) Name() string           { return e.name }
func (e entry) Family() Family         { return e.family }
func (e entry) Summary() string        { return e.summary }
func (e entry) Demo(w io.Writer) error { return e.demo(w) }

// Func wraps a demo function as a registrable Pattern.
func Func(name string, family Family, summary string, demo func(io.Writer) error) Pattern {
	return entry{name: name, family: family, summary: summary, demo: demo}
}
