// Package registry provides a thread-safe registry of named validators,
// enabling schema reuse and recursive shapes through late-bound references.
package registry

import (
	"fmt"
	"sort"
	"sync"

	typeguard "github.com/typeguard/validator"
)

// Registry maps schema names to validators. Registration is expected to
// complete before validation starts; lookups are safe from any number of
// concurrent validations.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]typeguard.Validator
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		schemas: make(map[string]typeguard.Validator),
	}
}

// Register adds a named validator. Registering a nil validator or reusing
// a name is rejected.
func (r *Registry) Register(name string, v typeguard.Validator) error {
	if name == "" {
		return fmt.Errorf("registry: schema name must not be empty")
	}
	if v == nil {
		return fmt.Errorf("registry: schema %q has a nil validator", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[name]; exists {
		return fmt.Errorf("registry: schema %q is already registered", name)
	}
	r.schemas[name] = v
	return nil
}

// MustRegister is Register that panics on error, for package-init wiring.
func (r *Registry) MustRegister(name string, v typeguard.Validator) {
	if err := r.Register(name, v); err != nil {
		panic(err)
	}
}

// Get returns the validator registered under name.
func (r *Registry) Get(name string) (typeguard.Validator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.schemas[name]
	return v, ok
}

// MustGet is Get that panics when the name is unknown.
func (r *Registry) MustGet(name string) typeguard.Validator {
	v, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("registry: unknown schema %q", name))
	}
	return v
}

// Names returns all registered schema names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}

// Ref returns a validator that resolves name in r at validation time.
// Late binding lets a schema reference itself (directly or mutually)
// while validator construction stays strictly expression-built.
func Ref(r *Registry, name string) typeguard.Validator {
	return refValidator{reg: r, name: name}
}

type refValidator struct {
	reg  *Registry
	name string
}

func (rv refValidator) Validate(v any) typeguard.Result {
	target, ok := rv.reg.Get(rv.name)
	if !ok {
		return typeguard.Invalid(fmt.Sprintf("Unknown schema %q", rv.name))
	}
	return target.Validate(v)
}
