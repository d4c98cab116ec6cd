package schema

import (
	"fmt"
	"sort"
)

// RegistryBuilder accumulates type schemas during the registration phase.
//
// The lifecycle is two-phase: register every schema single-threaded at
// startup, then call Freeze. The builder itself is not safe for concurrent
// use; the frozen Registry is.
type RegistryBuilder struct {
	types map[string]*Type
	order []string
}

// NewRegistryBuilder creates an empty builder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{types: make(map[string]*Type)}
}

// Register adds a schema to the builder. The schema's structural
// invariants are checked here, once, so lookups never see a malformed
// type. Duplicate registrations are rejected.
func (b *RegistryBuilder) Register(t *Type) error {
	if t == nil {
		return fmt.Errorf("register: nil schema")
	}
	if err := t.validate(); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if _, exists := b.types[t.Name]; exists {
		return fmt.Errorf("register: type %q already registered", t.Name)
	}
	b.types[t.Name] = t
	b.order = append(b.order, t.Name)
	return nil
}

// MustRegister is like Register but panics on error. Use for built-in
// schemas whose validity is guaranteed by construction.
func (b *RegistryBuilder) MustRegister(t *Type) {
	if err := b.Register(t); err != nil {
		panic(err)
	}
}

// Freeze produces the read-only registry. The builder must not be used
// afterward; freezing copies nothing because schemas are never mutated.
func (b *RegistryBuilder) Freeze() *Registry {
	types := make(map[string]*Type, len(b.types))
	for name, t := range b.types {
		types[name] = t
	}
	order := make([]string, len(b.order))
	copy(order, b.order)
	return &Registry{types: types, order: order}
}

// Registry is the frozen type registry: a process-wide, read-only mapping
// from discriminator string to schema. Safe for unsynchronized concurrent
// lookups - no mutation path exists after Freeze.
type Registry struct {
	types map[string]*Type
	order []string
}

// Lookup resolves a type discriminator to its schema.
func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// TypeNames returns all registered discriminators in registration order.
func (r *Registry) TypeNames() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.types)
}

// SortedTypeNames returns all registered discriminators sorted
// lexicographically. Useful for deterministic listings.
func (r *Registry) SortedTypeNames() []string {
	names := r.TypeNames()
	sort.Strings(names)
	return names
}
