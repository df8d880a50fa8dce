// Package plugin provides the generic descriptor, registry, and
// context-scoped instance store shared by the target system and payload
// format catalogs.
package plugin

import (
	"fmt"
	"sort"
)

// Descriptor is the registered, named record describing a plugin.
type Descriptor interface {
	Name() string
	Description() string
}

// Registry is an append-only catalog of named descriptors. Registration is
// expected to happen on the startup call list, single-threaded, before any
// compilation runs; after that the registry is read-only and safe for
// concurrent lookups. It deliberately carries no lock.
type Registry[D Descriptor] struct {
	entries map[string]D
	null    D
}

// NewRegistry returns an empty registry. null is the sentinel descriptor
// returned by Null(); its factory must always fail.
func NewRegistry[D Descriptor](null D) *Registry[D] {
	return &Registry[D]{entries: make(map[string]D), null: null}
}

// Register inserts a descriptor. Duplicate names are rejected and the first
// registration stays: silently replacing an entry risks selecting the wrong
// plugin implementation unnoticed.
func (r *Registry[D]) Register(d D) error {
	name := d.Name()
	if name == "" {
		return fmt.Errorf("plugin registration requires a non-empty name")
	}
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("plugin %q is already registered", name)
	}
	r.entries[name] = d
	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry[D]) Lookup(name string) (D, error) {
	if d, ok := r.entries[name]; ok {
		return d, nil
	}
	var zero D
	return zero, fmt.Errorf("no plugin registered under %q", name)
}

// Has reports whether name is registered.
func (r *Registry[D]) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Null returns the sentinel descriptor, a safe stand-in when no plugin was
// selected.
func (r *Registry[D]) Null() D { return r.null }

// Names returns the registered names, sorted.
func (r *Registry[D]) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered descriptors ordered by name.
func (r *Registry[D]) All() []D {
	all := make([]D, 0, len(r.entries))
	for _, name := range r.Names() {
		all = append(all, r.entries[name])
	}
	return all
}
