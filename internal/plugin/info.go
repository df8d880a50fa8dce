package plugin

import (
	"fmt"

	"qec/internal/session"
)

// Factory builds a plugin instance from an optional configuration blob.
type Factory[T any] func(cfg *Configuration) (T, error)

// Info groups everything known about one registered plugin: identity,
// factory, and the per-session instances it has produced. Descriptors are
// immutable after registration.
type Info[T any] struct {
	name        string
	description string
	factory     Factory[T]

	instances *ContextStore[T]
}

// NewInfo constructs a descriptor.
func NewInfo[T any](name, description string, factory Factory[T]) *Info[T] {
	return &Info[T]{
		name:        name,
		description: description,
		factory:     factory,
		instances:   NewContextStore[T](),
	}
}

func (i *Info[T]) Name() string        { return i.name }
func (i *Info[T]) Description() string { return i.description }

// CreateInstance invokes the factory and binds the result under the given
// session handle. The factory may block on I/O; it runs outside the store
// lock. A second call for the same handle replaces the binding — disposing
// of the previous instance is this descriptor's caller's responsibility.
func (i *Info[T]) CreateInstance(h session.Handle, cfg *Configuration) (T, error) {
	instance, err := i.factory(cfg)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("creating %q instance: %w", i.name, err)
	}
	i.instances.Bind(h, instance)
	return instance, nil
}

// GetInstance returns the instance bound for the session, falling back to
// the sentinel binding when the session has none.
func (i *Info[T]) GetInstance(h session.Handle) (T, error) {
	instance, err := i.instances.Lookup(h)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("plugin %q: %w", i.name, err)
	}
	return instance, nil
}

// DropInstance releases the session's binding.
func (i *Info[T]) DropInstance(h session.Handle) {
	i.instances.Drop(h)
}
