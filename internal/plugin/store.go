package plugin

import (
	"errors"
	"sync"

	"qec/internal/session"
)

// ErrNotBound is returned by ContextStore.Lookup when neither the given
// session nor the sentinel has a binding.
var ErrNotBound = errors.New("no binding for this context")

// ContextStore binds one value per session handle. Multiple sessions may
// bind and look up concurrently; the lock guards only the map itself, so
// callers are free to run blocking factories outside of it.
type ContextStore[T any] struct {
	mu       sync.Mutex
	bindings map[session.Handle]T
}

// NewContextStore returns an empty store.
func NewContextStore[T any]() *ContextStore[T] {
	return &ContextStore[T]{bindings: make(map[session.Handle]T)}
}

// Bind associates value with the session. Rebinding silently replaces any
// prior binding; disposing of the old value is the binder's responsibility.
func (s *ContextStore[T]) Bind(h session.Handle, value T) {
	s.mu.Lock()
	s.bindings[h] = value
	s.mu.Unlock()
}

// Lookup returns the value bound to the session. A miss falls back to the
// session.None sentinel binding; if neither exists, ErrNotBound.
func (s *ContextStore[T]) Lookup(h session.Handle) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value, ok := s.bindings[h]; ok {
		return value, nil
	}
	if value, ok := s.bindings[session.None]; ok {
		return value, nil
	}
	var zero T
	return zero, ErrNotBound
}

// Drop removes the session's binding, if any.
func (s *ContextStore[T]) Drop(h session.Handle) {
	s.mu.Lock()
	delete(s.bindings, h)
	s.mu.Unlock()
}
