// Package session issues the opaque handles that identify one compilation
// session. Context-scoped stores key their bindings on these handles instead
// of object addresses, so a torn-down session can never alias a later one:
// handles are never reused.
package session

import "sync"

// Handle identifies a compilation session. The zero Handle is the reserved
// "no session" sentinel used for process-wide fallback bindings.
type Handle uint64

// None is the reserved sentinel handle.
const None Handle = 0

// IsNone reports whether h is the sentinel.
func (h Handle) IsNone() bool { return h == None }

// Session owns one compilation's configuration and bound plugin instances.
// Cleanups registered by binders run exactly once when the session closes.
type Session struct {
	handle Handle

	mu       sync.Mutex
	cleanups []func()
	closed   bool
}

// Handle returns the session's identity.
func (s *Session) Handle() Handle { return s.handle }

// AddCleanup registers fn to run on Close. Binders use this to release
// their context bindings when the owning session is torn down.
func (s *Session) AddCleanup(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
}

// Close tears the session down, running cleanups in reverse registration
// order. Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cleanups := s.cleanups
	s.cleanups = nil
	s.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// Manager allocates session handles. Handles are monotonic and never
// recycled.
type Manager struct {
	mu   sync.Mutex
	next Handle
}

// NewManager returns an empty manager.
func NewManager() *Manager { return &Manager{} }

// Open starts a new session with a fresh handle.
func (m *Manager) Open() *Session {
	m.mu.Lock()
	m.next++
	h := m.next
	m.mu.Unlock()
	return &Session{handle: h}
}
