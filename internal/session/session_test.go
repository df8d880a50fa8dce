package session

import "testing"

func TestManager_HandlesAreMonotonicAndNeverNone(t *testing.T) {
	m := NewManager()
	seen := make(map[Handle]bool)
	var last Handle
	for i := 0; i < 100; i++ {
		s := m.Open()
		h := s.Handle()
		if h.IsNone() {
			t.Fatalf("issued handle must never be the sentinel")
		}
		if h <= last {
			t.Fatalf("handles must be monotonic: %d after %d", h, last)
		}
		if seen[h] {
			t.Fatalf("handle %d reused", h)
		}
		seen[h] = true
		last = h
		// Closing must not make the handle available again.
		s.Close()
	}
}

func TestSession_CleanupsRunInReverseOrder(t *testing.T) {
	m := NewManager()
	s := m.Open()

	var order []int
	s.AddCleanup(func() { order = append(order, 1) })
	s.AddCleanup(func() { order = append(order, 2) })
	s.AddCleanup(func() { order = append(order, 3) })

	s.Close()

	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Fatalf("cleanup order = %v", order)
	}
}

func TestSession_CloseIsIdempotent(t *testing.T) {
	m := NewManager()
	s := m.Open()

	runs := 0
	s.AddCleanup(func() { runs++ })

	s.Close()
	s.Close()

	if runs != 1 {
		t.Fatalf("cleanup ran %d times", runs)
	}
}

func TestSession_AddCleanupAfterCloseRunsImmediately(t *testing.T) {
	m := NewManager()
	s := m.Open()
	s.Close()

	ran := false
	s.AddCleanup(func() { ran = true })
	if !ran {
		t.Fatalf("cleanup added after close must run immediately")
	}
}
