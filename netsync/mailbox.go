package netsync

import "sync/atomic"

// Mailbox is a single-slot, latest-wins hand-off between one writer goroutine
// and one reader. Neither side ever blocks.
type Mailbox[T any] struct {
	slot atomic.Pointer[T]
}

// Put replaces whatever value is waiting.
func (m *Mailbox[T]) Put(v T) {
	m.slot.Store(&v)
}

// Take removes and returns the waiting value.
func (m *Mailbox[T]) Take() (T, bool) {
	p := m.slot.Swap(nil)
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
