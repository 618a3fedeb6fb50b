package counter

import "sync"

// LockedCounter guards both operations with one mutex, so every operation on
// an instance is totally ordered: Value observes exactly the increments whose
// critical section completed before its own. Simplest variant to reason
// about, and the right default when reads are frequent or write contention is
// low.
type LockedCounter struct {
	mu    sync.Mutex
	value int64
}

var _ Counter = (*LockedCounter)(nil)

// Inc increments the counter inside the critical section.
func (c *LockedCounter) Inc() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
}

// Value returns the current count inside the same critical section.
func (c *LockedCounter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}
