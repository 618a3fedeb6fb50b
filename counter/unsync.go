package counter

// UnsyncCounter is the baseline variant with no synchronization at all. It
// is correct only when every call runs on a single goroutine, or when the
// caller provides mutual exclusion externally.
//
// Under concurrent use the read-modify-write inside Inc is not atomic: two
// goroutines can read the same value and both store the same successor,
// silently losing one increment. That lost-update hazard is part of this
// type's contract — it is the comparison baseline for the synchronized
// variants, and no detection or repair is attempted.
type UnsyncCounter struct {
	value int64
}

var _ Counter = (*UnsyncCounter)(nil)

// Inc adds one unit as a plain load, add, store.
func (c *UnsyncCounter) Inc() {
	v := c.value
	c.value = v + 1
}

// Value reads the current count without synchronization.
func (c *UnsyncCounter) Value() int64 {
	return c.value
}
