package counter

import (
	"sync"
	"sync/atomic"
)

// SequencedCounter trades an expensive read for a minimal-latency write,
// which fits counters that are incremented constantly and sampled rarely.
//
// Inc is a single wait-free fetch-and-add on the sequence: it completes in a
// bounded number of steps no matter how contended the counter is, and it
// never takes a lock because it touches no second piece of state.
//
// The sequence offers no passive read — the only way to observe it is to
// advance it. Value therefore advances it by one too, and subtracts the
// number of units consumed by reads so far (its own included) so the result
// counts increments only. The mutex linearizes Value calls against each
// other: without it, two concurrent reads could each capture a fresh
// sequence value but apply stale compensation.
type SequencedCounter struct {
	seq atomic.Int64 // advanced by exactly one per Inc and per Value

	mu    sync.Mutex
	reads int64 // sequence units consumed by Value calls, guarded by mu
}

var _ Counter = (*SequencedCounter)(nil)

// Inc advances the sequence once. Wait-free.
func (c *SequencedCounter) Inc() {
	c.seq.Add(1)
}

// Value consumes one sequence unit and compensates for every unit consumed
// by reads, so successive calls with no increments in between return the
// same value. At any instant the sequence equals completed Inc calls plus
// completed Value calls.
func (c *SequencedCounter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads++
	return c.seq.Add(1) - c.reads
}
