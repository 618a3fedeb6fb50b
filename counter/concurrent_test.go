package counter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentIncrements(t *testing.T) {
	const (
		goroutines = 10
		increments = 100
	)

	for _, kind := range []Kind{KindLocked, KindSequenced} {
		t.Run(kind.String(), func(t *testing.T) {
			c := New(kind)

			var wg sync.WaitGroup
			wg.Add(goroutines)
			for i := 0; i < goroutines; i++ {
				go func() {
					defer wg.Done()
					for j := 0; j < increments; j++ {
						c.Inc()
					}
				}()
			}
			wg.Wait()

			assertCounter(t, c, goroutines*increments)
		})
	}
}

// Readers racing with writers must only ever observe counts between zero and
// the final total, never decreasing from one read to the next on the same
// goroutine, and the post-join read must be exact.
func TestConcurrentReadersAndWriters(t *testing.T) {
	const (
		writers    = 8
		readers    = 4
		increments = 1000
		total      = writers * increments
	)

	for _, kind := range []Kind{KindLocked, KindSequenced} {
		t.Run(kind.String(), func(t *testing.T) {
			c := New(kind)
			done := make(chan struct{})

			var rg sync.WaitGroup
			rg.Add(readers)
			for i := 0; i < readers; i++ {
				go func() {
					defer rg.Done()
					var prev int64
					for {
						got := c.Value()
						if got < prev || got > total {
							t.Errorf("observed %d after %d (total %d)", got, prev, total)
							return
						}
						prev = got
						select {
						case <-done:
							return
						default:
						}
					}
				}()
			}

			var wg sync.WaitGroup
			wg.Add(writers)
			for i := 0; i < writers; i++ {
				go func() {
					defer wg.Done()
					for j := 0; j < increments; j++ {
						c.Inc()
					}
				}()
			}
			wg.Wait()
			close(done)
			rg.Wait()

			require.Equal(t, int64(total), c.Value())
		})
	}
}

// Concurrent reads alone must not drift the count: every Value call
// compensates for the sequence unit it consumes.
func TestSequencedConcurrentReadsDoNotDrift(t *testing.T) {
	c := &SequencedCounter{}
	for i := 0; i < 7; i++ {
		c.Inc()
	}

	var wg sync.WaitGroup
	wg.Add(50)
	for i := 0; i < 50; i++ {
		go func() {
			defer wg.Done()
			assert.Equal(t, int64(7), c.Value())
		}()
	}
	wg.Wait()

	assertCounter(t, c, 7)
}
