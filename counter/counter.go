// Package counter provides a family of counters that share one contract but
// make different concurrency trade-offs: an unsynchronized baseline, a
// mutex-guarded variant, and a sequence-backed variant with a wait-free
// increment and a compensating read.
package counter

import "fmt"

//go:generate mockgen -source=counter.go -destination=mocks/mock_counter.go -package=mocks

// Counter is the contract every variant satisfies. Inc records exactly one
// unit per call. Value returns a snapshot consistent with some serialization
// of the Inc calls that completed before Value began; increments still in
// flight may or may not be visible. Both operations are total and never fail.
type Counter interface {
	Inc()
	Value() int64
}

// Kind selects a counter variant.
type Kind int

const (
	// KindUnsync is the unsynchronized baseline, for single-goroutine use only.
	KindUnsync Kind = iota
	// KindLocked serializes every operation behind one mutex.
	KindLocked
	// KindSequenced has a lock-free Inc and a locked, compensating Value.
	KindSequenced
)

func (k Kind) String() string {
	switch k {
	case KindUnsync:
		return "unsync"
	case KindLocked:
		return "locked"
	case KindSequenced:
		return "sequenced"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a variant name, as accepted on flag surfaces, to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "unsync":
		return KindUnsync, nil
	case "locked":
		return KindLocked, nil
	case "sequenced":
		return KindSequenced, nil
	default:
		return 0, fmt.Errorf("unknown counter kind %q", s)
	}
}

// New returns a fresh counter of the given kind, starting at zero.
// KindLocked is the safe default when reads are frequent or contention is
// low; reach for KindSequenced when increments vastly outnumber reads.
func New(k Kind) Counter {
	switch k {
	case KindUnsync:
		return &UnsyncCounter{}
	case KindLocked:
		return &LockedCounter{}
	case KindSequenced:
		return &SequencedCounter{}
	default:
		panic(fmt.Sprintf("counter.New: %v", k))
	}
}
