package hashtable

import (
	"go.uber.org/zap"
)

// Option configures a Table at construction.
type Option func(*Table)

// WithLogger sets the logger used for rehash and exhaustion events.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithHasher replaces the default Poly37 hash function.
func WithHasher(fn HashFunc) Option {
	return func(t *Table) {
		if fn != nil {
			t.hasher = fn
		}
	}
}

// WithMaxCapacity stops growth at the largest prime candidate <= n. The
// smallest candidate is always kept. Past the cap, Insert reports
// ErrCapacityExhausted exactly as it does at the last prime.
func WithMaxCapacity(n int) Option {
	return func(t *Table) {
		capped := t.candidates[:1]
		for _, p := range t.candidates[1:] {
			if uint64(p) <= uint64(max(n, 0)) {
				capped = t.candidates[:len(capped)+1]
			}
		}
		t.candidates = capped
	}
}

// withCandidates overrides the prime capacity list. Used by tests to reach
// the growth ceiling without allocating millions of slots.
func withCandidates(candidates ...uint32) Option {
	return func(t *Table) {
		if len(candidates) > 0 {
			t.candidates = candidates
		}
	}
}
