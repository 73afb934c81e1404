package hashtable

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxLoadFactor is the occupancy above which Insert grows the table first.
const maxLoadFactor = 0.5

type slot struct {
	key      string
	occupied bool
	value    any
}

// Table is an open-addressing, linear-probing hash table from string keys
// to opaque values. Capacity is always one of a fixed list of primes.
//
// Values are borrowed: the table stores the reference it is given and never
// copies or releases it. A Table is not safe for concurrent use.
type Table struct {
	slots    []slot
	capacity uint32
	filled   int

	id         string
	hasher     HashFunc
	candidates []uint32
	logger     *zap.Logger
}

// New creates an empty table whose capacity is the smallest prime candidate
// >= requestedSize. Sizes <= 0 yield the smallest candidate.
func New(requestedSize int, opts ...Option) *Table {
	t := &Table{
		id:         uuid.New().String(),
		hasher:     Poly37,
		candidates: primes,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With(zap.String("table_id", t.id))
	t.capacity = selectPrime(t.candidates, requestedSize)
	t.slots = make([]slot, t.capacity)
	return t
}

// Len returns the number of stored entries.
func (t *Table) Len() int { return t.filled }

// Capacity returns the current number of slots.
func (t *Table) Capacity() int { return int(t.capacity) }

// LoadFactor returns Len divided by Capacity.
func (t *Table) LoadFactor() float64 {
	return float64(t.filled) / float64(t.capacity)
}

// findPosition returns the slot holding key. It stops at the first empty
// slot or after one full lap, and never reports an empty slot.
func (t *Table) findPosition(key string) (int, bool) {
	pos := t.home(key, t.capacity)
	start := pos
	for t.slots[pos].occupied {
		if t.slots[pos].key == key {
			return pos, true
		}
		pos = (pos + 1) % int(t.capacity)
		if pos == start {
			break
		}
	}
	return -1, false
}

// Insert stores value under key. It returns an error wrapping
// ErrDuplicateKey if key is already present, or ErrCapacityExhausted if
// the table needs to grow past its largest capacity. Existing values are
// never overwritten.
func (t *Table) Insert(key string, value any) error {
	if float64(t.filled) > float64(t.capacity)*maxLoadFactor {
		if err := t.rehash(); err != nil {
			return err
		}
	}

	if _, found := t.findPosition(key); found {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}

	pos := t.home(key, t.capacity)
	for t.slots[pos].occupied {
		pos = (pos + 1) % int(t.capacity)
	}

	t.slots[pos] = slot{key: key, occupied: true, value: value}
	t.filled++
	return nil
}

// Contains reports whether key is present.
func (t *Table) Contains(key string) bool {
	_, found := t.findPosition(key)
	return found
}

// Lookup returns the value stored under key.
func (t *Table) Lookup(key string) (any, bool) {
	pos, found := t.findPosition(key)
	if !found {
		return nil, false
	}
	return t.slots[pos].value, true
}

// Range calls fn for each entry in slot order until fn returns false.
// The order is unspecified and changes across rehashes.
func (t *Table) Range(fn func(key string, value any) bool) {
	for i := range t.slots {
		if !t.slots[i].occupied {
			continue
		}
		if !fn(t.slots[i].key, t.slots[i].value) {
			return
		}
	}
}
