package hashtable

import (
	"fmt"

	"go.uber.org/zap"
)

// rehash moves every entry into a slot slice of the next prime capacity
// at or above twice the current one. The table is only touched once the
// new slice is complete.
func (t *Table) rehash() error {
	newCapacity := selectPrime(t.candidates, 2*int(t.capacity))
	if newCapacity <= t.capacity {
		t.logger.Warn("table at maximum capacity",
			zap.Uint32("capacity", t.capacity),
			zap.Int("filled", t.filled),
		)
		return fmt.Errorf("%w: capacity %d, filled %d", ErrCapacityExhausted, t.capacity, t.filled)
	}

	newSlots := make([]slot, newCapacity)
	for _, s := range t.slots {
		if !s.occupied {
			continue
		}
		pos := t.home(s.key, newCapacity)
		for newSlots[pos].occupied {
			pos = (pos + 1) % int(newCapacity)
		}
		newSlots[pos] = s
	}

	t.logger.Debug("table rehashed",
		zap.Uint32("old_capacity", t.capacity),
		zap.Uint32("new_capacity", newCapacity),
		zap.Int("filled", t.filled),
	)
	t.slots, t.capacity = newSlots, newCapacity
	return nil
}
