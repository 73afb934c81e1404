package hashtable

import (
	"fmt"

	"go.uber.org/multierr"
)

// CheckInvariants walks the whole table and reports every structural
// violation found: a wrong filled count, an entry that cannot be reached
// by probing from its home index, a repeated key, or a capacity outside
// the prime candidates. Each reported error wraps ErrInvariantViolated.
func (t *Table) CheckInvariants() error {
	var err error

	if len(t.slots) != int(t.capacity) {
		err = multierr.Append(err, fmt.Errorf("%w: %d slots for capacity %d",
			ErrInvariantViolated, len(t.slots), t.capacity))
	}
	if !isCandidate(t.candidates, t.capacity) {
		err = multierr.Append(err, fmt.Errorf("%w: capacity %d is not a prime candidate",
			ErrInvariantViolated, t.capacity))
	}

	occupied := 0
	seen := make(map[string]int, t.filled)
	for i, s := range t.slots {
		if !s.occupied {
			continue
		}
		occupied++

		if prev, dup := seen[s.key]; dup {
			err = multierr.Append(err, fmt.Errorf("%w: key %q in slots %d and %d",
				ErrInvariantViolated, s.key, prev, i))
		}
		seen[s.key] = i

		for pos := t.home(s.key, t.capacity); pos != i; pos = (pos + 1) % len(t.slots) {
			if !t.slots[pos].occupied {
				err = multierr.Append(err, fmt.Errorf("%w: key %q in slot %d unreachable, empty slot %d on its probe path",
					ErrInvariantViolated, s.key, i, pos))
				break
			}
		}
	}

	if occupied != t.filled {
		err = multierr.Append(err, fmt.Errorf("%w: filled is %d but %d slots are occupied",
			ErrInvariantViolated, t.filled, occupied))
	}
	return err
}
