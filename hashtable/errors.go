package hashtable

import (
	"errors"
)

var (
	// ErrDuplicateKey is returned by Insert when the key is already present.
	// The table is left unchanged.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrCapacityExhausted is returned by Insert when the table is over its
	// load threshold and already at the largest prime capacity.
	ErrCapacityExhausted = errors.New("capacity exhausted")

	// ErrInvalidConfig is returned when a Config cannot be decoded or applied.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvariantViolated wraps every violation reported by CheckInvariants.
	ErrInvariantViolated = errors.New("invariant violated")
)

// Outcome is the three-way result of an Insert.
type Outcome int

const (
	Inserted Outcome = iota
	DuplicateKey
	CapacityExhausted
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case DuplicateKey:
		return "duplicate_key"
	case CapacityExhausted:
		return "capacity_exhausted"
	default:
		return "unknown"
	}
}

// OutcomeOf maps an error returned by Insert to its Outcome.
// It panics on errors Insert never returns.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Inserted
	case errors.Is(err, ErrDuplicateKey):
		return DuplicateKey
	case errors.Is(err, ErrCapacityExhausted):
		return CapacityExhausted
	default:
		panic("hashtable: unexpected insert error: " + err.Error())
	}
}
