package energy

import (
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
)

// Ledger is the in-memory Pool. It is owned by a single entity and is not
// safe for concurrent use.
type Ledger struct {
	current    int32
	maximum    int32
	lastChange *Change
}

// NewLedger returns a full ledger
func NewLedger(maximum int32) (*Ledger, error) {
	return NewLedgerAt(maximum, maximum)
}

// NewLedgerAt returns a ledger holding current out of maximum
func NewLedgerAt(current, maximum int32) (*Ledger, error) {
	vb := errors.NewValidationBuilder()
	if maximum < 0 {
		vb.Field("maximum", "must not be negative")
	}
	if current < 0 || current > maximum {
		vb.Fieldf("current", "must be between 0 and %d", maximum)
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid ledger")
	}

	return &Ledger{current: current, maximum: maximum}, nil
}

// Current returns the current amount
func (l *Ledger) Current() int32 {
	return l.current
}

// Maximum returns the upper bound
func (l *Ledger) Maximum() int32 {
	return l.maximum
}

// LastChange returns the most recent applied change, nil if none
func (l *Ledger) LastChange() *Change {
	return l.lastChange
}

// TryChangeBy applies delta only if the result stays within bounds
func (l *Ledger) TryChangeBy(delta int32, source Source) error {
	next := int64(l.current) + int64(delta)
	if next < 0 || next > int64(l.maximum) {
		return errors.OutOfRangef("energy change of %d would leave the pool out of range", delta).
			WithMeta("current", l.current).
			WithMeta("maximum", l.maximum).
			WithMeta("source", string(source))
	}

	l.apply(int32(next), delta, source)
	return nil
}

// ChangeBy applies delta, saturating at 0 and Maximum
func (l *Ledger) ChangeBy(delta int32, source Source) {
	next := int64(l.current) + int64(delta)
	switch {
	case next < 0:
		next = 0
	case next > int64(l.maximum):
		next = int64(l.maximum)
	}

	l.apply(int32(next), delta, source)
}

func (l *Ledger) apply(next, delta int32, source Source) {
	l.current = next
	l.lastChange = &Change{Amount: delta, Source: source}
}
