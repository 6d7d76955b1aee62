package kernel

import (
	"fmt"
	"time"

	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
	"github.com/hankkuu/delivery-demo/internal/pkg/guard"
)

// MaxPeriod is the longest time window a delivery listing may cover.
// A span of exactly MaxPeriod is accepted; one second more is rejected.
const MaxPeriod = 72 * time.Hour

// ErrPeriodIsNotConstructed is returned when attempting to use an improperly
// initialized Period. Periods must be created via NewPeriod.
var ErrPeriodIsNotConstructed = errs.NewValueIsRequiredError(
	"period must be created via NewPeriod constructor")

// Period is a bounded time window used to scope delivery listings.
// The end must be strictly after the start and the span must not exceed
// MaxPeriod (72 hours, inclusive). Both bounds are required.
//
// Period replaces cross-field validation by reflection with a plain two-field
// value object validated by its constructor: the fields are statically known,
// so the rule lives next to the data.
//
// Example:
//
//	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
//	to := from.Add(48 * time.Hour)
//	period, err := kernel.NewPeriod(from, to)
//	if err != nil {
//	    // Handle validation error
//	}
type Period struct { //nolint:recvcheck //using for validation
	from  time.Time
	to    time.Time
	guard guard.ConstructorGuard
}

// NewPeriod creates a Period from the given bounds.
// Returns a required-value error when either bound is the zero time, and an
// invalid-value error when to is not strictly after from or when the span
// exceeds MaxPeriod.
func NewPeriod(from time.Time, to time.Time) (Period, error) {
	if from.IsZero() {
		return Period{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return Period{}, errs.NewValueIsRequiredError("to")
	}
	if !to.After(from) {
		return Period{}, errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("to %s must be after from %s", to, from))
	}
	if to.Sub(from) > MaxPeriod {
		return Period{}, errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("span %s exceeds the %s maximum", to.Sub(from), MaxPeriod))
	}

	return Period{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// From returns the inclusive start of the window.
func (p Period) From() time.Time {
	return p.from
}

// To returns the inclusive end of the window.
func (p Period) To() time.Time {
	return p.to
}

// Contains reports whether t falls within the window, bounds included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.from) && !t.After(p.to)
}

// Validate ensures the Period was created through NewPeriod.
func (p Period) Validate() error {
	return p.guard.Validate(ErrPeriodIsNotConstructed)
}
