// Package guard provides the constructor guard used by domain objects to
// detect zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a guard in a struct makes
// a zero-value instance distinguishable from a properly constructed one, so
// invariants established by the constructor cannot be silently skipped.
//
// Example usage:
//
//	type Period struct {
//	    from, to time.Time
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewPeriod(from, to time.Time) (Period, error) {
//	    if !to.After(from) {
//	        return Period{}, errors.New("to must be after from")
//	    }
//	    return Period{from: from, to: to, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Period) Validate() error {
//	    return p.guard.Validate(ErrPeriodIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it in the
// constructor of every guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed object. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
