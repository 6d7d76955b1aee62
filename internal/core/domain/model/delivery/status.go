package delivery

import (
	"fmt"

	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine whose legal moves are enumerated in a single
// transition table rather than scattered across per-state switches, so the
// rule set can be validated exhaustively against the enumerated state set.
//
// State transitions:
//
//	Requested ──> Assigned ──> PickedUp ──> Delivered
//	    │             │
//	    └──> Canceled <┘
//
// Delivered and Canceled are terminal. Regression to Requested is forbidden
// from every state, including Requested itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status when a delivery is first created.
	Requested

	// Assigned indicates a rider has been dispatched for the delivery.
	Assigned

	// PickedUp indicates the rider collected the package at the pickup address.
	PickedUp

	// Delivered indicates the package reached its destination. Terminal.
	Delivered

	// Canceled indicates the delivery was called off before pickup. Terminal.
	Canceled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Requested: "REQUESTED",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		Delivered: "DELIVERED",
		Canceled:  "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested: "REQUESTED",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		Delivered: "DELIVERED",
		Canceled:  "CANCELED",
	}
}

// ParseStatus converts a wire string into a Status.
// Returns an invalid-value error for anything outside the enumerated set,
// including the empty string.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Requested, Assigned, PickedUp, Delivered, Canceled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// CanTransitionTo reports whether the (s, target) pair appears in the
// transition table. It is a pure predicate with no side effects.
func (s Status) CanTransitionTo(target Status) bool {
	_, ok := transitionTable()[Transition{From: s, To: target}]
	return ok
}

// AllowsDestinationChange reports whether the destination address may still
// be rewritten. Only deliveries that have not been picked up qualify.
func (s Status) AllowsDestinationChange() bool {
	return s == Requested || s == Assigned
}

// Transition is a (current, target) status pair, the key of the transition table.
type Transition struct {
	From Status
	To   Status
}
