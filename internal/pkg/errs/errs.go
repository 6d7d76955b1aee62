package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification via errors.Is. Each concrete error type
// below unwraps to exactly one of these, which is what the HTTP boundary uses
// to derive response codes.
var (
	ErrValueIsRequired         = errors.New("value is required")
	ErrValueIsInvalid          = errors.New("value is invalid")
	ErrValueIsOutOfRange       = errors.New("value is out of range")
	ErrObjectNotFound          = errors.New("object not found")
	ErrAccessForbidden         = errors.New("access forbidden")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrDuplicateValue          = errors.New("duplicate value")
	ErrIllegalStatusTransition = errors.New("illegal status transition")
	ErrVersionConflict         = errors.New("version conflict")
)

// ValueIsRequiredError indicates a required value was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed a format or business validation rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending
// value and its inclusive bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named lookup parameter.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// AccessForbiddenError indicates the caller is authenticated but does not own
// the resource it tried to read or mutate. Reported before transition
// legality so an unauthorized caller cannot probe valid transitions.
type AccessForbiddenError struct {
	Resource string
	Cause    error
}

// NewAccessForbiddenError creates an AccessForbiddenError for the named resource.
func NewAccessForbiddenError(resource string) *AccessForbiddenError {
	return &AccessForbiddenError{Resource: resource}
}

func (e *AccessForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrAccessForbidden, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAccessForbidden, e.Resource)
}

func (e *AccessForbiddenError) Unwrap() error {
	return ErrAccessForbidden
}

// UnauthorizedError indicates failed authentication (unknown login id or
// wrong password). The message is deliberately identical for both cases.
type UnauthorizedError struct {
	Message string
	Cause   error
}

// NewUnauthorizedError creates an UnauthorizedError with the given message.
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrUnauthorized, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnauthorized, e.Message)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// DuplicateValueError indicates a uniqueness constraint was violated, such as
// an order number or login id that is already taken.
type DuplicateValueError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewDuplicateValueError creates a DuplicateValueError for the named parameter.
func NewDuplicateValueError(paramName string, value any) *DuplicateValueError {
	return &DuplicateValueError{ParamName: paramName, Value: value}
}

// NewDuplicateValueErrorWithCause creates a DuplicateValueError wrapping a cause.
func NewDuplicateValueErrorWithCause(paramName string, value any, cause error) *DuplicateValueError {
	return &DuplicateValueError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *DuplicateValueError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %v (cause: %v)", ErrDuplicateValue, e.ParamName, e.Value, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrDuplicateValue, e.ParamName, e.Value)
}

func (e *DuplicateValueError) Unwrap() error {
	return ErrDuplicateValue
}

// IllegalStatusTransitionError indicates a delivery status change that is not
// present in the transition table, including regressions to the initial state.
type IllegalStatusTransitionError struct {
	From string
	To   string
}

// NewIllegalStatusTransitionError creates an IllegalStatusTransitionError for
// the rejected (current, target) pair.
func NewIllegalStatusTransitionError(from, to string) *IllegalStatusTransitionError {
	return &IllegalStatusTransitionError{From: from, To: to}
}

func (e *IllegalStatusTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalStatusTransition, e.From, e.To)
}

func (e *IllegalStatusTransitionError) Unwrap() error {
	return ErrIllegalStatusTransition
}

// IllegalStateError indicates an operation that is not permitted while the
// entity is in its current status, such as a destination change after pickup.
// It unwraps to ErrIllegalStatusTransition so the boundary maps it the same way.
type IllegalStateError struct {
	Operation string
	Status    string
}

// NewIllegalStateError creates an IllegalStateError for the rejected operation.
func NewIllegalStateError(operation, status string) *IllegalStateError {
	return &IllegalStateError{Operation: operation, Status: status}
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("illegal state: cannot %s while %s", e.Operation, e.Status)
}

func (e *IllegalStateError) Unwrap() error {
	return ErrIllegalStatusTransition
}

// VersionConflictError indicates an optimistic concurrency check failed: the
// entity was modified between read and write.
type VersionConflictError struct {
	ParamName string
	ID        any
}

// NewVersionConflictError creates a VersionConflictError for the named entity.
func NewVersionConflictError(paramName string, id any) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, ID: id}
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("%s: %s %v was modified concurrently", ErrVersionConflict, e.ParamName, e.ID)
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}
