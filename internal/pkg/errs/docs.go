// Package errs provides standardized error types for the delivery application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel for errors.Is classification
//
// The HTTP boundary relies on the sentinels to map domain failures onto
// response status codes, so every failure a use case can produce is expressed
// through one of these kinds.
package errs
