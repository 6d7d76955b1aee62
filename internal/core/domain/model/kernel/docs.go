// Package kernel provides core domain primitives for the delivery system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for delivery identifiers with validation and comparison
//   - GeoPoint: A value object for geographic coordinates with range validation
//   - Period: A value object for bounded time windows used by listing queries
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
