// Package ports defines repository interfaces for the delivery domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/member"
)

// MemberRepository defines the persistence contract for member aggregates.
type MemberRepository interface {
	// Add persists a new member and assigns its database-generated id to the
	// aggregate. Returns a duplicate-value error when the login id is taken.
	Add(ctx context.Context, aggregate *member.Member) error

	// GetByID retrieves a member by its database-generated id.
	// Returns an object-not-found error when no such member exists.
	GetByID(ctx context.Context, id int64) (*member.Member, error)

	// GetByLoginID retrieves a member by its unique login id.
	// Returns an object-not-found error when no such member exists.
	GetByLoginID(ctx context.Context, loginID string) (*member.Member, error)
}
