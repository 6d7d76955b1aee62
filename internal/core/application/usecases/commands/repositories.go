// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence. Each command carries the caller's identity explicitly;
// handlers never read it from ambient state.
package commands

import (
	"context"

	"github.com/hankkuu/delivery-demo/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MemberRepoFactory provides access to the member repository within a transaction.
	MemberRepoFactory interface {
		MemberRepository() ports.MemberRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// MemberUoW manages transactions for member-only operations.
	MemberUoW interface {
		TxManager
		MemberRepoFactory
	}

	// MemberUoWFactory creates new member unit of work instances.
	MemberUoWFactory interface {
		Create() MemberUoW
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CreateDeliveryUoW manages transactions spanning the member and delivery
	// repositories. Delivery creation verifies the requesting member exists in
	// the same transaction that persists the new delivery.
	CreateDeliveryUoW interface {
		TxManager
		MemberRepoFactory
		DeliveryRepoFactory
	}

	// CreateDeliveryUoWFactory creates new member-and-delivery unit of work instances.
	CreateDeliveryUoWFactory interface {
		Create() CreateDeliveryUoW
	}
)

// PasswordHasher hashes signup passwords before they reach the member aggregate.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
