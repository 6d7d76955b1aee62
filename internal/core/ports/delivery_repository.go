package ports

import (
	"context"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/delivery"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// Returns a duplicate-value error when the order number is taken.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate using an
	// optimistic version check. Returns a version-conflict error when the
	// stored row was modified since the aggregate was loaded.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// GetByOrderNumber retrieves a delivery by its business-unique order
	// number. Returns an object-not-found error when no such delivery exists.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*delivery.Delivery, error)
}
