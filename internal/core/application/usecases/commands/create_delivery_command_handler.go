package commands

import (
	"context"
	"time"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/delivery"
	"github.com/hankkuu/delivery-demo/internal/core/domain/model/kernel"
)

// CreateDeliveryCommandHandler handles the business logic for delivery
// creation. New deliveries start in REQUESTED status, owned by the caller.
type CreateDeliveryCommandHandler struct {
	uowFactory CreateDeliveryUoWFactory
	now        func() time.Time
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory CreateDeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the creation command and returns the persisted delivery.
// The requesting member is looked up first; an unknown member id surfaces as
// an object-not-found error, distinct from validation failures. A taken order
// number surfaces as a duplicate-value error from the repository.
func (h *CreateDeliveryCommandHandler) Handle(
	ctx context.Context, cmd CreateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.MemberRepository().GetByID(ctx, cmd.MemberID()); err != nil {
		return nil, err
	}

	newDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(),
		cmd.MemberID(),
		cmd.OrderNumber(),
		cmd.PickupAddress(),
		cmd.PickupPoint(),
		cmd.DeliveryAddress(),
		cmd.DeliveryPoint(),
		cmd.Memo(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newDelivery, nil
}
