package commands

import (
	"context"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/delivery"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
)

// ChangeDestinationCommandHandler handles destination changes on existing
// deliveries. Loads the aggregate, checks ownership, applies the change, and
// persists it with an optimistic version check.
type ChangeDestinationCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewChangeDestinationCommandHandler creates a handler for destination changes.
func NewChangeDestinationCommandHandler(uowFactory DeliveryUoWFactory) ChangeDestinationCommandHandler {
	return ChangeDestinationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the destination change and returns the updated delivery.
//
// Errors, in check order:
//   - object-not-found when the order number matches nothing
//   - access-forbidden when the caller does not own the delivery
//   - illegal-transition when the status no longer allows a destination change
//   - version-conflict when the row changed between load and store
func (h *ChangeDestinationCommandHandler) Handle(
	ctx context.Context, cmd ChangeDestinationCommand,
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

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.GetByOrderNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return nil, err
	}

	if !aggregate.IsOwnedBy(cmd.MemberID()) {
		return nil, errs.NewAccessForbiddenError(cmd.OrderNumber())
	}

	if err = aggregate.ChangeDestination(cmd.DeliveryAddress(), cmd.DeliveryPoint()); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
