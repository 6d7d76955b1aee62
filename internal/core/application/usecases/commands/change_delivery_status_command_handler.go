package commands

import (
	"context"
	"time"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/delivery"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
)

// ChangeDeliveryStatusCommandHandler handles lifecycle transitions. Ownership
// is checked before transition legality, so a caller who does not own the
// delivery always gets access-forbidden regardless of the requested target.
type ChangeDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	now        func() time.Time
}

// NewChangeDeliveryStatusCommandHandler creates a handler for status changes.
func NewChangeDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) ChangeDeliveryStatusCommandHandler {
	return ChangeDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the status change and returns the updated delivery.
//
// Errors, in check order:
//   - object-not-found when the order number matches nothing
//   - access-forbidden when the caller does not own the delivery
//   - illegal-transition for pairs absent from the transition table
//   - version-conflict when the row changed between load and store
func (h *ChangeDeliveryStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeDeliveryStatusCommand,
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

	if err = aggregate.ChangeStatus(cmd.Target(), cmd.RiderID(), h.now()); err != nil {
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
