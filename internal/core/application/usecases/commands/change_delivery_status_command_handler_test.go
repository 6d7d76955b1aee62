package commands_test

import (
	"testing"

	"github.com/hankkuu/delivery-demo/internal/core/application/usecases/commands"
	"github.com/hankkuu/delivery-demo/internal/core/domain/model/delivery"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeDeliveryStatusCommandHandler_Handle_Assign(t *testing.T) {
	ctx := t.Context()
	existing := requestedDelivery(1, "ORD-1")
	rider := int64(9)
	cmd, err := commands.NewChangeDeliveryStatusCommand(1, "ORD-1", delivery.Assigned, &rider)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("GetByOrderNumber", mock.Anything, "ORD-1").Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeDeliveryStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, delivery.Assigned, updated.Status())
	require.NotNil(t, updated.RiderID())
	assert.Equal(t, int64(9), *updated.RiderID())
	assert.NotNil(t, updated.AssignedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeDeliveryStatusCommandHandler_Handle_OwnershipBeforeLegality(t *testing.T) {
	// A non-owner requesting an illegal transition must still get forbidden,
	// never the transition error.
	ctx := t.Context()
	existing := requestedDelivery(1, "ORD-1")
	cmd, err := commands.NewChangeDeliveryStatusCommand(2, "ORD-1", delivery.Delivered, nil)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("GetByOrderNumber", mock.Anything, "ORD-1").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeDeliveryStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrAccessForbidden)
	assert.NotErrorIs(t, err, errs.ErrIllegalStatusTransition)
	assert.Equal(t, delivery.Requested, existing.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeDeliveryStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	existing := requestedDelivery(1, "ORD-1")
	cmd, err := commands.NewChangeDeliveryStatusCommand(1, "ORD-1", delivery.Delivered, nil)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("GetByOrderNumber", mock.Anything, "ORD-1").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeDeliveryStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrIllegalStatusTransition)
	assert.Equal(t, delivery.Requested, existing.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeDeliveryStatusCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	existing := requestedDelivery(1, "ORD-1")
	cmd, err := commands.NewChangeDeliveryStatusCommand(1, "ORD-1", delivery.Canceled, nil)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("GetByOrderNumber", mock.Anything, "ORD-1").Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).
			Return(errs.NewVersionConflictError("delivery", "ORD-1")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeDeliveryStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrVersionConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewChangeDeliveryStatusCommand_Validation(t *testing.T) {
	_, err := commands.NewChangeDeliveryStatusCommand(1, "ORD-1", delivery.Unknown, nil)
	require.Error(t, err)

	_, err = commands.NewChangeDeliveryStatusCommand(0, "ORD-1", delivery.Assigned, nil)
	require.Error(t, err)

	_, err = commands.NewChangeDeliveryStatusCommand(1, "", delivery.Assigned, nil)
	require.Error(t, err)
}
