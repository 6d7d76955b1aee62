package commands_test

import (
	"testing"

	"github.com/hankkuu/delivery-demo/internal/core/application/usecases/commands"
	"github.com/hankkuu/delivery-demo/internal/core/domain/model/delivery"
	"github.com/hankkuu/delivery-demo/internal/core/domain/model/member"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingMember(t *testing.T, id int64) *member.Member {
	t.Helper()
	m, err := member.RestoreMember(id, "rider01", "$2a$10$hash", "Kim")
	require.NoError(t, err)
	return m
}

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(
		1, "ORD-20240101-0001", "1 Pickup Street", nil, "2 Delivery Avenue", nil, "ring the bell")
	require.NoError(t, err)

	memberRepo := new(MockMemberRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockCreateDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("GetByID", ctx, int64(1)).Return(existingMember(t, 1), nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, delivery.Requested, created.Status())
	assert.Equal(t, int64(1), created.MemberID())
	assert.Equal(t, "ORD-20240101-0001", created.OrderNumber())
	assert.False(t, created.RequestedAt().IsZero())
	memberRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDeliveryCommand{} // not constructed properly
	factory := new(MockCreateDeliveryUoWFactory)
	h := commands.NewCreateDeliveryCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateDeliveryCommandHandler_Handle_UnknownMember(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(
		424242, "ORD-20240101-0001", "1 Pickup Street", nil, "2 Delivery Avenue", nil, "")
	require.NoError(t, err)

	memberRepo := new(MockMemberRepository)
	uow := new(MockCreateDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("GetByID", ctx, int64(424242)).
			Return(nil, errs.NewObjectNotFoundError("memberId", int64(424242))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.NotErrorIs(t, err, errs.ErrValueIsRequired)
	assert.NotErrorIs(t, err, errs.ErrValueIsInvalid)
	memberRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "DeliveryRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateDeliveryCommandHandler_Handle_DuplicateOrderNumber(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(
		1, "ORD-20240101-0001", "1 Pickup Street", nil, "2 Delivery Avenue", nil, "")
	require.NoError(t, err)

	memberRepo := new(MockMemberRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockCreateDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("GetByID", ctx, int64(1)).Return(existingMember(t, 1), nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).
			Return(errs.NewDuplicateValueError("orderNumber", "ORD-20240101-0001")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateValue)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateDeliveryCommand_Validation(t *testing.T) {
	tests := []struct {
		name        string
		memberID    int64
		orderNumber string
		pickup      string
		destination string
	}{
		{"zero_member", 0, "ORD-1", "p", "d"},
		{"empty_order_number", 1, "", "p", "d"},
		{"empty_pickup", 1, "ORD-1", "", "d"},
		{"empty_destination", 1, "ORD-1", "p", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewCreateDeliveryCommand(
				tc.memberID, tc.orderNumber, tc.pickup, nil, tc.destination, nil, "")
			require.Error(t, err)
		})
	}
}
