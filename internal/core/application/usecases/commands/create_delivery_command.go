package commands

import (
	"errors"
	"fmt"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/delivery"
	"github.com/hankkuu/delivery-demo/internal/core/domain/model/kernel"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
	"github.com/hankkuu/delivery-demo/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to register a new delivery.
// memberID identifies the authenticated caller, who becomes the owner of the
// created delivery.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	memberID        int64
	orderNumber     string
	pickupAddress   string
	pickupPoint     *kernel.GeoPoint
	deliveryAddress string
	deliveryPoint   *kernel.GeoPoint
	memo            string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// Field-level rules (lengths, coordinate bounds) are enforced again by the
// aggregate constructor; the command validates only what it carries.
func NewCreateDeliveryCommand(
	memberID int64,
	orderNumber string,
	pickupAddress string,
	pickupPoint *kernel.GeoPoint,
	deliveryAddress string,
	deliveryPoint *kernel.GeoPoint,
	memo string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		pickupPoint:   pickupPoint,
		deliveryPoint: deliveryPoint,
		memo:          memo,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMemberID(memberID),
		cmd.setOrderNumber(orderNumber),
		cmd.setAddress("pickupAddress", pickupAddress, &cmd.pickupAddress),
		cmd.setAddress("deliveryAddress", deliveryAddress, &cmd.deliveryAddress),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// MemberID returns the authenticated caller's member id.
func (c CreateDeliveryCommand) MemberID() int64 {
	return c.memberID
}

// OrderNumber returns the business-unique order number.
func (c CreateDeliveryCommand) OrderNumber() string {
	return c.orderNumber
}

// PickupAddress returns the pickup address.
func (c CreateDeliveryCommand) PickupAddress() string {
	return c.pickupAddress
}

// PickupPoint returns the optional pickup coordinates.
func (c CreateDeliveryCommand) PickupPoint() *kernel.GeoPoint {
	return c.pickupPoint
}

// DeliveryAddress returns the destination address.
func (c CreateDeliveryCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryPoint returns the optional destination coordinates.
func (c CreateDeliveryCommand) DeliveryPoint() *kernel.GeoPoint {
	return c.deliveryPoint
}

// Memo returns the optional delivery note.
func (c CreateDeliveryCommand) Memo() string {
	return c.memo
}

func (c *CreateDeliveryCommand) setMemberID(memberID int64) error {
	if memberID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("memberId",
			fmt.Errorf("%d is not a valid member id", memberID))
	}
	c.memberID = memberID
	return nil
}

func (c *CreateDeliveryCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if len(orderNumber) > delivery.OrderNumberMaxLen {
		return errs.NewValueIsOutOfRangeError(
			"orderNumber length", len(orderNumber), 1, delivery.OrderNumberMaxLen)
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *CreateDeliveryCommand) setAddress(paramName, address string, target *string) error {
	if address == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*target = address
	return nil
}
