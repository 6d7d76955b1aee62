package commands

import (
	"errors"
	"fmt"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/delivery"
	"github.com/hankkuu/delivery-demo/internal/core/domain/model/kernel"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
	"github.com/hankkuu/delivery-demo/internal/pkg/guard"
)

var ErrChangeDestinationCommandIsNotConstructed = errors.New(
	"ChangeDestinationCommand must be created via NewChangeDestinationCommand constructor",
)

// ChangeDestinationCommand represents a request to rewrite the destination of
// an existing delivery. The caller must own the delivery; ownership is checked
// before the status rule, so a non-owner learns nothing about the delivery's
// state.
type ChangeDestinationCommand struct { //nolint:recvcheck //using for validation
	memberID        int64
	orderNumber     string
	deliveryAddress string
	deliveryPoint   *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewChangeDestinationCommand creates a destination change command.
func NewChangeDestinationCommand(
	memberID int64,
	orderNumber string,
	deliveryAddress string,
	deliveryPoint *kernel.GeoPoint,
) (ChangeDestinationCommand, error) {
	cmd := ChangeDestinationCommand{
		deliveryPoint: deliveryPoint,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMemberID(memberID),
		cmd.setOrderNumber(orderNumber),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return ChangeDestinationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDestinationCommand) Validate() error {
	return c.guard.Validate(ErrChangeDestinationCommandIsNotConstructed)
}

// MemberID returns the authenticated caller's member id.
func (c ChangeDestinationCommand) MemberID() int64 {
	return c.memberID
}

// OrderNumber identifies the delivery to change.
func (c ChangeDestinationCommand) OrderNumber() string {
	return c.orderNumber
}

// DeliveryAddress returns the new destination address.
func (c ChangeDestinationCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryPoint returns the new destination coordinates, if any.
func (c ChangeDestinationCommand) DeliveryPoint() *kernel.GeoPoint {
	return c.deliveryPoint
}

func (c *ChangeDestinationCommand) setMemberID(memberID int64) error {
	if memberID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("memberId",
			fmt.Errorf("%d is not a valid member id", memberID))
	}
	c.memberID = memberID
	return nil
}

func (c *ChangeDestinationCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *ChangeDestinationCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if len(address) > delivery.AddressMaxLen {
		return errs.NewValueIsOutOfRangeError(
			"deliveryAddress length", len(address), 1, delivery.AddressMaxLen)
	}
	c.deliveryAddress = address
	return nil
}
