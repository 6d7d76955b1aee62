package commands

import (
	"errors"
	"fmt"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/delivery"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
	"github.com/hankkuu/delivery-demo/internal/pkg/guard"
)

var ErrChangeDeliveryStatusCommandIsNotConstructed = errors.New(
	"ChangeDeliveryStatusCommand must be created via NewChangeDeliveryStatusCommand constructor",
)

// ChangeDeliveryStatusCommand represents a request to move a delivery to a new
// lifecycle status. riderID is optional and only meaningful for the ASSIGNED
// transition.
type ChangeDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	memberID    int64
	orderNumber string
	target      delivery.Status
	riderID     *int64

	guard guard.ConstructorGuard
}

// NewChangeDeliveryStatusCommand creates a status change command. The target
// must be a valid status; whether the transition itself is legal is decided by
// the aggregate against its current state.
func NewChangeDeliveryStatusCommand(
	memberID int64,
	orderNumber string,
	target delivery.Status,
	riderID *int64,
) (ChangeDeliveryStatusCommand, error) {
	cmd := ChangeDeliveryStatusCommand{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMemberID(memberID),
		cmd.setOrderNumber(orderNumber),
		cmd.setTarget(target),
	); err != nil {
		return ChangeDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryStatusCommandIsNotConstructed)
}

// MemberID returns the authenticated caller's member id.
func (c ChangeDeliveryStatusCommand) MemberID() int64 {
	return c.memberID
}

// OrderNumber identifies the delivery to transition.
func (c ChangeDeliveryStatusCommand) OrderNumber() string {
	return c.orderNumber
}

// Target returns the requested status.
func (c ChangeDeliveryStatusCommand) Target() delivery.Status {
	return c.target
}

// RiderID returns the rider to dispatch, or nil.
func (c ChangeDeliveryStatusCommand) RiderID() *int64 {
	return c.riderID
}

func (c *ChangeDeliveryStatusCommand) setMemberID(memberID int64) error {
	if memberID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("memberId",
			fmt.Errorf("%d is not a valid member id", memberID))
	}
	c.memberID = memberID
	return nil
}

func (c *ChangeDeliveryStatusCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *ChangeDeliveryStatusCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
