package queries

import (
	"errors"
	"fmt"
	"time"

	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
	"github.com/hankkuu/delivery-demo/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves a single delivery by order number on behalf of
// the authenticated member.
type GetDeliveryQuery struct { //nolint:recvcheck //using for validation
	memberID    int64
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a single-delivery lookup query.
func NewGetDeliveryQuery(memberID int64, orderNumber string) (GetDeliveryQuery, error) {
	q := GetDeliveryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setMemberID(memberID),
		q.setOrderNumber(orderNumber),
	); err != nil {
		return GetDeliveryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// MemberID returns the authenticated caller's member id.
func (q GetDeliveryQuery) MemberID() int64 {
	return q.memberID
}

// OrderNumber identifies the delivery to fetch.
func (q GetDeliveryQuery) OrderNumber() string {
	return q.orderNumber
}

func (q *GetDeliveryQuery) setMemberID(memberID int64) error {
	if memberID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("memberId",
			fmt.Errorf("%d is not a valid member id", memberID))
	}
	q.memberID = memberID
	return nil
}

func (q *GetDeliveryQuery) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	q.orderNumber = orderNumber
	return nil
}

// DeliveryQueryResponse is the flat read model of one delivery, shared by the
// single-item and list queries. Coordinates and timeline entries are pointers
// so absent values serialize as null.
type DeliveryQueryResponse struct {
	OrderNumber     string
	PickupAddress   string
	PickupLat       *float64
	PickupLng       *float64
	DeliveryAddress string
	DeliveryLat     *float64
	DeliveryLng     *float64
	Memo            string
	Status          string
	RequestedAt     time.Time
	AssignedAt      *time.Time
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
	CanceledAt      *time.Time
	RiderID         *int64
}
