package delivery

import (
	"errors"
	"fmt"
	"time"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/kernel"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
	"github.com/hankkuu/delivery-demo/internal/pkg/guard"
)

// Field length limits shared with request validation.
const (
	OrderNumberMaxLen = 50
	AddressMaxLen     = 200
	MemoMaxLen        = 500
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery. This ensures all deliveries
// are properly validated.
var ErrDeliveryIsNotConstructed = errors.New(
	"Delivery must be created via NewDelivery or RestoreDelivery constructor")

// transitionEffect applies the state change and timeline side effect of one
// legal transition. Each timeline field is written exactly once, by the single
// effect that owns it.
type transitionEffect func(d *Delivery, riderID *int64, at time.Time)

// transitionTable is the authoritative mapping of legal (current, target)
// status pairs to their side effects. Every pair absent from this table is an
// illegal transition; in particular no pair targets Requested, so regression
// to the initial state is impossible from any state.
func transitionTable() map[Transition]transitionEffect {
	return map[Transition]transitionEffect{
		{From: Requested, To: Assigned}: (*Delivery).applyAssigned,
		{From: Assigned, To: PickedUp}:  (*Delivery).applyPickedUp,
		{From: PickedUp, To: Delivered}: (*Delivery).applyDelivered,
		{From: Requested, To: Canceled}: (*Delivery).applyCanceled,
		{From: Assigned, To: Canceled}:  (*Delivery).applyCanceled,
	}
}

// Delivery is the lifecycle aggregate. It is owned by exactly one member (the
// requester, fixed at creation), carries a globally unique order number, and
// moves through the status state machine defined by the transition table.
//
// Delivery maintains these invariants:
//   - Must have a valid unique identifier and an owning member
//   - Pickup and delivery addresses are required and bounded in length
//   - Status transitions follow the transition table; timeline fields are set
//     exactly once, by the transition that owns them, and never reset
//   - The destination can only change while status is Requested or Assigned,
//     and address plus coordinates always change together
//   - Can only be created through NewDelivery or RestoreDelivery
//
// The struct uses private fields to ensure encapsulation; ownership and
// mutation rules are enforced through validated methods.
type Delivery struct {
	// id is the surrogate identifier, assigned at creation, immutable.
	id kernel.UUID

	// memberID references the owning member. Never reassigned.
	memberID int64

	// orderNumber is the external business-unique identifier.
	orderNumber string

	// pickupAddress is where the rider collects the package.
	pickupAddress string
	pickupPoint   *kernel.GeoPoint

	// deliveryAddress is the destination, mutable under AllowsDestinationChange.
	deliveryAddress string
	deliveryPoint   *kernel.GeoPoint

	memo string

	// status is the current state in the delivery lifecycle.
	status Status

	// Timeline. requestedAt is set at creation; the others by their transitions.
	requestedAt time.Time
	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	canceledAt  *time.Time

	// riderID is the dispatched rider, if any. Accepted as given.
	riderID *int64

	// version supports optimistic concurrency in the persistence layer.
	version int64

	guard guard.ConstructorGuard
}

// NewDelivery creates a Delivery in Requested status with requestedAt set to
// the supplied creation time. This is the only way to create a new delivery;
// all business invariants are validated here.
//
// Parameters:
//   - id: surrogate identifier (must be a valid UUID)
//   - memberID: owning member (must be positive)
//   - orderNumber: business-unique external id (required, max 50 chars)
//   - pickupAddress / deliveryAddress: required, max 200 chars
//   - pickupPoint / deliveryPoint: optional validated coordinates
//   - memo: optional note, max 500 chars
//   - requestedAt: creation time (must not be zero)
func NewDelivery(
	id kernel.UUID,
	memberID int64,
	orderNumber string,
	pickupAddress string,
	pickupPoint *kernel.GeoPoint,
	deliveryAddress string,
	deliveryPoint *kernel.GeoPoint,
	memo string,
	requestedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status: Requested,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setMemberID(memberID),
		d.setOrderNumber(orderNumber),
		d.setPickupAddress(pickupAddress, pickupPoint),
		d.setDeliveryAddress(deliveryAddress, deliveryPoint),
		d.setMemo(memo),
		d.setRequestedAt(requestedAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence without rerunning
// creation-time rules, but still validating identity, status, and ownership.
// Timeline fields and rider are taken as stored.
func RestoreDelivery(
	id kernel.UUID,
	memberID int64,
	orderNumber string,
	pickupAddress string,
	pickupPoint *kernel.GeoPoint,
	deliveryAddress string,
	deliveryPoint *kernel.GeoPoint,
	memo string,
	status Status,
	requestedAt time.Time,
	assignedAt, pickedUpAt, deliveredAt, canceledAt *time.Time,
	riderID *int64,
	version int64,
) (*Delivery, error) {
	d := &Delivery{
		memo:        memo,
		assignedAt:  assignedAt,
		pickedUpAt:  pickedUpAt,
		deliveredAt: deliveredAt,
		canceledAt:  canceledAt,
		riderID:     riderID,
		version:     version,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setMemberID(memberID),
		d.setOrderNumber(orderNumber),
		d.setPickupAddress(pickupAddress, pickupPoint),
		d.setDeliveryAddress(deliveryAddress, deliveryPoint),
		d.setStatus(status),
		d.setRequestedAt(requestedAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
// Returns ErrDeliveryIsNotConstructed for zero-value instances. Call this when
// reconstructing deliveries from persistence to ensure data integrity.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's surrogate identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// MemberID returns the id of the owning member.
func (d *Delivery) MemberID() int64 {
	return d.memberID
}

// OrderNumber returns the external business-unique identifier.
func (d *Delivery) OrderNumber() string {
	return d.orderNumber
}

// PickupAddress returns the pickup address.
func (d *Delivery) PickupAddress() string {
	return d.pickupAddress
}

// PickupPoint returns the pickup coordinates, or nil when absent.
func (d *Delivery) PickupPoint() *kernel.GeoPoint {
	return d.pickupPoint
}

// DeliveryAddress returns the destination address.
func (d *Delivery) DeliveryAddress() string {
	return d.deliveryAddress
}

// DeliveryPoint returns the destination coordinates, or nil when absent.
func (d *Delivery) DeliveryPoint() *kernel.GeoPoint {
	return d.deliveryPoint
}

// Memo returns the optional delivery note.
func (d *Delivery) Memo() string {
	return d.memo
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// RequestedAt returns the creation time of the delivery request.
func (d *Delivery) RequestedAt() time.Time {
	return d.requestedAt
}

// AssignedAt returns when a rider was assigned, or nil.
func (d *Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

// PickedUpAt returns when the package was picked up, or nil.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns when the package was delivered, or nil.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// CanceledAt returns when the delivery was canceled, or nil.
func (d *Delivery) CanceledAt() *time.Time {
	return d.canceledAt
}

// RiderID returns the dispatched rider's id, or nil when unassigned.
func (d *Delivery) RiderID() *int64 {
	return d.riderID
}

// Version returns the optimistic concurrency counter as loaded from storage.
func (d *Delivery) Version() int64 {
	return d.version
}

// IsOwnedBy reports whether the delivery belongs to the given member.
// Ownership is checked before transition legality everywhere, so a caller who
// does not own a delivery learns nothing about which transitions are valid.
func (d *Delivery) IsOwnedBy(memberID int64) bool {
	return memberID > 0 && d.memberID == memberID
}

// CanChangeDestination reports whether the destination may currently be
// rewritten. It is the predicate half of the destination change: callers check
// it (or rely on ChangeDestination doing so) before any field is touched.
func (d *Delivery) CanChangeDestination() bool {
	return d.status.AllowsDestinationChange()
}

// ChangeDestination overwrites the destination address and coordinates
// together. Permitted only while status is Requested or Assigned; any other
// status rejects with an illegal-transition error and leaves every field
// unchanged. A partial update is not a possible outcome: inputs are fully
// validated before the first field is written.
func (d *Delivery) ChangeDestination(address string, point *kernel.GeoPoint) error {
	if !d.CanChangeDestination() {
		return errs.NewIllegalStateError("change destination", d.status.String())
	}
	if err := validateAddress("deliveryAddress", address, point); err != nil {
		return err
	}

	d.deliveryAddress = address
	d.deliveryPoint = point
	return nil
}

// ChangeStatus moves the delivery to the target status when the (current,
// target) pair appears in the transition table, firing exactly the side
// effect that pair owns. riderID is only consulted by the Assigned
// transition and may be nil.
//
// Errors:
//   - invalid-value error when target is not a valid status
//   - illegal-transition error for any pair absent from the table, including
//     every pair targeting Requested and all self-transitions
func (d *Delivery) ChangeStatus(target Status, riderID *int64, at time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	effect, ok := transitionTable()[Transition{From: d.status, To: target}]
	if !ok {
		return errs.NewIllegalStatusTransitionError(d.status.String(), target.String())
	}

	effect(d, riderID, at)
	return nil
}

func (d *Delivery) applyAssigned(riderID *int64, at time.Time) {
	d.riderID = riderID
	d.assignedAt = &at
	d.status = Assigned
}

func (d *Delivery) applyPickedUp(_ *int64, at time.Time) {
	d.pickedUpAt = &at
	d.status = PickedUp
}

func (d *Delivery) applyDelivered(_ *int64, at time.Time) {
	d.deliveredAt = &at
	d.status = Delivered
}

func (d *Delivery) applyCanceled(_ *int64, at time.Time) {
	d.canceledAt = &at
	d.status = Canceled
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setMemberID(memberID int64) error {
	if memberID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("memberId",
			fmt.Errorf("%d is not a valid member id", memberID))
	}
	d.memberID = memberID
	return nil
}

func (d *Delivery) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if len(orderNumber) > OrderNumberMaxLen {
		return errs.NewValueIsOutOfRangeError("orderNumber length", len(orderNumber), 1, OrderNumberMaxLen)
	}
	d.orderNumber = orderNumber
	return nil
}

func (d *Delivery) setPickupAddress(address string, point *kernel.GeoPoint) error {
	if err := validateAddress("pickupAddress", address, point); err != nil {
		return err
	}
	d.pickupAddress = address
	d.pickupPoint = point
	return nil
}

func (d *Delivery) setDeliveryAddress(address string, point *kernel.GeoPoint) error {
	if err := validateAddress("deliveryAddress", address, point); err != nil {
		return err
	}
	d.deliveryAddress = address
	d.deliveryPoint = point
	return nil
}

func (d *Delivery) setMemo(memo string) error {
	if len(memo) > MemoMaxLen {
		return errs.NewValueIsOutOfRangeError("memo length", len(memo), 0, MemoMaxLen)
	}
	d.memo = memo
	return nil
}

func (d *Delivery) setRequestedAt(requestedAt time.Time) error {
	if requestedAt.IsZero() {
		return errs.NewValueIsRequiredError("requestedAt")
	}
	d.requestedAt = requestedAt
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func validateAddress(paramName string, address string, point *kernel.GeoPoint) error {
	if address == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if len(address) > AddressMaxLen {
		return errs.NewValueIsOutOfRangeError(paramName+" length", len(address), 1, AddressMaxLen)
	}
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}
	return nil
}
