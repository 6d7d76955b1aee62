package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
)

const deliveryColumns = `
	member_id,
	order_number,
	pickup_address,
	pickup_lat,
	pickup_lng,
	delivery_address,
	delivery_lat,
	delivery_lng,
	memo,
	status,
	requested_at,
	assigned_at,
	picked_up_at,
	delivered_at,
	canceled_at,
	rider_id`

// GetDeliveryQueryHandler retrieves one delivery from the database.
// The existence of a foreign member's delivery is acknowledged but its content
// is not disclosed: a non-owner gets access-forbidden, not not-found.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single-delivery lookups.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle fetches the delivery and enforces ownership.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (DeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE order_number = ?
	`, query.OrderNumber()).Row()

	var resp DeliveryQueryResponse
	var ownerID int64
	err := row.Scan(
		&ownerID,
		&resp.OrderNumber,
		&resp.PickupAddress,
		&resp.PickupLat,
		&resp.PickupLng,
		&resp.DeliveryAddress,
		&resp.DeliveryLat,
		&resp.DeliveryLng,
		&resp.Memo,
		&resp.Status,
		&resp.RequestedAt,
		&resp.AssignedAt,
		&resp.PickedUpAt,
		&resp.DeliveredAt,
		&resp.CanceledAt,
		&resp.RiderID,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return DeliveryQueryResponse{}, errs.NewObjectNotFoundError("orderNumber", query.OrderNumber())
	}
	if err != nil {
		return DeliveryQueryResponse{}, err
	}

	if ownerID != query.MemberID() {
		return DeliveryQueryResponse{}, errs.NewAccessForbiddenError(query.OrderNumber())
	}

	return resp, nil
}
