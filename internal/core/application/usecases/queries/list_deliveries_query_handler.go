package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListDeliveriesQueryHandler retrieves a page of the caller's deliveries
// requested within the query period, newest first.
type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewListDeliveriesQueryHandler creates a handler for delivery list queries.
func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle executes the list query. The period bounds are inclusive on both
// ends and the result is scoped to the caller's own deliveries; other members'
// rows are invisible here rather than forbidden.
func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) (ListDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListDeliveriesQueryResponse{}, err
	}

	resp := ListDeliveriesQueryResponse{
		Items: make([]DeliveryQueryResponse, 0, query.Size()),
		Page:  query.Page(),
		Size:  query.Size(),
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM deliveries
		WHERE member_id = ?
		  AND requested_at BETWEEN ? AND ?
	`, query.MemberID(), query.Period().From(), query.Period().To()).
		Row().Scan(&resp.TotalCount)
	if err != nil {
		return ListDeliveriesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE member_id = ?
		  AND requested_at BETWEEN ? AND ?
		ORDER BY requested_at DESC
		LIMIT ? OFFSET ?
	`, query.MemberID(), query.Period().From(), query.Period().To(),
		query.Size(), query.Page()*query.Size()).Rows()
	if err != nil {
		return ListDeliveriesQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item DeliveryQueryResponse
		var ownerID int64

		err = rows.Scan(
			&ownerID,
			&item.OrderNumber,
			&item.PickupAddress,
			&item.PickupLat,
			&item.PickupLng,
			&item.DeliveryAddress,
			&item.DeliveryLat,
			&item.DeliveryLng,
			&item.Memo,
			&item.Status,
			&item.RequestedAt,
			&item.AssignedAt,
			&item.PickedUpAt,
			&item.DeliveredAt,
			&item.CanceledAt,
			&item.RiderID,
		)
		if err != nil {
			return ListDeliveriesQueryResponse{}, err
		}

		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return ListDeliveriesQueryResponse{}, err
	}

	return resp, nil
}
