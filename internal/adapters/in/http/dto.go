package http

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/hankkuu/delivery-demo/internal/core/application/usecases/queries"
	"github.com/hankkuu/delivery-demo/internal/core/domain/model/delivery"
	"github.com/hankkuu/delivery-demo/internal/core/domain/model/kernel"
	"github.com/hankkuu/delivery-demo/internal/core/domain/model/member"
	"github.com/hankkuu/delivery-demo/internal/pkg/auth"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
)

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r SignUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LoginID, validation.Required, validation.Length(1, member.LoginIDMaxLen)),
		validation.Field(&r.Password, validation.Required, validation.By(passwordRule)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, member.NameMaxLen)),
	)
}

func passwordRule(value any) error {
	password, _ := value.(string)
	return auth.ValidatePassword(password)
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LoginID, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// CreateDeliveryRequest is the body of POST /api/deliveries.
type CreateDeliveryRequest struct {
	OrderNumber     string   `json:"orderNumber"`
	PickupAddress   string   `json:"pickupAddress"`
	PickupLat       *float64 `json:"pickupLat"`
	PickupLng       *float64 `json:"pickupLng"`
	DeliveryAddress string   `json:"deliveryAddress"`
	DeliveryLat     *float64 `json:"deliveryLat"`
	DeliveryLng     *float64 `json:"deliveryLng"`
	Memo            string   `json:"memo"`
}

func (r CreateDeliveryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrderNumber, validation.Required, validation.Length(1, delivery.OrderNumberMaxLen)),
		validation.Field(&r.PickupAddress, validation.Required, validation.Length(1, delivery.AddressMaxLen)),
		validation.Field(&r.DeliveryAddress, validation.Required, validation.Length(1, delivery.AddressMaxLen)),
		validation.Field(&r.Memo, validation.Length(0, delivery.MemoMaxLen)),
	)
}

// ChangeDestinationRequest is the body of PATCH /api/deliveries/:orderNumber/destination.
type ChangeDestinationRequest struct {
	DeliveryAddress string   `json:"deliveryAddress"`
	DeliveryLat     *float64 `json:"deliveryLat"`
	DeliveryLng     *float64 `json:"deliveryLng"`
}

func (r ChangeDestinationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DeliveryAddress, validation.Required, validation.Length(1, delivery.AddressMaxLen)),
	)
}

// ChangeStatusRequest is the body of PATCH /api/deliveries/:orderNumber/status.
type ChangeStatusRequest struct {
	Status  string `json:"status"`
	RiderID *int64 `json:"riderId"`
}

func (r ChangeStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required),
	)
}

// geoPoint folds an optional lat/lng pair into a validated coordinate value.
// Both must be present or both absent.
func geoPoint(paramName string, lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, errs.NewValueIsInvalidError(paramName + " requires both latitude and longitude")
	}
	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

// ListDeliveriesParams are the query parameters of GET /api/deliveries.
// from and to are RFC 3339 timestamps bounding requested_at; the span limit is
// enforced by kernel.NewPeriod when the parameters are folded into a Period.
type ListDeliveriesParams struct {
	From string `query:"from"`
	To   string `query:"to"`
	Page int    `query:"page"`
	Size int    `query:"size"`
}

func (p ListDeliveriesParams) Period() (kernel.Period, error) {
	from, err := time.Parse(time.RFC3339, p.From)
	if err != nil {
		return kernel.Period{}, errs.NewValueIsInvalidErrorWithCause("from", err)
	}
	to, err := time.Parse(time.RFC3339, p.To)
	if err != nil {
		return kernel.Period{}, errs.NewValueIsInvalidErrorWithCause("to", err)
	}
	return kernel.NewPeriod(from, to)
}

// MemberResponse is the public view of a member account.
type MemberResponse struct {
	ID      int64  `json:"id"`
	LoginID string `json:"loginId"`
	Name    string `json:"name"`
}

// TokenResponse carries a freshly issued access token.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// DeliveryResponse is the public view of one delivery.
type DeliveryResponse struct {
	OrderNumber     string     `json:"orderNumber"`
	PickupAddress   string     `json:"pickupAddress"`
	PickupLat       *float64   `json:"pickupLat"`
	PickupLng       *float64   `json:"pickupLng"`
	DeliveryAddress string     `json:"deliveryAddress"`
	DeliveryLat     *float64   `json:"deliveryLat"`
	DeliveryLng     *float64   `json:"deliveryLng"`
	Memo            string     `json:"memo"`
	Status          string     `json:"status"`
	RequestedAt     time.Time  `json:"requestedAt"`
	AssignedAt      *time.Time `json:"assignedAt"`
	PickedUpAt      *time.Time `json:"pickedUpAt"`
	DeliveredAt     *time.Time `json:"deliveredAt"`
	CanceledAt      *time.Time `json:"canceledAt"`
	RiderID         *int64     `json:"riderId"`
}

// PageResponse is one page of deliveries plus paging metadata.
type PageResponse struct {
	Items      []DeliveryResponse `json:"items"`
	TotalCount int64              `json:"totalCount"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
}

func deliveryResponseFromAggregate(d *delivery.Delivery) DeliveryResponse {
	resp := DeliveryResponse{
		OrderNumber:     d.OrderNumber(),
		PickupAddress:   d.PickupAddress(),
		DeliveryAddress: d.DeliveryAddress(),
		Memo:            d.Memo(),
		Status:          d.Status().String(),
		RequestedAt:     d.RequestedAt(),
		AssignedAt:      d.AssignedAt(),
		PickedUpAt:      d.PickedUpAt(),
		DeliveredAt:     d.DeliveredAt(),
		CanceledAt:      d.CanceledAt(),
		RiderID:         d.RiderID(),
	}

	if point := d.PickupPoint(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		resp.PickupLat, resp.PickupLng = &lat, &lng
	}
	if point := d.DeliveryPoint(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		resp.DeliveryLat, resp.DeliveryLng = &lat, &lng
	}

	return resp
}

func deliveryResponseFromQuery(item queries.DeliveryQueryResponse) DeliveryResponse {
	return DeliveryResponse{
		OrderNumber:     item.OrderNumber,
		PickupAddress:   item.PickupAddress,
		PickupLat:       item.PickupLat,
		PickupLng:       item.PickupLng,
		DeliveryAddress: item.DeliveryAddress,
		DeliveryLat:     item.DeliveryLat,
		DeliveryLng:     item.DeliveryLng,
		Memo:            item.Memo,
		Status:          item.Status,
		RequestedAt:     item.RequestedAt,
		AssignedAt:      item.AssignedAt,
		PickedUpAt:      item.PickedUpAt,
		DeliveredAt:     item.DeliveredAt,
		CanceledAt:      item.CanceledAt,
		RiderID:         item.RiderID,
	}
}
