// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. It implements the repository pattern for the
// delivery aggregate, including the optimistic version check on updates.
package deliveryrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/delivery"
	"github.com/hankkuu/delivery-demo/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Status is stored as its wire name so raw read-model queries stay
// legible. The version column backs the optimistic concurrency check.
type DeliveryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID        int64     `gorm:"index"`
	OrderNumber     string    `gorm:"size:50;uniqueIndex"`
	PickupAddress   string    `gorm:"size:200"`
	PickupLat       *float64
	PickupLng       *float64
	DeliveryAddress string `gorm:"size:200"`
	DeliveryLat     *float64
	DeliveryLng     *float64
	Memo            string    `gorm:"size:500"`
	Status          string    `gorm:"size:20;index"`
	RequestedAt     time.Time `gorm:"index"`
	AssignedAt      *time.Time
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
	CanceledAt      *time.Time
	RiderID         *int64
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:              aggregate.ID().Bytes(),
		MemberID:        aggregate.MemberID(),
		OrderNumber:     aggregate.OrderNumber(),
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Memo:            aggregate.Memo(),
		Status:          aggregate.Status().String(),
		RequestedAt:     aggregate.RequestedAt(),
		AssignedAt:      aggregate.AssignedAt(),
		PickedUpAt:      aggregate.PickedUpAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		CanceledAt:      aggregate.CanceledAt(),
		RiderID:         aggregate.RiderID(),
		Version:         aggregate.Version(),
	}

	if point := aggregate.PickupPoint(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		dto.PickupLat, dto.PickupLng = &lat, &lng
	}
	if point := aggregate.DeliveryPoint(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		dto.DeliveryLat, dto.DeliveryLng = &lat, &lng
	}

	return dto
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	pickupPoint, err := pointFromColumns(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}
	deliveryPoint, err := pointFromColumns(dto.DeliveryLat, dto.DeliveryLng)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		dto.MemberID,
		dto.OrderNumber,
		dto.PickupAddress,
		pickupPoint,
		dto.DeliveryAddress,
		deliveryPoint,
		dto.Memo,
		status,
		dto.RequestedAt,
		dto.AssignedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.CanceledAt,
		dto.RiderID,
		dto.Version,
	)
}

func pointFromColumns(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
