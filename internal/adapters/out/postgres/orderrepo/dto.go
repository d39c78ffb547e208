// Package orderrepo maps the Order aggregate to the orders table.
package orderrepo

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. Statuses and enums are stored in their
// text form so that SQL filters and the partial unique index read naturally.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber   string     `gorm:"uniqueIndex;not null"`
	ShopID        uuid.UUID  `gorm:"type:uuid;index;not null"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	PartnerID     *uuid.UUID `gorm:"type:uuid;index"`
	Status        string     `gorm:"type:text;index;not null"`
	Type          string     `gorm:"type:text;not null"`
	PaymentMethod string     `gorm:"type:text;not null"`
	PaymentStatus string     `gorm:"type:text;not null"`

	Subtotal         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PlatformFee      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CommissionAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PartnerPayout    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PlatformEarnings decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	PickupLat *float64
	PickupLng *float64

	AcceptedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := o.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	var lat, lng *float64
	if loc := o.PickupLocation(); loc != nil {
		la, ln := loc.Latitude(), loc.Longitude()
		lat, lng = &la, &ln
	}

	fees := o.Fees()
	return OrderDTO{
		ID:               o.ID().Bytes(),
		OrderNumber:      o.Number(),
		ShopID:           o.ShopID().Bytes(),
		CustomerID:       o.CustomerID().Bytes(),
		PartnerID:        partnerID,
		Status:           o.Status().String(),
		Type:             o.Type().String(),
		PaymentMethod:    string(o.PaymentMethod()),
		PaymentStatus:    string(o.PaymentStatus()),
		Subtotal:         fees.Subtotal,
		DeliveryFee:      fees.DeliveryFee,
		PlatformFee:      fees.PlatformFee,
		TotalAmount:      fees.TotalAmount,
		CommissionAmount: fees.CommissionAmount,
		PartnerPayout:    fees.PartnerPayout,
		PlatformEarnings: fees.PlatformEarnings,
		PickupLat:        lat,
		PickupLng:        lng,
		AcceptedAt:       o.AcceptedAt(),
		PickedUpAt:       o.PickedUpAt(),
		DeliveredAt:      o.DeliveredAt(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, fmt.Errorf("order %s shop: %w", id, err)
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, fmt.Errorf("order %s customer: %w", id, err)
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if pErr != nil {
			return nil, fmt.Errorf("order %s partner: %w", id, pErr)
		}
		partnerID = &pID
	}

	var pickup *kernel.Location
	if dto.PickupLat != nil && dto.PickupLng != nil {
		loc, locErr := kernel.NewLocation(*dto.PickupLat, *dto.PickupLng)
		if locErr != nil {
			return nil, fmt.Errorf("order %s pickup location: %w", id, locErr)
		}
		pickup = &loc
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	orderType, err := order.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.State{
		ID:            id,
		Number:        dto.OrderNumber,
		ShopID:        shopID,
		CustomerID:    customerID,
		PartnerID:     partnerID,
		Status:        status,
		Type:          orderType,
		PaymentMethod: order.PaymentMethod(dto.PaymentMethod),
		PaymentStatus: order.PaymentStatus(dto.PaymentStatus),
		Fees: order.Fees{
			Subtotal:         dto.Subtotal,
			DeliveryFee:      dto.DeliveryFee,
			PlatformFee:      dto.PlatformFee,
			TotalAmount:      dto.TotalAmount,
			CommissionAmount: dto.CommissionAmount,
			PartnerPayout:    dto.PartnerPayout,
			PlatformEarnings: dto.PlatformEarnings,
		},
		PickupLocation: pickup,
		AcceptedAt:     dto.AcceptedAt,
		PickedUpAt:     dto.PickedUpAt,
		DeliveredAt:    dto.DeliveredAt,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	})
}
