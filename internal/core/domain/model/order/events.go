package order

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// PartnerAssigned is recorded when a partner is attached to an order.
type PartnerAssigned struct {
	OrderID    kernel.UUID `json:"orderId"`
	PartnerID  kernel.UUID `json:"partnerId"`
	DistanceKm float64     `json:"distanceKm"`
	At         time.Time   `json:"occurredAt"`
}

func (e PartnerAssigned) EventName() string { return "order.partner_assigned" }
func (e PartnerAssigned) AggregateID() kernel.UUID { return e.OrderID }
func (e PartnerAssigned) OccurredAt() time.Time { return e.At }

// StatusChanged is recorded on every status transition.
type StatusChanged struct {
	OrderID kernel.UUID `json:"orderId"`
	From    Status      `json:"from"`
	To      Status      `json:"to"`
	At      time.Time   `json:"occurredAt"`
}

func (e StatusChanged) EventName() string { return "order.status_changed" }
func (e StatusChanged) AggregateID() kernel.UUID { return e.OrderID }
func (e StatusChanged) OccurredAt() time.Time { return e.At }
