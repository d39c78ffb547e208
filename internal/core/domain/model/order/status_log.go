package order

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// StatusLogEntry is an append-only audit line in an order's history.
type StatusLogEntry struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Status    string
	Message   string
	CreatedAt time.Time
}

// NewStatusLogEntry builds an entry for the order's current status.
func NewStatusLogEntry(orderID kernel.UUID, status string, message string, at time.Time) StatusLogEntry {
	return StatusLogEntry{
		ID:        kernel.NewUUID(),
		OrderID:   orderID,
		Status:    status,
		Message:   message,
		CreatedAt: at,
	}
}

// AssignedMessage is the audit text written when a partner is attached.
func AssignedMessage(distanceKm float64) string {
	return fmt.Sprintf("Delivery partner assigned (%.1f km away)", distanceKm)
}

// StatusMessage is the audit text written on an ordinary status change.
func StatusMessage(s Status) string {
	return fmt.Sprintf("Order %s", s)
}
