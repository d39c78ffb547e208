package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// StatusLogRepository appends to and reads the order audit trail.
type StatusLogRepository interface {
	Append(ctx context.Context, entry order.StatusLogEntry) error

	// List returns the entries of an order, oldest first.
	List(ctx context.Context, orderID kernel.UUID) ([]order.StatusLogEntry, error)
}
