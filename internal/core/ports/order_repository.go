// Package ports defines the contracts between the core and its adapters:
// repositories bound to a unit of work, and the domain event publisher.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ErrObjectNotFound for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate reads the order and holds its row lock until the transaction ends.
	// Concurrent assignments of the same order serialize here.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
