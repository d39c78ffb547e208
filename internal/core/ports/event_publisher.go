package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// EventPublisher hands committed domain events to the outside world.
// Implementations must be safe for concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
	Close() error
}
