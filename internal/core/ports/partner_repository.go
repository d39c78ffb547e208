package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// PartnerRepository persists partners and answers the directory question
// "who can take an order right now".
type PartnerRepository interface {
	Add(ctx context.Context, aggregate *partner.Partner) error

	Update(ctx context.Context, aggregate *partner.Partner) error

	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// ListAvailable returns every partner that is active, online, has a location and
	// is not referenced by any order in an active status. The result is unordered and
	// is recomputed on each call.
	//
	// Business rules:
	//   - partners with no orders: available
	//   - partners whose orders are all delivered, cancelled or rejected: available
	//   - partners with an accepted, preparing, ready or picked_up order: busy
	ListAvailable(ctx context.Context) ([]*partner.Partner, error)

	// GetForUpdate reads the partner and holds its row lock until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// IsOccupied reports whether an active order references the partner.
	// Call it after GetForUpdate to re-check a candidate chosen from a stale read.
	IsOccupied(ctx context.Context, id kernel.UUID) (bool, error)

	// IncrementDeliveries adds one to the lifetime counter in a single UPDATE.
	IncrementDeliveries(ctx context.Context, id kernel.UUID) error
}
