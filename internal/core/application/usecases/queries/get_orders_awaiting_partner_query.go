package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrdersAwaitingPartnerQueryIsNotConstructed = errors.New(
	"GetOrdersAwaitingPartnerQuery must be created via NewGetOrdersAwaitingPartnerQuery constructor",
)

// GetOrdersAwaitingPartnerQuery lists active delivery orders that still have no
// partner and whose pickup location is known, oldest first.
type GetOrdersAwaitingPartnerQuery struct {
	limit int
	guard guard.ConstructorGuard
}

func NewGetOrdersAwaitingPartnerQuery(limit int) (GetOrdersAwaitingPartnerQuery, error) {
	if limit < 1 {
		return GetOrdersAwaitingPartnerQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, "∞")
	}
	return GetOrdersAwaitingPartnerQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersAwaitingPartnerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersAwaitingPartnerQueryIsNotConstructed)
}

func (q GetOrdersAwaitingPartnerQuery) Limit() int {
	return q.limit
}

type GetOrdersAwaitingPartnerQueryResponse struct {
	ID             kernel.UUID
	Number         string
	Status         string
	PickupLocation kernel.Location
	CreatedAt      time.Time
}
