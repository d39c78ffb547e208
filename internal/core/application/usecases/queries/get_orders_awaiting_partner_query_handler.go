package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrdersAwaitingPartnerQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersAwaitingPartnerQueryHandler(db *gorm.DB) GetOrdersAwaitingPartnerQueryHandler {
	return GetOrdersAwaitingPartnerQueryHandler{db: db}
}

func (h GetOrdersAwaitingPartnerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersAwaitingPartnerQuery,
) ([]GetOrdersAwaitingPartnerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersAwaitingPartnerQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			pickup_lat,
			pickup_lng,
			created_at
		FROM orders
		WHERE partner_id IS NULL
			AND type = ?
			AND status IN ?
			AND pickup_lat IS NOT NULL
			AND pickup_lng IS NOT NULL
		ORDER BY created_at, id
		LIMIT ?
	`, string(order.TypeDelivery), order.ActiveStatusNames(), query.Limit()).Rows()
	if err != nil {
		return nil, pgerr.Translate("list orders awaiting partner", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			o        GetOrdersAwaitingPartnerQueryResponse
			id       uuid.UUID
			lat, lng float64
		)
		if err = rows.Scan(&id, &o.Number, &o.Status, &lat, &lng, &o.CreatedAt); err != nil {
			return nil, pgerr.Translate("scan order awaiting partner", err)
		}
		if o.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if o.PickupLocation, err = kernel.NewLocation(lat, lng); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate("list orders awaiting partner", err)
	}

	return orders, nil
}
