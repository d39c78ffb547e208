package queries

import (
	"cmp"
	"context"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// availablePartnersSQL is the directory anti-join: partners that are active, online,
// located and not referenced by any order in an active status.
const availablePartnersSQL = `
	SELECT
		p.id,
		p.name,
		p.vehicle_type,
		p.current_lat,
		p.current_lng,
		p.total_deliveries
	FROM partners p
	LEFT JOIN orders o
		ON o.partner_id = p.id
		AND o.status IN ?
	WHERE p.is_active
		AND p.is_online
		AND p.current_lat IS NOT NULL
		AND p.current_lng IS NOT NULL
		AND o.id IS NULL
	ORDER BY p.id
`

type GetAvailablePartnersQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailablePartnersQueryHandler(db *gorm.DB) GetAvailablePartnersQueryHandler {
	return GetAvailablePartnersQueryHandler{db: db}
}

func (h GetAvailablePartnersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePartnersQuery,
) ([]GetAvailablePartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners := make([]GetAvailablePartnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(availablePartnersSQL, order.ActiveStatusNames()).Rows()
	if err != nil {
		return nil, pgerr.Translate("list available partners", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p        GetAvailablePartnersQueryResponse
			id       uuid.UUID
			lat, lng float64
		)

		if err = rows.Scan(&id, &p.Name, &p.VehicleType, &lat, &lng, &p.TotalDeliveries); err != nil {
			return nil, pgerr.Translate("scan available partner", err)
		}

		if p.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if p.Location, err = kernel.NewLocation(lat, lng); err != nil {
			return nil, err
		}

		if near := query.Near(); near != nil {
			km, distErr := near.DistanceKm(p.Location)
			if distErr != nil {
				return nil, distErr
			}
			p.DistanceKm = &km
		}

		partners = append(partners, p)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate("list available partners", err)
	}

	if query.Near() != nil {
		slices.SortStableFunc(partners, func(a, b GetAvailablePartnersQueryResponse) int {
			return cmp.Compare(*a.DistanceKm, *b.DistanceKm)
		})
	}

	return partners, nil
}
