package partnerrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/pgerr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPartnerRepository implements ports.PartnerRepository using GORM.
type GormPartnerRepository struct {
	db *gorm.DB
}

func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add partner", err)
	}
	return nil
}

// Update writes presence and profile columns. total_deliveries is owned by
// IncrementDeliveries and is never written from the aggregate.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", "total_deliveries").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate("update partner", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", aggregate.ID())
	}
	return nil
}

func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormPartnerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormPartnerRepository) get(db *gorm.DB, id kernel.UUID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := db.Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id)
		}
		return nil, pgerr.Translate("load partner", err)
	}

	return toDomain(dto)
}

// ListAvailable finds dispatchable partners with an anti-join against active orders.
//
// SQL equivalent:
//
//	SELECT p.* FROM partners p
//	LEFT JOIN orders o ON o.partner_id = p.id AND o.status IN ('accepted', ...)
//	WHERE p.is_active AND p.is_online AND p.current_lat IS NOT NULL
//	  AND p.current_lng IS NOT NULL AND o.id IS NULL
func (r *GormPartnerRepository) ListAvailable(ctx context.Context) ([]*partner.Partner, error) {
	var dtos []PartnerDTO
	err := r.db.WithContext(ctx).
		Table("partners AS p").
		Select("p.*").
		Joins("LEFT JOIN orders o ON o.partner_id = p.id AND o.status IN ?", order.ActiveStatusNames()).
		Where("p.is_active AND p.is_online").
		Where("p.current_lat IS NOT NULL AND p.current_lng IS NOT NULL").
		Where("o.id IS NULL").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate("list available partners", err)
	}

	partners := make([]*partner.Partner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, nil
}

func (r *GormPartnerRepository) IsOccupied(ctx context.Context, id kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("orders").
		Where("partner_id = ? AND status IN ?", id.Bytes(), order.ActiveStatusNames()).
		Count(&count).Error
	if err != nil {
		return false, pgerr.Translate("check partner occupancy", err)
	}
	return count > 0, nil
}

func (r *GormPartnerRepository) IncrementDeliveries(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"total_deliveries": gorm.Expr("total_deliveries + ?", 1),
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return pgerr.Translate("increment partner deliveries", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", id)
	}
	return nil
}
