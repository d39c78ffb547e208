// Package statuslogrepo stores the order audit trail.
package statuslogrepo

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatusLogDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Status    string    `gorm:"type:text;not null"`
	Message   string
	CreatedAt time.Time `gorm:"not null"`
}

func (StatusLogDTO) TableName() string {
	return "order_status_logs"
}

type GormStatusLogRepository struct {
	db *gorm.DB
}

func NewGormStatusLogRepository(db *gorm.DB) *GormStatusLogRepository {
	return &GormStatusLogRepository{db: db}
}

func (r *GormStatusLogRepository) Append(ctx context.Context, entry order.StatusLogEntry) error {
	dto := StatusLogDTO{
		ID:        entry.ID.Bytes(),
		OrderID:   entry.OrderID.Bytes(),
		Status:    entry.Status,
		Message:   entry.Message,
		CreatedAt: entry.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("append status log", err)
	}
	return nil
}

func (r *GormStatusLogRepository) List(ctx context.Context, orderID kernel.UUID) ([]order.StatusLogEntry, error) {
	var dtos []StatusLogDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate("list status log", err)
	}

	entries := make([]order.StatusLogEntry, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		entries = append(entries, order.StatusLogEntry{
			ID:        id,
			OrderID:   orderID,
			Status:    dto.Status,
			Message:   dto.Message,
			CreatedAt: dto.CreatedAt,
		})
	}
	return entries, nil
}
