// Package partnerrepo maps the Partner aggregate to the partners table and
// answers the directory and occupancy questions asked during dispatch.
package partnerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

type PartnerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"not null"`
	Phone           string
	VehicleType     string `gorm:"type:text;not null;default:'bike'"`
	IsOnline        bool   `gorm:"not null;default:false"`
	CurrentLat      *float64
	CurrentLng      *float64
	TotalDeliveries int       `gorm:"not null;default:0;check:chk_partners_total_deliveries,total_deliveries >= 0"`
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

func (PartnerDTO) TableName() string {
	return "partners"
}

func fromDomain(p *partner.Partner) PartnerDTO {
	dto := PartnerDTO{
		ID:              p.ID().Bytes(),
		Name:            p.Name(),
		Phone:           p.Phone(),
		VehicleType:     string(p.VehicleType()),
		IsOnline:        p.IsOnline(),
		TotalDeliveries: p.TotalDeliveries(),
		IsActive:        p.IsActive(),
	}
	if loc := p.Location(); loc != nil {
		lat, lng := loc.Latitude(), loc.Longitude()
		dto.CurrentLat, dto.CurrentLng = &lat, &lng
	}
	return dto
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var loc *kernel.Location
	if dto.CurrentLat != nil && dto.CurrentLng != nil {
		l, locErr := kernel.NewLocation(*dto.CurrentLat, *dto.CurrentLng)
		if locErr != nil {
			return nil, locErr
		}
		loc = &l
	}

	return partner.RestorePartner(partner.State{
		ID:              id,
		Name:            dto.Name,
		Phone:           dto.Phone,
		VehicleType:     partner.VehicleType(dto.VehicleType),
		Online:          dto.IsOnline,
		Location:        loc,
		TotalDeliveries: dto.TotalDeliveries,
		Active:          dto.IsActive,
	})
}
