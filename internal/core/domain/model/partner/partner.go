package partner

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrPartnerIsNotConstructed is returned when using a Partner built outside NewPartner or RestorePartner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrPartnerIsInactive       = errs.NewValueIsInvalidErrorWithCause("active", errors.New("partner is deactivated"))
)

// VehicleType is informational only; dispatch ignores it.
type VehicleType string

const (
	VehicleBike    VehicleType = "bike"
	VehicleScooter VehicleType = "scooter"
	VehicleCycle   VehicleType = "cycle"
	VehicleCar     VehicleType = "car"
)

// Partner is a delivery partner.
//
// A partner is dispatchable when it is active, online and has a known location.
// Whether it is busy is not stored here: it is derived from the orders that
// reference it (see order.ActiveStatuses).
type Partner struct {
	id              kernel.UUID
	name            string
	phone           string
	vehicleType     VehicleType
	online          bool
	location        *kernel.Location
	totalDeliveries int
	active          bool
	guard           guard.ConstructorGuard
}

// NewPartner registers an offline, active partner with no known location.
//
// Example:
//
//	p, err := partner.NewPartner(kernel.NewUUID(), "Ravi", "+919800000001", partner.VehicleBike)
//	if err != nil {
//	    return err
//	}
//	err = p.GoOnline(loc)
func NewPartner(id kernel.UUID, name, phone string, vehicleType VehicleType) (*Partner, error) {
	p := &Partner{
		phone:       strings.TrimSpace(phone),
		vehicleType: vehicleType,
		active:      true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setID(id), p.setName(name)); err != nil {
		return nil, err
	}

	return p, nil
}

// State is the persisted form of a Partner.
type State struct {
	ID              kernel.UUID
	Name            string
	Phone           string
	VehicleType     VehicleType
	Online          bool
	Location        *kernel.Location
	TotalDeliveries int
	Active          bool
}

// RestorePartner rebuilds a partner from storage.
func RestorePartner(s State) (*Partner, error) {
	if err := s.ID.Validate(); err != nil {
		return nil, errs.NewIntegrityViolationErrorWithCause("partner", err)
	}
	if s.TotalDeliveries < 0 {
		return nil, errs.NewIntegrityViolationErrorWithCause(fmt.Sprintf("partner %s", s.ID),
			fmt.Errorf("total deliveries is %d", s.TotalDeliveries))
	}

	return &Partner{
		id:              s.ID,
		name:            s.Name,
		phone:           s.Phone,
		vehicleType:     s.VehicleType,
		online:          s.Online,
		location:        s.Location,
		totalDeliveries: s.TotalDeliveries,
		active:          s.Active,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Partner was built by a constructor.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

func (p *Partner) ID() kernel.UUID {
	return p.id
}

func (p *Partner) Name() string {
	return p.name
}

func (p *Partner) Phone() string {
	return p.phone
}

func (p *Partner) VehicleType() VehicleType {
	return p.vehicleType
}

func (p *Partner) IsOnline() bool {
	return p.online
}

func (p *Partner) IsActive() bool {
	return p.active
}

// Location returns the last reported position, nil if never reported.
func (p *Partner) Location() *kernel.Location {
	return p.location
}

func (p *Partner) TotalDeliveries() int {
	return p.totalDeliveries
}

// IsDispatchable reports whether the partner may be offered an order, occupancy aside.
func (p *Partner) IsDispatchable() bool {
	return p.active && p.online && p.location != nil
}

// GoOnline marks the partner online at loc.
func (p *Partner) GoOnline(loc kernel.Location) error {
	if !p.active {
		return ErrPartnerIsInactive
	}
	if err := p.UpdateLocation(loc); err != nil {
		return err
	}
	p.online = true
	return nil
}

// GoOffline keeps the last location; an offline partner is never dispatched.
func (p *Partner) GoOffline() {
	p.online = false
}

// UpdateLocation records a new position report.
func (p *Partner) UpdateLocation(loc kernel.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	p.location = &loc
	return nil
}

// Deactivate removes the partner from dispatch permanently. Partners are never deleted.
func (p *Partner) Deactivate() {
	p.active = false
	p.online = false
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}
