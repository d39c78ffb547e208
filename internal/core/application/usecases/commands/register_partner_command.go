package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterPartnerCommandIsNotConstructed = errors.New(
	"RegisterPartnerCommand must be created via NewRegisterPartnerCommand constructor",
)

// RegisterPartnerCommand onboards a delivery partner.
type RegisterPartnerCommand struct {
	name        string
	phone       string
	vehicleType partner.VehicleType

	guard guard.ConstructorGuard
}

func NewRegisterPartnerCommand(name, phone string, vehicleType partner.VehicleType) (RegisterPartnerCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return RegisterPartnerCommand{}, errs.NewValueIsRequiredError("name")
	}
	if vehicleType == "" {
		vehicleType = partner.VehicleBike
	}

	return RegisterPartnerCommand{
		name:        name,
		phone:       strings.TrimSpace(phone),
		vehicleType: vehicleType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterPartnerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPartnerCommandIsNotConstructed)
}

func (c RegisterPartnerCommand) Name() string {
	return c.name
}

func (c RegisterPartnerCommand) Phone() string {
	return c.phone
}

func (c RegisterPartnerCommand) VehicleType() partner.VehicleType {
	return c.vehicleType
}
