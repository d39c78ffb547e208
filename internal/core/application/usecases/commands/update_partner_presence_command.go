package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdatePartnerPresenceCommandIsNotConstructed = errors.New(
		"UpdatePartnerPresenceCommand must be created via NewUpdatePartnerPresenceCommand constructor",
	)
	ErrLocationIsRequiredToGoOnline = errs.NewValueIsRequiredErrorWithCause(
		"location", errors.New("a partner without a known location must report one to go online"))
)

// UpdatePartnerPresenceCommand toggles a partner online or offline and optionally
// reports a new position.
type UpdatePartnerPresenceCommand struct {
	partnerID kernel.UUID
	online    bool
	location  *kernel.Location

	guard guard.ConstructorGuard
}

func NewUpdatePartnerPresenceCommand(
	partnerID kernel.UUID,
	online bool,
	location *kernel.Location,
) (UpdatePartnerPresenceCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return UpdatePartnerPresenceCommand{}, errs.NewValueIsRequiredErrorWithCause("partnerId", err)
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return UpdatePartnerPresenceCommand{}, err
		}
	}

	return UpdatePartnerPresenceCommand{
		partnerID: partnerID,
		online:    online,
		location:  location,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePartnerPresenceCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerPresenceCommandIsNotConstructed)
}

func (c UpdatePartnerPresenceCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c UpdatePartnerPresenceCommand) Online() bool {
	return c.online
}

func (c UpdatePartnerPresenceCommand) Location() *kernel.Location {
	return c.location
}
