package commands

import (
	"context"
	"time"
)

// UpdatePartnerPresenceCommandHandler applies a presence change. Going offline does
// not touch the partner's current order; occupancy is derived from orders.
type UpdatePartnerPresenceCommandHandler struct {
	uowFactory PartnerUoWFactory
	timeout    time.Duration
}

func NewUpdatePartnerPresenceCommandHandler(
	uowFactory PartnerUoWFactory,
	timeout time.Duration,
) UpdatePartnerPresenceCommandHandler {
	return UpdatePartnerPresenceCommandHandler{
		uowFactory: uowFactory,
		timeout:    timeout,
	}
}

func (h UpdatePartnerPresenceCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerPresenceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ctx, cancel := operationContext(ctx, h.timeout)
	defer cancel()

	return classify("update partner presence", h.update(ctx, cmd))
}

func (h UpdatePartnerPresenceCommandHandler) update(ctx context.Context, cmd UpdatePartnerPresenceCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return infra("begin presence update", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	p, err := partnerRepo.GetForUpdate(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	switch loc := cmd.Location(); {
	case cmd.Online() && loc != nil:
		err = p.GoOnline(*loc)
	case cmd.Online() && p.Location() != nil:
		err = p.GoOnline(*p.Location())
	case cmd.Online():
		err = ErrLocationIsRequiredToGoOnline
	default:
		p.GoOffline()
		if loc != nil {
			err = p.UpdateLocation(*loc)
		}
	}
	if err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, p); err != nil {
		return err
	}

	return infra("commit presence update", uow.Commit(ctx))
}
