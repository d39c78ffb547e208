package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// AssignPartnerCommandHandler attaches the nearest free partner to an order.
//
// The critical section is the order row and the chosen partner row, both locked
// with SELECT ... FOR UPDATE. Candidates come from an unlocked directory read, so
// each one is re-checked after its row is locked; a candidate that became busy or
// went offline is skipped in favour of the next nearest. The whole assignment
// commits or nothing does.
//
// Example:
//
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrTransient):
//	    // retry later
//	case err != nil:
//	    return err
//	case !res.Assigned:
//	    // nobody free right now
//	}
type AssignPartnerCommandHandler struct {
	uowFactory AssignUoWFactory
	dispatcher services.PartnerDispatcher
	timeout    time.Duration
	logger     *slog.Logger
}

func NewAssignPartnerCommandHandler(
	uowFactory AssignUoWFactory,
	timeout time.Duration,
	logger *slog.Logger,
) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewPartnerDispatcher(),
		timeout:    timeout,
		logger:     logger.With("component", "assign-partner"),
	}
}

func (h AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) (AssignPartnerResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignPartnerResult{}, err
	}

	ctx, cancel := operationContext(ctx, h.timeout)
	defer cancel()

	res, err := h.assign(ctx, cmd)
	return res, classify("assign partner", err)
}

func (h AssignPartnerCommandHandler) assign(ctx context.Context, cmd AssignPartnerCommand) (AssignPartnerResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignPartnerResult{}, infra("begin assignment", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return AssignPartnerResult{}, err
	}

	if current := o.Partner(); current != nil {
		return AssignPartnerResult{PartnerID: current, Assigned: true, AlreadyAssigned: true}, nil
	}

	if err = o.ValidateAssign(); err != nil {
		return AssignPartnerResult{}, err
	}

	available, err := partnerRepo.ListAvailable(ctx)
	if err != nil {
		return AssignPartnerResult{}, err
	}

	candidates, err := h.dispatcher.Rank(cmd.Shop(), available)
	if err != nil {
		return AssignPartnerResult{}, err
	}

	for _, c := range candidates {
		locked, err := partnerRepo.GetForUpdate(ctx, c.Partner.ID())
		if err != nil {
			return AssignPartnerResult{}, err
		}
		if !locked.IsDispatchable() {
			h.logger.DebugContext(ctx, "candidate no longer dispatchable", "partner_id", locked.ID().String())
			continue
		}

		occupied, err := partnerRepo.IsOccupied(ctx, locked.ID())
		if err != nil {
			return AssignPartnerResult{}, err
		}
		if occupied {
			h.logger.DebugContext(ctx, "candidate became busy", "partner_id", locked.ID().String())
			continue
		}

		now := time.Now().UTC()
		if err = h.dispatcher.Assign(o, services.Candidate{Partner: locked, DistanceKm: c.DistanceKm}, now); err != nil {
			return AssignPartnerResult{}, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return AssignPartnerResult{}, err
		}

		entry := order.NewStatusLogEntry(o.ID(), o.Status().String(), order.AssignedMessage(c.DistanceKm), now)
		if err = uow.StatusLogRepository().Append(ctx, entry); err != nil {
			return AssignPartnerResult{}, err
		}

		if err = uow.Commit(ctx); err != nil {
			return AssignPartnerResult{}, infra("commit assignment", err)
		}

		partnerID := locked.ID()
		h.logger.InfoContext(ctx, "partner assigned",
			"order_id", o.ID().String(),
			"partner_id", partnerID.String(),
			"distance_km", c.DistanceKm,
		)
		return AssignPartnerResult{PartnerID: &partnerID, Assigned: true, DistanceKm: c.DistanceKm}, nil
	}

	h.logger.InfoContext(ctx, "no partner available", "order_id", o.ID().String(), "candidates", len(candidates))
	return AssignPartnerResult{}, nil
}
