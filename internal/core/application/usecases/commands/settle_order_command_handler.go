package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/pkg/errs"
)

// SettleOrderCommandHandler credits a partner's wallet for a delivered order.
//
// The wallet row lock serializes settlements of one partner. Under that lock the
// handler looks for an earlier credit of the same order; if there is one nothing
// is written. Otherwise balance and total earned grow by the order's partner
// payout, a credit transaction is appended and the partner's delivery counter is
// incremented, all in one transaction.
//
// A missing wallet or an unknown order means upstream provisioning is broken. Those
// are reported as errs.ErrIntegrityViolation and logged; callers must not retry them.
type SettleOrderCommandHandler struct {
	uowFactory SettleUoWFactory
	timeout    time.Duration
	logger     *slog.Logger
}

func NewSettleOrderCommandHandler(
	uowFactory SettleUoWFactory,
	timeout time.Duration,
	logger *slog.Logger,
) SettleOrderCommandHandler {
	return SettleOrderCommandHandler{
		uowFactory: uowFactory,
		timeout:    timeout,
		logger:     logger.With("component", "settle-order"),
	}
}

func (h SettleOrderCommandHandler) Handle(ctx context.Context, cmd SettleOrderCommand) (SettleOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SettleOrderResult{}, err
	}

	ctx, cancel := operationContext(ctx, h.timeout)
	defer cancel()

	res, err := h.settle(ctx, cmd)
	if errors.Is(err, errs.ErrIntegrityViolation) {
		h.logger.ErrorContext(ctx, "settlement integrity violation",
			"order_id", cmd.OrderID().String(),
			"partner_id", cmd.PartnerID().String(),
			"error", err,
		)
	}
	return res, classify("settle order", err)
}

func (h SettleOrderCommandHandler) settle(ctx context.Context, cmd SettleOrderCommand) (SettleOrderResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SettleOrderResult{}, infra("begin settlement", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	walletRepo := uow.WalletRepository()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return SettleOrderResult{}, errs.NewIntegrityViolationErrorWithCause(
			fmt.Sprintf("settlement references unknown order %s", cmd.OrderID()), err)
	}
	if err != nil {
		return SettleOrderResult{}, err
	}

	if err = o.ValidateSettle(cmd.PartnerID()); err != nil {
		return SettleOrderResult{}, err
	}

	w, err := walletRepo.GetByPartnerForUpdate(ctx, cmd.PartnerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return SettleOrderResult{}, errs.NewIntegrityViolationErrorWithCause(
			fmt.Sprintf("partner %s has no wallet", cmd.PartnerID()), err)
	}
	if err != nil {
		return SettleOrderResult{}, err
	}

	prior, err := walletRepo.FindCredit(ctx, w.ID(), o.ID())
	switch {
	case err == nil:
		h.logger.InfoContext(ctx, "order already settled",
			"order_id", o.ID().String(),
			"amount", prior.Amount.String(),
		)
		return SettleOrderResult{AlreadySettled: true, Amount: prior.Amount, Balance: w.Balance()}, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return SettleOrderResult{}, err
	}

	amount := o.Fees().PartnerPayout
	txn, err := w.Credit(o.ID(), amount, time.Now().UTC())
	if err != nil {
		return SettleOrderResult{}, err
	}

	if err = walletRepo.Update(ctx, w); err != nil {
		return SettleOrderResult{}, err
	}
	if err = walletRepo.AddTransaction(ctx, txn); err != nil {
		return SettleOrderResult{}, err
	}
	if err = uow.PartnerRepository().IncrementDeliveries(ctx, cmd.PartnerID()); err != nil {
		return SettleOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SettleOrderResult{}, infra("commit settlement", err)
	}

	h.logger.InfoContext(ctx, "order settled",
		"order_id", o.ID().String(),
		"partner_id", cmd.PartnerID().String(),
		"amount", amount.String(),
	)
	return SettleOrderResult{Success: true, Amount: amount, Balance: w.Balance()}, nil
}
