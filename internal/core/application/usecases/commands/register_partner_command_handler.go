package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/model/wallet"
)

// RegisterPartnerResult identifies the new partner and the wallet provisioned for it.
type RegisterPartnerResult struct {
	PartnerID kernel.UUID
	WalletID  kernel.UUID
}

// RegisterPartnerCommandHandler stores a partner together with its empty wallet, so
// that settlement never meets a partner without one.
type RegisterPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
	timeout    time.Duration
}

func NewRegisterPartnerCommandHandler(uowFactory PartnerUoWFactory, timeout time.Duration) RegisterPartnerCommandHandler {
	return RegisterPartnerCommandHandler{
		uowFactory: uowFactory,
		timeout:    timeout,
	}
}

func (h RegisterPartnerCommandHandler) Handle(ctx context.Context, cmd RegisterPartnerCommand) (RegisterPartnerResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterPartnerResult{}, err
	}

	ctx, cancel := operationContext(ctx, h.timeout)
	defer cancel()

	res, err := h.register(ctx, cmd)
	return res, classify("register partner", err)
}

func (h RegisterPartnerCommandHandler) register(ctx context.Context, cmd RegisterPartnerCommand) (RegisterPartnerResult, error) {
	p, err := partner.NewPartner(kernel.NewUUID(), cmd.Name(), cmd.Phone(), cmd.VehicleType())
	if err != nil {
		return RegisterPartnerResult{}, err
	}

	w, err := wallet.NewWallet(kernel.NewUUID(), p.ID())
	if err != nil {
		return RegisterPartnerResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RegisterPartnerResult{}, infra("begin partner registration", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartnerRepository().Add(ctx, p); err != nil {
		return RegisterPartnerResult{}, err
	}
	if err = uow.WalletRepository().Add(ctx, w); err != nil {
		return RegisterPartnerResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RegisterPartnerResult{}, infra("commit partner registration", err)
	}

	return RegisterPartnerResult{PartnerID: p.ID(), WalletID: w.ID()}, nil
}
