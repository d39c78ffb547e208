package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies a lifecycle transition under the order row
// lock and appends the audit entry. Cash on delivery is marked paid on delivery.
//
// Assignment is not triggered here; the order-management side calls assign once
// the order is accepted.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	timeout    time.Duration
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, timeout time.Duration) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		timeout:    timeout,
	}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	ctx, cancel := operationContext(ctx, h.timeout)
	defer cancel()

	status, err := h.change(ctx, cmd)
	return status, classify("change order status", err)
}

func (h ChangeOrderStatusCommandHandler) change(ctx context.Context, cmd ChangeOrderStatusCommand) (order.Status, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, infra("begin status change", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	now := time.Now().UTC()
	if err = o.ChangeStatus(cmd.Status(), now); err != nil {
		return order.Unknown, err
	}
	if o.Status() == order.Delivered && o.PaymentMethod() == order.PaymentCOD && o.PaymentStatus() == order.PaymentPending {
		if err = o.MarkPaid(now); err != nil {
			return order.Unknown, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}

	entry := order.NewStatusLogEntry(o.ID(), o.Status().String(), order.StatusMessage(o.Status()), now)
	if err = uow.StatusLogRepository().Append(ctx, entry); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, infra("commit status change", err)
	}

	return o.Status(), nil
}
