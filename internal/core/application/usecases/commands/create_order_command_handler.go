package commands

import (
	"context"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// CreateOrderCommandHandler prices and stores a new order in Placed status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	calculator services.FeeCalculator
	timeout    time.Duration
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	calculator services.FeeCalculator,
	timeout time.Duration,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		timeout:    timeout,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	ctx, cancel := operationContext(ctx, h.timeout)
	defer cancel()

	res, err := h.create(ctx, cmd)
	return res, classify("create order", err)
}

func (h CreateOrderCommandHandler) create(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	pct := h.calculator.Policy().DefaultCommissionPercent
	if cmd.CommissionPercent() != nil {
		pct = *cmd.CommissionPercent()
	}
	fees, err := h.calculator.Calculate(cmd.Subtotal(), pct, cmd.Type())
	if err != nil {
		return CreateOrderResult{}, err
	}

	id := kernel.NewUUID()
	now := time.Now().UTC()
	o, err := order.NewOrder(id, OrderNumber(id), cmd.ShopID(), cmd.CustomerID(),
		cmd.Type(), cmd.PaymentMethod(), fees, cmd.PickupLocation(), now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, infra("begin order creation", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	entry := order.NewStatusLogEntry(o.ID(), o.Status().String(), "Order placed", now)
	if err = uow.StatusLogRepository().Append(ctx, entry); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, infra("commit order creation", err)
	}

	return CreateOrderResult{OrderID: o.ID(), Number: o.Number(), Fees: fees}, nil
}

// OrderNumber derives the human-facing order number from the order ID.
func OrderNumber(id kernel.UUID) string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:10])
}
