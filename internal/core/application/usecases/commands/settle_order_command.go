package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSettleOrderCommandIsNotConstructed = errors.New(
	"SettleOrderCommand must be created via NewSettleOrderCommand constructor",
)

// SettleOrderCommand pays a partner for a delivered order.
type SettleOrderCommand struct {
	orderID   kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSettleOrderCommand(orderID, partnerID kernel.UUID) (SettleOrderCommand, error) {
	var errList []error
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if err := partnerID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("partnerId", err))
	}
	if err := errors.Join(errList...); err != nil {
		return SettleOrderCommand{}, err
	}

	return SettleOrderCommand{
		orderID:   orderID,
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SettleOrderCommand) Validate() error {
	return c.guard.Validate(ErrSettleOrderCommandIsNotConstructed)
}

func (c SettleOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SettleOrderCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// SettleOrderResult reports the credit. A repeated settlement of the same order
// returns Success=false, AlreadySettled=true and the amount credited the first time.
type SettleOrderResult struct {
	Success        bool
	AlreadySettled bool
	Amount         decimal.Decimal
	Balance        decimal.Decimal
}
