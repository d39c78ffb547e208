package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order. The fee breakdown is computed by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(shopID, customerID, order.TypeDelivery, order.PaymentUPI,
//	    decimal.NewFromInt(400), nil, &shopLocation)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	shopID            kernel.UUID
	customerID        kernel.UUID
	orderType         order.Type
	paymentMethod     order.PaymentMethod
	subtotal          decimal.Decimal
	commissionPercent *decimal.Decimal
	pickupLocation    *kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. A nil commissionPercent means the
// policy default; a nil pickupLocation leaves retries of deferred assignment impossible.
func NewCreateOrderCommand(
	shopID, customerID kernel.UUID,
	orderType order.Type,
	paymentMethod order.PaymentMethod,
	subtotal decimal.Decimal,
	commissionPercent *decimal.Decimal,
	pickupLocation *kernel.Location,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderType:      orderType,
		paymentMethod:  paymentMethod,
		pickupLocation: pickupLocation,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShopID(shopID),
		cmd.setCustomerID(customerID),
		orderType.Validate(),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setSubtotal(subtotal),
		cmd.setCommissionPercent(commissionPercent),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ShopID() kernel.UUID { return c.shopID }
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateOrderCommand) Type() order.Type { return c.orderType }
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }
func (c CreateOrderCommand) Subtotal() decimal.Decimal { return c.subtotal }
func (c CreateOrderCommand) CommissionPercent() *decimal.Decimal { return c.commissionPercent }
func (c CreateOrderCommand) PickupLocation() *kernel.Location { return c.pickupLocation }

func (c *CreateOrderCommand) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}
	c.shopID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(m order.PaymentMethod) error {
	_, err := order.ParsePaymentMethod(string(m))
	return err
}

func (c *CreateOrderCommand) setSubtotal(subtotal decimal.Decimal) error {
	if !subtotal.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("subtotal", errors.New("must be greater than 0"))
	}
	c.subtotal = subtotal
	return nil
}

func (c *CreateOrderCommand) setCommissionPercent(pct *decimal.Decimal) error {
	if pct == nil {
		return nil
	}
	if err := services.ValidateCommissionPercent(*pct); err != nil {
		return err
	}
	c.commissionPercent = pct
	return nil
}

// CreateOrderResult identifies the placed order and its fees.
type CreateOrderResult struct {
	OrderID kernel.UUID
	Number  string
	Fees    order.Fees
}
