package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand asks for the nearest free partner to be attached to an order
// that is picked up at shop.
//
// Example:
//
//	shop, _ := kernel.NewLocation(19.0760, 72.8777)
//	cmd, err := NewAssignPartnerCommand(orderID, shop)
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
type AssignPartnerCommand struct {
	orderID kernel.UUID
	shop    kernel.Location

	guard guard.ConstructorGuard
}

func NewAssignPartnerCommand(orderID kernel.UUID, shop kernel.Location) (AssignPartnerCommand, error) {
	cmd := AssignPartnerCommand{
		orderID: orderID,
		shop:    shop,
		guard:   guard.NewConstructorGuard(),
	}

	var errList []error
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if err := shop.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("shopLocation", err))
	}
	if err := errors.Join(errList...); err != nil {
		return AssignPartnerCommand{}, err
	}

	return cmd, nil
}

func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

func (c AssignPartnerCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignPartnerCommand) Shop() kernel.Location {
	return c.shop
}

// AssignPartnerResult is the outcome of an assignment. Assigned is false when no
// partner was free; that is an expected outcome, not an error.
type AssignPartnerResult struct {
	PartnerID  *kernel.UUID
	Assigned   bool
	DistanceKm float64
	// AlreadyAssigned is set when the order had a partner before this call.
	AlreadyAssigned bool
}
