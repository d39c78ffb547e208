package services

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// FeePolicy holds the fee constants. All amounts are in whole currency units.
type FeePolicy struct {
	DeliveryFee              decimal.Decimal
	PlatformFee              decimal.Decimal
	PartnerPayout            decimal.Decimal
	FreeDeliveryThreshold    decimal.Decimal
	DefaultCommissionPercent decimal.Decimal
}

// DefaultFeePolicy: delivery 25, platform 5, partner payout 20, free delivery from 399,
// commission 15%.
func DefaultFeePolicy() FeePolicy {
	return FeePolicy{
		DeliveryFee:              decimal.NewFromInt(25),
		PlatformFee:              decimal.NewFromInt(5),
		PartnerPayout:            decimal.NewFromInt(20),
		FreeDeliveryThreshold:    decimal.NewFromInt(399),
		DefaultCommissionPercent: decimal.NewFromInt(15),
	}
}

func (p FeePolicy) Validate() error {
	var errList []error
	for name, v := range map[string]decimal.Decimal{
		"deliveryFee":           p.DeliveryFee,
		"platformFee":           p.PlatformFee,
		"partnerPayout":         p.PartnerPayout,
		"freeDeliveryThreshold": p.FreeDeliveryThreshold,
	} {
		if v.IsNegative() {
			errList = append(errList, errs.NewValueIsOutOfRangeError(name, v, 0, "∞"))
		}
	}
	if err := ValidateCommissionPercent(p.DefaultCommissionPercent); err != nil {
		errList = append(errList, err)
	}
	return errors.Join(errList...)
}

// ValidateCommissionPercent checks pct is within [0, 100].
func ValidateCommissionPercent(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return errs.NewValueIsOutOfRangeError("commissionPercent", pct, 0, 100)
	}
	return nil
}

// FeeCalculator computes an order's fee breakdown. It is pure and safe for concurrent use.
type FeeCalculator struct {
	policy FeePolicy
}

func NewFeeCalculator(policy FeePolicy) (FeeCalculator, error) {
	if err := policy.Validate(); err != nil {
		return FeeCalculator{}, err
	}
	return FeeCalculator{policy: policy}, nil
}

func (c FeeCalculator) Policy() FeePolicy {
	return c.policy
}

// Calculate returns the breakdown for subtotal at commissionPercent.
//
// Pickup orders pay no delivery fee and no partner payout. Delivery is free from
// FreeDeliveryThreshold up. Commission is rounded half-up to whole units. A type that
// is neither delivery nor pickup is rejected.
func (c FeeCalculator) Calculate(subtotal, commissionPercent decimal.Decimal, orderType order.Type) (order.Fees, error) {
	if err := orderType.Validate(); err != nil {
		return order.Fees{}, err
	}
	isDelivery := orderType == order.TypeDelivery

	deliveryFee := decimal.Zero
	if isDelivery && subtotal.LessThan(c.policy.FreeDeliveryThreshold) {
		deliveryFee = c.policy.DeliveryFee
	}

	payout := decimal.Zero
	if isDelivery {
		payout = c.policy.PartnerPayout
	}

	commission := RoundHalfUp(subtotal.Mul(commissionPercent).Div(hundred))
	platformFee := c.policy.PlatformFee

	return order.Fees{
		Subtotal:         subtotal,
		DeliveryFee:      deliveryFee,
		PlatformFee:      platformFee,
		TotalAmount:      subtotal.Add(deliveryFee).Add(platformFee),
		CommissionAmount: commission,
		PartnerPayout:    payout,
		PlatformEarnings: commission.Add(deliveryFee.Sub(payout)).Add(platformFee),
	}, nil
}

// RoundHalfUp rounds to a whole unit with .5 going up: floor(x + 0.5).
func RoundHalfUp(x decimal.Decimal) decimal.Decimal {
	return x.Add(half).Floor()
}
