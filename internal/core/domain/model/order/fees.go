package order

import (
	"errors"

	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Fees is the monetary breakdown of an order, computed once at creation.
//
// Invariants:
//   - TotalAmount = Subtotal + DeliveryFee + PlatformFee
//   - PlatformEarnings = CommissionAmount + (DeliveryFee - PartnerPayout) + PlatformFee
type Fees struct {
	Subtotal         decimal.Decimal
	DeliveryFee      decimal.Decimal
	PlatformFee      decimal.Decimal
	TotalAmount      decimal.Decimal
	CommissionAmount decimal.Decimal
	PartnerPayout    decimal.Decimal
	PlatformEarnings decimal.Decimal
}

// Validate checks the breakdown's arithmetic so that restored or hand-built values
// cannot carry a payout that disagrees with the totals.
func (f Fees) Validate() error {
	var errList []error

	if !f.TotalAmount.Equal(f.Subtotal.Add(f.DeliveryFee).Add(f.PlatformFee)) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"totalAmount", errors.New("must equal subtotal + delivery fee + platform fee")))
	}

	earnings := f.CommissionAmount.Add(f.DeliveryFee.Sub(f.PartnerPayout)).Add(f.PlatformFee)
	if !f.PlatformEarnings.Equal(earnings) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"platformEarnings", errors.New("must equal commission + delivery margin + platform fee")))
	}

	if f.PartnerPayout.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"partnerPayout", errors.New("must not be negative")))
	}

	return errors.Join(errList...)
}
