package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Type tells whether the shop hands the order to a partner or the customer collects it.
type Type string

const (
	TypeDelivery Type = "delivery"
	TypePickup   Type = "pickup"
)

// ParseType validates the wire form of an order type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	if t != TypeDelivery && t != TypePickup {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not delivery or pickup", string(t)))
	}
	return nil
}

func (t Type) String() string {
	return string(t)
}

// PaymentMethod is how the customer pays. UPI payments are confirmed out of band.
type PaymentMethod string

const (
	PaymentCOD PaymentMethod = "cod"
	PaymentUPI PaymentMethod = "upi"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if m != PaymentCOD && m != PaymentUPI {
		return "", errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not cod or upi", s))
	}
	return m, nil
}

// PaymentStatus tracks settlement with the customer, independent of partner payout.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch p := PaymentStatus(s); p {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return p, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a payment status", s))
	}
}
