package wallet

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Kind tells whether a transaction adds to or takes from the balance.
type Kind string

const (
	KindCredit Kind = "credit"
	KindDebit  Kind = "debit"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindCredit, KindDebit:
		return k, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not credit or debit", s))
	}
}

// Transaction is an immutable ledger line. Transactions are only ever appended.
type Transaction struct {
	ID          kernel.UUID
	WalletID    kernel.UUID
	OrderID     *kernel.UUID
	Amount      decimal.Decimal
	Kind        Kind
	Description string
	CreatedAt   time.Time
}

// Signed returns the amount as it contributes to the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// IsCreditFor reports whether t is the settlement credit for orderID.
func (t Transaction) IsCreditFor(orderID kernel.UUID) bool {
	return t.Kind == KindCredit && t.OrderID != nil && t.OrderID.IsEqual(orderID)
}
