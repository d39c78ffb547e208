package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	DefaultStatementLimit = 50
	MaxStatementLimit     = 500
)

var ErrGetWalletStatementQueryIsNotConstructed = errors.New(
	"GetWalletStatementQuery must be created via NewGetWalletStatementQuery constructor",
)

// GetWalletStatementQuery reads a partner's balance, lifetime earnings and latest
// ledger lines. LedgerSum covers the whole ledger, not only the returned page, so it
// can be compared with Balance.
type GetWalletStatementQuery struct {
	partnerID kernel.UUID
	limit     int
	guard     guard.ConstructorGuard
}

// NewGetWalletStatementQuery builds the query; limit 0 means DefaultStatementLimit.
func NewGetWalletStatementQuery(partnerID kernel.UUID, limit int) (GetWalletStatementQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetWalletStatementQuery{}, errs.NewValueIsRequiredErrorWithCause("partnerId", err)
	}
	if limit == 0 {
		limit = DefaultStatementLimit
	}
	if limit < 1 || limit > MaxStatementLimit {
		return GetWalletStatementQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxStatementLimit)
	}

	return GetWalletStatementQuery{partnerID: partnerID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetWalletStatementQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletStatementQueryIsNotConstructed)
}

func (q GetWalletStatementQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

func (q GetWalletStatementQuery) Limit() int {
	return q.limit
}

type WalletTransactionView struct {
	ID          kernel.UUID
	OrderID     *kernel.UUID
	Amount      decimal.Decimal
	Kind        string
	Description string
	CreatedAt   time.Time
}

type GetWalletStatementQueryResponse struct {
	WalletID     kernel.UUID
	PartnerID    kernel.UUID
	Balance      decimal.Decimal
	TotalEarned  decimal.Decimal
	LedgerSum    decimal.Decimal
	Transactions []WalletTransactionView
}

// Reconciled reports whether the stored balance equals the signed ledger sum.
func (r GetWalletStatementQueryResponse) Reconciled() bool {
	return r.Balance.Equal(r.LedgerSum)
}
