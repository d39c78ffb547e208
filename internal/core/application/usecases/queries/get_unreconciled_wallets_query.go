package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetUnreconciledWalletsQueryIsNotConstructed = errors.New(
	"GetUnreconciledWalletsQuery must be created via NewGetUnreconciledWalletsQuery constructor",
)

// GetUnreconciledWalletsQuery finds wallets whose stored balance differs from the
// signed sum of their transactions, or whose total earned is below the balance.
// A healthy ledger returns nothing.
type GetUnreconciledWalletsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetUnreconciledWalletsQuery() GetUnreconciledWalletsQuery {
	return GetUnreconciledWalletsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetUnreconciledWalletsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnreconciledWalletsQueryIsNotConstructed)
}

type GetUnreconciledWalletsQueryResponse struct {
	WalletID    kernel.UUID
	PartnerID   kernel.UUID
	Balance     decimal.Decimal
	TotalEarned decimal.Decimal
	LedgerSum   decimal.Decimal
}
