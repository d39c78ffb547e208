package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/wallet"
)

// WalletRepository persists wallets and their append-only transactions.
type WalletRepository interface {
	Add(ctx context.Context, aggregate *wallet.Wallet) error

	// Update writes balance and total earned together.
	Update(ctx context.Context, aggregate *wallet.Wallet) error

	GetByPartner(ctx context.Context, partnerID kernel.UUID) (*wallet.Wallet, error)

	// GetByPartnerForUpdate locks the wallet row; settlements of one wallet serialize here.
	GetByPartnerForUpdate(ctx context.Context, partnerID kernel.UUID) (*wallet.Wallet, error)

	// FindCredit returns the credit written for orderID, or errs.ErrObjectNotFound.
	FindCredit(ctx context.Context, walletID, orderID kernel.UUID) (wallet.Transaction, error)

	AddTransaction(ctx context.Context, txn wallet.Transaction) error

	// ListTransactions returns the wallet's ledger, newest first.
	ListTransactions(ctx context.Context, walletID kernel.UUID) ([]wallet.Transaction, error)
}
