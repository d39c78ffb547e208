// Package walletrepo maps wallets and their append-only ledger.
package walletrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PartnerID   uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Balance     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TotalEarned decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0;check:chk_wallets_earned_covers_balance,total_earned >= balance"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (WalletDTO) TableName() string {
	return "wallets"
}

type TransactionDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WalletID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	OrderID     *uuid.UUID      `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Kind        string          `gorm:"type:text;not null"`
	Description string
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (TransactionDTO) TableName() string {
	return "transactions"
}

func walletFromDomain(w *wallet.Wallet) WalletDTO {
	return WalletDTO{
		ID:          w.ID().Bytes(),
		PartnerID:   w.PartnerID().Bytes(),
		Balance:     w.Balance(),
		TotalEarned: w.TotalEarned(),
	}
}

func walletToDomain(dto WalletDTO) (*wallet.Wallet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}
	return wallet.RestoreWallet(id, partnerID, dto.Balance, dto.TotalEarned)
}

func transactionFromDomain(t wallet.Transaction) TransactionDTO {
	dto := TransactionDTO{
		ID:          t.ID.Bytes(),
		WalletID:    t.WalletID.Bytes(),
		Amount:      t.Amount,
		Kind:        string(t.Kind),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
	if t.OrderID != nil {
		raw := t.OrderID.Bytes()
		dto.OrderID = &raw
	}
	return dto
}

func transactionToDomain(dto TransactionDTO) (wallet.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return wallet.Transaction{}, err
	}
	walletID, err := kernel.UUIDFromBytes(dto.WalletID[:])
	if err != nil {
		return wallet.Transaction{}, err
	}
	kind, err := wallet.ParseKind(dto.Kind)
	if err != nil {
		return wallet.Transaction{}, err
	}

	t := wallet.Transaction{
		ID:          id,
		WalletID:    walletID,
		Amount:      dto.Amount,
		Kind:        kind,
		Description: dto.Description,
		CreatedAt:   dto.CreatedAt,
	}
	if dto.OrderID != nil {
		orderID, err := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if err != nil {
			return wallet.Transaction{}, err
		}
		t.OrderID = &orderID
	}
	return t, nil
}
