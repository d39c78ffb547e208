package walletrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/pgerr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreditPerOrderIndex allows one settlement credit per (wallet, order).
const CreditPerOrderIndex = "ux_transactions_credit_per_order"

// GormWalletRepository implements ports.WalletRepository using GORM.
type GormWalletRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	Track(source kernel.EventSource)
}

func NewGormWalletRepository(db *gorm.DB, tracker aggregateTracker) *GormWalletRepository {
	return &GormWalletRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormWalletRepository) Add(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := walletFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add wallet", err)
	}

	r.tracker.Track(aggregate)
	return nil
}

func (r *GormWalletRepository) Update(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := walletFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WalletDTO{}).
		Where("id = ?", dto.ID).
		Select("balance", "total_earned", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate("update wallet", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("wallet", aggregate.ID())
	}

	r.tracker.Track(aggregate)
	return nil
}

func (r *GormWalletRepository) GetByPartner(ctx context.Context, partnerID kernel.UUID) (*wallet.Wallet, error) {
	return r.getByPartner(r.db.WithContext(ctx), partnerID)
}

func (r *GormWalletRepository) GetByPartnerForUpdate(ctx context.Context, partnerID kernel.UUID) (*wallet.Wallet, error) {
	return r.getByPartner(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), partnerID)
}

func (r *GormWalletRepository) getByPartner(db *gorm.DB, partnerID kernel.UUID) (*wallet.Wallet, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	var dto WalletDTO
	if err := db.Take(&dto, "partner_id = ?", partnerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wallet", partnerID)
		}
		return nil, pgerr.Translate("load wallet", err)
	}

	return walletToDomain(dto)
}

func (r *GormWalletRepository) FindCredit(ctx context.Context, walletID, orderID kernel.UUID) (wallet.Transaction, error) {
	var dto TransactionDTO
	err := r.db.WithContext(ctx).
		Where("wallet_id = ? AND order_id = ? AND kind = ?", walletID.Bytes(), orderID.Bytes(), string(wallet.KindCredit)).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return wallet.Transaction{}, errs.NewObjectNotFoundError("credit", orderID)
		}
		return wallet.Transaction{}, pgerr.Translate("find credit", err)
	}

	return transactionToDomain(dto)
}

func (r *GormWalletRepository) AddTransaction(ctx context.Context, txn wallet.Transaction) error {
	dto := transactionFromDomain(txn)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add transaction", err, CreditPerOrderIndex)
	}
	return nil
}

func (r *GormWalletRepository) ListTransactions(ctx context.Context, walletID kernel.UUID) ([]wallet.Transaction, error) {
	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Where("wallet_id = ?", walletID.Bytes()).
		Order("created_at DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate("list transactions", err)
	}

	txns := make([]wallet.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		t, err := transactionToDomain(dto)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, nil
}
