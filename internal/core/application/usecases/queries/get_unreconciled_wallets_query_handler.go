package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/pgerr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetUnreconciledWalletsQueryHandler struct {
	db *gorm.DB
}

func NewGetUnreconciledWalletsQueryHandler(db *gorm.DB) GetUnreconciledWalletsQueryHandler {
	return GetUnreconciledWalletsQueryHandler{db: db}
}

func (h GetUnreconciledWalletsQueryHandler) Handle(
	ctx context.Context,
	query GetUnreconciledWalletsQuery,
) ([]GetUnreconciledWalletsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		ID          uuid.UUID
		PartnerID   uuid.UUID
		Balance     decimal.Decimal
		TotalEarned decimal.Decimal
		LedgerSum   decimal.Decimal
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT w.id, w.partner_id, w.balance, w.total_earned, COALESCE(l.sum, 0) AS ledger_sum
		FROM wallets w
		LEFT JOIN (
			SELECT wallet_id, SUM(CASE WHEN kind = 'debit' THEN -amount ELSE amount END) AS sum
			FROM transactions
			GROUP BY wallet_id
		) l ON l.wallet_id = w.id
		WHERE w.balance <> COALESCE(l.sum, 0)
			OR w.total_earned < w.balance
		ORDER BY w.id
	`).Scan(&rows).Error
	if err != nil {
		return nil, pgerr.Translate("find unreconciled wallets", err)
	}

	res := make([]GetUnreconciledWalletsQueryResponse, 0, len(rows))
	for _, r := range rows {
		v := GetUnreconciledWalletsQueryResponse{
			Balance:     r.Balance,
			TotalEarned: r.TotalEarned,
			LedgerSum:   r.LedgerSum,
		}
		if v.WalletID, err = kernel.UUIDFromBytes(r.ID[:]); err != nil {
			return nil, err
		}
		if v.PartnerID, err = kernel.UUIDFromBytes(r.PartnerID[:]); err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}
