package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/pgerr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetWalletStatementQueryHandler struct {
	db *gorm.DB
}

func NewGetWalletStatementQueryHandler(db *gorm.DB) GetWalletStatementQueryHandler {
	return GetWalletStatementQueryHandler{db: db}
}

func (h GetWalletStatementQueryHandler) Handle(
	ctx context.Context,
	query GetWalletStatementQuery,
) (GetWalletStatementQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWalletStatementQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var head struct {
		ID          uuid.UUID
		Balance     decimal.Decimal
		TotalEarned decimal.Decimal
		LedgerSum   decimal.Decimal
	}
	result := db.Raw(`
		SELECT
			w.id,
			w.balance,
			w.total_earned,
			COALESCE((
				SELECT SUM(CASE WHEN t.kind = 'debit' THEN -t.amount ELSE t.amount END)
				FROM transactions t
				WHERE t.wallet_id = w.id
			), 0) AS ledger_sum
		FROM wallets w
		WHERE w.partner_id = ?
	`, query.PartnerID().Bytes()).Scan(&head)
	if result.Error != nil {
		return GetWalletStatementQueryResponse{}, pgerr.Translate("load wallet statement", result.Error)
	}
	if result.RowsAffected == 0 {
		return GetWalletStatementQueryResponse{}, errs.NewObjectNotFoundError("wallet", query.PartnerID())
	}

	walletID, err := kernel.UUIDFromBytes(head.ID[:])
	if err != nil {
		return GetWalletStatementQueryResponse{}, err
	}

	res := GetWalletStatementQueryResponse{
		WalletID:     walletID,
		PartnerID:    query.PartnerID(),
		Balance:      head.Balance,
		TotalEarned:  head.TotalEarned,
		LedgerSum:    head.LedgerSum,
		Transactions: make([]WalletTransactionView, 0),
	}

	rows, err := db.Raw(`
		SELECT id, order_id, amount, kind, description, created_at
		FROM transactions
		WHERE wallet_id = ?
		ORDER BY created_at DESC, id
		LIMIT ?
	`, head.ID, query.Limit()).Rows()
	if err != nil {
		return GetWalletStatementQueryResponse{}, pgerr.Translate("list wallet transactions", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			v       WalletTransactionView
			id      uuid.UUID
			orderID uuid.NullUUID
		)
		if err = rows.Scan(&id, &orderID, &v.Amount, &v.Kind, &v.Description, &v.CreatedAt); err != nil {
			return GetWalletStatementQueryResponse{}, pgerr.Translate("scan wallet transaction", err)
		}
		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetWalletStatementQueryResponse{}, err
		}
		if orderID.Valid {
			oid, idErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if idErr != nil {
				return GetWalletStatementQueryResponse{}, idErr
			}
			v.OrderID = &oid
		}
		res.Transactions = append(res.Transactions, v)
	}

	if err = rows.Err(); err != nil {
		return GetWalletStatementQueryResponse{}, pgerr.Translate("list wallet transactions", err)
	}

	return res, nil
}
