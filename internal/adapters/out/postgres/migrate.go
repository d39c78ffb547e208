package postgres

import (
	"fmt"
	"strings"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/adapters/out/postgres/statuslogrepo"
	"dispatch/internal/adapters/out/postgres/walletrepo"
	"dispatch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// Partial unique indexes backing the dispatch and settlement invariants. The
// repositories that write through them own the names.
const (
	ActivePartnerIndex  = orderrepo.ActivePartnerIndex
	CreditPerOrderIndex = walletrepo.CreditPerOrderIndex
)

// Migrate creates or updates the tables the engine reads and writes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&partnerrepo.PartnerDTO{},
		&orderrepo.OrderDTO{},
		&walletrepo.WalletDTO{},
		&walletrepo.TransactionDTO{},
		&statuslogrepo.StatusLogDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	quoted := make([]string, 0, len(order.ActiveStatusNames()))
	for _, s := range order.ActiveStatusNames() {
		quoted = append(quoted, "'"+s+"'")
	}

	statements := []string{
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS %s ON orders (partner_id)
			WHERE partner_id IS NOT NULL AND status IN (%s)`, ActivePartnerIndex, strings.Join(quoted, ", ")),
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS %s ON transactions (wallet_id, order_id)
			WHERE kind = 'credit' AND order_id IS NOT NULL`, CreditPerOrderIndex),
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
