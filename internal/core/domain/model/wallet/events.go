package wallet

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Credited is recorded when settlement pays a partner for an order.
type Credited struct {
	WalletID  kernel.UUID     `json:"walletId"`
	PartnerID kernel.UUID     `json:"partnerId"`
	OrderID   kernel.UUID     `json:"orderId"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	At        time.Time       `json:"occurredAt"`
}

func (e Credited) EventName() string { return "wallet.credited" }
func (e Credited) AggregateID() kernel.UUID { return e.WalletID }
func (e Credited) OccurredAt() time.Time { return e.At }
