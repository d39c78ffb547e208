package wallet

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// EarningsDescription is the description of the credit written by settlement.
const EarningsDescription = "Delivery earnings for order"

var (
	// ErrWalletIsNotConstructed is returned when using a Wallet built outside NewWallet or RestoreWallet.
	ErrWalletIsNotConstructed = errors.New("Wallet must be created via NewWallet constructor")
	ErrAmountMustBePositive   = errs.NewValueIsInvalidErrorWithCause("amount", errors.New("must be greater than 0"))
)

// Wallet holds a partner's earnings.
//
// Invariants:
//   - one wallet per partner
//   - balance changes only through appended transactions
//   - total earned never decreases and is never below balance
type Wallet struct {
	id          kernel.UUID
	partnerID   kernel.UUID
	balance     decimal.Decimal
	totalEarned decimal.Decimal
	guard       guard.ConstructorGuard
	kernel.EventRecorder
}

// NewWallet provisions an empty wallet for a freshly registered partner.
func NewWallet(id, partnerID kernel.UUID) (*Wallet, error) {
	if err := errors.Join(
		validateID("id", id),
		validateID("partnerId", partnerID),
	); err != nil {
		return nil, err
	}

	return &Wallet{
		id:          id,
		partnerID:   partnerID,
		balance:     decimal.Zero,
		totalEarned: decimal.Zero,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreWallet rebuilds a wallet from storage, rejecting rows that break the invariants.
func RestoreWallet(id, partnerID kernel.UUID, balance, totalEarned decimal.Decimal) (*Wallet, error) {
	if err := errors.Join(id.Validate(), partnerID.Validate()); err != nil {
		return nil, errs.NewIntegrityViolationErrorWithCause("wallet", err)
	}
	if totalEarned.LessThan(balance) {
		return nil, errs.NewIntegrityViolationErrorWithCause(fmt.Sprintf("wallet %s", id),
			fmt.Errorf("total earned %s is below balance %s", totalEarned, balance))
	}

	return &Wallet{
		id:          id,
		partnerID:   partnerID,
		balance:     balance,
		totalEarned: totalEarned,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (w *Wallet) Validate() error {
	if w == nil {
		return ErrWalletIsNotConstructed
	}
	return w.guard.Validate(ErrWalletIsNotConstructed)
}

func (w *Wallet) ID() kernel.UUID {
	return w.id
}

func (w *Wallet) PartnerID() kernel.UUID {
	return w.partnerID
}

func (w *Wallet) Balance() decimal.Decimal {
	return w.balance
}

func (w *Wallet) TotalEarned() decimal.Decimal {
	return w.totalEarned
}

// Credit adds amount to both balance and total earned and returns the transaction
// that must be stored alongside. It does not check for an earlier credit of the
// same order; that is the ledger's job, done under the wallet row lock.
func (w *Wallet) Credit(orderID kernel.UUID, amount decimal.Decimal, at time.Time) (Transaction, error) {
	if err := w.Validate(); err != nil {
		return Transaction{}, err
	}
	if err := orderID.Validate(); err != nil {
		return Transaction{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if !amount.IsPositive() {
		return Transaction{}, ErrAmountMustBePositive
	}

	w.balance = w.balance.Add(amount)
	w.totalEarned = w.totalEarned.Add(amount)

	txn := Transaction{
		ID:          kernel.NewUUID(),
		WalletID:    w.id,
		OrderID:     &orderID,
		Amount:      amount,
		Kind:        KindCredit,
		Description: EarningsDescription,
		CreatedAt:   at,
	}
	w.Record(Credited{
		WalletID:  w.id,
		PartnerID: w.partnerID,
		OrderID:   orderID,
		Amount:    amount,
		Balance:   w.balance,
		At:        at,
	})

	return txn, nil
}

// Reconcile checks that the balance equals the signed sum of txns.
func (w *Wallet) Reconcile(txns []Transaction) error {
	sum := decimal.Zero
	for _, t := range txns {
		sum = sum.Add(t.Signed())
	}
	if !sum.Equal(w.balance) {
		return errs.NewIntegrityViolationErrorWithCause(fmt.Sprintf("wallet %s", w.id),
			fmt.Errorf("balance %s does not match ledger sum %s", w.balance, sum))
	}
	return nil
}

func validateID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
