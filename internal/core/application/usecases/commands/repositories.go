// Package commands contains the operations that change state. Every handler runs in its
// own unit of work under a bounded timeout; infrastructure failures come back as
// errs.ErrTransient so callers know a retry may succeed.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	WalletRepoFactory interface {
		WalletRepository() ports.WalletRepository
	}

	StatusLogRepoFactory interface {
		StatusLogRepository() ports.StatusLogRepository
	}

	// AssignUoW covers partner assignment: the order row, partner rows and the audit trail.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
		StatusLogRepoFactory
	}

	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// SettleUoW covers settlement: the order read, the wallet ledger and the partner counter.
	SettleUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
		WalletRepoFactory
	}

	SettleUoWFactory interface {
		Create() SettleUoW
	}

	// OrderUoW covers order lifecycle changes and their audit trail.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StatusLogRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PartnerUoW covers partner registration, wallet provisioning and presence.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
		WalletRepoFactory
	}

	PartnerUoWFactory interface {
		Create() PartnerUoW
	}
)
