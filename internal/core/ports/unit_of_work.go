package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories it hands out are
// bound to the transaction started by Begin. Events recorded by aggregates saved
// through those repositories are published after a successful Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	// Rollback is a no-op after Commit, so it can always be deferred.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	PartnerRepository() PartnerRepository
	WalletRepository() WalletRepository
	StatusLogRepository() StatusLogRepository
}
