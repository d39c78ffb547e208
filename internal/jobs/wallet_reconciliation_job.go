package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type unreconciledWalletsReader interface {
	Handle(ctx context.Context, q queries.GetUnreconciledWalletsQuery) ([]queries.GetUnreconciledWalletsQueryResponse, error)
}

// WalletReconciliationJob audits the ledger: every wallet balance must equal the
// signed sum of its transactions. Mismatches are logged at error level; the job
// never repairs data.
type WalletReconciliationJob struct {
	wallets  unreconciledWalletsReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewWalletReconciliationJob(wallets unreconciledWalletsReader, schedule string, logger *slog.Logger) *WalletReconciliationJob {
	return &WalletReconciliationJob{
		wallets:  wallets,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "wallet_reconciliation_job"),
	}
}

func (j *WalletReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Wallet reconciliation job started", "schedule", j.schedule)
	return nil
}

func (j *WalletReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Wallet reconciliation job stopped")
}

// RunOnce audits all wallets and returns the number of mismatches, or -1 when
// the audit itself failed.
func (j *WalletReconciliationJob) RunOnce(ctx context.Context) int {
	mismatches, err := j.wallets.Handle(ctx, queries.NewGetUnreconciledWalletsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Wallet reconciliation failed", "error", err)
		return -1
	}

	for _, w := range mismatches {
		j.logger.ErrorContext(ctx, "Wallet does not reconcile",
			"wallet_id", w.WalletID.String(),
			"partner_id", w.PartnerID.String(),
			"balance", w.Balance.String(),
			"total_earned", w.TotalEarned.String(),
			"ledger_sum", w.LedgerSum.String(),
		)
	}
	return len(mismatches)
}
