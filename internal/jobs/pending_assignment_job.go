package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultPendingAssignmentBatch bounds how many orders one run retries.
const DefaultPendingAssignmentBatch = 50

type pendingOrdersReader interface {
	Handle(ctx context.Context, q queries.GetOrdersAwaitingPartnerQuery) ([]queries.GetOrdersAwaitingPartnerQueryResponse, error)
}

type partnerAssigner interface {
	Handle(ctx context.Context, cmd commands.AssignPartnerCommand) (commands.AssignPartnerResult, error)
}

// PendingAssignmentJob retries assignment for accepted delivery orders that found
// no free partner when they were accepted. Orders are retried oldest first; a run
// stops early once no partner is left.
type PendingAssignmentJob struct {
	orders   pendingOrdersReader
	assigner partnerAssigner
	schedule string
	batch    int
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingAssignmentJob creates the job. schedule is a cron spec with a seconds
// field, e.g. "*/30 * * * * *".
func NewPendingAssignmentJob(
	orders pendingOrdersReader,
	assigner partnerAssigner,
	schedule string,
	logger *slog.Logger,
) *PendingAssignmentJob {
	return &PendingAssignmentJob{
		orders:   orders,
		assigner: assigner,
		schedule: schedule,
		batch:    DefaultPendingAssignmentBatch,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "pending_assignment_job"),
	}
}

func (j *PendingAssignmentJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Pending assignment job started", "schedule", j.schedule)
	return nil
}

func (j *PendingAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Pending assignment job stopped")
}

// RunOnce performs a single pass and reports how many orders got a partner.
func (j *PendingAssignmentJob) RunOnce(ctx context.Context) int {
	q, err := queries.NewGetOrdersAwaitingPartnerQuery(j.batch)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending assignment job misconfigured", "error", err)
		return 0
	}

	pending, err := j.orders.Handle(ctx, q)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list orders awaiting a partner", "error", err)
		return 0
	}

	assigned := 0
	for _, o := range pending {
		cmd, err := commands.NewAssignPartnerCommand(o.ID, o.PickupLocation)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invalid pending order", "order_id", o.ID.String(), "error", err)
			continue
		}

		res, err := j.assigner.Handle(ctx, cmd)
		switch {
		case errors.Is(err, errs.ErrTransient):
			j.logger.WarnContext(ctx, "Assignment retry failed, will try next run", "order_id", o.ID.String(), "error", err)
			continue
		case err != nil:
			j.logger.ErrorContext(ctx, "Assignment retry failed", "order_id", o.ID.String(), "error", err)
			continue
		case !res.Assigned:
			// Nobody is free; the remaining orders would find nobody either.
			return assigned
		}

		if !res.AlreadyAssigned {
			assigned++
			j.logger.InfoContext(ctx, "Partner assigned on retry",
				"order_id", o.ID.String(),
				"partner_id", res.PartnerID.String(),
			)
		}
	}
	return assigned
}
