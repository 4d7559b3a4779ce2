package jobs

import (
	"context"
	"errors"
	"log/slog"

	"flowershop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PendingRebroadcastJob periodically re-announces unclaimed orders to their
// stores' florist feeds, so an order created while no florist was connected
// still gets seen.
type PendingRebroadcastJob struct {
	handler commands.RemindPendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingRebroadcastJob creates a job that re-broadcasts pending orders
// every 30 seconds.
func NewPendingRebroadcastJob(handler commands.RemindPendingOrdersCommandHandler, logger *slog.Logger) *PendingRebroadcastJob {
	return &PendingRebroadcastJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_rebroadcast_job"),
	}
}

// Start begins the re-broadcast schedule.
func (j *PendingRebroadcastJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRemindPendingOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty work queue is the normal case, not a failure.
			if !errors.Is(err, commands.ErrNoPendingOrders) {
				j.logger.ErrorContext(ctx, "Pending rebroadcast job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending rebroadcast job started (running every 30 seconds)")
	return nil
}

// Stop stops the re-broadcast job.
func (j *PendingRebroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending rebroadcast job stopped")
}
