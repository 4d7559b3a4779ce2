package jobs

import (
	"fmt"
	"log/slog"

	"flowershop/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingRebroadcastJob *PendingRebroadcastJob
	paymentReminderJob    *PaymentReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	remindPendingHandler commands.RemindPendingOrdersCommandHandler,
	remindAwaitingPaymentHandler commands.RemindAwaitingPaymentCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingRebroadcastJob: NewPendingRebroadcastJob(remindPendingHandler, logger),
		paymentReminderJob:    NewPaymentReminderJob(remindAwaitingPaymentHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingRebroadcastJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending rebroadcast job: %w", err)
	}

	if err := jm.paymentReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pendingRebroadcastJob.Stop()
		return fmt.Errorf("failed to start payment reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingRebroadcastJob.Stop()
	jm.paymentReminderJob.Stop()
}
