package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"flowershop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// paymentReminderAge is how long an order may sit in awaiting_payment before
// the customer gets a nudge.
const paymentReminderAge = 30 * time.Minute

// PaymentReminderJob nudges customers whose orders have been awaiting payment
// for too long. Runs every minute.
type PaymentReminderJob struct {
	handler commands.RemindAwaitingPaymentCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentReminderJob creates a job that sends payment reminders.
func NewPaymentReminderJob(handler commands.RemindAwaitingPaymentCommandHandler, logger *slog.Logger) *PaymentReminderJob {
	return &PaymentReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_reminder_job"),
	}
}

// Start begins the reminder schedule.
func (j *PaymentReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRemindAwaitingPaymentCommand(paymentReminderAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payment reminder command construction failed", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			if !errors.Is(err, commands.ErrNoAwaitingPaymentOrders) {
				j.logger.ErrorContext(ctx, "Payment reminder job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reminder job started (running every minute)")
	return nil
}

// Stop stops the payment reminder job.
func (j *PaymentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reminder job stopped")
}
