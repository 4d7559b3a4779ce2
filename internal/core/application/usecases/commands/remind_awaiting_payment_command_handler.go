package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"flowershop/internal/core/ports"
)

var (
	// ErrNoAwaitingPaymentOrders signals that no stale unpaid order exists.
	// The periodic job treats it as a quiet tick, not a failure.
	ErrNoAwaitingPaymentOrders = errors.New("no awaiting payment orders found")
)

// RemindAwaitingPaymentCommandHandler nudges customers whose orders have been
// awaiting payment for too long. Reminders go through the push port; a failed
// push is logged and skipped, never failing the batch.
type RemindAwaitingPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	push       ports.PushSender
	logger     *slog.Logger
}

// NewRemindAwaitingPaymentCommandHandler creates a handler for payment reminders.
func NewRemindAwaitingPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	push ports.PushSender,
	logger *slog.Logger,
) RemindAwaitingPaymentCommandHandler {
	return RemindAwaitingPaymentCommandHandler{
		uowFactory: uowFactory,
		push:       push,
		logger:     logger,
	}
}

// Handle sends a payment reminder for every stale awaiting_payment order.
// Returns ErrNoAwaitingPaymentOrders when there is nothing to remind about.
func (h RemindAwaitingPaymentCommandHandler) Handle(ctx context.Context, cmd RemindAwaitingPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())
	stale, err := uow.OrderRepository().GetAllAwaitingPaymentBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return ErrNoAwaitingPaymentOrders
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, o := range stale {
		body := fmt.Sprintf("Your order is waiting for payment: %s", o.PaymentURL())
		if err := h.push.SendPush(ctx, o.CustomerID(), "Payment reminder", body); err != nil {
			h.logger.Warn("payment reminder push failed",
				"order_id", o.ID().String(),
				"error", err)
		}
	}

	return nil
}
