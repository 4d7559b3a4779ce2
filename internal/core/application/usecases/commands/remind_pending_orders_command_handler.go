package commands

import (
	"context"
	"errors"
)

var (
	// ErrNoPendingOrders signals that no order currently awaits a claim.
	// The periodic job treats it as a quiet tick, not a failure.
	ErrNoPendingOrders = errors.New("no pending orders found")
)

// RemindPendingOrdersCommandHandler re-announces unclaimed orders to their
// stores' florists. Delivery is at-least-once by design: florists who already
// saw the order receive it again and clients deduplicate by order id.
//
// Example:
//
//	handler := NewRemindPendingOrdersCommandHandler(uowFactory, notifier)
//	err := handler.Handle(ctx, NewRemindPendingOrdersCommand())
//	if errors.Is(err, ErrNoPendingOrders) {
//	    return // nothing to remind about
//	}
type RemindPendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewRemindPendingOrdersCommandHandler creates a handler for pending-order reminders.
func NewRemindPendingOrdersCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) RemindPendingOrdersCommandHandler {
	return RemindPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle re-broadcasts every pending order to its store feed.
// Returns ErrNoPendingOrders when there is nothing to announce.
func (h RemindPendingOrdersCommandHandler) Handle(ctx context.Context, cmd RemindPendingOrdersCommand) error {
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

	pending, err := uow.OrderRepository().GetAllPending(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return ErrNoPendingOrders
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, o := range pending {
		h.notifier.NotifyOrderCreated(o)
	}

	return nil
}
