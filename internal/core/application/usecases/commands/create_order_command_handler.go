package commands

import (
	"context"

	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Computes the delivery fee from store pricing, persists the order in pending
// status, and announces it to the store's florists after the transaction
// committed.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, pricing, notifier)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Florists subscribed to the store feed have been notified
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.DeliveryPricing
	notifier   Notifier
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, the store's
// delivery pricing, and a Notifier for the post-commit announcement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricing services.DeliveryPricing,
	notifier Notifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		notifier:   notifier,
	}
}

// Handle processes the order placement command.
// The notification is dispatched strictly after the commit succeeds, so
// subscribers never observe an order that was rolled back.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	fee, err := h.pricing.FeeFor(cmd.DeliveryType(), cmd.Subtotal())
	if err != nil {
		return nil, err
	}

	totals, err := order.NewTotals(cmd.Subtotal(), cmd.Discount(), fee)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.StoreID(),
		cmd.DeliveryType(),
		cmd.Recipient(),
		cmd.CardText(),
		totals,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.NotifyOrderCreated(newOrder)

	return newOrder, nil
}
