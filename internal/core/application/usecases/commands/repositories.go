// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit notification.
package commands

import (
	"context"

	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// Notifier receives domain events strictly after the producing transaction
// committed. Implementations fan the events out to real-time subscribers and
// must never fail the caller; delivery problems are theirs to log.
type Notifier interface {
	// NotifyOrderCreated announces a new pending order to the store's florists.
	NotifyOrderCreated(o *order.Order)

	// NotifyOrderClaimed announces to all of the store's florists, the winner
	// included, that the order was claimed.
	NotifyOrderClaimed(o *order.Order, floristName string)

	// NotifyOrderStatusChanged announces the order's new status to its watchers.
	NotifyOrderStatusChanged(o *order.Order)
}
