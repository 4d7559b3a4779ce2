// Package ports defines the contracts between the application core and
// infrastructure adapters: persistence, payment links and push delivery.
// These interfaces establish dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateWhereStatus persists the aggregate's full state with a single
	// conditional UPDATE guarded by the status the caller read. It reports
	// false without error when the row's status no longer matches
	// expectedStatus, meaning a competing writer got there first.
	UpdateWhereStatus(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) (bool, error)

	// GetAllPending retrieves all orders still awaiting a florist claim,
	// oldest first.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetAllAwaitingPaymentBefore retrieves orders that have been awaiting
	// payment since before the cutoff, oldest first.
	GetAllAwaitingPaymentBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
