package queries

import (
	"errors"
	"time"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/guard"
)

var (
	ErrGetStoreOrdersQueryIsNotConstructed = errors.New(
		"GetStoreOrdersQuery must be created via NewGetStoreOrdersQuery constructor",
	)
)

// GetStoreOrdersQuery retrieves the orders of a single store, newest first,
// optionally narrowed to one status. This is what a florist's work queue and
// an owner's dashboard are built on.
//
// Example:
//
//	pending := order.StatusPending
//	query, err := NewGetStoreOrdersQuery(storeID, &pending)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetStoreOrdersQuery struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID
	status  *order.Status

	guard guard.ConstructorGuard
}

// NewGetStoreOrdersQuery creates a query for a store's orders.
// Pass a nil status to fetch orders in every status.
func NewGetStoreOrdersQuery(storeID kernel.UUID, status *order.Status) (GetStoreOrdersQuery, error) {
	query := GetStoreOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setStoreID(storeID),
		query.setStatus(status),
	); err != nil {
		return GetStoreOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStoreOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreOrdersQueryIsNotConstructed)
}

// StoreID returns the store whose orders are requested.
func (q GetStoreOrdersQuery) StoreID() kernel.UUID {
	return q.storeID
}

// Status returns the status filter, or nil when no filter was set.
func (q GetStoreOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *GetStoreOrdersQuery) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	q.storeID = storeID
	return nil
}

func (q *GetStoreOrdersQuery) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

// GetStoreOrdersQueryResponse is one row of a store's order list. It carries
// what the list view shows; the full order comes from GetOrderQuery.
type GetStoreOrdersQueryResponse struct {
	ID            kernel.UUID
	Status        order.Status
	DeliveryType  order.DeliveryType
	RecipientName string
	TotalKopecks  int64
	CreatedAt     time.Time
}
