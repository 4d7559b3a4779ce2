package queries

import (
	"errors"
	"time"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order in full detail.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's id.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse is the full read model of one order, including who
// placed it and who claimed it. CustomerID is what lets the HTTP layer check
// that a customer only reads their own orders.
type GetOrderQueryResponse struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	StoreID            kernel.UUID
	FloristID          *kernel.UUID
	Status             order.Status
	DeliveryType       order.DeliveryType
	RecipientName      string
	RecipientPhone     string
	RecipientAddress   string
	CardText           string
	SubtotalKopecks    int64
	DiscountKopecks    int64
	DeliveryFeeKopecks int64
	TotalKopecks       int64
	PaymentURL         string
	IsPaid             bool
	Comment            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
