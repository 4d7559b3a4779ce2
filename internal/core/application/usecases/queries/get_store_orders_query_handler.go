package queries

import (
	"context"
	"time"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoreOrdersQueryHandler reads a store's order list straight from the
// database, bypassing the aggregate. Reads have no invariants to protect, so
// they skip the unit of work and map rows into response structs directly.
//
// Example:
//
//	handler := NewGetStoreOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s %d\n", o.ID, o.Status, o.TotalKopecks)
//	}
type GetStoreOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreOrdersQueryHandler creates a handler for store order lists.
func NewGetStoreOrdersQueryHandler(db *gorm.DB) GetStoreOrdersQueryHandler {
	return GetStoreOrdersQueryHandler{db: db}
}

// Handle returns the store's orders, newest first. When the query carries a
// status filter only matching orders are returned.
func (h GetStoreOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStoreOrdersQuery,
) ([]GetStoreOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			status,
			delivery_type,
			recipient_name,
			total,
			created_at
		FROM orders
		WHERE store_id = ?
	`
	args := []any{query.StoreID().String()}

	if query.Status() != nil {
		sql += " AND status = ?"
		args = append(args, query.Status().String())
	}

	sql += " ORDER BY created_at DESC"

	orders := make([]GetStoreOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			status       string
			deliveryType string
			name         string
			total        int64
			createdAt    time.Time
		)

		if err = rows.Scan(&id, &status, &deliveryType, &name, &total, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetStoreOrdersQueryResponse{
			ID:            orderID,
			Status:        order.Status(status),
			DeliveryType:  order.DeliveryType(deliveryType),
			RecipientName: name,
			TotalKopecks:  total,
			CreatedAt:     createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
