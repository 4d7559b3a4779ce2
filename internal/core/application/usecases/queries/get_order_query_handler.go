package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order's full detail from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order's read model.
// Returns errs.ErrObjectNotFound when no order carries the given id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			store_id,
			florist_id,
			status,
			delivery_type,
			recipient_name,
			recipient_phone,
			recipient_address,
			card_text,
			subtotal,
			discount,
			delivery_fee,
			total,
			payment_url,
			is_paid,
			comment,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		id           uuid.UUID
		customerID   uuid.UUID
		storeID      uuid.UUID
		floristID    uuid.NullUUID
		status       string
		deliveryType string
		name         string
		phone        string
		address      string
		cardText     string
		subtotal     int64
		discount     int64
		deliveryFee  int64
		total        int64
		paymentURL   string
		isPaid       bool
		comment      string
		createdAt    time.Time
		updatedAt    time.Time
	)

	err := row.Scan(
		&id, &customerID, &storeID, &floristID,
		&status, &deliveryType,
		&name, &phone, &address, &cardText,
		&subtotal, &discount, &deliveryFee, &total,
		&paymentURL, &isPaid, &comment,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		Status:             order.Status(status),
		DeliveryType:       order.DeliveryType(deliveryType),
		RecipientName:      name,
		RecipientPhone:     phone,
		RecipientAddress:   address,
		CardText:           cardText,
		SubtotalKopecks:    subtotal,
		DiscountKopecks:    discount,
		DeliveryFeeKopecks: deliveryFee,
		TotalKopecks:       total,
		PaymentURL:         paymentURL,
		IsPaid:             isPaid,
		Comment:            comment,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if floristID.Valid {
		florist, idErr := kernel.UUIDFromBytes(floristID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		response.FloristID = &florist
	}

	return response, nil
}
