// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is indexed because claim resolution and the work queue both filter
// on it; florist_id is indexed for per-florist views.
type OrderDTO struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID    `gorm:"type:uuid;index"`
	StoreID      uuid.UUID    `gorm:"type:uuid;index"`
	FloristID    *uuid.UUID   `gorm:"type:uuid;index"`
	Status       string       `gorm:"type:varchar(32);index"`
	DeliveryType string       `gorm:"type:varchar(32)"`
	Recipient    RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	CardText     string
	Subtotal     int64
	Discount     int64
	DeliveryFee  int64
	Total        int64
	PaymentURL   string
	IsPaid       bool
	Comment      string
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// RecipientDTO represents the embedded recipient columns within the order table.
type RecipientDTO struct {
	Name    string
	Phone   string
	Address string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var floristID *uuid.UUID
	if id := aggregate.Florist(); id != nil {
		raw := id.Bytes()
		floristID = &raw
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		StoreID:      aggregate.StoreID().Bytes(),
		FloristID:    floristID,
		Status:       aggregate.Status().String(),
		DeliveryType: aggregate.DeliveryType().String(),
		Recipient: RecipientDTO{
			Name:    aggregate.Recipient().Name(),
			Phone:   aggregate.Recipient().Phone(),
			Address: aggregate.Recipient().Address(),
		},
		CardText:    aggregate.CardText(),
		Subtotal:    aggregate.Totals().Subtotal().Kopecks(),
		Discount:    aggregate.Totals().Discount().Kopecks(),
		DeliveryFee: aggregate.Totals().DeliveryFee().Kopecks(),
		Total:       aggregate.Totals().Total().Kopecks(),
		PaymentURL:  aggregate.PaymentURL(),
		IsPaid:      aggregate.IsPaid(),
		Comment:     aggregate.Comment(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including claim state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	var floristID *kernel.UUID
	if dto.FloristID != nil {
		fID, floristErr := kernel.UUIDFromBytes((*dto.FloristID)[:])
		if floristErr != nil {
			return nil, floristErr
		}

		floristID = &fID
	}

	recipient, err := order.NewRecipient(dto.Recipient.Name, dto.Recipient.Phone, dto.Recipient.Address)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return nil, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	totals, err := order.NewTotals(subtotal, discount, deliveryFee)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		storeID,
		floristID,
		order.Status(dto.Status),
		order.DeliveryType(dto.DeliveryType),
		recipient,
		dto.CardText,
		totals,
		dto.PaymentURL,
		dto.IsPaid,
		dto.Comment,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
