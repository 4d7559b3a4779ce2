package commands

import (
	"errors"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new flower order.
// Encapsulates the validated order details; the delivery fee and totals are
// computed by the handler from store pricing.
//
// Example:
//
//	recipient, _ := order.NewRecipient("Anna", "+79990001122", "Tverskaya 1")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, storeID,
//	    order.DeliveryTypeCity, recipient, "Happy birthday!", subtotal, kernel.Zero())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	storeID      kernel.UUID
	deliveryType order.DeliveryType
	recipient    order.Recipient
	cardText     string
	subtotal     kernel.Money
	discount     kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the delivery mode, the recipient and the amounts.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	storeID kernel.UUID,
	deliveryType order.DeliveryType,
	recipient order.Recipient,
	cardText string,
	subtotal kernel.Money,
	discount kernel.Money,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		cardText: cardText,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setStoreID(storeID),
		orderCommand.setDeliveryType(deliveryType),
		orderCommand.setRecipient(recipient),
		orderCommand.setAmounts(subtotal, discount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// StoreID returns the store the order is placed with.
func (c CreateOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// DeliveryType returns the requested delivery mode.
func (c CreateOrderCommand) DeliveryType() order.DeliveryType {
	return c.deliveryType
}

// Recipient returns the delivery contact details.
func (c CreateOrderCommand) Recipient() order.Recipient {
	return c.recipient
}

// CardText returns the optional greeting-card text.
func (c CreateOrderCommand) CardText() string {
	return c.cardText
}

// Subtotal returns the sum of item prices.
func (c CreateOrderCommand) Subtotal() kernel.Money {
	return c.subtotal
}

// Discount returns the discount to apply.
func (c CreateOrderCommand) Discount() kernel.Money {
	return c.discount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *CreateOrderCommand) setDeliveryType(deliveryType order.DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}

	c.deliveryType = deliveryType
	return nil
}

func (c *CreateOrderCommand) setRecipient(recipient order.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	c.recipient = recipient
	return nil
}

func (c *CreateOrderCommand) setAmounts(subtotal kernel.Money, discount kernel.Money) error {
	if err := errors.Join(subtotal.Validate(), discount.Validate()); err != nil {
		return err
	}

	c.subtotal = subtotal
	c.discount = discount
	return nil
}
