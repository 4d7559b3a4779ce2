package order

import (
	"errors"
	"fmt"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/pkg/errs"
	"flowershop/internal/pkg/guard"
)

// DeliveryType describes how the order reaches the customer.
type DeliveryType string

const (
	// DeliveryTypePickup means the customer collects the order at the store.
	DeliveryTypePickup DeliveryType = "pickup"
	// DeliveryTypeCity means courier delivery within the city.
	DeliveryTypeCity DeliveryType = "delivery_city"
	// DeliveryTypeRemote means courier delivery outside the city.
	DeliveryTypeRemote DeliveryType = "delivery_remote"
)

// getValidDeliveryTypes returns the set of valid DeliveryType values.
func getValidDeliveryTypes() map[DeliveryType]struct{} {
	return map[DeliveryType]struct{}{
		DeliveryTypePickup: {},
		DeliveryTypeCity:   {},
		DeliveryTypeRemote: {},
	}
}

// Validate checks if the DeliveryType is one of the defined delivery modes.
func (d DeliveryType) Validate() error {
	if _, ok := getValidDeliveryTypes()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery type is invalid",
			fmt.Errorf("%q is not a valid delivery type", string(d)))
	}
	return nil
}

// String returns the wire form of the delivery type.
func (d DeliveryType) String() string {
	return string(d)
}

// RequiresAddress reports whether this delivery mode needs a delivery address.
func (d DeliveryType) RequiresAddress() bool {
	return d == DeliveryTypeCity || d == DeliveryTypeRemote
}

// ErrRecipientIsNotConstructed is returned when a Recipient was not created via NewRecipient.
var ErrRecipientIsNotConstructed = errs.NewValueIsRequiredError(
	"recipient must be created via NewRecipient constructor")

// Recipient holds the delivery contact details for an order.
// The address may be empty for pickup orders; the aggregate enforces that
// delivery orders carry one.
type Recipient struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	address string
	guard   guard.ConstructorGuard
}

// NewRecipient creates a Recipient. Name and phone are required; address is
// validated against the delivery type by the Order constructor.
func NewRecipient(name string, phone string, address string) (Recipient, error) {
	recipient := Recipient{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(recipient.setName(name), recipient.setPhone(phone)); err != nil {
		return Recipient{}, err
	}

	return recipient, nil
}

// Validate checks if the Recipient was properly constructed.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// Name returns the recipient's name.
func (r Recipient) Name() string {
	return r.name
}

// Phone returns the recipient's contact phone.
func (r Recipient) Phone() string {
	return r.phone
}

// Address returns the delivery address, empty for pickup orders.
func (r Recipient) Address() string {
	return r.address
}

func (r *Recipient) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipient name")
	}
	r.name = name
	return nil
}

func (r *Recipient) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("recipient phone")
	}
	r.phone = phone
	return nil
}

// ErrTotalsAreNotConstructed is returned when Totals were not created via NewTotals.
var ErrTotalsAreNotConstructed = errs.NewValueIsRequiredError(
	"totals must be created via NewTotals constructor")

// Totals is the monetary breakdown of an order:
// total = subtotal - discount + delivery fee.
type Totals struct { //nolint:recvcheck //using for validation
	subtotal    kernel.Money
	discount    kernel.Money
	deliveryFee kernel.Money
	total       kernel.Money
	guard       guard.ConstructorGuard
}

// NewTotals computes the order total from its parts.
// Fails when the discount exceeds the subtotal or any part is unconstructed.
//
// Example:
//
//	subtotal, _ := kernel.NewMoney(500000)
//	totals, err := order.NewTotals(subtotal, kernel.Zero(), fee)
func NewTotals(subtotal kernel.Money, discount kernel.Money, deliveryFee kernel.Money) (Totals, error) {
	if err := errors.Join(subtotal.Validate(), discount.Validate(), deliveryFee.Validate()); err != nil {
		return Totals{}, err
	}

	due, err := subtotal.Sub(discount)
	if err != nil {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("discount %s exceeds subtotal %s", discount, subtotal))
	}

	total, err := due.Add(deliveryFee)
	if err != nil {
		return Totals{}, err
	}

	return Totals{
		subtotal:    subtotal,
		discount:    discount,
		deliveryFee: deliveryFee,
		total:       total,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Totals were properly constructed.
func (t Totals) Validate() error {
	return t.guard.Validate(ErrTotalsAreNotConstructed)
}

// Subtotal returns the sum of item prices.
func (t Totals) Subtotal() kernel.Money {
	return t.subtotal
}

// Discount returns the applied discount.
func (t Totals) Discount() kernel.Money {
	return t.discount
}

// DeliveryFee returns the delivery fee.
func (t Totals) DeliveryFee() kernel.Money {
	return t.deliveryFee
}

// Total returns the amount the customer pays.
func (t Totals) Total() kernel.Money {
	return t.total
}
