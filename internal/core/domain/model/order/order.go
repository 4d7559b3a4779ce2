package order

import (
	"errors"
	"time"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a flower-shop order. It is the aggregate root that manages
// the order lifecycle from placement through florist claim to completion.
//
// Order follows these invariants:
//   - Must have valid order, customer and store identifiers
//   - Delivery orders must carry a recipient address
//   - A florist is assigned exactly when the status is past the claim point
//   - Status transitions follow the action table, see Status.ApplyAction
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	storeID      kernel.UUID
	floristID    *kernel.UUID
	status       Status
	deliveryType DeliveryType
	recipient    Recipient
	cardText     string
	totals       Totals
	paymentURL   string
	isPaid       bool
	comment      string
	createdAt    time.Time
	updatedAt    time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly placed Order in pending status with validation.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: The customer who placed the order
//   - storeID: The store the order belongs to
//   - deliveryType: pickup or one of the courier delivery modes
//   - recipient: Delivery contact details (address required for courier modes)
//   - cardText: Optional greeting-card text
//   - totals: Monetary breakdown computed by the caller
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, storeID,
//	    order.DeliveryTypeCity, recipient, "Happy birthday!", totals)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	storeID kernel.UUID,
	deliveryType DeliveryType,
	recipient Recipient,
	cardText string,
	totals Totals,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        StatusPending,
		cardText:      cardText,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setStoreID(storeID),
		order.setDelivery(deliveryType, recipient),
		order.setTotals(totals),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// placement rules, while still enforcing structural invariants such as the
// status/florist consistency.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	storeID kernel.UUID,
	floristID *kernel.UUID,
	status Status,
	deliveryType DeliveryType,
	recipient Recipient,
	cardText string,
	totals Totals,
	paymentURL string,
	isPaid bool,
	comment string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		storeID.Validate(),
		status.Validate(),
		deliveryType.Validate(),
		recipient.Validate(),
		totals.Validate(),
		status.ValidateCanHaveFlorist(floristID != nil),
	); err != nil {
		return nil, err
	}

	if floristID != nil {
		if err := floristID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		storeID:       storeID,
		floristID:     floristID,
		status:        status,
		deliveryType:  deliveryType,
		recipient:     recipient,
		cardText:      cardText,
		totals:        totals,
		paymentURL:    paymentURL,
		isPaid:        isPaid,
		comment:       comment,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// StoreID returns the store the order belongs to.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// Florist returns the assigned florist's ID.
// Returns nil while the order is unclaimed.
func (o *Order) Florist() *kernel.UUID {
	return o.floristID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryType returns how the order reaches the customer.
func (o *Order) DeliveryType() DeliveryType {
	return o.deliveryType
}

// Recipient returns the delivery contact details.
func (o *Order) Recipient() Recipient {
	return o.recipient
}

// CardText returns the greeting-card text, possibly empty.
func (o *Order) CardText() string {
	return o.cardText
}

// Totals returns the monetary breakdown of the order.
func (o *Order) Totals() Totals {
	return o.totals
}

// PaymentURL returns the payment link minted at accept time, empty before that.
func (o *Order) PaymentURL() string {
	return o.paymentURL
}

// IsPaid reports whether the customer's payment was confirmed.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// Comment returns the free-form comment, e.g. a rejection reason.
func (o *Order) Comment() string {
	return o.comment
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ActionParams carries the side-effect inputs an action may need.
// Only accept reads FloristID and PaymentURL; only reject and cancel read Reason.
type ActionParams struct {
	FloristID  *kernel.UUID
	PaymentURL string
	Reason     string
}

// Apply performs a lifecycle action on the order.
//
// The status transition is computed by the pure state machine
// (Status.ApplyAction); this method additionally applies the action's side
// effects so that the new status and its side effects always change together:
//   - accept assigns the florist and records the payment link
//   - reject and cancel record the reason as the order comment
//   - confirm_payment sets the paid flag
//
// Returns an InvalidTransitionError when the current status does not admit
// the action. The order is left unchanged on any error.
//
// Example:
//
//	floristID := actor.ID()
//	err := o.Apply(order.ActionAccept, order.ActionParams{
//	    FloristID:  &floristID,
//	    PaymentURL: link,
//	})
func (o *Order) Apply(action Action, params ActionParams) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.ApplyAction(action)
	if err != nil {
		return err
	}

	switch action {
	case ActionAccept:
		if params.FloristID == nil {
			return errs.NewValueIsRequiredError("floristID")
		}
		if err := params.FloristID.Validate(); err != nil {
			return err
		}
		floristID := *params.FloristID
		o.floristID = &floristID
		o.paymentURL = params.PaymentURL
	case ActionReject, ActionCancel:
		if params.Reason != "" {
			o.comment = params.Reason
		}
	case ActionConfirmPayment:
		o.isPaid = true
	case ActionStartAssembly, ActionMarkReady, ActionStartDelivery, ActionComplete:
		// status-only actions
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// Accept claims the order for a florist and records the payment link.
// Legal only from pending; the first writer to persist the result wins.
func (o *Order) Accept(floristID kernel.UUID, paymentURL string) error {
	return o.Apply(ActionAccept, ActionParams{FloristID: &floristID, PaymentURL: paymentURL})
}

// Reject declines a pending order with a reason.
func (o *Order) Reject(reason string) error {
	return o.Apply(ActionReject, ActionParams{Reason: reason})
}

// ConfirmPayment records the customer's payment.
func (o *Order) ConfirmPayment() error {
	return o.Apply(ActionConfirmPayment, ActionParams{})
}

// StartAssembly begins bouquet assembly.
func (o *Order) StartAssembly() error {
	return o.Apply(ActionStartAssembly, ActionParams{})
}

// MarkReady marks the bouquet as assembled.
func (o *Order) MarkReady() error {
	return o.Apply(ActionMarkReady, ActionParams{})
}

// StartDelivery hands the order to a courier.
func (o *Order) StartDelivery() error {
	return o.Apply(ActionStartDelivery, ActionParams{})
}

// Complete closes the order, from ready for pickups or delivering for courier orders.
func (o *Order) Complete() error {
	return o.Apply(ActionComplete, ActionParams{})
}

// Cancel cancels the order before payment, recording an optional reason.
func (o *Order) Cancel(reason string) error {
	return o.Apply(ActionCancel, ActionParams{Reason: reason})
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer identifier.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setStoreID validates and sets the store identifier.
func (o *Order) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	o.storeID = storeID
	return nil
}

// setDelivery validates the delivery mode together with the recipient,
// requiring an address for courier delivery modes.
func (o *Order) setDelivery(deliveryType DeliveryType, recipient Recipient) error {
	if err := errors.Join(deliveryType.Validate(), recipient.Validate()); err != nil {
		return err
	}
	if deliveryType.RequiresAddress() && recipient.Address() == "" {
		return errs.NewValueIsRequiredError("recipient address")
	}
	o.deliveryType = deliveryType
	o.recipient = recipient
	return nil
}

// setTotals validates and sets the monetary breakdown.
func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}
	o.totals = totals
	return nil
}
