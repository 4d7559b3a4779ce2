package order

import (
	"fmt"

	"flowershop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	pending ──> awaiting_payment ──> paid ──> in_progress ──> ready ──┬──> delivering ──> completed
//	   │               │                                              │                      ^
//	   │               │                                              └──────────────────────┘
//	   │               │                                                  (pickup orders)
//	   └───────────────┴──> cancelled
//
// Status is a value object persisted as its string form. Transitions are
// driven by actions, see Action and Status.ApplyAction.
type Status string

const (
	// StatusPending is the initial status of a freshly placed order.
	// Orders in this status are waiting for a florist to accept or reject them.
	StatusPending Status = "pending"

	// StatusAwaitingPayment indicates a florist accepted the order and a
	// payment link was issued to the customer.
	StatusAwaitingPayment Status = "awaiting_payment"

	// StatusPaid indicates the customer's payment was confirmed.
	StatusPaid Status = "paid"

	// StatusInProgress indicates the florist started assembling the bouquet.
	StatusInProgress Status = "in_progress"

	// StatusReady indicates the order is assembled and awaits pickup or courier handoff.
	StatusReady Status = "ready"

	// StatusDelivering indicates the order was handed to a courier.
	StatusDelivering Status = "delivering"

	// StatusCompleted indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	StatusCompleted Status = "completed"

	// StatusCancelled indicates the order was rejected by a florist or
	// cancelled before payment. This is a final state.
	StatusCancelled Status = "cancelled"
)

// getValidStatuses returns the set of valid Status values to support validation.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:         {},
		StatusAwaitingPayment: {},
		StatusPaid:            {},
		StatusInProgress:      {},
		StatusReady:           {},
		StatusDelivering:      {},
		StatusCompleted:       {},
		StatusCancelled:       {},
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire form of the status, e.g. "awaiting_payment".
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ValidateCanHaveFlorist validates the consistency between order status and
// florist assignment.
//
// Business rules:
//   - Pending orders must not have a florist assigned
//   - Orders past the claim point (awaiting_payment through completed) must
//     have a florist assigned
//   - Cancelled orders may or may not have one, depending on whether they
//     were cancelled before or after a florist claimed them
//
// Parameters:
//   - florist: whether the order has a florist assigned
//
// Returns:
//   - error: validation error if status and florist assignment are inconsistent
func (s Status) ValidateCanHaveFlorist(florist bool) error {
	if s == StatusCancelled {
		return nil
	}

	if florist && s == StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a florist", s.String()),
		)
	}

	if !florist && s != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no florist", s.String()),
		)
	}

	return nil
}
