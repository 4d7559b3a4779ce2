package order

import (
	"errors"
	"fmt"
	"strings"

	"flowershop/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel wrapped by InvalidTransitionError.
// Use errors.Is to classify transition failures regardless of the action involved.
var ErrInvalidTransition = errors.New("invalid status transition")

// Action is a named operation on an order's lifecycle.
// Each action is legal from a fixed set of source statuses and moves the
// order to exactly one target status.
type Action string

const (
	// ActionAccept claims a pending order for a florist and issues a payment link.
	ActionAccept Action = "accept"
	// ActionReject declines a pending order, cancelling it.
	ActionReject Action = "reject"
	// ActionConfirmPayment records the customer's payment.
	ActionConfirmPayment Action = "confirm_payment"
	// ActionStartAssembly begins bouquet assembly.
	ActionStartAssembly Action = "start_assembly"
	// ActionMarkReady marks the bouquet as assembled.
	ActionMarkReady Action = "mark_ready"
	// ActionStartDelivery hands the order to a courier.
	ActionStartDelivery Action = "start_delivery"
	// ActionComplete closes the order. Legal from ready (self pickup)
	// and from delivering (courier handoff).
	ActionComplete Action = "complete"
	// ActionCancel cancels the order before it is paid.
	ActionCancel Action = "cancel"
)

// transition describes one row of the action table: the statuses an action
// may be applied from and the status it produces.
type transition struct {
	sources []Status
	target  Status
}

// getTransitions returns the full action table. Every defined action has
// exactly one entry; actions absent from an order's current status produce
// an InvalidTransitionError.
func getTransitions() map[Action]transition {
	return map[Action]transition{
		ActionAccept:         {sources: []Status{StatusPending}, target: StatusAwaitingPayment},
		ActionReject:         {sources: []Status{StatusPending}, target: StatusCancelled},
		ActionConfirmPayment: {sources: []Status{StatusAwaitingPayment}, target: StatusPaid},
		ActionStartAssembly:  {sources: []Status{StatusPaid}, target: StatusInProgress},
		ActionMarkReady:      {sources: []Status{StatusInProgress}, target: StatusReady},
		ActionStartDelivery:  {sources: []Status{StatusReady}, target: StatusDelivering},
		ActionComplete:       {sources: []Status{StatusReady, StatusDelivering}, target: StatusCompleted},
		ActionCancel:         {sources: []Status{StatusPending, StatusAwaitingPayment}, target: StatusCancelled},
	}
}

// ParseAction converts a wire string into an Action.
// Returns a validation error for unknown action names.
//
// Example:
//
//	action, err := order.ParseAction("confirm_payment")
//	if err != nil {
//	    // 400 Bad Request territory
//	}
func ParseAction(s string) (Action, error) {
	action := Action(s)
	if _, ok := getTransitions()[action]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("action is invalid",
			fmt.Errorf("%q is not a known action", s))
	}
	return action, nil
}

// String returns the wire form of the action.
func (a Action) String() string {
	return string(a)
}

// TargetStatus returns the status the action produces when it is legal.
// Returns a validation error for unknown action names.
func (a Action) TargetStatus() (Status, error) {
	t, ok := getTransitions()[a]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("action is invalid",
			fmt.Errorf("%q is not a known action", string(a)))
	}
	return t.target, nil
}

// ApplyAction computes the status produced by applying an action.
// It is a pure function: the receiver is never modified and the result is
// fully determined by (status, action). The function is total over all
// (status, action) pairs; illegal pairs yield an InvalidTransitionError
// describing the current and expected statuses.
//
// Example:
//
//	next, err := order.StatusPending.ApplyAction(order.ActionAccept)
//	// next == order.StatusAwaitingPayment, err == nil
//
//	_, err = order.StatusCancelled.ApplyAction(order.ActionAccept)
//	// errors.Is(err, order.ErrInvalidTransition) == true
func (s Status) ApplyAction(a Action) (Status, error) {
	t, ok := getTransitions()[a]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("action is invalid",
			fmt.Errorf("%q is not a known action", string(a)))
	}

	for _, src := range t.sources {
		if s == src {
			return t.target, nil
		}
	}

	return "", NewInvalidTransitionError(a, s, t.sources)
}

// InvalidTransitionError reports an action applied to an order whose status
// does not admit it. It carries enough detail for transport adapters to
// build a precise client error.
type InvalidTransitionError struct {
	Action   Action
	Current  Status
	Expected []Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// action, the status the order was actually in, and the statuses the action
// requires.
func NewInvalidTransitionError(action Action, current Status, expected []Status) *InvalidTransitionError {
	return &InvalidTransitionError{
		Action:   action,
		Current:  current,
		Expected: expected,
	}
}

func (e *InvalidTransitionError) Error() string {
	expected := make([]string, 0, len(e.Expected))
	for _, s := range e.Expected {
		expected = append(expected, s.String())
	}
	return fmt.Sprintf("%s: action %q requires status %s, order is %s",
		ErrInvalidTransition, e.Action, strings.Join(expected, " or "), e.Current)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
