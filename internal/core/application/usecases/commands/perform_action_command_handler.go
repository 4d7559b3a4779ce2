package commands

import (
	"context"
	"errors"
	"fmt"

	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/core/ports"
)

var (
	// ErrConflict is the sentinel wrapped by ConflictError. It signals that a
	// competing actor changed the order between this actor's read and write.
	ErrConflict = errors.New("order was already handled by another actor")

	// ErrActionNotPermitted signals that the actor's role does not allow the
	// action, or that a customer targeted someone else's order.
	ErrActionNotPermitted = errors.New("action is not permitted for this actor")
)

// defaultRejectReason is recorded when a florist rejects without giving one.
const defaultRejectReason = "rejected by florist"

// ConflictError reports a lost race on an order: between reading the order and
// writing the new status another actor's write landed first. Current carries
// the status the order holds now, read back after the lost write.
type ConflictError struct {
	Current order.Status
}

// NewConflictError creates a ConflictError carrying the order's current status.
func NewConflictError(current order.Status) *ConflictError {
	return &ConflictError{Current: current}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: order is now %s", ErrConflict, e.Current)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// PerformActionResult is the outcome of a successfully applied action.
type PerformActionResult struct {
	// Status is the order's status after the action.
	Status order.Status
	// PaymentURL is set when the action was accept.
	PaymentURL string
}

// PerformActionCommandHandler applies lifecycle actions to orders and resolves
// races between competing actors.
//
// The race resolution works without locks or queues: the handler remembers the
// status it read, applies the state machine in memory, and persists with a
// single conditional update keyed on "status still equals what I read". The
// database accepts exactly one such write per status value; every other
// competitor sees zero rows affected and receives a ConflictError with the
// order's current status. Losers are never retried, because an action valid
// for the old status is not valid for the new one.
//
// Example:
//
//	handler := NewPerformActionCommandHandler(uowFactory, payments, notifier)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrConflict):
//	    // 409: somebody else was faster
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // 400: action not legal from the current status
//	case errors.Is(err, ErrActionNotPermitted):
//	    // 403
//	case err != nil:
//	    // 500
//	default:
//	    // result.Status, result.PaymentURL
//	}
type PerformActionCommandHandler struct {
	uowFactory OrderUoWFactory
	payments   ports.PaymentLinkProvider
	notifier   Notifier
}

// NewPerformActionCommandHandler creates a handler for lifecycle actions.
func NewPerformActionCommandHandler(
	uowFactory OrderUoWFactory,
	payments ports.PaymentLinkProvider,
	notifier Notifier,
) PerformActionCommandHandler {
	return PerformActionCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
		notifier:   notifier,
	}
}

// Handle processes the action command.
//
// Order of operations: role gate, load, ownership gate, in-memory state
// machine, conditional write, commit, notify. Notifications go out strictly
// after the commit so subscribers never observe a state that was rolled back.
func (h PerformActionCommandHandler) Handle(
	ctx context.Context,
	cmd PerformActionCommand,
) (PerformActionResult, error) {
	if err := cmd.Validate(); err != nil {
		return PerformActionResult{}, err
	}

	action := cmd.Action()
	actor := cmd.Actor()

	if !action.PermittedFor(actor.Role()) {
		return PerformActionResult{}, ErrActionNotPermitted
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PerformActionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	target, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return PerformActionResult{}, err
	}

	if actor.Role() == order.RoleCustomer && !actor.ID().IsEqual(target.CustomerID()) {
		return PerformActionResult{}, ErrActionNotPermitted
	}

	readStatus := target.Status()

	params := order.ActionParams{}
	switch action {
	case order.ActionAccept:
		floristID := actor.ID()
		params.FloristID = &floristID
		params.PaymentURL = h.payments.PaymentLink(target.ID(), target.Totals().Total())
	case order.ActionReject:
		params.Reason = cmd.Reason()
		if params.Reason == "" {
			params.Reason = defaultRejectReason
		}
	case order.ActionCancel:
		params.Reason = cmd.Reason()
	}

	if err = target.Apply(action, params); err != nil {
		// When the order already holds the status this action produces, a
		// competitor applied the same action first; that is a lost race, not
		// a bad request. Any other illegal pair stays an invalid transition.
		var transitionErr *order.InvalidTransitionError
		if errors.As(err, &transitionErr) {
			if targetStatus, targetErr := action.TargetStatus(); targetErr == nil &&
				target.Status() == targetStatus {
				return PerformActionResult{}, NewConflictError(target.Status())
			}
		}
		return PerformActionResult{}, err
	}

	applied, err := repo.UpdateWhereStatus(ctx, target, readStatus)
	if err != nil {
		return PerformActionResult{}, err
	}
	if !applied {
		// Lost the race. Re-read inside the same transaction to report the
		// winner's status; READ COMMITTED sees the winner's committed row.
		current, readErr := repo.Get(ctx, cmd.OrderID())
		if readErr != nil {
			return PerformActionResult{}, readErr
		}
		return PerformActionResult{}, NewConflictError(current.Status())
	}

	if err = uow.Commit(ctx); err != nil {
		return PerformActionResult{}, err
	}

	if action == order.ActionAccept {
		h.notifier.NotifyOrderClaimed(target, actor.Name())
	}
	h.notifier.NotifyOrderStatusChanged(target)

	return PerformActionResult{
		Status:     target.Status(),
		PaymentURL: target.PaymentURL(),
	}, nil
}
