package commands

import (
	"errors"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/guard"
)

var (
	ErrPerformActionCommandIsNotConstructed = errors.New(
		"PerformActionCommand must be created via NewPerformActionCommand constructor",
	)
)

// PerformActionCommand represents a request to apply a lifecycle action to an
// order on behalf of a verified actor.
//
// Example:
//
//	actor, _ := order.NewActor(floristID, order.RoleFlorist, "Maria")
//	cmd, err := NewPerformActionCommand(orderID, order.ActionAccept, actor, "")
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrConflict) {
//	    // Another florist won the claim; result carries nothing,
//	    // the error carries the order's current status.
//	}
type PerformActionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  order.Action
	actor   order.Actor
	reason  string

	guard guard.ConstructorGuard
}

// NewPerformActionCommand creates a command to perform a lifecycle action.
// The reason is only meaningful for reject and cancel and may be empty.
func NewPerformActionCommand(
	orderID kernel.UUID,
	action order.Action,
	actor order.Actor,
	reason string,
) (PerformActionCommand, error) {
	cmd := PerformActionCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(action),
		cmd.setActor(actor),
	); err != nil {
		return PerformActionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPerformActionCommandIsNotConstructed if validation fails.
func (c PerformActionCommand) Validate() error {
	return c.guard.Validate(ErrPerformActionCommandIsNotConstructed)
}

// OrderID returns the order the action targets.
func (c PerformActionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the lifecycle action to perform.
func (c PerformActionCommand) Action() order.Action {
	return c.action
}

// Actor returns who is performing the action.
func (c PerformActionCommand) Actor() order.Actor {
	return c.actor
}

// Reason returns the optional reject/cancel reason.
func (c PerformActionCommand) Reason() string {
	return c.reason
}

func (c *PerformActionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PerformActionCommand) setAction(action order.Action) error {
	if _, err := order.ParseAction(action.String()); err != nil {
		return err
	}

	c.action = action
	return nil
}

func (c *PerformActionCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
