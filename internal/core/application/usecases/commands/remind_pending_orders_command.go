package commands

import (
	"errors"

	"flowershop/internal/pkg/guard"
)

var (
	ErrRemindPendingOrdersCommandIsNotConstructed = errors.New(
		"RemindPendingOrdersCommand must be created via NewRemindPendingOrdersCommand constructor",
	)
)

// RemindPendingOrdersCommand triggers a re-broadcast of all orders still
// waiting for a florist claim. Parameterless; fired periodically by a job.
type RemindPendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewRemindPendingOrdersCommand creates the re-broadcast command.
func NewRemindPendingOrdersCommand() RemindPendingOrdersCommand {
	return RemindPendingOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RemindPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemindPendingOrdersCommandIsNotConstructed)
}
