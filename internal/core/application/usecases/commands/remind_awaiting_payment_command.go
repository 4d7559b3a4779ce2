package commands

import (
	"errors"
	"time"

	"flowershop/internal/pkg/guard"
)

var (
	ErrRemindAwaitingPaymentCommandIsNotConstructed = errors.New(
		"RemindAwaitingPaymentCommand must be created via NewRemindAwaitingPaymentCommand constructor",
	)
	ErrOlderThanIsInvalid = errors.New("olderThan must be greater than 0")
)

// RemindAwaitingPaymentCommand triggers payment reminders for orders that
// have sat in awaiting_payment longer than the given age.
type RemindAwaitingPaymentCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRemindAwaitingPaymentCommand creates the reminder command.
// olderThan must be positive.
func NewRemindAwaitingPaymentCommand(olderThan time.Duration) (RemindAwaitingPaymentCommand, error) {
	cmd := RemindAwaitingPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOlderThan(olderThan); err != nil {
		return RemindAwaitingPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindAwaitingPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRemindAwaitingPaymentCommandIsNotConstructed)
}

// OlderThan returns the minimum age an awaiting_payment order must have to
// receive a reminder.
func (c RemindAwaitingPaymentCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *RemindAwaitingPaymentCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return ErrOlderThanIsInvalid
	}

	c.olderThan = olderThan
	return nil
}
