package ports

import (
	"context"

	"flowershop/internal/core/domain/model/kernel"
)

// PushSender delivers fire-and-forget push notifications to customers.
// Failures must never affect order processing; callers log and move on.
type PushSender interface {
	// SendPush sends a notification to the customer's devices.
	SendPush(ctx context.Context, customerID kernel.UUID, title string, body string) error
}
