// Package push provides the outbound push notification adapter.
package push

import (
	"context"
	"log/slog"

	"flowershop/internal/core/domain/model/kernel"
)

// LogSender writes push notifications to the log instead of a device.
// Stands in for a real provider until one is wired; reminders must not
// depend on a provider being configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a push sender that logs every notification.
func NewLogSender(logger *slog.Logger) LogSender {
	return LogSender{logger: logger}
}

// SendPush logs the notification and reports success.
func (s LogSender) SendPush(_ context.Context, customerID kernel.UUID, title, body string) error {
	s.logger.Info("push notification",
		"customer_id", customerID.String(),
		"title", title,
		"body", body)
	return nil
}
