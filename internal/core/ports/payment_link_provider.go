package ports

import (
	"flowershop/internal/core/domain/model/kernel"
)

// PaymentLinkProvider mints the payment URL handed to the customer when a
// florist accepts their order. The real payment-provider integration lives
// behind this port; the bundled implementation is a deterministic stub.
type PaymentLinkProvider interface {
	// PaymentLink returns the payment URL for an order and the amount due.
	PaymentLink(orderID kernel.UUID, total kernel.Money) string
}
