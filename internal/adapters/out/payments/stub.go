// Package payments provides the payment link adapter. The shop does not
// charge cards itself; it hands the customer a link to an external payment
// page and later learns the outcome through the confirm_payment action.
package payments

import (
	"fmt"

	"flowershop/internal/core/domain/model/kernel"
)

// StubLinkProvider mints deterministic payment page links from a base URL.
// Suitable for development and for gateways that accept order id and amount
// as query parameters.
type StubLinkProvider struct {
	baseURL string
}

// NewStubLinkProvider creates a link provider rooted at baseURL,
// e.g. "https://pay.example.com".
func NewStubLinkProvider(baseURL string) StubLinkProvider {
	return StubLinkProvider{baseURL: baseURL}
}

// PaymentLink returns the payment page URL for the order.
func (p StubLinkProvider) PaymentLink(orderID kernel.UUID, total kernel.Money) string {
	return fmt.Sprintf("%s/order/%s?amount=%s", p.baseURL, orderID, total)
}
