// Package notifications turns committed order changes into messages for live
// subscribers and push reminders for customers.
package notifications

import (
	"encoding/json"
	"time"

	"flowershop/internal/core/domain/model/kernel"
)

// MessageType discriminates the wire messages subscribers receive.
type MessageType string

const (
	// MessageTypeConnected greets a subscriber right after it joins a feed.
	MessageTypeConnected MessageType = "connected"
	// MessageTypeNewOrder announces an unclaimed order to a store's florists.
	MessageTypeNewOrder MessageType = "new_order"
	// MessageTypeOrderClaimed tells a store's florists who took an order.
	MessageTypeOrderClaimed MessageType = "order_claimed"
	// MessageTypeStatusUpdate reports an order's new status to its watchers.
	MessageTypeStatusUpdate MessageType = "status_update"
)

// OrderSummary is the order snapshot carried by new_order messages. It holds
// what a florist needs to decide whether to claim.
type OrderSummary struct {
	ID            string    `json:"id"`
	StoreID       string    `json:"store_id"`
	Status        string    `json:"status"`
	DeliveryType  string    `json:"delivery_type"`
	RecipientName string    `json:"recipient_name"`
	TotalKopecks  int64     `json:"total_kopecks"`
	CreatedAt     time.Time `json:"created_at"`
}

// Message is the JSON envelope published to subscriber feeds. Fields beyond
// Type are populated per message type and omitted otherwise.
type Message struct {
	Type        MessageType   `json:"type"`
	OrderID     string        `json:"order_id,omitempty"`
	StoreID     string        `json:"store_id,omitempty"`
	Status      string        `json:"status,omitempty"`
	FloristName string        `json:"florist_name,omitempty"`
	Text        string        `json:"message,omitempty"`
	Order       *OrderSummary `json:"order,omitempty"`
}

// Encode renders the message as its JSON wire form.
func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// StoreConnectedPayload is the greeting sent to a florist when a store feed
// opens. It names the store so a client multiplexing feeds can tell them apart.
func StoreConnectedPayload(storeID kernel.UUID) []byte {
	payload, _ := Message{
		Type:    MessageTypeConnected,
		StoreID: storeID.String(),
		Text:    "Connected to store order feed",
	}.Encode()
	return payload
}

// OrderConnectedPayload is the greeting sent to a watcher when an order feed
// opens.
func OrderConnectedPayload(orderID kernel.UUID) []byte {
	payload, _ := Message{
		Type:    MessageTypeConnected,
		OrderID: orderID.String(),
		Text:    "Connected to order status feed",
	}.Encode()
	return payload
}
