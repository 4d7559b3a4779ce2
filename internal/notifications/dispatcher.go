package notifications

import (
	"context"
	"log/slog"

	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/core/ports"
	"flowershop/internal/realtime"
)

// Publisher delivers an encoded message to every subscriber of a topic.
type Publisher interface {
	Publish(id realtime.TopicID, payload []byte)
}

// statusTexts are the push notification bodies per status. Statuses absent
// from the map produce no push.
var statusTexts = map[order.Status]string{
	order.StatusAwaitingPayment: "Your order was accepted and is awaiting payment",
	order.StatusPaid:            "Payment received, your order is confirmed",
	order.StatusInProgress:      "Your bouquet is being assembled",
	order.StatusReady:           "Your order is ready",
	order.StatusDelivering:      "Your order is on its way",
	order.StatusCompleted:       "Your order is completed",
	order.StatusCancelled:       "Your order was cancelled",
}

// Dispatcher fans committed order changes out to live subscribers and sends
// the customer a push per status change. Handlers call it strictly after
// commit, so subscribers never see a state that was rolled back.
//
// Dispatch never fails the caller: encoding problems and push errors are
// logged and dropped. Live updates are best effort; the database holds the
// truth.
type Dispatcher struct {
	publisher Publisher
	push      ports.PushSender
	logger    *slog.Logger
}

// NewDispatcher creates a dispatcher over the given publisher and push sender.
func NewDispatcher(publisher Publisher, push ports.PushSender, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
		push:      push,
		logger:    logger,
	}
}

// NotifyOrderCreated announces a new unclaimed order to the store's feed.
func (d *Dispatcher) NotifyOrderCreated(o *order.Order) {
	summary := &OrderSummary{
		ID:            o.ID().String(),
		StoreID:       o.StoreID().String(),
		Status:        o.Status().String(),
		DeliveryType:  o.DeliveryType().String(),
		RecipientName: o.Recipient().Name(),
		TotalKopecks:  o.Totals().Total().Kopecks(),
		CreatedAt:     o.CreatedAt(),
	}

	d.publish(realtime.StoreTopicID(o.StoreID()), Message{
		Type:    MessageTypeNewOrder,
		OrderID: summary.ID,
		StoreID: summary.StoreID,
		Order:   summary,
	})
}

// NotifyOrderClaimed tells the store's florists the order was taken and by whom.
func (d *Dispatcher) NotifyOrderClaimed(o *order.Order, floristName string) {
	d.publish(realtime.StoreTopicID(o.StoreID()), Message{
		Type:        MessageTypeOrderClaimed,
		OrderID:     o.ID().String(),
		StoreID:     o.StoreID().String(),
		Status:      o.Status().String(),
		FloristName: floristName,
	})
}

// NotifyOrderStatusChanged reports the new status to the order's watchers and
// pushes a note to the customer.
func (d *Dispatcher) NotifyOrderStatusChanged(o *order.Order) {
	d.publish(realtime.OrderTopicID(o.ID()), Message{
		Type:    MessageTypeStatusUpdate,
		OrderID: o.ID().String(),
		StoreID: o.StoreID().String(),
		Status:  o.Status().String(),
	})

	text, ok := statusTexts[o.Status()]
	if !ok {
		return
	}
	if err := d.push.SendPush(context.Background(), o.CustomerID(), "Order update", text); err != nil {
		d.logger.Warn("status push failed",
			"order_id", o.ID().String(),
			"error", err)
	}
}

func (d *Dispatcher) publish(topicID realtime.TopicID, msg Message) {
	payload, err := msg.Encode()
	if err != nil {
		d.logger.Error("message encoding failed",
			"type", string(msg.Type),
			"error", err)
		return
	}
	d.publisher.Publish(topicID, payload)
}
