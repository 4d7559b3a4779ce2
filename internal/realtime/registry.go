// Package realtime tracks live subscriber connections and fans messages out
// to them. Topics group connections by what they watch: a store's florists
// waiting for new orders, or a customer watching one order's status.
package realtime

import (
	"fmt"
	"log/slog"
	"sync"

	"flowershop/internal/core/domain/model/kernel"
)

// TopicID names a fan-out channel. Use StoreTopicID and OrderTopicID to
// build well-formed ids.
type TopicID string

// StoreTopicID is the topic all of a store's florists subscribe to.
func StoreTopicID(storeID kernel.UUID) TopicID {
	return TopicID(fmt.Sprintf("store:%s", storeID))
}

// OrderTopicID is the topic for watchers of a single order.
func OrderTopicID(orderID kernel.UUID) TopicID {
	return TopicID(fmt.Sprintf("order:%s", orderID))
}

// Connection is a live subscriber endpoint. Send must be safe for calls from
// multiple goroutines; a non-nil error marks this delivery as failed without
// affecting the connection's membership.
type Connection interface {
	Send(payload []byte) error
}

type topic struct {
	// publishMu serializes publishes so every subscriber observes the
	// topic's messages in the same order.
	publishMu sync.Mutex
	members   map[Connection]struct{}
}

// Registry maps topics to their live connections.
//
// Delivery guarantees: messages published to one topic reach its subscribers
// in publish order, and one subscriber's failed Send never blocks or skips
// the others. Failures are logged and otherwise ignored; a broken connection
// is cleaned up by whoever owns its read loop calling DropConnection.
//
// Join is idempotent and Leave tolerates connections that were never joined,
// so teardown paths can call them without bookkeeping.
type Registry struct {
	mu          sync.RWMutex
	topics      map[TopicID]*topic
	memberships map[Connection]map[TopicID]struct{}
	logger      *slog.Logger
}

// NewRegistry creates an empty connection registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		topics:      make(map[TopicID]*topic),
		memberships: make(map[Connection]map[TopicID]struct{}),
		logger:      logger,
	}
}

// Join subscribes the connection to the topic. Joining a topic the
// connection already belongs to is a no-op.
func (r *Registry) Join(id TopicID, conn Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.topics[id]
	if !ok {
		t = &topic{members: make(map[Connection]struct{})}
		r.topics[id] = t
	}
	t.members[conn] = struct{}{}

	if r.memberships[conn] == nil {
		r.memberships[conn] = make(map[TopicID]struct{})
	}
	r.memberships[conn][id] = struct{}{}
}

// Leave unsubscribes the connection from the topic. Unknown topics and
// connections are ignored. Empty topics are removed from the registry.
func (r *Registry) Leave(id TopicID, conn Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leave(id, conn)
}

func (r *Registry) leave(id TopicID, conn Connection) {
	t, ok := r.topics[id]
	if !ok {
		return
	}

	delete(t.members, conn)
	if len(t.members) == 0 {
		delete(r.topics, id)
	}

	if topics := r.memberships[conn]; topics != nil {
		delete(topics, id)
		if len(topics) == 0 {
			delete(r.memberships, conn)
		}
	}
}

// Publish delivers the payload to every current subscriber of the topic.
// Deliveries happen one subscriber at a time; a failed Send is logged and
// the remaining subscribers still receive the payload. Publishing to a
// topic with no subscribers is a no-op.
func (r *Registry) Publish(id TopicID, payload []byte) {
	r.mu.RLock()
	t, ok := r.topics[id]
	r.mu.RUnlock()
	if !ok {
		return
	}

	t.publishMu.Lock()
	defer t.publishMu.Unlock()

	// Snapshot under the registry lock so joins and leaves during the
	// send loop do not mutate the set being walked.
	r.mu.RLock()
	members := make([]Connection, 0, len(t.members))
	for conn := range t.members {
		members = append(members, conn)
	}
	r.mu.RUnlock()

	for _, conn := range members {
		if err := conn.Send(payload); err != nil {
			r.logger.Warn("subscriber delivery failed",
				"topic", string(id),
				"error", err)
		}
	}
}

// DropConnection removes the connection from every topic it joined. When
// DropConnection returns, no publish started afterwards will reach the
// connection.
func (r *Registry) DropConnection(conn Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id := range r.memberships[conn] {
		r.leave(id, conn)
	}
	delete(r.memberships, conn)
}

// TopicSize reports the number of current subscribers of the topic.
func (r *Registry) TopicSize(id TopicID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.topics[id]
	if !ok {
		return 0
	}
	return len(t.members)
}
