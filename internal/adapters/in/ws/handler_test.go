package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/notifications"
	"flowershop/internal/realtime"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wsFixture struct {
	registry *realtime.Registry
	server   *httptest.Server
}

func newWSFixture(t *testing.T) *wsFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := realtime.NewRegistry(logger)

	e := echo.New()
	NewHandler(registry, logger).Register(e)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return &wsFixture{registry: registry, server: server}
}

func (f *wsFixture) wsURL(path string) string {
	return "ws" + strings.TrimPrefix(f.server.URL, "http") + path
}

func actorHeader(id kernel.UUID, role string) http.Header {
	header := http.Header{}
	header.Set(HeaderActorID, id.String())
	header.Set(HeaderActorRole, role)
	return header
}

func dialOK(t *testing.T, f *wsFixture, path string, header http.Header) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(f.wsURL(path), header)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) notifications.Message {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg notifications.Message
	require.NoError(t, json.Unmarshal(payload, &msg))
	return msg
}

func TestStoreFeed_WithoutActorHeaders_RejectsHandshake(t *testing.T) {
	f := newWSFixture(t)

	_, resp, err := websocket.DefaultDialer.Dial(
		f.wsURL("/ws/florist/store/"+kernel.NewUUID().String()), nil)

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStoreFeed_AsCustomer_Forbidden(t *testing.T) {
	f := newWSFixture(t)

	_, resp, err := websocket.DefaultDialer.Dial(
		f.wsURL("/ws/florist/store/"+kernel.NewUUID().String()),
		actorHeader(kernel.NewUUID(), "customer"))

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestStoreFeed_WithMalformedStoreID_BadRequest(t *testing.T) {
	f := newWSFixture(t)

	_, resp, err := websocket.DefaultDialer.Dial(
		f.wsURL("/ws/florist/store/not-a-uuid"),
		actorHeader(kernel.NewUUID(), "florist"))

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStoreFeed_GreetsAndDeliversPublishedMessages(t *testing.T) {
	f := newWSFixture(t)
	storeID := kernel.NewUUID()
	topic := realtime.StoreTopicID(storeID)

	conn := dialOK(t, f, "/ws/florist/store/"+storeID.String(),
		actorHeader(kernel.NewUUID(), "florist"))

	greeting := readMessage(t, conn)
	assert.Equal(t, notifications.MessageTypeConnected, greeting.Type)
	assert.Equal(t, storeID.String(), greeting.StoreID)
	assert.NotEmpty(t, greeting.Text)

	require.Eventually(t, func() bool {
		return f.registry.TopicSize(topic) == 1
	}, 2*time.Second, 10*time.Millisecond)

	f.registry.Publish(topic, []byte(`{"type":"new_order"}`))

	msg := readMessage(t, conn)
	assert.Equal(t, notifications.MessageTypeNewOrder, msg.Type)
}

func TestOrderFeed_DeliversStatusUpdates(t *testing.T) {
	f := newWSFixture(t)
	orderID := kernel.NewUUID()
	topic := realtime.OrderTopicID(orderID)

	conn := dialOK(t, f, "/ws/orders/"+orderID.String(),
		actorHeader(kernel.NewUUID(), "customer"))

	greeting := readMessage(t, conn)
	assert.Equal(t, notifications.MessageTypeConnected, greeting.Type)
	assert.Equal(t, orderID.String(), greeting.OrderID)

	require.Eventually(t, func() bool {
		return f.registry.TopicSize(topic) == 1
	}, 2*time.Second, 10*time.Millisecond)

	f.registry.Publish(topic, []byte(`{"type":"status_update","status":"paid"}`))

	msg := readMessage(t, conn)
	assert.Equal(t, notifications.MessageTypeStatusUpdate, msg.Type)
	assert.Equal(t, "paid", msg.Status)
}

func TestStoreFeed_DisconnectLeavesTopic(t *testing.T) {
	f := newWSFixture(t)
	storeID := kernel.NewUUID()
	topic := realtime.StoreTopicID(storeID)

	conn := dialOK(t, f, "/ws/florist/store/"+storeID.String(),
		actorHeader(kernel.NewUUID(), "florist"))
	readMessage(t, conn)

	require.Eventually(t, func() bool {
		return f.registry.TopicSize(topic) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return f.registry.TopicSize(topic) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
