package ws

import (
	"errors"
	"log/slog"
	"net/http"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/generated/servers"
	"flowershop/internal/notifications"
	"flowershop/internal/realtime"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Actor identity headers, set by the upstream gateway after authentication.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// ErrNoActor is returned when the identity headers are missing.
var ErrNoActor = errors.New("actor identity headers are missing")

// Handler upgrades HTTP requests to websocket subscriptions on the realtime
// registry. Florists subscribe to their store's feed to see new orders and
// claim outcomes; customers subscribe to a single order's feed to follow its
// status.
type Handler struct {
	registry *realtime.Registry
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates a websocket handler over the given registry.
func NewHandler(registry *realtime.Registry, logger *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.With("component", "ws_handler"),
	}
}

// Register wires the websocket routes into the echo instance.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/ws/florist/store/:storeId", h.StoreFeed)
	e.GET("/ws/orders/:orderId", h.OrderFeed)
}

// StoreFeed handles GET /ws/florist/store/{storeId}. Only store staff may
// subscribe; each subscriber receives a greeting frame and then every
// notification published to the store's topic.
func (h *Handler) StoreFeed(ctx echo.Context) error {
	role, _, err := actorFromHeader(ctx.Request().Header)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	if role == order.RoleCustomer {
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "Store feeds are for florists and owners",
		})
	}

	storeID, err := kernel.UUIDFromString(ctx.Param("storeId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid store id: " + err.Error(),
		})
	}

	return h.subscribe(ctx, realtime.StoreTopicID(storeID), notifications.StoreConnectedPayload(storeID))
}

// OrderFeed handles GET /ws/orders/{orderId}. Any authenticated actor may
// follow a single order's status updates.
func (h *Handler) OrderFeed(ctx echo.Context) error {
	if _, _, err := actorFromHeader(ctx.Request().Header); err != nil {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	return h.subscribe(ctx, realtime.OrderTopicID(orderID), notifications.OrderConnectedPayload(orderID))
}

// subscribe upgrades the request, greets the peer, joins it to the topic and
// blocks until the peer disappears. Teardown is synchronous: by the time the
// read loop returns, the connection is out of every topic.
func (h *Handler) subscribe(ctx echo.Context, topic realtime.TopicID, greeting []byte) error {
	raw, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Upgrade already wrote the handshake error response.
		return nil
	}

	conn := newWSConnection(raw)

	if err := conn.Send(greeting); err != nil {
		h.logger.Warn("greeting failed", "topic", string(topic), "error", err)
		_ = conn.Close()
		return nil
	}

	h.registry.Join(topic, conn)
	h.logger.Info("subscriber joined", "topic", string(topic))

	for {
		if _, _, err := raw.ReadMessage(); err != nil {
			break
		}
	}

	h.registry.DropConnection(conn)
	_ = conn.Close()
	h.logger.Info("subscriber left", "topic", string(topic))

	return nil
}

func actorFromHeader(header http.Header) (order.Role, kernel.UUID, error) {
	rawID := header.Get(HeaderActorID)
	rawRole := header.Get(HeaderActorRole)
	if rawID == "" || rawRole == "" {
		return "", kernel.UUID{}, ErrNoActor
	}

	actorID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return "", kernel.UUID{}, err
	}

	role, err := order.ParseRole(rawRole)
	if err != nil {
		return "", kernel.UUID{}, err
	}

	return role, actorID, nil
}
