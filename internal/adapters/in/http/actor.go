package http

import (
	"errors"
	"fmt"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Actor identity headers, set by the upstream gateway after authentication.
// The request body is never trusted for identity.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
	HeaderActorName = "X-Actor-Name"
)

// ErrNoActor is returned when the identity headers are missing.
var ErrNoActor = errors.New("actor identity headers are missing")

// actorFromRequest builds the acting identity from the gateway headers.
func actorFromRequest(ctx echo.Context) (order.Actor, error) {
	header := ctx.Request().Header

	rawID := header.Get(HeaderActorID)
	rawRole := header.Get(HeaderActorRole)
	if rawID == "" || rawRole == "" {
		return order.Actor{}, ErrNoActor
	}

	actorID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return order.Actor{}, fmt.Errorf("invalid %s header: %w", HeaderActorID, err)
	}

	role, err := order.ParseRole(rawRole)
	if err != nil {
		return order.Actor{}, fmt.Errorf("invalid %s header: %w", HeaderActorRole, err)
	}

	return order.NewActor(actorID, role, header.Get(HeaderActorName))
}
