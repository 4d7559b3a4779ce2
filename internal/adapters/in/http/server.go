package http

import (
	"errors"
	"net/http"

	"flowershop/internal/core/application/usecases/commands"
	"flowershop/internal/core/application/usecases/queries"
	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/core/domain/services"
	"flowershop/internal/generated/servers"
	"flowershop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	performActionHandler commands.PerformActionCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getStoreOrdersHandler queries.GetStoreOrdersQueryHandler

	pricing services.DeliveryPricing
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	performActionHandler commands.PerformActionCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getStoreOrdersHandler queries.GetStoreOrdersQueryHandler,
	pricing services.DeliveryPricing,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		performActionHandler:  performActionHandler,
		getOrderHandler:       getOrderHandler,
		getStoreOrdersHandler: getStoreOrdersHandler,
		pricing:               pricing,
	}
}

// GetDeliverySettings handles GET /api/v1/delivery-settings - returns the delivery pricing.
func (s *Server) GetDeliverySettings(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.DeliverySettings{
		CityFeeKopecks:       s.pricing.CityFee().Kopecks(),
		RemoteFeeKopecks:     s.pricing.RemoteFee().Kopecks(),
		FreeThresholdKopecks: s.pricing.FreeThreshold().Kopecks(),
	})
}

// CreateOrder handles POST /api/v1/orders - places a new order for the acting customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	if actor.Role() != order.RoleCustomer {
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "Only customers may place orders",
		})
	}

	var newOrder servers.NewOrder
	if err = ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	storeID, err := kernel.UUIDFromBytes(newOrder.StoreId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid store id: " + err.Error(),
		})
	}

	recipient, err := order.NewRecipient(
		newOrder.Recipient.Name,
		newOrder.Recipient.Phone,
		stringValue(newOrder.Recipient.Address),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid recipient: " + err.Error(),
		})
	}

	subtotal, err := kernel.NewMoney(newOrder.SubtotalKopecks)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid subtotal: " + err.Error(),
		})
	}

	discount := kernel.Zero()
	if newOrder.DiscountKopecks != nil {
		if discount, err = kernel.NewMoney(*newOrder.DiscountKopecks); err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid discount: " + err.Error(),
			})
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		actor.ID(),
		storeID,
		order.DeliveryType(newOrder.DeliveryType),
		recipient,
		stringValue(newOrder.CardText),
		subtotal,
		discount,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order.
// Customers may only read their own orders.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	if actor.Role() == order.RoleCustomer && !actor.ID().IsEqual(view.CustomerID) {
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "Customers may only view their own orders",
		})
	}

	return ctx.JSON(http.StatusOK, viewToResponse(view))
}

// PerformOrderAction handles POST /api/v1/orders/{orderId}/actions - applies a
// lifecycle action on behalf of the acting identity.
func (s *Server) PerformOrderAction(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	var request servers.OrderAction
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	action, err := order.ParseAction(string(request.Action))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid action: " + err.Error(),
		})
	}

	cmd, err := commands.NewPerformActionCommand(orderID, action, actor, stringValue(request.Reason))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid action data: " + err.Error(),
		})
	}

	result, err := s.performActionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return actionError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ActionResult{
		Status:     servers.OrderStatus(result.Status),
		PaymentUrl: optionalString(result.PaymentURL),
	})
}

// GetStoreOrders handles GET /api/v1/stores/{storeId}/orders - lists a store's
// orders newest first. Only the store's staff may see the list.
func (s *Server) GetStoreOrders(ctx echo.Context, storeId openapi_types.UUID, params servers.GetStoreOrdersParams) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	if actor.Role() == order.RoleCustomer {
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "Store order lists are for florists and owners",
		})
	}

	storeID, err := kernel.UUIDFromBytes(storeId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid store id: " + err.Error(),
		})
	}

	var statusFilter *order.Status
	if params.Status != nil {
		status := order.Status(*params.Status)
		statusFilter = &status
	}

	query, err := queries.NewGetStoreOrdersQuery(storeID, statusFilter)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	rows, err := s.getStoreOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.OrderListItem, len(rows))
	for i, row := range rows {
		response[i] = servers.OrderListItem{
			Id:            row.ID.Bytes(),
			Status:        servers.OrderStatus(row.Status),
			DeliveryType:  servers.DeliveryType(row.DeliveryType),
			RecipientName: row.RecipientName,
			TotalKopecks:  row.TotalKopecks,
			CreatedAt:     row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// actionError translates a failed action into the HTTP contract: a lost claim
// race is a conflict carrying the order's current status, an action illegal
// from the current status is a bad request, and role or ownership violations
// are forbidden.
func actionError(ctx echo.Context, err error) error {
	var conflict *commands.ConflictError
	if errors.As(err, &conflict) {
		return ctx.JSON(http.StatusConflict, servers.ConflictError{
			Code:          http.StatusConflict,
			Message:       "Order was already handled by another actor",
			CurrentStatus: servers.OrderStatus(conflict.Current),
		})
	}

	switch {
	case errors.Is(err, order.ErrInvalidTransition):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrActionNotPermitted):
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to perform action",
		})
	}
}

func unauthorized(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: err.Error(),
	})
}

// orderToResponse maps a freshly created aggregate to the wire model.
func orderToResponse(o *order.Order) servers.Order {
	var floristID *openapi_types.UUID
	if o.Florist() != nil {
		id := o.Florist().Bytes()
		floristID = &id
	}

	return servers.Order{
		Id:                 o.ID().Bytes(),
		CustomerId:         o.CustomerID().Bytes(),
		StoreId:            o.StoreID().Bytes(),
		FloristId:          floristID,
		Status:             servers.OrderStatus(o.Status()),
		DeliveryType:       servers.DeliveryType(o.DeliveryType()),
		Recipient:          recipientToResponse(o.Recipient().Name(), o.Recipient().Phone(), o.Recipient().Address()),
		CardText:           optionalString(o.CardText()),
		SubtotalKopecks:    o.Totals().Subtotal().Kopecks(),
		DiscountKopecks:    o.Totals().Discount().Kopecks(),
		DeliveryFeeKopecks: o.Totals().DeliveryFee().Kopecks(),
		TotalKopecks:       o.Totals().Total().Kopecks(),
		PaymentUrl:         optionalString(o.PaymentURL()),
		IsPaid:             o.IsPaid(),
		Comment:            optionalString(o.Comment()),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

// viewToResponse maps the read model of one order to the wire model.
func viewToResponse(view queries.GetOrderQueryResponse) servers.Order {
	var floristID *openapi_types.UUID
	if view.FloristID != nil {
		id := view.FloristID.Bytes()
		floristID = &id
	}

	return servers.Order{
		Id:                 view.ID.Bytes(),
		CustomerId:         view.CustomerID.Bytes(),
		StoreId:            view.StoreID.Bytes(),
		FloristId:          floristID,
		Status:             servers.OrderStatus(view.Status),
		DeliveryType:       servers.DeliveryType(view.DeliveryType),
		Recipient:          recipientToResponse(view.RecipientName, view.RecipientPhone, view.RecipientAddress),
		CardText:           optionalString(view.CardText),
		SubtotalKopecks:    view.SubtotalKopecks,
		DiscountKopecks:    view.DiscountKopecks,
		DeliveryFeeKopecks: view.DeliveryFeeKopecks,
		TotalKopecks:       view.TotalKopecks,
		PaymentUrl:         optionalString(view.PaymentURL),
		IsPaid:             view.IsPaid,
		Comment:            optionalString(view.Comment),
		CreatedAt:          view.CreatedAt,
		UpdatedAt:          view.UpdatedAt,
	}
}

func recipientToResponse(name, phone, address string) servers.Recipient {
	return servers.Recipient{
		Name:    name,
		Phone:   phone,
		Address: optionalString(address),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
