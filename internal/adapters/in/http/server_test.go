package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flowershop/internal/core/application/usecases/commands"
	"flowershop/internal/core/application/usecases/queries"
	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/services"
	"flowershop/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, kopecks int64) kernel.Money {
	t.Helper()

	money, err := kernel.NewMoney(kopecks)
	require.NoError(t, err)
	return money
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	pricing, err := services.NewDeliveryPricing(
		mustMoney(t, 30000),
		mustMoney(t, 70000),
		mustMoney(t, 1000000),
	)
	require.NoError(t, err)

	server := NewServer(
		commands.CreateOrderCommandHandler{},
		commands.PerformActionCommandHandler{},
		queries.GetOrderQueryHandler{},
		queries.GetStoreOrdersQueryHandler{},
		pricing,
	)

	e := echo.New()
	servers.RegisterHandlers(e, server)
	return e
}

func doRequest(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func withActor(req *http.Request, id, role, name string) *http.Request {
	req.Header.Set(HeaderActorID, id)
	req.Header.Set(HeaderActorRole, role)
	req.Header.Set(HeaderActorName, name)
	return req
}

func TestGetDeliverySettings_ReturnsConfiguredPricing(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/delivery-settings", nil)
	rec := doRequest(e, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var settings servers.DeliverySettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, int64(30000), settings.CityFeeKopecks)
	assert.Equal(t, int64(70000), settings.RemoteFeeKopecks)
	assert.Equal(t, int64(1000000), settings.FreeThresholdKopecks)
}

func TestPerformOrderAction_WithoutActorHeaders_Unauthorized(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/orders/"+uuid.NewString()+"/actions",
		strings.NewReader(`{"action":"accept"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := doRequest(e, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPerformOrderAction_WithUnknownRole_Unauthorized(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/orders/"+uuid.NewString()+"/actions",
		strings.NewReader(`{"action":"accept"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	withActor(req, uuid.NewString(), "courier", "Maria")
	rec := doRequest(e, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPerformOrderAction_WithUnknownAction_BadRequest(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/orders/"+uuid.NewString()+"/actions",
		strings.NewReader(`{"action":"teleport"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	withActor(req, uuid.NewString(), "florist", "Maria")
	rec := doRequest(e, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var response servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response.Message, "Invalid action")
}

func TestPerformOrderAction_WithMalformedOrderID_BadRequest(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/orders/not-a-uuid/actions",
		strings.NewReader(`{"action":"accept"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	withActor(req, uuid.NewString(), "florist", "Maria")
	rec := doRequest(e, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_AsFlorist_Forbidden(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders",
		strings.NewReader(`{"store_id":"`+uuid.NewString()+`","delivery_type":"pickup","recipient":{"name":"Anna","phone":"+79990001122"},"subtotal_kopecks":500000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	withActor(req, uuid.NewString(), "florist", "Maria")
	rec := doRequest(e, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetStoreOrders_AsCustomer_Forbidden(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/stores/"+uuid.NewString()+"/orders", nil)
	withActor(req, uuid.NewString(), "customer", "Ivan")
	rec := doRequest(e, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetOrder_WithoutActorHeaders_Unauthorized(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/orders/"+uuid.NewString(), nil)
	rec := doRequest(e, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
