package queries_test

import (
	"context"
	"testing"
	"time"

	"flowershop/internal/adapters/out/postgres/orderrepo"
	"flowershop/internal/core/application/usecases/queries"
	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsFullView() {
	ctx := context.Background()

	recipient, err := order.NewRecipient("Anna", "+79990001122", "Tverskaya 1")
	suite.Require().NoError(err)
	subtotal, err := kernel.NewMoney(500000)
	suite.Require().NoError(err)
	discount, err := kernel.NewMoney(50000)
	suite.Require().NoError(err)
	deliveryFee, err := kernel.NewMoney(30000)
	suite.Require().NoError(err)
	totals, err := order.NewTotals(subtotal, discount, deliveryFee)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.DeliveryTypeCity, recipient, "Happy birthday!", totals,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(o.ID().IsEqual(view.ID))
	suite.True(o.CustomerID().IsEqual(view.CustomerID))
	suite.True(o.StoreID().IsEqual(view.StoreID))
	suite.Nil(view.FloristID)
	suite.Equal(order.StatusPending, view.Status)
	suite.Equal(order.DeliveryTypeCity, view.DeliveryType)
	suite.Equal("Anna", view.RecipientName)
	suite.Equal("+79990001122", view.RecipientPhone)
	suite.Equal("Tverskaya 1", view.RecipientAddress)
	suite.Equal("Happy birthday!", view.CardText)
	suite.Equal(int64(500000), view.SubtotalKopecks)
	suite.Equal(int64(50000), view.DiscountKopecks)
	suite.Equal(int64(30000), view.DeliveryFeeKopecks)
	suite.Equal(int64(480000), view.TotalKopecks)
	suite.False(view.IsPaid)
	suite.Empty(view.PaymentURL)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ClaimedOrder_IncludesFlorist() {
	ctx := context.Background()

	recipient, err := order.NewRecipient("Anna", "+79990001122", "Tverskaya 1")
	suite.Require().NoError(err)
	subtotal, err := kernel.NewMoney(500000)
	suite.Require().NoError(err)
	totals, err := order.NewTotals(subtotal, kernel.Zero(), kernel.Zero())
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.DeliveryTypePickup, recipient, "", totals,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	floristID := kernel.NewUUID()
	suite.Require().NoError(o.Accept(floristID, "https://pay.example.com/order/v"))
	applied, err := suite.orderRepo.UpdateWhereStatus(ctx, o, order.StatusPending)
	suite.Require().NoError(err)
	suite.Require().True(applied)

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(order.StatusAwaitingPayment, view.Status)
	suite.Require().NotNil(view.FloristID)
	suite.True(floristID.IsEqual(*view.FloristID))
	suite.Equal("https://pay.example.com/order/v", view.PaymentURL)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
