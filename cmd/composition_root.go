package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"flowershop/internal/adapters/out/payments"
	"flowershop/internal/adapters/out/postgres"
	"flowershop/internal/adapters/out/push"
	"flowershop/internal/core/application/usecases/commands"
	"flowershop/internal/core/application/usecases/queries"
	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/services"
	"flowershop/internal/notifications"
	"flowershop/internal/realtime"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	logger     *slog.Logger
	registry   *realtime.Registry
	dispatcher *notifications.Dispatcher
	pushSender push.LogSender
	payments   payments.StubLinkProvider
	pricing    services.DeliveryPricing
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	pricing, err := buildPricing(configs)
	if err != nil {
		return CompositionRoot{}, err
	}

	registry := realtime.NewRegistry(logger)
	pushSender := push.NewLogSender(logger)
	dispatcher := notifications.NewDispatcher(registry, pushSender, logger)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		registry:   registry,
		dispatcher: dispatcher,
		pushSender: pushSender,
		payments:   payments.NewStubLinkProvider(configs.PaymentBaseURL),
		pricing:    pricing,
	}, nil
}

func buildPricing(configs Config) (services.DeliveryPricing, error) {
	cityFee, err := moneyFromConfig("DELIVERY_CITY_FEE_KOPECKS", configs.DeliveryCityFeeKopecks)
	if err != nil {
		return services.DeliveryPricing{}, err
	}

	remoteFee, err := moneyFromConfig("DELIVERY_REMOTE_FEE_KOPECKS", configs.DeliveryRemoteFeeKopecks)
	if err != nil {
		return services.DeliveryPricing{}, err
	}

	threshold, err := moneyFromConfig("FREE_DELIVERY_THRESHOLD_KOPECKS", configs.FreeDeliveryThresholdKopecks)
	if err != nil {
		return services.DeliveryPricing{}, err
	}

	return services.NewDeliveryPricing(cityFee, remoteFee, threshold)
}

func moneyFromConfig(name string, raw string) (kernel.Money, error) {
	kopecks, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return kernel.Money{}, fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	return kernel.NewMoney(kopecks)
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) Registry() *realtime.Registry {
	return c.registry
}

func (c *CompositionRoot) DeliveryPricing() services.DeliveryPricing {
	return c.pricing
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.pricing, c.dispatcher)
}

func (c *CompositionRoot) CreatePerformActionCommandHandler() commands.PerformActionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPerformActionCommandHandler(f, c.payments, c.dispatcher)
}

func (c *CompositionRoot) CreateRemindPendingOrdersCommandHandler() commands.RemindPendingOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemindPendingOrdersCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateRemindAwaitingPaymentCommandHandler() commands.RemindAwaitingPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemindAwaitingPaymentCommandHandler(f, c.pushSender, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreOrdersQueryHandler() queries.GetStoreOrdersQueryHandler {
	return queries.NewGetStoreOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
