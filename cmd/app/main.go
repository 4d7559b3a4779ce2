package main

import (
	"fmt"
	"net/http"
	"os"

	"flowershop/cmd"
	httpadapter "flowershop/internal/adapters/in/http"
	"flowershop/internal/adapters/in/ws"
	"flowershop/internal/adapters/out/postgres/orderrepo"
	"flowershop/internal/generated/servers"
	"flowershop/internal/jobs"

	_ "flowershop/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Flower Shop Orders API
// @version 1.0.0
// @description Order lifecycle and florist claim coordination for flower stores.
// @BasePath /
func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateRemindPendingOrdersCommandHandler(),
		app.CreateRemindAwaitingPaymentCommandHandler(),
		app.Logger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                     goDotEnvVariable("HTTP_PORT"),
		DBHost:                       goDotEnvVariable("DB_HOST"),
		DBPort:                       goDotEnvVariable("DB_PORT"),
		DBUser:                       goDotEnvVariable("DB_USER"),
		DBPassword:                   goDotEnvVariable("DB_PASSWORD"),
		DBName:                       goDotEnvVariable("DB_NAME"),
		DBSslMode:                    goDotEnvVariable("DB_SSLMODE"),
		PaymentBaseURL:               goDotEnvVariable("PAYMENT_BASE_URL"),
		DeliveryCityFeeKopecks:       goDotEnvVariable("DELIVERY_CITY_FEE_KOPECKS"),
		DeliveryRemoteFeeKopecks:     goDotEnvVariable("DELIVERY_REMOTE_FEE_KOPECKS"),
		FreeDeliveryThresholdKopecks: goDotEnvVariable("FREE_DELIVERY_THRESHOLD_KOPECKS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreatePerformActionCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetStoreOrdersQueryHandler(),
		app.DeliveryPricing(),
	)
	servers.RegisterHandlers(e, server)

	ws.NewHandler(app.Registry(), app.Logger()).Register(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
