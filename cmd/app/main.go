package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"courier/cmd"
	httpadapter "courier/internal/adapters/in/http"
	"courier/internal/adapters/out/postgres/agentrepo"
	"courier/internal/adapters/out/postgres/configrepo"
	"courier/internal/adapters/out/postgres/paymentrepo"
	"courier/internal/adapters/out/postgres/pricingrepo"
	"courier/internal/adapters/out/postgres/shipmentrepo"
	"courier/internal/core/domain/model/notification"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	tz, err := time.LoadLocation(configs.Timezone)
	if err != nil {
		logger.Error("Unknown timezone, falling back to UTC", "timezone", configs.Timezone)
		tz = time.UTC
	}

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := migrateDatabase(gormDB); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, tz, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}

	e := buildWebServer(&root)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil &&
			err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	root.Dispatcher().Flush()
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using process environment")
	}

	return cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envOrDefault("DB_NAME", "courier"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),
		Timezone:   envOrDefault("TIMEZONE", "Asia/Kolkata"),
		Notification: notification.Config{
			SMTPHost:      os.Getenv("SMTP_HOST"),
			SMTPPort:      envInt("SMTP_PORT"),
			SMTPUsername:  os.Getenv("SMTP_USERNAME"),
			SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
			SMTPUseTLS:    envBool("SMTP_USE_TLS"),
			SMSAccountSID: os.Getenv("SMS_ACCOUNT_SID"),
			SMSAuthToken:  os.Getenv("SMS_AUTH_TOKEN"),
			SMSFromNumber: os.Getenv("SMS_FROM_NUMBER"),
		},
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return value
}

// envBool keeps the difference between "unset" and "false": only an
// explicitly set variable produces a value.
func envBool(key string) *bool {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TrackingEventDTO{},
		&paymentrepo.PaymentDTO{},
		&agentrepo.AgentDTO{},
		&pricingrepo.RuleDTO{},
		&configrepo.ConfigDTO{},
	)
}

func buildWebServer(root *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(gommonlog.INFO)
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		httpadapter.CommandHandlers{
			CreateShipment:         root.CreateCreateShipmentCommandHandler(),
			CompletePayment:        root.CreateCompletePaymentCommandHandler(),
			AssignAgent:            root.CreateAssignAgentCommandHandler(),
			UpdateStatus:           root.CreateUpdateStatusCommandHandler(),
			MarkDelivered:          root.CreateMarkDeliveredCommandHandler(),
			RegisterAgent:          root.CreateRegisterAgentCommandHandler(),
			AddPricingRule:         root.CreateAddPricingRuleCommandHandler(),
			SaveNotificationConfig: root.CreateSaveNotificationConfigCommandHandler(),
		},
		httpadapter.QueryHandlers{
			TrackShipment:       root.CreateTrackShipmentQueryHandler(),
			TrackingHistory:     root.CreateGetTrackingHistoryQueryHandler(),
			ShipmentsByOwner:    root.CreateGetShipmentsByOwnerQueryHandler(),
			AllShipments:        root.CreateGetAllShipmentsQueryHandler(),
			UnassignedShipments: root.CreateGetUnassignedShipmentsQueryHandler(),
			AllAgents:           root.CreateGetAllAgentsQueryHandler(),
			PendingPayments:     root.CreateGetPendingPaymentsQueryHandler(),
			NotificationConfig:  root.CreateGetNotificationConfigQueryHandler(),
		},
		root.Store(),
		root.Dispatcher(),
	)
	server.RegisterRoutes(e)

	return e
}
