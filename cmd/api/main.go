package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-sales-service/config"
	custH "github.com/fekuna/omnipos-sales-service/internal/customer/handler"
	custRepoPkg "github.com/fekuna/omnipos-sales-service/internal/customer/repository"
	custUCPkg "github.com/fekuna/omnipos-sales-service/internal/customer/usecase"
	orderH "github.com/fekuna/omnipos-sales-service/internal/order/handler"
	orderRepoPkg "github.com/fekuna/omnipos-sales-service/internal/order/repository"
	orderUCPkg "github.com/fekuna/omnipos-sales-service/internal/order/usecase"
	prodH "github.com/fekuna/omnipos-sales-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-sales-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-sales-service/internal/product/usecase"
	suppH "github.com/fekuna/omnipos-sales-service/internal/supplier/handler"
	suppRepoPkg "github.com/fekuna/omnipos-sales-service/internal/supplier/repository"
	suppUCPkg "github.com/fekuna/omnipos-sales-service/internal/supplier/usecase"

	"github.com/fekuna/omnipos-sales-service/internal/order/events"
	"github.com/fekuna/omnipos-sales-service/internal/server"
	"github.com/fekuna/omnipos-sales-service/pkg/broker"
	"github.com/fekuna/omnipos-sales-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Kafka Producer
	producer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer producer.Close()
	appLogger.Info("Connected to Kafka Producer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 5. Initialize Repositories
	custRepo := custRepoPkg.NewPGRepository(db)
	suppRepo := suppRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db)

	// 6. Initialize UseCases
	publisher := events.NewPublisher(producer, appLogger)
	custUC := custUCPkg.NewCustomerUseCase(custRepo, appLogger)
	suppUC := suppUCPkg.NewSupplierUseCase(suppRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, suppRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, custRepo, publisher, appLogger)

	// 7. Initialize Handlers
	custHandler := custH.NewCustomerHandler(custUC, appLogger)
	suppHandler := suppH.NewSupplierHandler(suppUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	orderHandler := orderH.NewOrderHandler(orderUC, appLogger)

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := server.New(appLogger, custHandler, suppHandler, prodHandler, orderHandler)
	httpServer := &http.Server{
		Addr:    port,
		Handler: srv.Handler(),
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
