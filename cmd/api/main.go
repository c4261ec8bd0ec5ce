package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kiranadev/inventory-billing-service/config"
	"github.com/kiranadev/inventory-billing-service/internal/middleware"
	"github.com/kiranadev/inventory-billing-service/pkg/broker"
	"github.com/kiranadev/inventory-billing-service/pkg/cache"
	"github.com/kiranadev/inventory-billing-service/pkg/logger"
	"github.com/kiranadev/inventory-billing-service/pkg/postgres"
	"github.com/kiranadev/inventory-billing-service/pkg/search"

	availH "github.com/kiranadev/inventory-billing-service/internal/availability/handler"
	availUCPkg "github.com/kiranadev/inventory-billing-service/internal/availability/usecase"

	billH "github.com/kiranadev/inventory-billing-service/internal/billing/handler"
	billRepoPkg "github.com/kiranadev/inventory-billing-service/internal/billing/repository"
	billUCPkg "github.com/kiranadev/inventory-billing-service/internal/billing/usecase"

	prodH "github.com/kiranadev/inventory-billing-service/internal/product/handler"
	prodRepoPkg "github.com/kiranadev/inventory-billing-service/internal/product/repository"
	prodUCPkg "github.com/kiranadev/inventory-billing-service/internal/product/usecase"

	stockH "github.com/kiranadev/inventory-billing-service/internal/stock/handler"
	stockRepoPkg "github.com/kiranadev/inventory-billing-service/internal/stock/repository"
	stockUCPkg "github.com/kiranadev/inventory-billing-service/internal/stock/usecase"

	storeH "github.com/kiranadev/inventory-billing-service/internal/store/handler"
	storeRepoPkg "github.com/kiranadev/inventory-billing-service/internal/store/repository"
	storeUCPkg "github.com/kiranadev/inventory-billing-service/internal/store/usecase"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

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

	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	publisher := broker.NewPublisher(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer publisher.Close()
	appLogger.Info("Kafka publisher ready", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (search falls back to DB)", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	prodRepo := prodRepoPkg.NewPGRepository(db)
	stockRepo := stockRepoPkg.NewPGRepository(db)
	billRepo := billRepoPkg.NewPGRepository(db)
	storeRepo := storeRepoPkg.NewPGRepository(db)

	prodUC := prodUCPkg.NewProductUseCase(prodRepo, redisClient, esClient, appLogger)
	stockUC := stockUCPkg.NewStockUseCase(stockRepo, redisClient, appLogger)
	storeUC := storeUCPkg.NewStoreUseCase(storeRepo, appLogger)
	billUC := billUCPkg.NewBillingUseCase(billRepo, storeRepo, redisClient, redisClient, publisher, appLogger)
	availUC := availUCPkg.NewAvailabilityUseCase(prodRepo, stockRepo, billRepo, redisClient, appLogger)

	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	stockHandler := stockH.NewStockHandler(stockUC, appLogger)
	billHandler := billH.NewBillingHandler(billUC, appLogger)
	storeHandler := storeH.NewStoreHandler(storeUC, appLogger)
	availHandler := availH.NewAvailabilityHandler(availUC, appLogger)

	if cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	api := router.Group("/api")
	{
		api.GET("/products", prodHandler.List)
		api.POST("/products", prodHandler.Create)
		api.GET("/products/:id", prodHandler.Get)
		api.PUT("/products/:id", prodHandler.Update)
		api.DELETE("/products/:id", prodHandler.Delete)

		api.GET("/stocks", stockHandler.List)
		api.POST("/stocks", stockHandler.Create)
		api.GET("/stocks/:id", stockHandler.Get)
		api.PUT("/stocks/:id", stockHandler.Update)
		api.DELETE("/stocks/:id", stockHandler.Delete)

		api.GET("/customers", billHandler.List)
		api.POST("/customers", billHandler.Create)
		api.GET("/customers/:id", billHandler.Get)

		api.GET("/store", storeHandler.Get)
		api.PUT("/store", storeHandler.Save)

		api.GET("/availability", availHandler.Get)
	}

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
