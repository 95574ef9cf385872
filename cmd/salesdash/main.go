package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/salesdash/internal/pkg/config"
	"github.com/piresc/salesdash/internal/pkg/database"
	"github.com/piresc/salesdash/internal/pkg/health"
	"github.com/piresc/salesdash/internal/pkg/logger"
	"github.com/piresc/salesdash/internal/pkg/middleware"
	nrpkg "github.com/piresc/salesdash/internal/pkg/newrelic"
	"github.com/piresc/salesdash/internal/pkg/retry"
	"github.com/piresc/salesdash/internal/pkg/server"
	"github.com/piresc/salesdash/services/transactions/handler"
	"github.com/piresc/salesdash/services/transactions/repository"
	"github.com/piresc/salesdash/services/transactions/usecase"
)

func main() {
	configPath := "config/salesdash.env"
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.Start(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdownManager := server.NewShutdownManager(zapLogger)

	// MongoDB may still be starting when the service comes up
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = configs.Mongo.ConnectRetries

	var mongoClient *database.MongoClient
	err = retry.New(retryCfg, zapLogger).Execute(context.Background(), "mongo connect", func(ctx context.Context) error {
		var connErr error
		mongoClient, connErr = database.NewMongoClient(configs.Mongo)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", logger.Err(err))
	}
	shutdownManager.Register(mongoClient.Close)

	logger.Info("MongoDB client initialized",
		logger.String("database", configs.Mongo.Database),
		logger.String("collection", configs.Mongo.Collection))

	// Redis only backs the rate limiter
	var redisClient *database.RedisClient
	if configs.RateLimit.Enabled {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdownManager.Register(func(ctx context.Context) error {
			return redisClient.Close()
		})
	}

	shutdownManager.Register(func(ctx context.Context) error {
		nrpkg.Shutdown(nrApp, 10*time.Second)
		return nil
	})

	transactionRepo := repository.NewTransactionRepository(configs, mongoClient.Collection())

	transactionUC, err := usecase.NewTransactionUC(configs, transactionRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize transaction use case", logger.Err(err))
	}

	transactionHandler := handler.NewHandler(transactionUC, configs)

	e := echo.New()
	e.HideBanner = true

	// Panic recovery should be first
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: configs.Server.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.OPTIONS},
	}))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("mongo", health.NewMongoHealthChecker(mongoClient))
	if redisClient != nil {
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	}
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	var routeMiddleware []echo.MiddlewareFunc
	if redisClient != nil {
		routeMiddleware = append(routeMiddleware, middleware.IPRateLimiter(
			configs.RateLimit.Limit,
			time.Duration(configs.RateLimit.Period)*time.Second,
			redisClient,
		))
	}
	transactionHandler.RegisterRoutes(e, routeMiddleware...)

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(ctx)

	zapLogger.Info("Server exiting gracefully")
}
