package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/NeuralTrust/InclusionGuard/docs"
	"github.com/NeuralTrust/InclusionGuard/pkg/config"
	"github.com/NeuralTrust/InclusionGuard/pkg/dependency_container"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/cache"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/InclusionGuard/pkg/infra/logger"
	_ "github.com/NeuralTrust/InclusionGuard/pkg/infra/migrations"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/sentry"
	"github.com/NeuralTrust/InclusionGuard/pkg/server"
	"github.com/NeuralTrust/InclusionGuard/pkg/server/middleware"
	"github.com/NeuralTrust/InclusionGuard/pkg/server/router"
	"github.com/NeuralTrust/InclusionGuard/pkg/version"
	"github.com/joho/godotenv"
)

const defaultTelemetryWorkers = 2

// @title						InclusionGuard API
// @version					0.4.0
// @description				Reviews text for non-inclusive language. Personal data is redacted before it reaches the model and restored in the returned issues.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger, closeLogger := infraLogger.NewLogger("inclusionguard")
	defer closeLogger()

	if err := config.Load(os.Getenv("CONFIG_PATH")); err != nil {
		logger.WithError(err).Error("failed to load config")
		closeLogger()
		os.Exit(1)
	}
	cfg := config.GetConfig()

	prometheus.Initialize(prometheus.MetricsConfig{
		EnableLatency:  cfg.Metrics.EnableLatency,
		EnablePerRoute: cfg.Metrics.EnablePerRoute,
	})

	reporter, err := sentry.NewReporter(sentry.Config{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		SampleRate:  cfg.Sentry.SampleRate,
		Debug:       cfg.Sentry.Debug,
	}, version.Version)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize sentry")
	}
	defer reporter.Flush(sentry.DefaultFlushTimeout)

	db, err := database.NewDB(logger, &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Error("failed to close database")
		}
	}()

	redisClient, err := cache.NewRedisClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize redis")
	}
	defer func() {
		_ = redisClient.Close()
	}()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:      cfg,
		Logger:   logger,
		DB:       db,
		Redis:    redisClient,
		Reporter: reporter,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize dependency container")
	}

	workers := cfg.Telemetry.Workers
	if workers <= 0 {
		workers = defaultTelemetryWorkers
	}
	container.MetricsWorker.StartWorkers(workers)
	defer container.MetricsWorker.Shutdown()

	apiRouter := router.NewAPIRouter(router.APIRouterDI{
		Global: middleware.NewTransport(
			container.PanicRecoverMiddleware,
			container.TraceMiddleware,
		),
		API: middleware.NewTransport(
			container.AuthMiddleware,
			container.MetricsMiddleware,
		),
		RateLimit:          container.RateLimitMiddleware,
		Websocket:          container.WebSocketMiddleware,
		Auth:               container.AuthMiddleware,
		HandlerTransport:   container.HandlerTransport,
		WsHandlerTransport: container.WSHandlerTransport,
		Config:             cfg,
	})

	srv := server.NewAPIServer(server.APIServerDI{
		Routers: []router.ServerRouter{apiRouter},
		Config:  cfg,
		Logger:  logger,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("shutting down server")
	case err := <-errCh:
		if err != nil {
			logger.WithError(err).Error("server failed")
		}
	}

	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
	}
	logger.Info("server gracefully stopped")
}
