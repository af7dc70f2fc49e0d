package dependency_container

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/NeuralTrust/InclusionGuard/pkg/app/analysis"
	"github.com/NeuralTrust/InclusionGuard/pkg/app/llm"
	"github.com/NeuralTrust/InclusionGuard/pkg/app/redaction"
	"github.com/NeuralTrust/InclusionGuard/pkg/app/telemetry"
	"github.com/NeuralTrust/InclusionGuard/pkg/config"
	domainAnalysis "github.com/NeuralTrust/InclusionGuard/pkg/domain/analysis"
	domainTelemetry "github.com/NeuralTrust/InclusionGuard/pkg/domain/telemetry"
	handlers "github.com/NeuralTrust/InclusionGuard/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/InclusionGuard/pkg/handlers/websocket"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/database"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/metrics"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/pii/azure"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers"
	providersFactory "github.com/NeuralTrust/InclusionGuard/pkg/infra/providers/factory"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/ratelimit"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/repository"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/sentry"
	infraTelemetry "github.com/NeuralTrust/InclusionGuard/pkg/infra/telemetry"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/telemetry/kafka"
	"github.com/NeuralTrust/InclusionGuard/pkg/server/middleware"
	"github.com/NeuralTrust/InclusionGuard/pkg/version"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	rateLimitScope  = "analyze"
	detectorBreaker = "azure-pii"
	llmBreaker      = "llm"
	userAgentName   = "InclusionGuard"
)

type Container struct {
	JWTManager             jwt.Manager
	RateLimiter            ratelimit.Limiter
	Redaction              redaction.Service
	LLMGateway             llm.Gateway
	AnalysisRepository     domainAnalysis.Repository
	MetricsWorker          metrics.Worker
	Analyzer               analysis.Analyzer
	History                analysis.History
	HandlerTransport       handlers.HandlerTransport
	WSHandlerTransport     wsHandlers.HandlerTransport
	PanicRecoverMiddleware middleware.Middleware
	TraceMiddleware        middleware.Middleware
	AuthMiddleware         middleware.Middleware
	MetricsMiddleware      middleware.Middleware
	RateLimitMiddleware    middleware.Middleware
	WebSocketMiddleware    middleware.Middleware
}

type ContainerDI struct {
	Cfg      *config.Config
	Logger   *logrus.Logger
	DB       *database.DB
	Redis    *redis.Client
	Reporter sentry.Reporter
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg
	logger := di.Logger

	exporters, err := buildExporters(cfg.Telemetry.Exporters)
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry exporters: %w", err)
	}
	metricsWorker := metrics.NewWorker(logger, exporters, metrics.WithQueueSize(cfg.Telemetry.QueueSize))

	detector, err := newDetector(cfg, logger)
	if err != nil {
		return nil, err
	}
	redactionService := redaction.NewService(logger, detector, redaction.WithMaxChunkLength(cfg.PII.MaxChunkLength))

	llmClient := httpx.NewFastHTTPClient(
		httpx.WithTimeout(cfg.LLM.Timeout),
		httpx.WithUserAgent(userAgentName+"/"+version.Version),
	)
	llmGateway := llm.NewGateway(
		logger,
		providersFactory.NewProviderLocator(llmClient),
		httpx.NewCircuitBreaker(llmBreaker, cfg.LLM.Breaker.ResetTimeout, cfg.LLM.Breaker.MaxFailures, httpx.WithStateLogger(logger)),
		llmConfig(cfg.LLM),
	)

	analysisRepository := repository.NewAnalysisRepository(di.DB.DB)
	analyzer := analysis.NewAnalyzer(
		logger,
		redactionService,
		llmGateway,
		analysisRepository,
		metricsWorker,
		analysis.WithMaxTextLength(cfg.Server.MaxTextLength),
	)
	history := analysis.NewHistory(analysisRepository)

	jwtManager := jwt.NewJwtManager(&cfg.Server)
	rateLimiter := ratelimit.NewRedisLimiter(di.Redis, ratelimit.Config{
		Limit:  cfg.RateLimit.Limit,
		Window: cfg.RateLimit.Window,
	})

	base := handlers.NewBaseHandler(logger, di.Reporter)
	handlerTransport := &handlers.HandlerTransportDTO{
		AnalyzeTextHandler:    handlers.NewAnalyzeTextHandler(base, analyzer),
		AnalyzeBotHandler:     handlers.NewAnalyzeBotHandler(base, analyzer),
		ListAnalysesHandler:   handlers.NewListAnalysesHandler(base, history),
		GetAnalysisHandler:    handlers.NewGetAnalysisHandler(base, history),
		DeleteAnalysisHandler: handlers.NewDeleteAnalysisHandler(base, history),
		SummaryHandler:        handlers.NewSummaryHandler(base, history),
		GetVersionHandler:     handlers.NewGetVersionHandler(),
	}
	wsHandlerTransport := &wsHandlers.HandlerTransportDTO{
		AnalyzeHandler:   wsHandlers.NewAnalyzeHandler(logger, analyzer, di.Reporter),
		HandshakeTimeout: cfg.WebSocket.HandshakeTimeout,
	}

	var rateLimitMiddleware middleware.Middleware = middleware.NewRateLimitMiddleware(logger, rateLimiter, rateLimitScope)
	if !(ratelimit.Config{Limit: cfg.RateLimit.Limit, Window: cfg.RateLimit.Window}).Enabled() {
		logger.Info("rate limiting is disabled by configuration")
		rateLimitMiddleware = middleware.NewNoopMiddleware()
	}

	return &Container{
		JWTManager:             jwtManager,
		RateLimiter:            rateLimiter,
		Redaction:              redactionService,
		LLMGateway:             llmGateway,
		AnalysisRepository:     analysisRepository,
		MetricsWorker:          metricsWorker,
		Analyzer:               analyzer,
		History:                history,
		HandlerTransport:       handlerTransport,
		WSHandlerTransport:     wsHandlerTransport,
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger, di.Reporter),
		TraceMiddleware:        middleware.NewTraceMiddleware(),
		AuthMiddleware:         middleware.NewAuthMiddleware(logger, jwtManager),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(),
		RateLimitMiddleware:    rateLimitMiddleware,
		WebSocketMiddleware:    middleware.NewWebsocketMiddleware(logger, cfg.WebSocket.MaxConnections),
	}, nil
}

func buildExporters(configs []config.ExporterConfig) ([]domainTelemetry.Exporter, error) {
	locator := infraTelemetry.NewExporterLocator(
		infraTelemetry.WithExporter(kafka.ExporterName, kafka.NewKafkaExporter()),
	)
	exporterConfigs := make([]domainTelemetry.ExporterConfig, 0, len(configs))
	for _, c := range configs {
		exporterConfigs = append(exporterConfigs, domainTelemetry.ExporterConfig{
			Name:     c.Name,
			Settings: c.Settings,
		})
	}
	if err := telemetry.NewTelemetryExportersValidator(locator).Validate(exporterConfigs); err != nil {
		return nil, err
	}
	return telemetry.NewTelemetryExportersBuilder(locator).Build(exporterConfigs)
}

func newDetector(cfg *config.Config, logger *logrus.Logger) (*azure.Detector, error) {
	var opts []azure.Option
	if cfg.PII.UseIdentity {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create azure credential: %w", err)
		}
		opts = append(opts, azure.WithTokenCredential(cred))
	}
	return azure.NewDetector(
		logger,
		httpx.NewFastHTTPClient(httpx.WithTimeout(azure.DetectionTimeout)),
		httpx.NewCircuitBreaker(detectorBreaker, cfg.PII.Breaker.ResetTimeout, cfg.PII.Breaker.MaxFailures, httpx.WithStateLogger(logger)),
		azure.Config{
			Endpoint:          cfg.PII.Endpoint,
			APIKey:            cfg.PII.APIKey,
			Language:          cfg.PII.Language,
			RequestsPerSecond: cfg.PII.RequestsPerSecond,
		},
		opts...,
	), nil
}

func llmConfig(cfg config.LLMConfig) llm.Config {
	credentials := providers.Credentials{ApiKey: cfg.APIKey}
	if cfg.Azure.Endpoint != "" {
		credentials.Azure = &providers.AzureCredentials{
			Endpoint:    cfg.Azure.Endpoint,
			ApiVersion:  cfg.Azure.APIVersion,
			UseIdentity: cfg.Azure.UseIdentity,
		}
	}
	if cfg.Bedrock.Region != "" {
		credentials.AwsBedrock = &providers.AwsBedrockCredentials{
			Region:       cfg.Bedrock.Region,
			AccessKey:    cfg.Bedrock.AccessKey,
			SecretKey:    cfg.Bedrock.SecretKey,
			SessionToken: cfg.Bedrock.SessionToken,
			UseRole:      cfg.Bedrock.UseRole,
			RoleARN:      cfg.Bedrock.RoleARN,
		}
	}
	return llm.Config{
		Provider:    cfg.Provider,
		Model:       cfg.Model,
		BaseURL:     cfg.BaseURL,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Credentials: credentials,
	}
}
