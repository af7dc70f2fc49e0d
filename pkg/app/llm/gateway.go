package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/InclusionGuard/pkg/domain/analysis"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers/factory"
	"github.com/sirupsen/logrus"
)

// Config selects the provider and model every analysis is sent to.
type Config struct {
	Provider    string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	Credentials providers.Credentials
}

// Prompt is the fixed part of a completion. Instructions reach every
// provider as a separate system block after System.
type Prompt struct {
	System       string
	Instructions []string
}

//go:generate mockery --name=Gateway --dir=. --output=./mocks --filename=llm_gateway_mock.go --case=underscore --with-expecter
type Gateway interface {
	// Complete sends prompt and one user message. Any failure is returned
	// wrapped in analysis.ErrAIServiceUnavailable.
	Complete(ctx context.Context, prompt Prompt, userMessage string) (*providers.CompletionResponse, error)
	Provider() string
	Model() string
}

type gateway struct {
	logger  *logrus.Logger
	locator factory.ProviderLocator
	breaker httpx.CircuitBreaker
	cfg     Config
}

func NewGateway(
	logger *logrus.Logger,
	locator factory.ProviderLocator,
	breaker httpx.CircuitBreaker,
	cfg Config,
) Gateway {
	return &gateway{
		logger:  logger,
		locator: locator,
		breaker: breaker,
		cfg:     cfg,
	}
}

func (g *gateway) Provider() string {
	return g.cfg.Provider
}

func (g *gateway) Model() string {
	return g.cfg.Model
}

func (g *gateway) Complete(
	ctx context.Context,
	prompt Prompt,
	userMessage string,
) (*providers.CompletionResponse, error) {
	client, err := g.locator.Get(g.cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", analysis.ErrAIServiceUnavailable, err)
	}

	config := &providers.Config{
		Credentials:  g.cfg.Credentials,
		Model:        g.cfg.Model,
		MaxTokens:    g.cfg.MaxTokens,
		Temperature:  g.cfg.Temperature,
		SystemPrompt: prompt.System,
		Instructions: prompt.Instructions,
		BaseURL:      g.cfg.BaseURL,
	}

	var resp *providers.CompletionResponse
	start := time.Now()
	err = g.breaker.Execute(func() error {
		var askErr error
		resp, askErr = client.Ask(ctx, config, userMessage)
		return askErr
	})
	status := "ok"
	if err != nil {
		status = "error"
	}
	prometheus.LLMLatency.WithLabelValues(g.cfg.Provider, status).
		Observe(float64(time.Since(start).Milliseconds()))

	if err != nil {
		g.logger.WithError(err).WithFields(logrus.Fields{
			"provider":     g.cfg.Provider,
			"model":        g.cfg.Model,
			"breaker_open": httpx.IsOpen(err),
		}).Error("llm completion failed")
		return nil, fmt.Errorf("%w: %w", analysis.ErrAIServiceUnavailable, err)
	}

	resp.Provider = g.cfg.Provider
	if resp.Model == "" {
		resp.Model = g.cfg.Model
	}
	prometheus.LLMTokens.WithLabelValues(resp.Provider, resp.Model, "prompt").
		Add(float64(resp.Usage.PromptTokens))
	prometheus.LLMTokens.WithLabelValues(resp.Provider, resp.Model, "completion").
		Add(float64(resp.Usage.Total() - resp.Usage.PromptTokens))
	return resp, nil
}
