package factory

import (
	"fmt"
	"sync"

	"github.com/NeuralTrust/InclusionGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers/anthropic"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers/azure"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers/bedrock"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers/gemini"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers/openai"
)

const (
	ProviderOpenAI    = "openai"
	ProviderGoogle    = "google"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderBedrock   = "bedrock"
	ProviderAzure     = "azure"
)

//go:generate mockery --name=ProviderLocator --dir=. --output=./mocks --filename=provider_locator_mock.go --case=underscore --with-expecter

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct {
	httpClient httpx.Client
	mu         sync.Mutex
	clients    map[string]providers.Client
}

// NewProviderLocator returns a locator that builds each provider client once
// so the SDK connection pools are shared across requests.
func NewProviderLocator(httpClient httpx.Client) ProviderLocator {
	return &providerLocator{
		httpClient: httpClient,
		clients:    make(map[string]providers.Client),
	}
}

func (f *providerLocator) Get(provider string) (providers.Client, error) {
	if provider == ProviderGemini {
		provider = ProviderGoogle
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.clients[provider]; ok {
		return c, nil
	}

	var c providers.Client
	switch provider {
	case ProviderOpenAI:
		c = openai.NewOpenaiClient()
	case ProviderGoogle:
		c = gemini.NewGeminiClient()
	case ProviderAnthropic:
		c = anthropic.NewAnthropicClient()
	case ProviderBedrock:
		c = bedrock.NewBedrockClient()
	case ProviderAzure:
		c = azure.NewAzureClient(f.httpClient)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
	f.clients[provider] = c
	return c, nil
}
