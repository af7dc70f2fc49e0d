package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers"
)

const (
	defaultAPIVersion = "2024-10-21"
	cognitiveScope    = "https://cognitiveservices.azure.com/.default"
)

type (
	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	chatRequest struct {
		Messages    []chatMessage `json:"messages"`
		Temperature float64       `json:"temperature,omitempty"`
		MaxTokens   int           `json:"max_tokens,omitempty"`
	}
	chatResponse struct {
		ID      string `json:"id"`
		Model   string `json:"model"`
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}
)

type Option func(*client)

// WithCredential replaces the default Azure credential chain used when
// UseIdentity is set.
func WithCredential(cred azcore.TokenCredential) Option {
	return func(c *client) {
		c.credential = cred
	}
}

type client struct {
	httpClient httpx.Client
	credential azcore.TokenCredential
	credOnce   sync.Once
	credErr    error
}

func NewAzureClient(httpClient httpx.Client, opts ...Option) providers.Client {
	c := &client{httpClient: httpClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ask calls an Azure OpenAI chat deployment. config.Model is the deployment
// name. Authentication uses the api-key header unless
// Credentials.Azure.UseIdentity is set, in which case a Microsoft Entra ID
// token is requested.
func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	azureCreds := config.Credentials.Azure
	if azureCreds == nil {
		return nil, fmt.Errorf("azure configuration is required")
	}
	if azureCreds.Endpoint == "" {
		return nil, fmt.Errorf("azure endpoint is required")
	}
	if config.Model == "" {
		return nil, fmt.Errorf("model (deployment ID) is required")
	}
	if !azureCreds.UseIdentity && config.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("API key is required when not using Azure identity")
	}

	var messages []chatMessage
	if config.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: config.SystemPrompt})
	}
	if len(config.Instructions) > 0 {
		messages = append(messages, chatMessage{Role: "system", Content: providers.FormatInstructions(config.Instructions)})
	}
	if prompt != "" {
		messages = append(messages, chatMessage{Role: "user", Content: prompt})
	}

	apiVersion := defaultAPIVersion
	if azureCreds.ApiVersion != "" {
		apiVersion = azureCreds.ApiVersion
	}
	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(azureCreds.Endpoint, "/"),
		config.Model,
		apiVersion)

	bodyBytes, err := json.Marshal(chatRequest{
		Messages:    messages,
		Temperature: config.Temperature,
		MaxTokens:   config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if azureCreds.UseIdentity {
		token, err := c.token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get Azure AD token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("api-key", config.Credentials.ApiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 status: %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("no completions returned")
	}

	id := parsed.ID
	if id == "" {
		id = providers.ResponseID("azure")
	}
	model := parsed.Model
	if model == "" {
		model = config.Model
	}
	return &providers.CompletionResponse{
		ID:       id,
		Model:    model,
		Response: parsed.Choices[0].Message.Content,
		Usage: providers.Usage{
			PromptTokens:     parsed.Usage.PromptTokens,
			CompletionTokens: parsed.Usage.CompletionTokens,
			TotalTokens:      parsed.Usage.TotalTokens,
		},
	}, nil
}

func (c *client) token(ctx context.Context) (string, error) {
	c.credOnce.Do(func() {
		if c.credential != nil {
			return
		}
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			c.credErr = fmt.Errorf("failed to create credential: %w", err)
			return
		}
		c.credential = cred
	})
	if c.credErr != nil {
		return "", c.credErr
	}
	token, err := c.credential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{cognitiveScope},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	return token.Token, nil
}
