package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenaiClient(t *testing.T) {
	assert.NotNil(t, openai.NewOpenaiClient())
}

func TestAsk_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  *providers.Config
		wantErr string
	}{
		{
			name:    "missing API key",
			config:  &providers.Config{Model: "gpt-4o-mini"},
			wantErr: "API key is required",
		},
		{
			name:    "missing model",
			config:  &providers.Config{Credentials: providers.Credentials{ApiKey: "sk-test"}},
			wantErr: "model is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := openai.NewOpenaiClient().Ask(context.Background(), tt.config, "review this")

			assert.Nil(t, resp)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestAsk_SendsSystemPromptAndReturnsContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o-mini", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "You review text.", body.Messages[0].Content)
		assert.Equal(t, "user", body.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "[]"}}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 1, "total_tokens": 11}
		}`))
	}))
	defer server.Close()

	resp, err := openai.NewOpenaiClient().Ask(context.Background(), &providers.Config{
		Credentials:  providers.Credentials{ApiKey: "sk-test"},
		Model:        "gpt-4o-mini",
		SystemPrompt: "You review text.",
		BaseURL:      server.URL,
	}, "<document>hello</document>")

	require.NoError(t, err)
	assert.Equal(t, "chatcmpl-1", resp.ID)
	assert.Equal(t, "[]", resp.Response)
	assert.Equal(t, 11, resp.Usage.TotalTokens)
}

func TestAsk_SendsInstructionsAfterSystemPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Messages, 3)
		assert.Equal(t, "You review text.", body.Messages[0].Content)
		assert.Equal(t, "system", body.Messages[1].Role)
		assert.Equal(t, "[Instructions]\n- Respond with the JSON array only.\n", body.Messages[1].Content)
		assert.Equal(t, "user", body.Messages[2].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-2",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "[]"}}]
		}`))
	}))
	defer server.Close()

	resp, err := openai.NewOpenaiClient().Ask(context.Background(), &providers.Config{
		Credentials:  providers.Credentials{ApiKey: "sk-test"},
		Model:        "gpt-4o-mini",
		SystemPrompt: "You review text.",
		Instructions: []string{"Respond with the JSON array only."},
		BaseURL:      server.URL,
	}, "<document>hello</document>")

	require.NoError(t, err)
	assert.Equal(t, "[]", resp.Response)
}

func TestAsk_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "bad request", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	_, err := openai.NewOpenaiClient().Ask(context.Background(), &providers.Config{
		Credentials: providers.Credentials{ApiKey: "sk-test"},
		Model:       "gpt-4o-mini",
		BaseURL:     server.URL,
	}, "hello")

	assert.ErrorContains(t, err, "OpenAI request failed")
}
