package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk_MissingAPIKey(t *testing.T) {
	resp, err := gemini.NewGeminiClient().Ask(context.Background(), &providers.Config{}, "hello")

	assert.Nil(t, resp)
	assert.ErrorContains(t, err, "API key is required")
}

func TestAsk_GenerateContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-2.0-flash:generateContent"), r.URL.Path)
		assert.Equal(t, "gm-test", r.Header.Get("X-Goog-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "[]"}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 1, "totalTokenCount": 8},
			"responseId": "resp-1"
		}`))
	}))
	defer server.Close()

	resp, err := gemini.NewGeminiClient().Ask(context.Background(), &providers.Config{
		Credentials:  providers.Credentials{ApiKey: "gm-test"},
		SystemPrompt: "You review text.",
		BaseURL:      server.URL,
	}, "<document>hello</document>")

	require.NoError(t, err)
	assert.Equal(t, "resp-1", resp.ID)
	assert.Equal(t, "[]", resp.Response)
	assert.Equal(t, 8, resp.Usage.TotalTokens)
}
