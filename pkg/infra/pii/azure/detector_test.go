package azure_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/NeuralTrust/InclusionGuard/pkg/domain/redaction"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/httpx/mocks"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/pii/azure"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type document struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

type fakeCredential struct{}

func (fakeCredential) GetToken(context.Context, policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "entra-token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

func newBreaker() httpx.CircuitBreaker {
	return httpx.NewCircuitBreaker("azure-pii-test", time.Minute, 100)
}

func plan(texts ...string) []redaction.PlannedChunk {
	chunks := make([]redaction.PlannedChunk, len(texts))
	offset := 0
	for i, t := range texts {
		chunks[i] = redaction.PlannedChunk{Index: i, Text: t, GlobalOffset: offset}
		offset += len([]rune(t))
	}
	return chunks
}

// personEverywhere answers every document with a PERSON entity at local
// offset 0 spanning the first word, plus entities that must be filtered.
func personEverywhere(t *testing.T, requests *int32, batchSizes *sync.Map) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)
		assert.Equal(t, "/text/analytics/v3.1/entities/recognition/pii", r.URL.Path)
		assert.Equal(t, "UnicodeCodePoint", r.URL.Query().Get("stringIndexType"))
		assert.Equal(t, "test-key", r.Header.Get("Ocp-Apim-Subscription-Key"))

		var req struct {
			Documents []document `json:"documents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		batchSizes.Store(req.Documents[0].ID, len(req.Documents))

		docs := make([]map[string]interface{}, 0, len(req.Documents))
		for _, d := range req.Documents {
			first := strings.Fields(d.Text)[0]
			docs = append(docs, map[string]interface{}{
				"id": d.ID,
				"entities": []map[string]interface{}{
					{"text": first, "category": "Person", "offset": 0, "length": len([]rune(first)), "confidenceScore": 0.95},
					{"text": first, "category": "Organization", "offset": 0, "length": len([]rune(first)), "confidenceScore": 0.99},
					{"text": first, "category": "Email", "offset": 0, "length": len([]rune(first)), "confidenceScore": 0.5},
				},
				"warnings": []interface{}{},
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"documents":    docs,
			"errors":       []interface{}{},
			"modelVersion": "2023-09-01",
		})
	}
}

func TestDetector_Detect_MapsOffsetsAcrossBatches(t *testing.T) {
	var requests int32
	var batchSizes sync.Map
	server := httptest.NewServer(personEverywhere(t, &requests, &batchSizes))
	defer server.Close()

	logger, _ := test.NewNullLogger()
	detector := azure.NewDetector(logger, httpx.NewFastHTTPClient(), newBreaker(), azure.Config{
		Endpoint: server.URL + "/",
		APIKey:   "test-key",
	})

	texts := []string{"Ana one. ", "Bea two. ", "Cid three. ", "Dan four. ", "Eve five. ", "Flo six. ", "Gus seven."}
	chunks := plan(texts...)

	entities, err := detector.Detect(context.Background(), chunks)

	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&requests))
	first, _ := batchSizes.Load("0")
	second, _ := batchSizes.Load("5")
	assert.Equal(t, 5, first)
	assert.Equal(t, 2, second)

	require.Len(t, entities, len(texts))
	byOffset := make(map[int]redaction.Entity)
	for _, e := range entities {
		byOffset[e.Offset] = e
	}
	for _, c := range chunks {
		e, ok := byOffset[c.GlobalOffset]
		require.True(t, ok, "no entity at offset %d", c.GlobalOffset)
		assert.Equal(t, strings.Fields(c.Text)[0], e.Text)
		assert.Equal(t, redaction.PrefixPerson, e.Prefix)
		assert.Equal(t, redaction.CategoryPerson, e.Category)
		assert.GreaterOrEqual(t, e.Confidence, azure.ConfidenceThreshold)
	}
}

func TestDetector_Detect_MultiByteOffsets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"documents":[{"id":"1","entities":[
			{"text":"José","category":"Person","offset":6,"length":4,"confidenceScore":0.9}
		]}],"errors":[]}`))
	}))
	defer server.Close()

	logger, _ := test.NewNullLogger()
	detector := azure.NewDetector(logger, httpx.NewFastHTTPClient(), newBreaker(), azure.Config{
		Endpoint: server.URL,
		APIKey:   "test-key",
	})

	chunks := plan("Ñandú ñoño. ", "Señor José llegó.")
	entities, err := detector.Detect(context.Background(), chunks)

	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, 12+6, entities[0].Offset)
	assert.Equal(t, "José", string([]rune("Ñandú ñoño. Señor José llegó.")[entities[0].Offset:entities[0].End()]))
}

func TestDetector_Detect_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "per-document error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"documents":[],"errors":[{"id":"0","error":{"code":"InvalidDocument","message":"Document text is empty."}}]}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
		{
			name: "unknown document id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"documents":[{"id":"42","entities":[]}],"errors":[]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			logger, _ := test.NewNullLogger()
			detector := azure.NewDetector(logger, httpx.NewFastHTTPClient(), newBreaker(), azure.Config{
				Endpoint: server.URL,
				APIKey:   "test-key",
			})

			entities, err := detector.Detect(context.Background(), plan("Hello Maria."))

			assert.ErrorIs(t, err, redaction.ErrDetectorFailed)
			assert.Nil(t, entities)
		})
	}
}

func TestDetector_Detect_TransportError(t *testing.T) {
	client := mocks.NewClient(t)
	client.EXPECT().Do(mock.Anything).Return(nil, errors.New("connection refused")).Once()

	logger, _ := test.NewNullLogger()
	detector := azure.NewDetector(logger, client, newBreaker(), azure.Config{
		Endpoint: "https://pii.example.com",
		APIKey:   "test-key",
	})

	_, err := detector.Detect(context.Background(), plan("Hello Maria."))

	assert.ErrorIs(t, err, redaction.ErrDetectorFailed)
	assert.ErrorContains(t, err, "connection refused")
}

func TestDetector_Detect_DeadlineAbortsPass(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	logger, _ := test.NewNullLogger()
	detector := azure.NewDetector(logger, httpx.NewFastHTTPClient(), newBreaker(), azure.Config{
		Endpoint: server.URL,
		APIKey:   "test-key",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := detector.Detect(ctx, plan("Hello Maria."))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), azure.DetectionTimeout)
}

func TestDetector_Detect_OwnTimeoutBoundsPass(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	logger, _ := test.NewNullLogger()
	detector := azure.NewDetector(logger, httpx.NewFastHTTPClient(), newBreaker(), azure.Config{
		Endpoint: server.URL,
		APIKey:   "test-key",
	})

	start := time.Now()
	_, err := detector.Detect(context.Background(), plan("Hello Maria."))
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, elapsed, azure.DetectionTimeout-100*time.Millisecond)
	assert.Less(t, elapsed, azure.DetectionTimeout+2*time.Second)
}

func TestDetector_Detect_LanguageAutoDetectByDefault(t *testing.T) {
	tests := []struct {
		name     string
		language string
		want     string
	}{
		{name: "auto detect", language: "", want: `"language":""`},
		{name: "configured", language: "es", want: `"language":"es"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				raw, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				body = string(raw)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"documents":[{"id":"0","entities":[],"warnings":[]}],"errors":[],"modelVersion":"2023-09-01"}`))
			}))
			defer server.Close()

			logger, _ := test.NewNullLogger()
			detector := azure.NewDetector(logger, httpx.NewFastHTTPClient(), newBreaker(), azure.Config{
				Endpoint: server.URL,
				APIKey:   "test-key",
				Language: tt.language,
			})

			entities, err := detector.Detect(context.Background(), plan("Hola María, ¿qué tal?"))

			require.NoError(t, err)
			assert.Empty(t, entities)
			assert.Contains(t, body, tt.want)
			assert.Contains(t, body, `"id":"0"`)
		})
	}
}

func TestDetector_Detect_NotConfiguredLogsOnce(t *testing.T) {
	logger, hook := test.NewNullLogger()
	detector := azure.NewDetector(logger, mocks.NewClient(t), newBreaker(), azure.Config{})

	for i := 0; i < 3; i++ {
		_, err := detector.Detect(context.Background(), plan("Hello Maria."))
		assert.ErrorIs(t, err, redaction.ErrDetectorNotConfigured)
	}

	assert.Len(t, hook.AllEntries(), 1)

	other := azure.NewDetector(logger, mocks.NewClient(t), newBreaker(), azure.Config{Endpoint: "https://pii.example.com"})
	_, err := other.Detect(context.Background(), plan("Hello Maria."))
	assert.ErrorIs(t, err, redaction.ErrDetectorNotConfigured)
	assert.Len(t, hook.AllEntries(), 2)
}

func TestDetector_Detect_TokenCredential(t *testing.T) {
	client := mocks.NewClient(t)
	client.EXPECT().Do(mock.Anything).RunAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer entra-token", req.Header.Get("Authorization"))
		assert.Empty(t, req.Header.Get("Ocp-Apim-Subscription-Key"))
		rec := httptest.NewRecorder()
		_, _ = rec.WriteString(`{"documents":[{"id":"0","entities":[]}],"errors":[]}`)
		return rec.Result(), nil
	}).Once()

	logger, _ := test.NewNullLogger()
	detector := azure.NewDetector(logger, client, newBreaker(),
		azure.Config{Endpoint: "https://pii.example.com"},
		azure.WithTokenCredential(fakeCredential{}),
	)

	entities, err := detector.Detect(context.Background(), plan("Nothing here."))

	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestDetector_Detect_SkipsBlankChunks(t *testing.T) {
	logger, _ := test.NewNullLogger()
	detector := azure.NewDetector(logger, mocks.NewClient(t), newBreaker(), azure.Config{
		Endpoint: "https://pii.example.com",
		APIKey:   "test-key",
	})

	entities, err := detector.Detect(context.Background(), plan("   ", "\n\n"))

	require.NoError(t, err)
	assert.Empty(t, entities)
}
