package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/NeuralTrust/InclusionGuard/pkg/domain/redaction"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	// ConfidenceThreshold is the minimum score an entity needs to be redacted.
	ConfidenceThreshold = 0.8
	// DetectionTimeout bounds a whole detection pass, all batches included.
	DetectionTimeout = 3 * time.Second
	// MaxDocumentsPerBatch is the service limit of documents per request.
	MaxDocumentsPerBatch = 5

	piiPath          = "/text/analytics/v3.1/entities/recognition/pii"
	cognitiveScope   = "https://cognitiveservices.azure.com/.default"
	subscriptionKey  = "Ocp-Apim-Subscription-Key"
	defaultRateBurst = 1
)

// Config of the recognizer. An empty Language lets the service detect the
// language of each document.
type Config struct {
	Endpoint          string  `mapstructure:"endpoint"`
	APIKey            string  `mapstructure:"api_key"`
	Language          string  `mapstructure:"language"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

type (
	document struct {
		ID       string `json:"id"`
		Language string `json:"language"`
		Text     string `json:"text"`
	}
	piiRequest struct {
		Documents []document `json:"documents"`
	}
	piiEntity struct {
		Text            string  `json:"text"`
		Category        string  `json:"category"`
		Subcategory     string  `json:"subcategory,omitempty"`
		Offset          int     `json:"offset"`
		Length          int     `json:"length"`
		ConfidenceScore float64 `json:"confidenceScore"`
	}
	piiDocument struct {
		ID       string      `json:"id"`
		Entities []piiEntity `json:"entities"`
	}
	piiError struct {
		ID    string `json:"id"`
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	piiResponse struct {
		Documents    []piiDocument `json:"documents"`
		Errors       []piiError    `json:"errors"`
		ModelVersion string        `json:"modelVersion"`
	}
)

// configState reports a missing configuration once per detector.
type configState struct {
	once sync.Once
}

func (s *configState) reportMissing(logger *logrus.Logger) {
	s.once.Do(func() {
		logger.Warn("azure pii detector is not configured, texts are sent to the llm unredacted")
	})
}

type Option func(*Detector)

// WithTokenCredential authenticates with Microsoft Entra ID instead of a
// subscription key.
func WithTokenCredential(cred azcore.TokenCredential) Option {
	return func(d *Detector) {
		d.credential = cred
	}
}

// Detector calls the Azure AI Language PII recognition endpoint.
type Detector struct {
	logger     *logrus.Logger
	client     httpx.Client
	breaker    httpx.CircuitBreaker
	limiter    *rate.Limiter
	credential azcore.TokenCredential
	cfg        Config
	state      *configState
}

func NewDetector(
	logger *logrus.Logger,
	client httpx.Client,
	breaker httpx.CircuitBreaker,
	cfg Config,
	opts ...Option,
) *Detector {
	d := &Detector{
		logger:  logger,
		client:  client,
		breaker: breaker,
		cfg:     cfg,
		state:   &configState{},
	}
	if cfg.RequestsPerSecond > 0 {
		d.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), defaultRateBurst)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Detector) configured() bool {
	if strings.TrimSpace(d.cfg.Endpoint) == "" {
		return false
	}
	return d.cfg.APIKey != "" || d.credential != nil
}

func (d *Detector) Detect(ctx context.Context, chunks []redaction.PlannedChunk) ([]redaction.Entity, error) {
	if !d.configured() {
		d.state.reportMissing(d.logger)
		return nil, redaction.ErrDetectorNotConfigured
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, DetectionTimeout)
	defer cancel()

	batches := redaction.Batches(chunks, MaxDocumentsPerBatch)
	results := make([][]redaction.Entity, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		g.Go(func() error {
			entities, err := d.detectBatch(gctx, batch)
			if err != nil {
				return fmt.Errorf("batch %d: %w", i, err)
			}
			results[i] = entities
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []redaction.Entity
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func (d *Detector) detectBatch(ctx context.Context, batch []redaction.PlannedChunk) ([]redaction.Entity, error) {
	byID := make(map[string]redaction.PlannedChunk, len(batch))
	req := piiRequest{Documents: make([]document, 0, len(batch))}
	for _, c := range batch {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		id := strconv.Itoa(c.Index)
		byID[id] = c
		req.Documents = append(req.Documents, document{ID: id, Language: d.cfg.Language, Text: c.Text})
	}
	if len(req.Documents) == 0 {
		return nil, nil
	}

	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pii request: %w", err)
	}

	var resp piiResponse
	if err := d.breaker.Execute(func() error {
		return d.send(ctx, body, &resp)
	}); err != nil {
		return nil, err
	}

	if len(resp.Errors) > 0 {
		e := resp.Errors[0]
		return nil, fmt.Errorf("%w: document %s: %s", redaction.ErrDetectorFailed, e.ID, e.Error.Code)
	}

	var entities []redaction.Entity
	for _, doc := range resp.Documents {
		chunk, ok := byID[doc.ID]
		if !ok {
			return nil, fmt.Errorf("%w: unknown document id %q", redaction.ErrDetectorFailed, doc.ID)
		}
		for _, e := range doc.Entities {
			prefix, known := redaction.PrefixFor(e.Category)
			if !known || e.ConfidenceScore < ConfidenceThreshold {
				continue
			}
			entities = append(entities, redaction.Entity{
				Text:       e.Text,
				Category:   e.Category,
				Prefix:     prefix,
				Offset:     chunk.GlobalOffset + e.Offset,
				Length:     e.Length,
				Confidence: e.ConfidenceScore,
			})
		}
	}
	return entities, nil
}

func (d *Detector) send(ctx context.Context, body []byte, out *piiResponse) error {
	url := strings.TrimRight(d.cfg.Endpoint, "/") + piiPath + "?stringIndexType=UnicodeCodePoint"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create pii request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if err := d.authorize(ctx, httpReq); err != nil {
		return err
	}

	httpResp, err := d.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %w", redaction.ErrDetectorFailed, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", redaction.ErrDetectorFailed, err)
	}
	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d", redaction.ErrDetectorFailed, httpResp.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: invalid response body: %w", redaction.ErrDetectorFailed, err)
	}
	return nil
}

func (d *Detector) authorize(ctx context.Context, req *http.Request) error {
	if d.cfg.APIKey != "" {
		req.Header.Set(subscriptionKey, d.cfg.APIKey)
		return nil
	}
	token, err := d.credential.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{cognitiveScope}})
	if err != nil {
		return fmt.Errorf("%w: failed to get token: %w", redaction.ErrDetectorFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+token.Token)
	return nil
}

