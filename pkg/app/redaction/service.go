package redaction

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/NeuralTrust/InclusionGuard/pkg/domain/redaction"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	failOpenNotConfigured = "not_configured"
	failOpenTimeout       = "timeout"
	failOpenCanceled      = "canceled"
	failOpenDetectorError = "detector_error"
)

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=redaction_service_mock.go --case=underscore --with-expecter
type Service interface {
	// Redact never fails: any detector problem yields the original text and
	// an empty entity map.
	Redact(ctx context.Context, text string) redaction.RedactionResult
}

type Option func(*service)

func WithMaxChunkLength(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.maxChunkLength = n
		}
	}
}

type service struct {
	logger         *logrus.Logger
	detector       redaction.Detector
	maxChunkLength int
}

func NewService(logger *logrus.Logger, detector redaction.Detector, opts ...Option) Service {
	s := &service{
		logger:         logger,
		detector:       detector,
		maxChunkLength: MaxChunkLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Redact(ctx context.Context, text string) redaction.RedactionResult {
	result, err := s.redact(ctx, text)
	if err != nil {
		reason := failOpenReason(err)
		prometheus.RedactionFailOpen.WithLabelValues(reason).Inc()
		if reason != failOpenNotConfigured {
			s.logger.WithError(err).WithField("reason", reason).
				Warn("pii redaction skipped, continuing with unredacted text")
		}
		return redaction.Unredacted(text)
	}

	for prefix, n := range result.EntityMap.CountByPrefix() {
		prometheus.EntitiesRedacted.WithLabelValues(string(prefix)).Add(float64(n))
	}
	return result
}

func (s *service) redact(ctx context.Context, text string) (redaction.RedactionResult, error) {
	if strings.TrimSpace(text) == "" {
		return redaction.Unredacted(text), nil
	}

	plan := NewChunkPlan(text, s.maxChunkLength)

	start := time.Now()
	entities, err := s.detector.Detect(ctx, plan.Chunks())
	prometheus.DetectorLatency.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return redaction.RedactionResult{}, err
	}

	entityMap := AssignPlaceholders(entities, plan.TextLen())
	s.logger.WithFields(logrus.Fields{
		"chunks":   plan.Len(),
		"detected": len(entities),
		"kept":     len(entityMap),
	}).Debug("pii entities assigned")

	return redaction.RedactionResult{
		RedactedText: Redact(text, entityMap),
		EntityMap:    entityMap,
	}, nil
}

func failOpenReason(err error) string {
	switch {
	case errors.Is(err, redaction.ErrDetectorNotConfigured):
		return failOpenNotConfigured
	case errors.Is(err, context.DeadlineExceeded):
		return failOpenTimeout
	case errors.Is(err, context.Canceled):
		return failOpenCanceled
	default:
		return failOpenDetectorError
	}
}
