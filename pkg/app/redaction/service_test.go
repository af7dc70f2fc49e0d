package redaction_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/NeuralTrust/InclusionGuard/pkg/app/redaction"
	domain "github.com/NeuralTrust/InclusionGuard/pkg/domain/redaction"
	"github.com/NeuralTrust/InclusionGuard/pkg/domain/redaction/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Redact_Success(t *testing.T) {
	detector := mocks.NewDetector(t)
	svc := redaction.NewService(logrus.New(), detector)

	text := "Contact John Smith at john@x.com ASAP"
	detector.EXPECT().Detect(mock.Anything, mock.Anything).Return([]domain.Entity{
		email("john@x.com", 22),
		person("John Smith", 8),
	}, nil).Once()

	result := svc.Redact(context.Background(), text)

	assert.Equal(t, "Contact [PERSON_1] at [EMAIL_1] ASAP", result.RedactedText)
	require.Len(t, result.EntityMap, 2)
	assert.Equal(t, "[PERSON_1]", result.EntityMap[0].Placeholder)
	assert.Equal(t, "[EMAIL_1]", result.EntityMap[1].Placeholder)
}

func TestService_Redact_FailOpen(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "detector not configured", err: domain.ErrDetectorNotConfigured},
		{name: "detector timeout", err: fmt.Errorf("batch 0: %w", context.DeadlineExceeded)},
		{name: "detector transport error", err: errors.New("connection refused")},
		{name: "detector non-2xx", err: fmt.Errorf("%w: status 500", domain.ErrDetectorFailed)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := mocks.NewDetector(t)
			svc := redaction.NewService(logrus.New(), detector)

			text := "Contact John Smith at john@x.com ASAP"
			detector.EXPECT().Detect(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			result := svc.Redact(context.Background(), text)

			assert.Equal(t, text, result.RedactedText)
			assert.Empty(t, result.EntityMap)
		})
	}
}

func TestService_Redact_DetectorNeverResponds(t *testing.T) {
	detector := mocks.NewDetector(t)
	svc := redaction.NewService(logrus.New(), detector)

	detector.EXPECT().Detect(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ []domain.PlannedChunk) ([]domain.Entity, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	text := "Please email maria@example.com today."
	result := svc.Redact(ctx, text)

	assert.Equal(t, text, result.RedactedText)
	assert.Empty(t, result.EntityMap)
}

func TestService_Redact_BlankTextSkipsDetector(t *testing.T) {
	detector := mocks.NewDetector(t)
	svc := redaction.NewService(logrus.New(), detector)

	result := svc.Redact(context.Background(), "   ")

	assert.Equal(t, "   ", result.RedactedText)
	assert.Empty(t, result.EntityMap)
	detector.AssertNotCalled(t, "Detect", mock.Anything, mock.Anything)
}

func TestService_Redact_SendsChunkPlan(t *testing.T) {
	detector := mocks.NewDetector(t)
	svc := redaction.NewService(logrus.New(), detector, redaction.WithMaxChunkLength(30))

	text := strings.Repeat("One sentence here. ", 6)
	var received []domain.PlannedChunk
	detector.EXPECT().Detect(mock.Anything, mock.Anything).
		Run(func(_ context.Context, chunks []domain.PlannedChunk) {
			received = chunks
		}).Return(nil, nil).Once()

	result := svc.Redact(context.Background(), text)

	assert.Equal(t, text, result.RedactedText)
	require.Greater(t, len(received), 1)
	var joined strings.Builder
	offset := 0
	for i, c := range received {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, offset, c.GlobalOffset)
		offset += len([]rune(c.Text))
		joined.WriteString(c.Text)
	}
	assert.Equal(t, text, joined.String())
}
