package http

import (
	"encoding/json"
	"testing"

	"github.com/NeuralTrust/InclusionGuard/pkg/app/analysis"
	analysisMocks "github.com/NeuralTrust/InclusionGuard/pkg/app/analysis/mocks"
	domainAnalysis "github.com/NeuralTrust/InclusionGuard/pkg/domain/analysis"
	sentryMocks "github.com/NeuralTrust/InclusionGuard/pkg/infra/sentry/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBotHandler_Success(t *testing.T) {
	analyzer := analysisMocks.NewAnalyzer(t)
	handler := NewAnalyzeBotHandler(newTestBase(sentryMocks.NewReporter(t)), analyzer)
	app := newTestApp()
	app.Post("/api/v1/analyze/bot", handler.Handle)

	analyzer.EXPECT().AnalyzeBotResponse(mock.Anything, mock.MatchedBy(func(req analysis.Request) bool {
		return req.Text == "Older users struggle with apps" && req.TeamID == testTeamID
	})).Return(&analysis.BotResult{
		Kind: domainAnalysis.KindBot,
		Issues: []domainAnalysis.BotIssue{{
			Issue: domainAnalysis.Issue{
				IssueDetected: "age stereotype",
				OffendingText: "Older users struggle",
			},
			Severity:      domainAnalysis.SeverityHigh,
			AffectedGroup: "older adults",
		}},
		Outcome: domainAnalysis.OutcomeParsed,
	}, nil).Once()

	status, body := postJSON(t, app, "/api/v1/analyze/bot", map[string]string{"text": "Older users struggle with apps"})

	assert.Equal(t, fiber.StatusOK, status)
	var result analysis.BotResult
	require.NoError(t, json.Unmarshal(body, &result))
	require.Len(t, result.Issues, 1)
	assert.Equal(t, domainAnalysis.SeverityHigh, result.Issues[0].Severity)
	assert.Equal(t, "older adults", result.Issues[0].AffectedGroup)
	assert.Contains(t, string(body), `"OffendingText":"Older users struggle"`)
	assert.Contains(t, string(body), `"Severity":"high"`)
	assert.Contains(t, string(body), `"AffectedGroup":"older adults"`)
}

func TestAnalyzeBotHandler_ServiceUnavailable(t *testing.T) {
	analyzer := analysisMocks.NewAnalyzer(t)
	handler := NewAnalyzeBotHandler(newTestBase(sentryMocks.NewReporter(t)), analyzer)
	app := newTestApp()
	app.Post("/api/v1/analyze/bot", handler.Handle)

	analyzer.EXPECT().AnalyzeBotResponse(mock.Anything, mock.Anything).
		Return(nil, domainAnalysis.ErrAIServiceUnavailable).Once()

	status, body := postJSON(t, app, "/api/v1/analyze/bot", map[string]string{"text": "hello"})

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.JSONEq(t, `{"error":"AI service temporarily unavailable"}`, string(body))
}
