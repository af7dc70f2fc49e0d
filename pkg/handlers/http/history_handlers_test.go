package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeuralTrust/InclusionGuard/pkg/app/analysis"
	analysisMocks "github.com/NeuralTrust/InclusionGuard/pkg/app/analysis/mocks"
	"github.com/NeuralTrust/InclusionGuard/pkg/common"
	"github.com/NeuralTrust/InclusionGuard/pkg/domain"
	domainAnalysis "github.com/NeuralTrust/InclusionGuard/pkg/domain/analysis"
	sentryMocks "github.com/NeuralTrust/InclusionGuard/pkg/infra/sentry/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, app *fiber.App, method, path string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestListAnalysesHandler_PassesPaging(t *testing.T) {
	history := analysisMocks.NewHistory(t)
	handler := NewListAnalysesHandler(newTestBase(sentryMocks.NewReporter(t)), history)
	app := newTestApp()
	app.Get("/api/v1/analyses", handler.Handle)

	history.EXPECT().List(mock.Anything, testTeamID, 5, 10).Return(&analysis.Page{
		Items:  []*domainAnalysis.Analysis{{ID: uuid.New(), TeamID: testTeamID}},
		Total:  11,
		Limit:  5,
		Offset: 10,
	}, nil).Once()

	status, body := doRequest(t, app, "GET", "/api/v1/analyses?limit=5&offset=10")

	assert.Equal(t, fiber.StatusOK, status)
	var page analysis.Page
	require.NoError(t, json.Unmarshal(body, &page))
	assert.Equal(t, int64(11), page.Total)
	assert.Len(t, page.Items, 1)
}

func TestListAnalysesHandler_InvalidQuery(t *testing.T) {
	history := analysisMocks.NewHistory(t)
	handler := NewListAnalysesHandler(newTestBase(sentryMocks.NewReporter(t)), history)
	app := newTestApp()
	app.Get("/api/v1/analyses", handler.Handle)

	status, _ := doRequest(t, app, "GET", "/api/v1/analyses?limit=abc")

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetAnalysisHandler(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		history := analysisMocks.NewHistory(t)
		handler := NewGetAnalysisHandler(newTestBase(sentryMocks.NewReporter(t)), history)
		app := newTestApp()
		app.Get("/api/v1/analyses/:analysis_id", handler.Handle)

		history.EXPECT().Get(mock.Anything, testTeamID, id).Return(&domainAnalysis.Analysis{
			ID:         id,
			TeamID:     testTeamID,
			IssueCount: 2,
		}, nil).Once()

		status, body := doRequest(t, app, "GET", "/api/v1/analyses/"+id.String())

		assert.Equal(t, fiber.StatusOK, status)
		var got domainAnalysis.Analysis
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, id, got.ID)
		assert.Equal(t, 2, got.IssueCount)
	})

	t.Run("not found", func(t *testing.T) {
		history := analysisMocks.NewHistory(t)
		handler := NewGetAnalysisHandler(newTestBase(sentryMocks.NewReporter(t)), history)
		app := newTestApp()
		app.Get("/api/v1/analyses/:analysis_id", handler.Handle)

		history.EXPECT().Get(mock.Anything, testTeamID, id).
			Return(nil, domain.NewNotFoundError("analysis", id)).Once()

		status, _ := doRequest(t, app, "GET", "/api/v1/analyses/"+id.String())

		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("invalid id", func(t *testing.T) {
		history := analysisMocks.NewHistory(t)
		handler := NewGetAnalysisHandler(newTestBase(sentryMocks.NewReporter(t)), history)
		app := newTestApp()
		app.Get("/api/v1/analyses/:analysis_id", handler.Handle)

		status, body := doRequest(t, app, "GET", "/api/v1/analyses/not-a-uuid")

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.JSONEq(t, `{"error":"invalid analysis id"}`, string(body))
	})
}

func TestDeleteAnalysisHandler(t *testing.T) {
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		history := analysisMocks.NewHistory(t)
		handler := NewDeleteAnalysisHandler(newTestBase(sentryMocks.NewReporter(t)), history)
		app := newTestApp()
		app.Delete("/api/v1/analyses/:analysis_id", handler.Handle)

		history.EXPECT().Delete(mock.Anything, testTeamID, id).Return(nil).Once()

		status, _ := doRequest(t, app, "DELETE", "/api/v1/analyses/"+id.String())

		assert.Equal(t, fiber.StatusNoContent, status)
	})

	t.Run("other team", func(t *testing.T) {
		history := analysisMocks.NewHistory(t)
		handler := NewDeleteAnalysisHandler(newTestBase(sentryMocks.NewReporter(t)), history)
		app := newTestApp()
		app.Delete("/api/v1/analyses/:analysis_id", handler.Handle)

		history.EXPECT().Delete(mock.Anything, testTeamID, id).
			Return(domain.NewNotFoundError("analysis", id)).Once()

		status, _ := doRequest(t, app, "DELETE", "/api/v1/analyses/"+id.String())

		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestSummaryHandler(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

	newHandler := func(t *testing.T, history analysis.History) Handler {
		h := NewSummaryHandler(newTestBase(sentryMocks.NewReporter(t)), history).(*summaryHandler)
		h.now = func() time.Time { return now }
		return h
	}

	t.Run("default period", func(t *testing.T) {
		history := analysisMocks.NewHistory(t)
		app := newTestApp()
		app.Get("/api/v1/analyses/summary", newHandler(t, history).Handle)

		since := now.AddDate(0, 0, -common.DefaultSummaryDays)
		history.EXPECT().SummaryByIssue(mock.Anything, testTeamID, since).Return(&analysis.Summary{
			Since:  since,
			Counts: []domainAnalysis.IssueTypeCount{{IssueType: "gendered language", Count: 3}},
		}, nil).Once()

		status, body := doRequest(t, app, "GET", "/api/v1/analyses/summary")

		assert.Equal(t, fiber.StatusOK, status)
		var summary analysis.Summary
		require.NoError(t, json.Unmarshal(body, &summary))
		require.Len(t, summary.Counts, 1)
		assert.Equal(t, int64(3), summary.Counts[0].Count)
	})

	t.Run("explicit days", func(t *testing.T) {
		history := analysisMocks.NewHistory(t)
		app := newTestApp()
		app.Get("/api/v1/analyses/summary", newHandler(t, history).Handle)

		history.EXPECT().SummaryByIssue(mock.Anything, testTeamID, now.AddDate(0, 0, -7)).
			Return(&analysis.Summary{}, nil).Once()

		status, _ := doRequest(t, app, "GET", "/api/v1/analyses/summary?days=7")

		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("days out of range", func(t *testing.T) {
		history := analysisMocks.NewHistory(t)
		app := newTestApp()
		app.Get("/api/v1/analyses/summary", newHandler(t, history).Handle)

		status, _ := doRequest(t, app, "GET", "/api/v1/analyses/summary?days=1000")

		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestGetVersionHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/version", NewGetVersionHandler().Handle)

	status, body := doRequest(t, app, "GET", "/version")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), "InclusionGuard")
}
