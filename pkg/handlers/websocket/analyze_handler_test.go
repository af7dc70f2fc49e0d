package websocket

import (
	"net"
	"testing"
	"time"

	"github.com/NeuralTrust/InclusionGuard/pkg/app/analysis"
	analysisMocks "github.com/NeuralTrust/InclusionGuard/pkg/app/analysis/mocks"
	"github.com/NeuralTrust/InclusionGuard/pkg/common"
	domainAnalysis "github.com/NeuralTrust/InclusionGuard/pkg/domain/analysis"
	sentryMocks "github.com/NeuralTrust/InclusionGuard/pkg/infra/sentry/mocks"
	infraWebsocket "github.com/NeuralTrust/InclusionGuard/pkg/infra/websocket"
	"github.com/gofiber/fiber/v2"
	gorilla "github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, handler Handler, teamID string, semaphore *infraWebsocket.Semaphore) string {
	t.Helper()
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/ws", func(c *fiber.Ctx) error {
		if teamID != "" {
			c.Locals(string(common.TeamIdKey), teamID)
		}
		c.Locals(string(common.TraceIdKey), "trace-ws")
		if semaphore != nil {
			c.Locals(string(common.WsSemaphoreKey), semaphore)
		}
		return c.Next()
	}, (&HandlerTransportDTO{AnalyzeHandler: handler}).Upgrade(handler))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})
	return "ws://" + ln.Addr().String() + "/ws"
}

func dial(t *testing.T, url string) *gorilla.Conn {
	t.Helper()
	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

func newHandler(t *testing.T, analyzer analysis.Analyzer) Handler {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewAnalyzeHandler(logger, analyzer, sentryMocks.NewReporter(t))
}

func TestAnalyzeHandler_AnswersEachMessage(t *testing.T) {
	analyzer := analysisMocks.NewAnalyzer(t)
	analyzer.EXPECT().AnalyzeText(mock.Anything, mock.MatchedBy(func(req analysis.Request) bool {
		return req.TeamID == "team-1" && req.TraceID == "trace-ws" && req.Text == "hey guys"
	})).Return(&analysis.Result{
		Kind:    domainAnalysis.KindText,
		Issues:  []domainAnalysis.Issue{{IssueDetected: "gendered language", OffendingText: "guys"}},
		Outcome: domainAnalysis.OutcomeParsed,
	}, nil).Once()
	analyzer.EXPECT().AnalyzeBotResponse(mock.Anything, mock.Anything).
		Return(nil, domainAnalysis.ErrAIServiceUnavailable).Once()

	conn := dial(t, startServer(t, newHandler(t, analyzer), "team-1", nil))

	require.NoError(t, conn.WriteJSON(infraWebsocket.Message{ID: "1", Text: "hey guys"}))
	var first infraWebsocket.ResponseMessage
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, fiber.StatusOK, first.Status)
	assert.Empty(t, first.Error)
	result, ok := first.Result.(map[string]interface{})
	require.True(t, ok)
	issues, ok := result["issues"].([]interface{})
	require.True(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, "guys", issues[0].(map[string]interface{})["OffendingText"])
	assert.Equal(t, "gendered language", issues[0].(map[string]interface{})["IssueDetected"])

	require.NoError(t, conn.WriteJSON(infraWebsocket.Message{ID: "2", Kind: infraWebsocket.KindBot, Text: "reply"}))
	var second infraWebsocket.ResponseMessage
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, "2", second.ID)
	assert.Equal(t, fiber.StatusServiceUnavailable, second.Status)
	assert.Equal(t, "AI service temporarily unavailable", second.Error)
}

func TestAnalyzeHandler_RejectsBadMessages(t *testing.T) {
	analyzer := analysisMocks.NewAnalyzer(t)
	conn := dial(t, startServer(t, newHandler(t, analyzer), "team-1", nil))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	require.NoError(t, conn.WriteMessage(gorilla.TextMessage, []byte("{not json")))
	var invalid infraWebsocket.ResponseMessage
	require.NoError(t, conn.ReadJSON(&invalid))
	assert.Equal(t, fiber.StatusBadRequest, invalid.Status)

	require.NoError(t, conn.WriteJSON(infraWebsocket.Message{ID: "k", Kind: "audio", Text: "x"}))
	var unknown infraWebsocket.ResponseMessage
	require.NoError(t, conn.ReadJSON(&unknown))
	assert.Equal(t, "k", unknown.ID)
	assert.Equal(t, fiber.StatusBadRequest, unknown.Status)
}

func TestAnalyzeHandler_ClosesWithoutTeam(t *testing.T) {
	analyzer := analysisMocks.NewAnalyzer(t)
	conn := dial(t, startServer(t, newHandler(t, analyzer), "", nil))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	_, _, err := conn.ReadMessage()

	require.Error(t, err)
	assert.True(t, gorilla.IsCloseError(err, gorilla.ClosePolicyViolation))
}

func TestAnalyzeHandler_ReleasesSlotOnClose(t *testing.T) {
	analyzer := analysisMocks.NewAnalyzer(t)
	semaphore := infraWebsocket.NewSemaphore(1)
	require.True(t, semaphore.Acquire())

	conn := dial(t, startServer(t, newHandler(t, analyzer), "team-1", semaphore))
	require.NoError(t, conn.WriteMessage(gorilla.CloseMessage, gorilla.FormatCloseMessage(gorilla.CloseNormalClosure, "")))

	assert.Eventually(t, func() bool {
		return semaphore.GetCurrentConnections() == 0
	}, 5*time.Second, 20*time.Millisecond)
}
