package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/NeuralTrust/InclusionGuard/pkg/app/analysis"
	"github.com/NeuralTrust/InclusionGuard/pkg/common"
	domainAnalysis "github.com/NeuralTrust/InclusionGuard/pkg/domain/analysis"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/sentry"
	infraWebsocket "github.com/NeuralTrust/InclusionGuard/pkg/infra/websocket"
	"github.com/NeuralTrust/InclusionGuard/pkg/utils"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	defaultPongWait     = 60 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

type analyzeHandler struct {
	logger       *logrus.Logger
	analyzer     analysis.Analyzer
	reporter     sentry.Reporter
	pongWait     time.Duration
	writeTimeout time.Duration
}

// NewAnalyzeHandler answers every Message read from the connection with one
// ResponseMessage, in order. The connection closes on the first read error.
func NewAnalyzeHandler(
	logger *logrus.Logger,
	analyzer analysis.Analyzer,
	reporter sentry.Reporter,
) Handler {
	return &analyzeHandler{
		logger:       logger,
		analyzer:     analyzer,
		reporter:     reporter,
		pongWait:     defaultPongWait,
		writeTimeout: defaultWriteTimeout,
	}
}

func (h *analyzeHandler) Handle(c *websocket.Conn) {
	if semaphore, ok := c.Locals(string(common.WsSemaphoreKey)).(*infraWebsocket.Semaphore); ok {
		defer semaphore.Release()
	}

	identity := analysis.Request{}
	identity.TeamID, _ = c.Locals(string(common.TeamIdKey)).(string)
	identity.UserID, _ = c.Locals(string(common.UserIdKey)).(string)
	identity.TraceID, _ = c.Locals(string(common.TraceIdKey)).(string)
	identity.Client, _ = c.Locals(string(common.UserAgentInfoKey)).(*utils.UserAgentInfo)

	if identity.TeamID == "" {
		h.logger.Error("missing team in websocket connection")
		_ = c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "unauthorized"))
		return
	}

	c.SetPongHandler(func(string) error {
		return c.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	log := h.logger.WithFields(logrus.Fields{
		"team_id":  identity.TeamID,
		"trace_id": identity.TraceID,
	})
	log.Debug("websocket connection opened")
	defer log.Debug("websocket connection closed")

	for {
		if err := c.SetReadDeadline(time.Now().Add(h.pongWait)); err != nil {
			log.WithError(err).Error("failed to set read deadline")
			return
		}
		messageType, payload, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("websocket read failed")
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		response := h.process(payload, identity)
		if err := c.SetWriteDeadline(time.Now().Add(h.writeTimeout)); err != nil {
			log.WithError(err).Error("failed to set write deadline")
			return
		}
		if err := c.WriteJSON(response); err != nil {
			log.WithError(err).Warn("websocket write failed")
			return
		}
	}
}

func (h *analyzeHandler) process(payload []byte, identity analysis.Request) *infraWebsocket.ResponseMessage {
	var msg infraWebsocket.Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return &infraWebsocket.ResponseMessage{Status: fiber.StatusBadRequest, Error: "invalid message"}
	}

	req := identity
	req.Subject = msg.Subject
	req.Text = msg.Text

	ctx := context.Background()
	var (
		result interface{}
		err    error
	)
	switch msg.Kind {
	case "", infraWebsocket.KindText:
		result, err = h.analyzer.AnalyzeText(ctx, req)
	case infraWebsocket.KindBot:
		result, err = h.analyzer.AnalyzeBotResponse(ctx, req)
	default:
		return &infraWebsocket.ResponseMessage{ID: msg.ID, Status: fiber.StatusBadRequest, Error: "unknown kind"}
	}
	if err != nil {
		status, message := h.mapError(err, req.TraceID)
		return &infraWebsocket.ResponseMessage{ID: msg.ID, Status: status, Error: message}
	}
	return &infraWebsocket.ResponseMessage{ID: msg.ID, Status: fiber.StatusOK, Result: result}
}

func (h *analyzeHandler) mapError(err error, traceID string) (int, string) {
	switch {
	case errors.Is(err, domainAnalysis.ErrEmptyText):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domainAnalysis.ErrTextTooLong):
		return fiber.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, domainAnalysis.ErrAIServiceUnavailable):
		return fiber.StatusServiceUnavailable, domainAnalysis.ErrAIServiceUnavailable.Error()
	}
	h.logger.WithError(err).WithField("trace_id", traceID).Error("websocket analysis failed")
	h.reporter.CaptureError(context.Background(), err, map[string]string{
		"action":   "websocket analyze",
		"trace_id": traceID,
	})
	return fiber.StatusInternalServerError, "analysis failed"
}
