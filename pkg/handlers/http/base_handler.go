package http

import (
	"errors"

	"github.com/NeuralTrust/InclusionGuard/pkg/app/analysis"
	"github.com/NeuralTrust/InclusionGuard/pkg/common"
	"github.com/NeuralTrust/InclusionGuard/pkg/domain"
	domainAnalysis "github.com/NeuralTrust/InclusionGuard/pkg/domain/analysis"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/sentry"
	"github.com/NeuralTrust/InclusionGuard/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const analysisIDParam = "analysis_id"

type BaseHandler struct {
	logger   *logrus.Logger
	reporter sentry.Reporter
}

func NewBaseHandler(logger *logrus.Logger, reporter sentry.Reporter) *BaseHandler {
	return &BaseHandler{
		logger:   logger,
		reporter: reporter,
	}
}

// AnalysisRequest builds an analysis request from the body fields and the
// identity the middlewares stored on the context.
func (h *BaseHandler) AnalysisRequest(c *fiber.Ctx, subject, text string) analysis.Request {
	req := analysis.Request{
		Subject: subject,
		Text:    text,
		TeamID:  h.TeamID(c),
	}
	req.UserID, _ = c.Locals(common.UserIdKey).(string)
	req.TraceID, _ = c.Locals(common.TraceIdKey).(string)
	req.Client, _ = c.Locals(common.UserAgentInfoKey).(*utils.UserAgentInfo)
	return req
}

func (h *BaseHandler) TeamID(c *fiber.Ctx) string {
	teamID, _ := c.Locals(common.TeamIdKey).(string)
	return teamID
}

func (h *BaseHandler) AnalysisID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(analysisIDParam))
	if err != nil {
		return uuid.Nil, domainAnalysis.ErrInvalidAnalysisID
	}
	return id, nil
}

// HandleError maps domain errors to status codes. Anything unexpected is
// logged, reported and rendered as a 500.
func (h *BaseHandler) HandleError(c *fiber.Ctx, err error, action string) error {
	switch {
	case errors.Is(err, domainAnalysis.ErrEmptyText):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domainAnalysis.ErrInvalidAnalysisID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domainAnalysis.ErrTextTooLong):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domainAnalysis.ErrAIServiceUnavailable):
		h.logger.WithError(err).Warn("AI service unavailable")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": domainAnalysis.ErrAIServiceUnavailable.Error()})
	case errors.Is(err, domain.ErrEntityNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Analysis not found"})
	}

	traceID, _ := c.Locals(common.TraceIdKey).(string)
	h.logger.WithError(err).WithField("trace_id", traceID).Error("failed to " + action)
	h.reporter.CaptureError(c.UserContext(), err, map[string]string{
		"action":   action,
		"route":    c.Route().Path,
		"trace_id": traceID,
	})
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to " + action})
}
