package http

import (
	"time"

	"github.com/NeuralTrust/InclusionGuard/pkg/app/analysis"
	"github.com/NeuralTrust/InclusionGuard/pkg/common"
	"github.com/NeuralTrust/InclusionGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
)

type summaryHandler struct {
	*BaseHandler
	history analysis.History
	now     func() time.Time
}

func NewSummaryHandler(base *BaseHandler, history analysis.History) Handler {
	return &summaryHandler{
		BaseHandler: base,
		history:     history,
		now:         time.Now,
	}
}

// Handle @Summary Issue summary
// @Description Counts the team's analyses per issue type over the last days
// @Tags History
// @Produce json
// @Security BearerAuth
// @Param days query int false "Period in days (default 30, max 365)"
// @Success 200 {object} analysis.Summary "Counts per issue type"
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Router /api/v1/analyses/summary [get]
func (h *summaryHandler) Handle(c *fiber.Ctx) error {
	var req request.SummaryRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query parameters"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Days == 0 {
		req.Days = common.DefaultSummaryDays
	}

	since := h.now().UTC().AddDate(0, 0, -req.Days)
	summary, err := h.history.SummaryByIssue(c.UserContext(), h.TeamID(c), since)
	if err != nil {
		return h.HandleError(c, err, "summarize analyses")
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}
