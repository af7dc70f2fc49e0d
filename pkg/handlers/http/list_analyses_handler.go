package http

import (
	"github.com/NeuralTrust/InclusionGuard/pkg/app/analysis"
	"github.com/NeuralTrust/InclusionGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
)

type listAnalysesHandler struct {
	*BaseHandler
	history analysis.History
}

func NewListAnalysesHandler(base *BaseHandler, history analysis.History) Handler {
	return &listAnalysesHandler{
		BaseHandler: base,
		history:     history,
	}
}

// Handle @Summary List analyses
// @Description Returns the stored analyses of the caller's team, newest first
// @Tags History
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} analysis.Page "Page of analyses"
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Router /api/v1/analyses [get]
func (h *listAnalysesHandler) Handle(c *fiber.Ctx) error {
	var req request.ListAnalysesRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query parameters"})
	}

	page, err := h.history.List(c.UserContext(), h.TeamID(c), req.Limit, req.Offset)
	if err != nil {
		return h.HandleError(c, err, "list analyses")
	}
	return c.Status(fiber.StatusOK).JSON(page)
}
