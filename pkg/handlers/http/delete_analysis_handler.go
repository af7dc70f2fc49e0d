package http

import (
	"github.com/NeuralTrust/InclusionGuard/pkg/app/analysis"
	"github.com/gofiber/fiber/v2"
)

type deleteAnalysisHandler struct {
	*BaseHandler
	history analysis.History
}

func NewDeleteAnalysisHandler(base *BaseHandler, history analysis.History) Handler {
	return &deleteAnalysisHandler{
		BaseHandler: base,
		history:     history,
	}
}

// Handle @Summary Delete an analysis
// @Tags History
// @Security BearerAuth
// @Param analysis_id path string true "Analysis ID"
// @Success 204 "Analysis deleted"
// @Failure 400 {object} map[string]interface{} "Invalid analysis id"
// @Failure 404 {object} map[string]interface{} "Analysis not found"
// @Router /api/v1/analyses/{analysis_id} [delete]
func (h *deleteAnalysisHandler) Handle(c *fiber.Ctx) error {
	id, err := h.AnalysisID(c)
	if err != nil {
		return h.HandleError(c, err, "delete analysis")
	}

	if err := h.history.Delete(c.UserContext(), h.TeamID(c), id); err != nil {
		return h.HandleError(c, err, "delete analysis")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
