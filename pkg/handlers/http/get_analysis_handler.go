package http

import (
	"github.com/NeuralTrust/InclusionGuard/pkg/app/analysis"
	"github.com/gofiber/fiber/v2"
)

type getAnalysisHandler struct {
	*BaseHandler
	history analysis.History
}

func NewGetAnalysisHandler(base *BaseHandler, history analysis.History) Handler {
	return &getAnalysisHandler{
		BaseHandler: base,
		history:     history,
	}
}

// Handle @Summary Get an analysis
// @Tags History
// @Produce json
// @Security BearerAuth
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} analysis.Analysis "Stored analysis"
// @Failure 400 {object} map[string]interface{} "Invalid analysis id"
// @Failure 404 {object} map[string]interface{} "Analysis not found"
// @Router /api/v1/analyses/{analysis_id} [get]
func (h *getAnalysisHandler) Handle(c *fiber.Ctx) error {
	id, err := h.AnalysisID(c)
	if err != nil {
		return h.HandleError(c, err, "get analysis")
	}

	entity, err := h.history.Get(c.UserContext(), h.TeamID(c), id)
	if err != nil {
		return h.HandleError(c, err, "get analysis")
	}
	return c.Status(fiber.StatusOK).JSON(entity)
}
