package http

import (
	"github.com/NeuralTrust/InclusionGuard/pkg/app/analysis"
	"github.com/NeuralTrust/InclusionGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
)

type analyzeBotHandler struct {
	*BaseHandler
	analyzer analysis.Analyzer
}

func NewAnalyzeBotHandler(base *BaseHandler, analyzer analysis.Analyzer) Handler {
	return &analyzeBotHandler{
		BaseHandler: base,
		analyzer:    analyzer,
	}
}

// Handle @Summary Analyze a chatbot reply
// @Description Reviews a chatbot response. Issues carry a severity and the affected group.
// @Tags Analysis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.AnalyzeRequest true "Chatbot reply to review"
// @Success 200 {object} analysis.BotResult "Issues found"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 413 {object} map[string]interface{} "Text too long"
// @Failure 429 {object} map[string]interface{} "Rate limit exceeded"
// @Failure 503 {object} map[string]interface{} "AI service temporarily unavailable"
// @Router /api/v1/analyze/bot [post]
func (h *analyzeBotHandler) Handle(c *fiber.Ctx) error {
	var req request.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.analyzer.AnalyzeBotResponse(c.UserContext(), h.AnalysisRequest(c, req.Subject, req.Text))
	if err != nil {
		return h.HandleError(c, err, "analyze bot response")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
