package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport interface {
	GetTransport() HandlerTransport
}

type HandlerTransportDTO struct {
	// Analysis
	AnalyzeTextHandler Handler
	AnalyzeBotHandler  Handler

	// History
	ListAnalysesHandler   Handler
	GetAnalysisHandler    Handler
	DeleteAnalysisHandler Handler
	SummaryHandler        Handler

	GetVersionHandler Handler
}

func (t *HandlerTransportDTO) GetTransport() HandlerTransport {
	return t
}
