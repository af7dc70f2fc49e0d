package router

import (
	"github.com/NeuralTrust/InclusionGuard/pkg/config"
	handlers "github.com/NeuralTrust/InclusionGuard/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/InclusionGuard/pkg/handlers/websocket"
	"github.com/NeuralTrust/InclusionGuard/pkg/server/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const (
	VersionPath   = "/version"
	WebsocketPath = "/ws/v1/analyze"
)

// APIRouterDI groups the middleware chains by where they apply. Global runs on
// every route, API on /api/v1, RateLimit on the analyze routes only.
type APIRouterDI struct {
	Global             *middleware.Transport
	API                *middleware.Transport
	RateLimit          middleware.Middleware
	Websocket          middleware.Middleware
	Auth               middleware.Middleware
	HandlerTransport   handlers.HandlerTransport
	WsHandlerTransport wsHandlers.HandlerTransport
	Config             *config.Config
}

type apiRouter struct {
	di APIRouterDI
}

func NewAPIRouter(di APIRouterDI) ServerRouter {
	return &apiRouter{di: di}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	if r.di.HandlerTransport == nil || r.di.WsHandlerTransport == nil {
		return ErrInvalidHandlerTransport
	}
	handlerTransport, ok := r.di.HandlerTransport.GetTransport().(*handlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}
	wsHandlerTransport, ok := r.di.WsHandlerTransport.GetTransport().(*wsHandlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	if r.di.Global != nil {
		router.Use(r.di.Global.Handlers()...)
	}

	router.Static("/swagger.json", "./docs/swagger.json")

	router.Get("/docs/*", swagger.New(swagger.Config{
		URL: r.di.Config.Server.DocsURL,
	}))

	router.Get(VersionPath, handlerTransport.GetVersionHandler.Handle)

	router.Get(WebsocketPath,
		r.di.Websocket.Middleware(),
		r.di.Auth.Middleware(),
		middleware.WebsocketLocals,
		wsHandlerTransport.Upgrade(wsHandlerTransport.AnalyzeHandler),
	)

	v1 := router.Group("/api/v1")
	{
		if r.di.API != nil {
			v1.Use(r.di.API.Handlers()...)
		}

		analyze := v1.Group("/analyze", r.di.RateLimit.Middleware())
		{
			analyze.Post("", handlerTransport.AnalyzeTextHandler.Handle)
			analyze.Post("/bot", handlerTransport.AnalyzeBotHandler.Handle)
		}

		analyses := v1.Group("/analyses")
		{
			analyses.Get("", handlerTransport.ListAnalysesHandler.Handle)
			analyses.Get("/summary", handlerTransport.SummaryHandler.Handle)
			analyses.Get("/:analysis_id", handlerTransport.GetAnalysisHandler.Handle)
			analyses.Delete("/:analysis_id", handlerTransport.DeleteAnalysisHandler.Handle)
		}
	}

	return nil
}
