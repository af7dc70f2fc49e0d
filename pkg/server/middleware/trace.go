package middleware

import (
	"github.com/NeuralTrust/InclusionGuard/pkg/common"
	"github.com/NeuralTrust/InclusionGuard/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxTraceIDLength = 128

type traceMiddleware struct{}

// NewTraceMiddleware assigns every request a trace id, taken from the
// X-Trace-Id header when the caller sends one, and parses the client's user
// agent once for the handlers.
func NewTraceMiddleware() Middleware {
	return &traceMiddleware{}
}

func (m *traceMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(common.TraceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = uuid.NewString()
		}
		c.Locals(common.TraceIdKey, traceID)
		c.Set(common.TraceIDHeader, traceID)

		c.Locals(common.UserAgentInfoKey, utils.ParseUserAgent(c.Get(fiber.HeaderUserAgent), c.Get(fiber.HeaderAcceptLanguage)))
		return c.Next()
	}
}
