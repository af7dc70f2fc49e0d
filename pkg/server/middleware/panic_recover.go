package middleware

import (
	"fmt"

	"github.com/NeuralTrust/InclusionGuard/pkg/common"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/sentry"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type panicRecoverMiddleware struct {
	logger   *logrus.Logger
	reporter sentry.Reporter
}

func NewPanicRecoverMiddleware(logger *logrus.Logger, reporter sentry.Reporter) Middleware {
	return &panicRecoverMiddleware{logger: logger, reporter: reporter}
}

func (m *panicRecoverMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				traceID, _ := c.Locals(common.TraceIdKey).(string)
				m.logger.WithFields(logrus.Fields{
					"error":    fmt.Sprint(r),
					"path":     c.Path(),
					"trace_id": traceID,
				}).Error("HTTP server panic recovered")

				m.reporter.CapturePanic(c.UserContext(), r, map[string]string{
					"method":   c.Method(),
					"route":    c.Route().Path,
					"trace_id": traceID,
				})

				err = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Internal server error",
				})
			}
		}()

		return c.Next()
	}
}
