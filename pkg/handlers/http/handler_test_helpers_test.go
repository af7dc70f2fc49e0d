package http

import (
	"github.com/NeuralTrust/InclusionGuard/pkg/common"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/sentry"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	testTeamID = "team-1"
	testUserID = "user-1"
)

func newTestBase(reporter sentry.Reporter) *BaseHandler {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewBaseHandler(logger, reporter)
}

// newTestApp mimics the auth and trace middlewares.
func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(common.TeamIdKey, testTeamID)
		c.Locals(common.UserIdKey, testUserID)
		c.Locals(common.TraceIdKey, "trace-1")
		return c.Next()
	})
	return app
}
