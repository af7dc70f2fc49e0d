package middleware

import (
	"github.com/NeuralTrust/InclusionGuard/pkg/common"
	infra "github.com/NeuralTrust/InclusionGuard/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const accessTokenQuery = "access_token"

type websocketMiddleware struct {
	logger    *logrus.Logger
	semaphore *infra.Semaphore
}

// NewWebsocketMiddleware rejects non-upgrade requests and caps the number of
// open connections. Browsers cannot set headers on an upgrade, so a bearer
// token may also arrive as ?access_token=. Register it before auth.
func NewWebsocketMiddleware(
	logger *logrus.Logger,
	maxConnections int,
) Middleware {
	return &websocketMiddleware{
		logger:    logger,
		semaphore: infra.NewSemaphore(maxConnections),
	}
}

func (m *websocketMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		if c.Get(fiber.HeaderAuthorization) == "" {
			if token := c.Query(accessTokenQuery); token != "" {
				c.Request().Header.Set(fiber.HeaderAuthorization, bearerPrefix+token)
			}
		}
		if !m.semaphore.Acquire() {
			m.logger.Warn("maximum webSocket connections reached, rejecting connection")
			return fiber.ErrTooManyRequests
		}
		c.Locals(string(common.WsSemaphoreKey), m.semaphore)

		err := c.Next()
		if c.Response().StatusCode() != fiber.StatusSwitchingProtocols {
			// the handler never took ownership of the slot
			m.semaphore.Release()
		}
		return err
	}
}

// WebsocketLocals copies the identity set by the auth middleware into string
// keyed locals, the only ones a websocket.Conn can read.
func WebsocketLocals(c *fiber.Ctx) error {
	for _, key := range common.ConnLocalKeys {
		if value := c.Locals(key); value != nil {
			c.Locals(string(key), value)
		}
	}
	return c.Next()
}
