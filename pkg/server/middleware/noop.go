package middleware

import "github.com/gofiber/fiber/v2"

type noopMiddleware struct{}

// NewNoopMiddleware stands in for a middleware disabled by configuration.
func NewNoopMiddleware() Middleware {
	return &noopMiddleware{}
}

func (m *noopMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
