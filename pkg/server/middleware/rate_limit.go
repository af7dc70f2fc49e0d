package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/NeuralTrust/InclusionGuard/pkg/common"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	headerLimit     = "X-RateLimit-Limit"
	headerRemaining = "X-RateLimit-Remaining"
	headerReset     = "X-RateLimit-Reset"
)

type rateLimitMiddleware struct {
	logger  *logrus.Logger
	limiter ratelimit.Limiter
	scope   string
	now     func() time.Time
}

// NewRateLimitMiddleware limits requests per team. It must run after the
// auth middleware. Limiter failures let the request through.
func NewRateLimitMiddleware(logger *logrus.Logger, limiter ratelimit.Limiter, scope string) Middleware {
	return &rateLimitMiddleware{
		logger:  logger,
		limiter: limiter,
		scope:   scope,
		now:     time.Now,
	}
}

func (m *rateLimitMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		teamID, _ := c.Locals(common.TeamIdKey).(string)
		if teamID == "" {
			return c.Next()
		}

		decision, err := m.limiter.Allow(c.UserContext(), m.scope, teamID)
		if err != nil {
			m.logger.WithError(err).WithFields(logrus.Fields{
				"team_id": teamID,
				"scope":   m.scope,
			}).Warn("rate limiter unavailable, allowing request")
			return c.Next()
		}

		c.Set(headerLimit, strconv.Itoa(decision.Limit))
		c.Set(headerRemaining, strconv.FormatInt(decision.Remaining, 10))
		c.Set(headerReset, strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.ResetAt.Sub(m.now()).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter,
			})
		}
		return c.Next()
	}
}
