package middleware

import (
	"github.com/gofiber/fiber/v2"

	"vidtube/internal/ratelimit"
)

// RateLimit answers 429 once the client IP exhausts its token bucket.
func RateLimit(l *ratelimit.KeyedRateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.Allow(c.IP()) {
			c.Set(fiber.HeaderRetryAfter, "1")
			return fiber.ErrTooManyRequests
		}
		return c.Next()
	}
}
