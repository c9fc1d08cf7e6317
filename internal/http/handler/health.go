package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PingFunc checks a dependency, e.g. the MongoDB primary.
type PingFunc func(ctx context.Context) error

// HealthCheck reports 503 when the database does not answer within two seconds.
func HealthCheck(ping PingFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// APIHealthcheck godoc
// @Summary  API health check
// @Tags     healthcheck
// @Produce  json
// @Success  200 {object} envelope
// @Router   /api/v1/healthcheck [get]
func APIHealthcheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return respond(c, fiber.StatusOK, "Health check passed", fiber.Map{"status": "OK"})
	}
}
