package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"sdgportal/internal/kv"
	"sdgportal/internal/repository"
)

// HealthCheck reports readiness by probing the backing key-value store.
// An absent collection key is still healthy; only a store error is not.
func HealthCheck(store kv.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if _, _, err := store.Get(ctx, repository.PrimaryKey); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "store unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a plain 200 liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
