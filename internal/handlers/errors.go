package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hirelens/assessment-engine/internal/repositories"
	"hirelens/assessment-engine/internal/services"
)

// respondError maps domain failures onto HTTP statuses: missing role
// families or archetypes are 404s, broken rubric configuration is a 500
// (never defaulted away), everything else is a plain 500.
func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var configErr *services.ConfigError
	if errors.As(err, &configErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": configErr.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
