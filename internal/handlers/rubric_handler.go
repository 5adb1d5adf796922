package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hirelens/assessment-engine/internal/services"
)

type RubricHandler struct {
	rubricService services.RubricService
}

func NewRubricHandler(rubricService services.RubricService) *RubricHandler {
	return &RubricHandler{
		rubricService: rubricService,
	}
}

// HandleGetRubric handles GET /rubrics/:roleFamilySlug
func (h *RubricHandler) HandleGetRubric(c *fiber.Ctx) error {
	slug := c.Params("roleFamilySlug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "roleFamilySlug is required",
		})
	}

	rubric, err := h.rubricService.LoadRubricForRoleFamily(slug)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(rubric)
}

// HandleGetArchetype handles GET /archetypes/:slug
func (h *RubricHandler) HandleGetArchetype(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "slug is required",
		})
	}

	archetype, err := h.rubricService.LoadArchetype(slug)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(archetype)
}

// HandleListArchetypes handles GET /role-families/:slug/archetypes
func (h *RubricHandler) HandleListArchetypes(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "slug is required",
		})
	}

	archetypes, err := h.rubricService.LoadArchetypesForRoleFamily(slug)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"role_family_slug": slug,
		"archetypes":       archetypes,
	})
}
