package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"hirelens/assessment-engine/internal/models"
	"hirelens/assessment-engine/internal/services"
)

type FitHandler struct {
	rubricService services.RubricService
}

func NewFitHandler(rubricService services.RubricService) *FitHandler {
	return &FitHandler{
		rubricService: rubricService,
	}
}

// HandleCalculateFit handles POST /fit
func (h *FitHandler) HandleCalculateFit(c *fiber.Ctx) error {
	var req models.FitRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ArchetypeSlug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "archetype_slug is required",
		})
	}

	archetype, err := h.rubricService.LoadArchetype(req.ArchetypeSlug)
	if err != nil {
		return respondError(c, err)
	}

	result := services.CalculateArchetypeFit(req.Scores, archetype)

	return c.JSON(result)
}

// HandleCalculateMultiFit handles POST /fit/multi
func (h *FitHandler) HandleCalculateMultiFit(c *fiber.Ctx) error {
	var req models.MultiFitRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.RoleFamilySlug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "role_family_slug is required",
		})
	}

	archetypes, err := h.rubricService.LoadArchetypesForRoleFamily(req.RoleFamilySlug)
	if err != nil {
		return respondError(c, err)
	}

	results := services.CalculateFitForMultipleArchetypes(req.Scores, archetypes)

	return c.JSON(fiber.Map{
		"role_family_slug": req.RoleFamilySlug,
		"results":          results,
	})
}

// HandleLevelFit handles GET /levels/fit?score=&level=
func (h *FitHandler) HandleLevelFit(c *fiber.Ctx) error {
	level := c.Query("level")
	scoreParam := c.Query("score")

	if level == "" || scoreParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "score and level are required",
		})
	}

	score, err := strconv.ParseFloat(scoreParam, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid score format",
		})
	}

	scoreFit, err := services.ScoreFit(score, level)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Same table, so the level key cannot fail here.
	strength, _ := services.RelativeStrength(score, level)

	return c.JSON(fiber.Map{
		"level":             level,
		"score":             score,
		"expected_score":    services.LevelExpectations[level],
		"score_fit":         scoreFit,
		"relative_strength": strength,
	})
}
