package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hirelens/assessment-engine/internal/models"
	"hirelens/assessment-engine/internal/services"
)

type SearchHandler struct {
	searchService services.SearchService
}

func NewSearchHandler(searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// HandleSearch handles POST /search
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	var req models.SearchRequest

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

	if len(req.Skills) == 0 && len(req.ExperienceDomains) == 0 && strings.TrimSpace(req.Context) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "at least one of skills, experience_domains or context is required",
		})
	}

	if req.SimilarityThreshold != nil && (*req.SimilarityThreshold < 0 || *req.SimilarityThreshold >= 1) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "similarity_threshold must be in [0, 1)",
		})
	}

	if req.SeniorityLevel != "" {
		level := models.SeniorityLevel(strings.ToUpper(req.SeniorityLevel))
		if _, ok := models.SeniorityRank[level]; !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "seniority_level must be one of JUNIOR, MID, SENIOR",
			})
		}
	}

	response, err := h.searchService.SearchCandidates(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(response)
}
