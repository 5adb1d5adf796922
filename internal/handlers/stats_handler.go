package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hirelens/assessment-engine/internal/models"
	"hirelens/assessment-engine/internal/repositories"
)

type StatsHandler struct {
	assessRepo repositories.AssessmentRepository
}

func NewStatsHandler(assessRepo repositories.AssessmentRepository) *StatsHandler {
	return &StatsHandler{
		assessRepo: assessRepo,
	}
}

// HandleEmbeddingStats handles GET /stats/embeddings
func (h *StatsHandler) HandleEmbeddingStats(c *fiber.Ctx) error {
	stats, err := h.assessRepo.GetEmbeddingStats()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(stats)
}

// HandleCandidatesWithEmbeddings handles GET /candidates/embeddings?status=
func (h *StatsHandler) HandleCandidatesWithEmbeddings(c *fiber.Ctx) error {
	status := c.Query("status")

	if status != "" {
		switch models.AssessmentStatus(status) {
		case models.StatusPending, models.StatusProcessing, models.StatusCompleted, models.StatusFailed:
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid status filter",
			})
		}
	}

	rows, err := h.assessRepo.FindCandidatesWithEmbeddings(status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"candidates": rows,
		"count":      len(rows),
	})
}
