package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hirelens/assessment-engine/internal/models"
)

func TestBuildProfileText(t *testing.T) {
	assessment := &models.VideoAssessment{
		ID:        uuid.New(),
		Status:    models.StatusCompleted,
		Summary:   "Strong systems thinker with clear communication.",
		Candidate: models.Candidate{Name: "Ada", Headline: "Backend engineer, 8 years"},
		Scores: []models.DimensionScore{
			{Dimension: dimension("technical", "Technical Depth"), Score: intPtr(4)},
			{Dimension: dimension("ownership", "Ownership"), Score: nil},
			{Dimension: dimension("communication", "Communication"), Score: intPtr(3)},
		},
	}

	text := BuildProfileText(assessment)

	assert.Contains(t, text, "Backend engineer, 8 years")
	assert.Contains(t, text, "Strong systems thinker")
	assert.Contains(t, text, "- Technical Depth: 4/4")
	assert.Contains(t, text, "- Communication: 3/4")
	// Unscored dimensions stay out of the profile document.
	assert.NotContains(t, text, "Ownership")
}

func TestBuildProfileText_EmptyAssessment(t *testing.T) {
	assessment := &models.VideoAssessment{ID: uuid.New()}
	assert.Equal(t, "", BuildProfileText(assessment))
}
