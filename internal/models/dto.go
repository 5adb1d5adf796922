package models

import "time"

// DimensionScoreInput is a candidate's raw score on one dimension as fed
// to the fit endpoints. A nil Score means "not evaluated".
type DimensionScoreInput struct {
	DimensionSlug string `json:"dimension_slug" validate:"required"`
	Score         *int   `json:"score"`
}

type FitRequest struct {
	ArchetypeSlug string                `json:"archetype_slug" validate:"required"`
	Scores        []DimensionScoreInput `json:"scores"`
}

type MultiFitRequest struct {
	RoleFamilySlug string                `json:"role_family_slug" validate:"required"`
	Scores         []DimensionScoreInput `json:"scores"`
}

type SearchRequest struct {
	Skills              []string `json:"skills"`
	ExperienceDomains   []string `json:"experience_domains"`
	Context             string   `json:"context"`
	ArchetypeSlug       string   `json:"archetype_slug" validate:"required"`
	SeniorityLevel      string   `json:"seniority_level"`
	Limit               int      `json:"limit"`
	SimilarityThreshold *float64 `json:"similarity_threshold"`
}

// EmbeddingStats summarizes embedding coverage over completed assessments.
type EmbeddingStats struct {
	TotalEmbeddings      int64 `json:"total_embeddings"`
	CompletedAssessments int64 `json:"completed_assessments"`
	PendingEmbeddings    int64 `json:"pending_embeddings"`
}

// CandidateWithEmbedding is one row of the embedding coverage listing.
type CandidateWithEmbedding struct {
	CandidateID       string    `json:"candidate_id"`
	CandidateName     string    `json:"candidate_name"`
	VideoAssessmentID string    `json:"video_assessment_id"`
	Status            string    `json:"status"`
	EmbeddingModel    string    `json:"embedding_model"`
	EmbeddedAt        time.Time `json:"embedded_at"`
}
