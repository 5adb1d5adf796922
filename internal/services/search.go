package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"hirelens/assessment-engine/internal/models"
	"hirelens/assessment-engine/internal/repositories"
)

// The blend between free-text relevance and structured fit. Fit is weighted
// higher: the rubric-based evaluation is trusted more than semantic
// proximity to the query. Tunable here without touching the ranking logic.
const (
	semanticWeight = 0.4
	fitWeight      = 0.6
)

// Headroom multiplier on the similarity query so seniority filtering can
// drop candidates without starving the final page.
const candidateFetchFactor = 2

type SearchService interface {
	SearchCandidates(ctx context.Context, criteria *models.SearchRequest) (*SearchResponse, error)
}

// RankedCandidate is one search hit annotated with both ranking signals.
type RankedCandidate struct {
	VideoAssessmentID     string                 `json:"video_assessment_id"`
	CandidateID           string                 `json:"candidate_id"`
	CandidateName         string                 `json:"candidate_name"`
	Headline              string                 `json:"headline,omitempty"`
	Summary               string                 `json:"summary,omitempty"`
	OverallScore          *float64               `json:"overall_score,omitempty"`
	Percentile            *float64               `json:"percentile,omitempty"`
	SemanticSimilarity    float64                `json:"semantic_similarity"`
	FitScore              float64                `json:"fit_score"`
	SeniorityMatch        *models.SeniorityLevel `json:"seniority_match"`
	CombinedScore         float64                `json:"combined_score"`
	RoleRelevantStrengths []string               `json:"role_relevant_strengths"`
	RoleRelevantGaps      []string               `json:"role_relevant_gaps"`
}

type SearchResponse struct {
	Candidates   []RankedCandidate     `json:"candidates"`
	TotalMatches int                   `json:"total_matches"`
	Criteria     *models.SearchRequest `json:"criteria"`
	QueryText    string                `json:"query_text"`
}

type searchService struct {
	rubricService RubricService
	assessRepo    repositories.AssessmentRepository
	embedder      EmbeddingService
	vectorStore   VectorStoreService

	defaultLimit     int
	defaultThreshold float64
}

func NewSearchService(
	rubricService RubricService,
	assessRepo repositories.AssessmentRepository,
	embedder EmbeddingService,
	vectorStore VectorStoreService,
	defaultLimit int,
	defaultThreshold float64,
) SearchService {
	return &searchService{
		rubricService:    rubricService,
		assessRepo:       assessRepo,
		embedder:         embedder,
		vectorStore:      vectorStore,
		defaultLimit:     defaultLimit,
		defaultThreshold: defaultThreshold,
	}
}

// SearchCandidates implements SearchService. Pipeline: embed the criteria,
// similarity-search stored profiles, bulk-fetch only the matched
// assessments, gate-filter, then rank by the blended score.
func (s *searchService) SearchCandidates(ctx context.Context, criteria *models.SearchRequest) (*SearchResponse, error) {
	archetype, err := s.rubricService.LoadArchetype(criteria.ArchetypeSlug)
	if err != nil {
		return nil, err
	}

	floor, err := parseSeniorityFloor(criteria.SeniorityLevel)
	if err != nil {
		return nil, err
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}

	threshold := s.defaultThreshold
	if criteria.SimilarityThreshold != nil {
		threshold = *criteria.SimilarityThreshold
	}

	queryText := BuildQueryText(criteria.Skills, criteria.ExperienceDomains, criteria.Context)

	queryEmbedding, err := s.embedder.GenerateEmbedding(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	matches, err := s.vectorStore.SearchAssessments(ctx, queryEmbedding, threshold, candidateFetchFactor*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	// Nothing cleared the threshold: skip the bulk fetch entirely.
	if len(matches) == 0 {
		return &SearchResponse{
			Candidates:   []RankedCandidate{},
			TotalMatches: 0,
			Criteria:     criteria,
			QueryText:    queryText,
		}, nil
	}

	similarityByID := make(map[uuid.UUID]float64, len(matches))
	assessmentIDs := make([]uuid.UUID, 0, len(matches))
	for _, match := range matches {
		similarityByID[match.VideoAssessmentID] = match.Similarity
		assessmentIDs = append(assessmentIDs, match.VideoAssessmentID)
	}

	assessments, err := s.assessRepo.FindCompletedByIDs(assessmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}

	ranked := make([]RankedCandidate, 0, len(assessments))
	for i := range assessments {
		assessment := &assessments[i]
		similarity := similarityByID[assessment.ID]

		fit := CalculateArchetypeFit(scoreInputs(assessment.Scores), archetype)

		// A requested seniority floor is a hard filter, not a penalty.
		if floor != "" && !meetsSeniorityFloor(fit.SeniorityMatch, floor) {
			continue
		}

		ranked = append(ranked, RankedCandidate{
			VideoAssessmentID:     assessment.ID.String(),
			CandidateID:           assessment.CandidateID.String(),
			CandidateName:         assessment.Candidate.Name,
			Headline:              assessment.Candidate.Headline,
			Summary:               assessment.Summary,
			OverallScore:          assessment.OverallScore,
			Percentile:            assessment.Percentile,
			SemanticSimilarity:    similarity,
			FitScore:              fit.FitScore,
			SeniorityMatch:        fit.SeniorityMatch,
			CombinedScore:         CombinedScore(similarity, fit.FitScore),
			RoleRelevantStrengths: fit.RoleRelevantStrengths,
			RoleRelevantGaps:      fit.RoleRelevantGaps,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CombinedScore > ranked[j].CombinedScore
	})

	totalMatches := len(ranked)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return &SearchResponse{
		Candidates:   ranked,
		TotalMatches: totalMatches,
		Criteria:     criteria,
		QueryText:    queryText,
	}, nil
}

// CombinedScore blends cosine similarity (0-1) with a fit score (0-100)
// into one 0-100 ranking score, rounded to one decimal.
func CombinedScore(similarity, fitScore float64) float64 {
	return round1(semanticWeight*(similarity*100) + fitWeight*fitScore)
}

func scoreInputs(scores []models.DimensionScore) []models.DimensionScoreInput {
	inputs := make([]models.DimensionScoreInput, 0, len(scores))
	for _, score := range scores {
		inputs = append(inputs, models.DimensionScoreInput{
			DimensionSlug: score.Dimension.Slug,
			Score:         score.Score,
		})
	}
	return inputs
}

func parseSeniorityFloor(raw string) (models.SeniorityLevel, error) {
	if raw == "" {
		return "", nil
	}

	level := models.SeniorityLevel(strings.ToUpper(raw))
	if _, ok := models.SeniorityRank[level]; !ok {
		return "", fmt.Errorf("unknown seniority level %q", raw)
	}

	return level, nil
}

func meetsSeniorityFloor(match *models.SeniorityLevel, floor models.SeniorityLevel) bool {
	if match == nil {
		return false
	}
	return models.SeniorityRank[*match] >= models.SeniorityRank[floor]
}
