package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hirelens/assessment-engine/internal/models"
)

type AssessmentRepository interface {
	FindByID(id uuid.UUID) (*models.VideoAssessment, error)
	FindCompletedByIDs(ids []uuid.UUID) ([]models.VideoAssessment, error)
	FindCompletedWithoutEmbedding(limit int) ([]models.VideoAssessment, error)
	HasEmbedding(assessmentID uuid.UUID) (bool, error)
	CreateEmbeddingRecord(record *models.CandidateEmbedding) error
	FindCandidatesWithEmbeddings(status string) ([]models.CandidateWithEmbedding, error)
	GetEmbeddingStats() (*models.EmbeddingStats, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

// FindByID implements AssessmentRepository.
func (r *assessmentRepository) FindByID(id uuid.UUID) (*models.VideoAssessment, error) {
	var assessment models.VideoAssessment
	err := r.db.
		Preload("Candidate").
		Preload("Scores.Dimension").
		Where("id = ?", id).
		First(&assessment).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("assessment %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find assessment: %w", err)
	}

	return &assessment, nil
}

// FindCompletedByIDs implements AssessmentRepository. The bulk fetch behind
// search: only the matched assessment IDs are loaded, never the whole
// population, and only completed assessments come back.
func (r *assessmentRepository) FindCompletedByIDs(ids []uuid.UUID) ([]models.VideoAssessment, error) {
	var assessments []models.VideoAssessment
	err := r.db.
		Preload("Candidate").
		Preload("Scores.Dimension").
		Where("id IN ?", ids).
		Where("status = ?", models.StatusCompleted).
		Find(&assessments).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find assessments: %w", err)
	}

	return assessments, nil
}

// FindCompletedWithoutEmbedding implements AssessmentRepository. Feeds the
// indexer poller.
func (r *assessmentRepository) FindCompletedWithoutEmbedding(limit int) ([]models.VideoAssessment, error) {
	embedded := r.db.Model(&models.CandidateEmbedding{}).Select("video_assessment_id")

	var assessments []models.VideoAssessment
	err := r.db.
		Where("status = ?", models.StatusCompleted).
		Where("id NOT IN (?)", embedded).
		Order("created_at ASC").
		Limit(limit).
		Find(&assessments).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find unindexed assessments: %w", err)
	}

	return assessments, nil
}

// HasEmbedding implements AssessmentRepository.
func (r *assessmentRepository) HasEmbedding(assessmentID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.CandidateEmbedding{}).
		Where("video_assessment_id = ?", assessmentID).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check embedding: %w", err)
	}

	return count > 0, nil
}

// CreateEmbeddingRecord implements AssessmentRepository.
func (r *assessmentRepository) CreateEmbeddingRecord(record *models.CandidateEmbedding) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create embedding record: %w", err)
	}

	return nil
}

// FindCandidatesWithEmbeddings implements AssessmentRepository. Status is
// optional; empty means all statuses.
func (r *assessmentRepository) FindCandidatesWithEmbeddings(status string) ([]models.CandidateWithEmbedding, error) {
	query := r.db.
		Table("candidate_embeddings ce").
		Select("c.id AS candidate_id, c.name AS candidate_name, va.id AS video_assessment_id, va.status AS status, ce.model AS embedding_model, ce.created_at AS embedded_at").
		Joins("JOIN video_assessments va ON va.id = ce.video_assessment_id").
		Joins("JOIN candidates c ON c.id = va.candidate_id").
		Order("ce.created_at DESC")

	if status != "" {
		query = query.Where("va.status = ?", status)
	}

	var rows []models.CandidateWithEmbedding
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates with embeddings: %w", err)
	}

	return rows, nil
}

// GetEmbeddingStats implements AssessmentRepository.
func (r *assessmentRepository) GetEmbeddingStats() (*models.EmbeddingStats, error) {
	var stats models.EmbeddingStats

	if err := r.db.Model(&models.CandidateEmbedding{}).Count(&stats.TotalEmbeddings).Error; err != nil {
		return nil, fmt.Errorf("failed to count embeddings: %w", err)
	}

	err := r.db.Model(&models.VideoAssessment{}).
		Where("status = ?", models.StatusCompleted).
		Count(&stats.CompletedAssessments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count completed assessments: %w", err)
	}

	stats.PendingEmbeddings = stats.CompletedAssessments - stats.TotalEmbeddings
	if stats.PendingEmbeddings < 0 {
		stats.PendingEmbeddings = 0
	}

	return &stats, nil
}
