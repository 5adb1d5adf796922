package models

import (
	"time"

	"github.com/google/uuid"
)

type AssessmentStatus string

const (
	StatusPending    AssessmentStatus = "pending"
	StatusProcessing AssessmentStatus = "processing"
	StatusCompleted  AssessmentStatus = "completed"
	StatusFailed     AssessmentStatus = "failed"
)

type Candidate struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text" json:"email"`
	Headline  string    `gorm:"type:text" json:"headline"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// VideoAssessment is one completed (or in-flight) behavioral assessment of
// a candidate. Scores, summary and percentile are written by the upstream
// AI evaluation; this engine only reads them.
type VideoAssessment struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"candidate_id"`
	Status       AssessmentStatus `gorm:"not null;default:'pending'" json:"status"`
	OverallScore *float64         `gorm:"type:decimal(3,2)" json:"overall_score,omitempty"`
	Summary      string           `gorm:"type:text" json:"summary"`
	Percentile   *float64         `gorm:"type:decimal(5,2)" json:"percentile,omitempty"`
	CreatedAt    time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Candidate Candidate        `gorm:"foreignKey:CandidateID" json:"-"`
	Scores    []DimensionScore `gorm:"foreignKey:VideoAssessmentID" json:"-"`
}

func (VideoAssessment) TableName() string {
	return "video_assessments"
}

// DimensionScore is a candidate's score (1-4) on one dimension. A nil
// Score means the dimension was not evaluated, which is distinct from a
// score of zero everywhere in the fit computation.
type DimensionScore struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	VideoAssessmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"video_assessment_id"`
	DimensionID       uuid.UUID `gorm:"type:uuid;not null" json:"dimension_id"`
	Score             *int      `json:"score,omitempty"`
	CreatedAt         time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`

	Dimension Dimension `gorm:"foreignKey:DimensionID" json:"-"`
}

func (DimensionScore) TableName() string {
	return "dimension_scores"
}

// CandidateEmbedding records that a 768-d profile vector for one assessment
// has been written to the vector store. The vector itself lives in Qdrant
// keyed by the assessment ID; this row exists so coverage stats are plain
// relational counts.
type CandidateEmbedding struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	VideoAssessmentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"video_assessment_id"`
	Model             string    `gorm:"type:text;not null" json:"model"`
	Dims              int       `gorm:"not null" json:"dims"`
	CreatedAt         time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (CandidateEmbedding) TableName() string {
	return "candidate_embeddings"
}
