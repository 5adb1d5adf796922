package models

import (
	"time"

	"github.com/google/uuid"
)

type SeniorityLevel string

const (
	SeniorityJunior SeniorityLevel = "JUNIOR"
	SeniorityMid    SeniorityLevel = "MID"
	SenioritySenior SeniorityLevel = "SENIOR"
)

// SeniorityLevels is the fixed gate evaluation order. The reported match is
// the last level in this order whose gates all pass.
var SeniorityLevels = []SeniorityLevel{SeniorityJunior, SeniorityMid, SenioritySenior}

// SeniorityRank orders levels for floor comparisons in search.
var SeniorityRank = map[SeniorityLevel]int{
	SeniorityJunior: 1,
	SeniorityMid:    2,
	SenioritySenior: 3,
}

// Archetype is a role specialization within a role family (e.g.
// "frontend_engineer"), carrying dimension weights and seniority gates.
type Archetype struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RoleFamilyID uuid.UUID `gorm:"type:uuid;not null;index" json:"role_family_id"`
	Slug         string    `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	Weights []ArchetypeWeight `gorm:"foreignKey:ArchetypeID" json:"weights"`
	Gates   []SeniorityGate   `gorm:"foreignKey:ArchetypeID" json:"gates"`
}

func (Archetype) TableName() string {
	return "archetypes"
}

// ArchetypeWeight assigns a positive weight to one dimension of an
// archetype's fit computation.
type ArchetypeWeight struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ArchetypeID uuid.UUID `gorm:"type:uuid;not null;index" json:"archetype_id"`
	DimensionID uuid.UUID `gorm:"type:uuid;not null" json:"dimension_id"`
	Weight      float64   `gorm:"not null" json:"weight"`

	Dimension Dimension `gorm:"foreignKey:DimensionID" json:"dimension"`
}

func (ArchetypeWeight) TableName() string {
	return "archetype_weights"
}

// SeniorityGate is the minimum score required on one dimension to be
// classified at a given seniority level for an archetype.
type SeniorityGate struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ArchetypeID uuid.UUID      `gorm:"type:uuid;not null;index" json:"archetype_id"`
	DimensionID uuid.UUID      `gorm:"type:uuid;not null" json:"dimension_id"`
	Level       SeniorityLevel `gorm:"type:text;not null" json:"level"`
	MinScore    int            `gorm:"not null" json:"min_score"`

	Dimension Dimension `gorm:"foreignKey:DimensionID" json:"dimension"`
}

func (SeniorityGate) TableName() string {
	return "seniority_gates"
}
