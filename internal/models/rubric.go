package models

import (
	"time"

	"github.com/google/uuid"
)

// Dimension is a named evaluation axis scored 1-4. Reference data, never
// written by the engine.
type Dimension struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug        string    `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsUniversal bool      `gorm:"not null;default:false" json:"is_universal"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Dimension) TableName() string {
	return "dimensions"
}

// RoleFamilyDimension is the ordered join between a role family and its
// dimensions.
type RoleFamilyDimension struct {
	RoleFamilyID uuid.UUID `gorm:"type:uuid;primary_key" json:"role_family_id"`
	DimensionID  uuid.UUID `gorm:"type:uuid;primary_key" json:"dimension_id"`
	SortOrder    int       `gorm:"not null;default:0" json:"sort_order"`

	Dimension Dimension `gorm:"foreignKey:DimensionID" json:"-"`
}

func (RoleFamilyDimension) TableName() string {
	return "role_family_dimensions"
}

// RubricLevel describes candidate behavior at one score level (1-4) of one
// dimension. A nil RoleFamilyID marks the global default; a non-nil one
// marks a role-family override that wins over the default at resolution.
type RubricLevel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DimensionID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"dimension_id"`
	RoleFamilyID *uuid.UUID `gorm:"type:uuid;index" json:"role_family_id,omitempty"`
	Level        int        `gorm:"not null" json:"level"`
	Label        string     `gorm:"type:text;not null" json:"label"`
	Description  string     `gorm:"type:text" json:"description"`
	Examples     []string   `gorm:"serializer:json;type:text" json:"examples"`
	CreatedAt    time.Time  `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (RubricLevel) TableName() string {
	return "rubric_levels"
}

// RoleFamily groups dimensions and red flags for a broad job category and
// owns its archetypes.
type RoleFamily struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug      string    `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	DimensionLinks []RoleFamilyDimension `gorm:"foreignKey:RoleFamilyID" json:"-"`
	RedFlags       []RedFlag             `gorm:"foreignKey:RoleFamilyID" json:"-"`
	Archetypes     []Archetype           `gorm:"foreignKey:RoleFamilyID" json:"-"`
}

func (RoleFamily) TableName() string {
	return "role_families"
}

// RedFlag is a disqualifying behavioral pattern scoped to a role family.
// Carried through rubric responses, never computed here.
type RedFlag struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RoleFamilyID uuid.UUID `gorm:"type:uuid;not null;index" json:"role_family_id"`
	Slug         string    `gorm:"type:text;not null" json:"slug"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (RedFlag) TableName() string {
	return "red_flags"
}
