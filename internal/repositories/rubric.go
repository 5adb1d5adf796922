package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hirelens/assessment-engine/internal/models"
)

// ErrNotFound marks lookups for role families or archetypes that do not
// exist. Callers translate it to a 404; anything else is a real failure.
var ErrNotFound = errors.New("record not found")

type RubricRepository interface {
	FindRoleFamilyBySlug(slug string) (*models.RoleFamily, error)
	FindDimensionsForRoleFamily(roleFamilyID uuid.UUID) ([]models.RoleFamilyDimension, error)
	FindRubricLevels(dimensionIDs []uuid.UUID, roleFamilyID uuid.UUID) ([]models.RubricLevel, error)
	FindRedFlags(roleFamilyID uuid.UUID) ([]models.RedFlag, error)
	FindArchetypeBySlug(slug string) (*models.Archetype, error)
	FindArchetypesForRoleFamily(roleFamilyID uuid.UUID) ([]models.Archetype, error)
}

type rubricRepository struct {
	db *gorm.DB
}

func NewRubricRepository(db *gorm.DB) RubricRepository {
	return &rubricRepository{db: db}
}

// FindRoleFamilyBySlug implements RubricRepository.
func (r *rubricRepository) FindRoleFamilyBySlug(slug string) (*models.RoleFamily, error) {
	var family models.RoleFamily
	if err := r.db.Where("slug = ?", slug).First(&family).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("role family %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find role family: %w", err)
	}

	return &family, nil
}

// FindDimensionsForRoleFamily implements RubricRepository. Links come back
// in sort_order so rubric responses keep the configured dimension order.
func (r *rubricRepository) FindDimensionsForRoleFamily(roleFamilyID uuid.UUID) ([]models.RoleFamilyDimension, error) {
	var links []models.RoleFamilyDimension
	err := r.db.
		Preload("Dimension").
		Where("role_family_id = ?", roleFamilyID).
		Order("sort_order ASC").
		Find(&links).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find dimensions for role family: %w", err)
	}

	return links, nil
}

// FindRubricLevels implements RubricRepository. Returns both defaults
// (role_family_id IS NULL) and overrides for the given family; resolution
// order is the caller's concern.
func (r *rubricRepository) FindRubricLevels(dimensionIDs []uuid.UUID, roleFamilyID uuid.UUID) ([]models.RubricLevel, error) {
	var levels []models.RubricLevel
	err := r.db.
		Where("dimension_id IN ?", dimensionIDs).
		Where("role_family_id IS NULL OR role_family_id = ?", roleFamilyID).
		Order("level ASC").
		Find(&levels).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find rubric levels: %w", err)
	}

	return levels, nil
}

// FindRedFlags implements RubricRepository.
func (r *rubricRepository) FindRedFlags(roleFamilyID uuid.UUID) ([]models.RedFlag, error) {
	var flags []models.RedFlag
	if err := r.db.Where("role_family_id = ?", roleFamilyID).Find(&flags).Error; err != nil {
		return nil, fmt.Errorf("failed to find red flags: %w", err)
	}

	return flags, nil
}

// FindArchetypeBySlug implements RubricRepository. Weights and gates are
// eagerly loaded together with their dimensions.
func (r *rubricRepository) FindArchetypeBySlug(slug string) (*models.Archetype, error) {
	var archetype models.Archetype
	err := r.db.
		Preload("Weights.Dimension").
		Preload("Gates.Dimension").
		Where("slug = ?", slug).
		First(&archetype).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("archetype %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find archetype: %w", err)
	}

	return &archetype, nil
}

// FindArchetypesForRoleFamily implements RubricRepository.
func (r *rubricRepository) FindArchetypesForRoleFamily(roleFamilyID uuid.UUID) ([]models.Archetype, error) {
	var archetypes []models.Archetype
	err := r.db.
		Preload("Weights.Dimension").
		Preload("Gates.Dimension").
		Where("role_family_id = ?", roleFamilyID).
		Order("slug ASC").
		Find(&archetypes).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find archetypes: %w", err)
	}

	return archetypes, nil
}
