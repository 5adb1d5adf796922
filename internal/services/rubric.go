package services

import (
	"fmt"

	"github.com/google/uuid"

	"hirelens/assessment-engine/internal/models"
	"hirelens/assessment-engine/internal/repositories"
)

const (
	levelSourceDefault  = "default"
	levelSourceOverride = "override"

	rubricLevelCount = 4
)

type RubricService interface {
	LoadRubricForRoleFamily(roleFamilySlug string) (*RoleFamilyRubric, error)
	LoadArchetype(slug string) (*models.Archetype, error)
	LoadArchetypesForRoleFamily(roleFamilySlug string) ([]models.Archetype, error)
}

// ResolvedRubricLevel is one of the four behavioral levels of a dimension
// after default/override resolution.
type ResolvedRubricLevel struct {
	Level       int      `json:"level"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Source      string   `json:"source"`
}

type ResolvedDimension struct {
	Slug        string                `json:"slug"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	IsUniversal bool                  `json:"is_universal"`
	SortOrder   int                   `json:"sort_order"`
	Levels      []ResolvedRubricLevel `json:"levels"`
}

type RoleFamilyRubric struct {
	RoleFamilyName string              `json:"role_family_name"`
	RoleFamilySlug string              `json:"role_family_slug"`
	Dimensions     []ResolvedDimension `json:"dimensions"`
	RedFlags       []models.RedFlag    `json:"red_flags"`
}

type rubricService struct {
	rubricRepo repositories.RubricRepository
}

func NewRubricService(rubricRepo repositories.RubricRepository) RubricService {
	return &rubricService{rubricRepo: rubricRepo}
}

// LoadRubricForRoleFamily implements RubricService. Each dimension comes
// back with exactly four resolved levels; a gap is a *ConfigError, not an
// empty slot.
func (s *rubricService) LoadRubricForRoleFamily(roleFamilySlug string) (*RoleFamilyRubric, error) {
	family, err := s.rubricRepo.FindRoleFamilyBySlug(roleFamilySlug)
	if err != nil {
		return nil, err
	}

	links, err := s.rubricRepo.FindDimensionsForRoleFamily(family.ID)
	if err != nil {
		return nil, err
	}

	dimensionIDs := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		dimensionIDs = append(dimensionIDs, link.DimensionID)
	}

	var levels []models.RubricLevel
	if len(dimensionIDs) > 0 {
		levels, err = s.rubricRepo.FindRubricLevels(dimensionIDs, family.ID)
		if err != nil {
			return nil, err
		}
	}

	levelsByDimension := make(map[uuid.UUID][]models.RubricLevel)
	for _, level := range levels {
		levelsByDimension[level.DimensionID] = append(levelsByDimension[level.DimensionID], level)
	}

	dimensions := make([]ResolvedDimension, 0, len(links))
	for _, link := range links {
		dim := link.Dimension

		resolved, err := ResolveRubricLevels(dim.Slug, family.Slug, family.ID, levelsByDimension[dim.ID])
		if err != nil {
			return nil, err
		}

		dimensions = append(dimensions, ResolvedDimension{
			Slug:        dim.Slug,
			Name:        dim.Name,
			Description: dim.Description,
			IsUniversal: dim.IsUniversal,
			SortOrder:   link.SortOrder,
			Levels:      resolved,
		})
	}

	redFlags, err := s.rubricRepo.FindRedFlags(family.ID)
	if err != nil {
		return nil, err
	}

	return &RoleFamilyRubric{
		RoleFamilyName: family.Name,
		RoleFamilySlug: family.Slug,
		Dimensions:     dimensions,
		RedFlags:       redFlags,
	}, nil
}

// LoadArchetype implements RubricService. Thin read-through; weights and
// gates arrive eagerly loaded.
func (s *rubricService) LoadArchetype(slug string) (*models.Archetype, error) {
	return s.rubricRepo.FindArchetypeBySlug(slug)
}

// LoadArchetypesForRoleFamily implements RubricService.
func (s *rubricService) LoadArchetypesForRoleFamily(roleFamilySlug string) ([]models.Archetype, error) {
	family, err := s.rubricRepo.FindRoleFamilyBySlug(roleFamilySlug)
	if err != nil {
		return nil, err
	}

	return s.rubricRepo.FindArchetypesForRoleFamily(family.ID)
}

// ResolveRubricLevels picks, for each level 1-4 of a dimension, the
// role-family override if one exists and the global default otherwise. A
// level with neither is a fatal *ConfigError naming the dimension and role
// family so operators can fix the data.
func ResolveRubricLevels(dimensionSlug, roleFamilySlug string, roleFamilyID uuid.UUID, levels []models.RubricLevel) ([]ResolvedRubricLevel, error) {
	overrides := make(map[int]models.RubricLevel)
	defaults := make(map[int]models.RubricLevel)

	for _, level := range levels {
		switch {
		case level.RoleFamilyID == nil:
			defaults[level.Level] = level
		case *level.RoleFamilyID == roleFamilyID:
			overrides[level.Level] = level
		}
	}

	resolved := make([]ResolvedRubricLevel, 0, rubricLevelCount)
	for n := 1; n <= rubricLevelCount; n++ {
		source := levelSourceOverride
		level, ok := overrides[n]
		if !ok {
			source = levelSourceDefault
			level, ok = defaults[n]
		}
		if !ok {
			return nil, &ConfigError{
				Entity: "rubric level",
				Slug:   dimensionSlug,
				Detail: fmt.Sprintf("level %d has neither an override for role family %q nor a default", n, roleFamilySlug),
			}
		}

		resolved = append(resolved, ResolvedRubricLevel{
			Level:       n,
			Label:       level.Label,
			Description: level.Description,
			Examples:    level.Examples,
			Source:      source,
		})
	}

	return resolved, nil
}
