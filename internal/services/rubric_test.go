package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirelens/assessment-engine/internal/models"
	"hirelens/assessment-engine/internal/repositories"
)

func defaultLevel(dimensionID uuid.UUID, level int, label string) models.RubricLevel {
	return models.RubricLevel{
		ID:          uuid.New(),
		DimensionID: dimensionID,
		Level:       level,
		Label:       label,
	}
}

func overrideLevel(dimensionID, roleFamilyID uuid.UUID, level int, label string) models.RubricLevel {
	return models.RubricLevel{
		ID:           uuid.New(),
		DimensionID:  dimensionID,
		RoleFamilyID: &roleFamilyID,
		Level:        level,
		Label:        label,
	}
}

func TestResolveRubricLevels_DefaultsOnly(t *testing.T) {
	dimID := uuid.New()
	familyID := uuid.New()

	levels := []models.RubricLevel{
		defaultLevel(dimID, 1, "novice"),
		defaultLevel(dimID, 2, "developing"),
		defaultLevel(dimID, 3, "proficient"),
		defaultLevel(dimID, 4, "expert"),
	}

	resolved, err := ResolveRubricLevels("technical", "engineering", familyID, levels)
	require.NoError(t, err)
	require.Len(t, resolved, 4)

	for i, level := range resolved {
		assert.Equal(t, i+1, level.Level)
		assert.Equal(t, "default", level.Source)
	}
	assert.Equal(t, "novice", resolved[0].Label)
	assert.Equal(t, "expert", resolved[3].Label)
}

func TestResolveRubricLevels_SingleOverrideWins(t *testing.T) {
	dimID := uuid.New()
	familyID := uuid.New()

	levels := []models.RubricLevel{
		defaultLevel(dimID, 1, "novice"),
		defaultLevel(dimID, 2, "developing"),
		defaultLevel(dimID, 3, "proficient"),
		defaultLevel(dimID, 4, "expert"),
		overrideLevel(dimID, familyID, 2, "engineering developing"),
	}

	resolved, err := ResolveRubricLevels("technical", "engineering", familyID, levels)
	require.NoError(t, err)

	assert.Equal(t, "default", resolved[0].Source)
	assert.Equal(t, "override", resolved[1].Source)
	assert.Equal(t, "engineering developing", resolved[1].Label)
	assert.Equal(t, "default", resolved[2].Source)
	assert.Equal(t, "default", resolved[3].Source)
}

func TestResolveRubricLevels_ForeignOverrideIgnored(t *testing.T) {
	dimID := uuid.New()
	familyID := uuid.New()
	otherFamilyID := uuid.New()

	levels := []models.RubricLevel{
		defaultLevel(dimID, 1, "novice"),
		defaultLevel(dimID, 2, "developing"),
		defaultLevel(dimID, 3, "proficient"),
		defaultLevel(dimID, 4, "expert"),
		overrideLevel(dimID, otherFamilyID, 3, "sales proficient"),
	}

	resolved, err := ResolveRubricLevels("technical", "engineering", familyID, levels)
	require.NoError(t, err)
	assert.Equal(t, "proficient", resolved[2].Label)
	assert.Equal(t, "default", resolved[2].Source)
}

func TestResolveRubricLevels_MissingLevelIsConfigError(t *testing.T) {
	dimID := uuid.New()
	familyID := uuid.New()

	levels := []models.RubricLevel{
		defaultLevel(dimID, 1, "novice"),
		defaultLevel(dimID, 2, "developing"),
		// level 3 missing entirely
		defaultLevel(dimID, 4, "expert"),
	}

	_, err := ResolveRubricLevels("technical", "engineering", familyID, levels)
	require.Error(t, err)

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "technical", configErr.Slug)
	assert.Contains(t, configErr.Error(), "level 3")
	assert.Contains(t, configErr.Error(), "engineering")
}

// fakeRubricRepo backs the service tests without a database.
type fakeRubricRepo struct {
	family     *models.RoleFamily
	links      []models.RoleFamilyDimension
	levels     []models.RubricLevel
	redFlags   []models.RedFlag
	archetypes []models.Archetype
}

func (f *fakeRubricRepo) FindRoleFamilyBySlug(slug string) (*models.RoleFamily, error) {
	if f.family == nil || f.family.Slug != slug {
		return nil, fmt.Errorf("role family %q: %w", slug, repositories.ErrNotFound)
	}
	return f.family, nil
}

func (f *fakeRubricRepo) FindDimensionsForRoleFamily(roleFamilyID uuid.UUID) ([]models.RoleFamilyDimension, error) {
	return f.links, nil
}

func (f *fakeRubricRepo) FindRubricLevels(dimensionIDs []uuid.UUID, roleFamilyID uuid.UUID) ([]models.RubricLevel, error) {
	return f.levels, nil
}

func (f *fakeRubricRepo) FindRedFlags(roleFamilyID uuid.UUID) ([]models.RedFlag, error) {
	return f.redFlags, nil
}

func (f *fakeRubricRepo) FindArchetypeBySlug(slug string) (*models.Archetype, error) {
	for i := range f.archetypes {
		if f.archetypes[i].Slug == slug {
			return &f.archetypes[i], nil
		}
	}
	return nil, fmt.Errorf("archetype %q: %w", slug, repositories.ErrNotFound)
}

func (f *fakeRubricRepo) FindArchetypesForRoleFamily(roleFamilyID uuid.UUID) ([]models.Archetype, error) {
	return f.archetypes, nil
}

func TestLoadRubricForRoleFamily(t *testing.T) {
	familyID := uuid.New()
	technical := models.Dimension{ID: uuid.New(), Slug: "technical", Name: "Technical Depth"}
	communication := models.Dimension{ID: uuid.New(), Slug: "communication", Name: "Communication", IsUniversal: true}

	var levels []models.RubricLevel
	for n := 1; n <= 4; n++ {
		levels = append(levels,
			defaultLevel(technical.ID, n, fmt.Sprintf("technical L%d", n)),
			defaultLevel(communication.ID, n, fmt.Sprintf("communication L%d", n)),
		)
	}
	levels = append(levels, overrideLevel(technical.ID, familyID, 4, "systems expert"))

	repo := &fakeRubricRepo{
		family: &models.RoleFamily{ID: familyID, Slug: "engineering", Name: "Engineering"},
		links: []models.RoleFamilyDimension{
			{RoleFamilyID: familyID, DimensionID: communication.ID, SortOrder: 1, Dimension: communication},
			{RoleFamilyID: familyID, DimensionID: technical.ID, SortOrder: 2, Dimension: technical},
		},
		levels:   levels,
		redFlags: []models.RedFlag{{ID: uuid.New(), RoleFamilyID: familyID, Slug: "blames_others", Name: "Blames others"}},
	}

	rubric, err := NewRubricService(repo).LoadRubricForRoleFamily("engineering")
	require.NoError(t, err)

	assert.Equal(t, "Engineering", rubric.RoleFamilyName)
	assert.Equal(t, "engineering", rubric.RoleFamilySlug)
	require.Len(t, rubric.Dimensions, 2)

	// Dimension order follows the configured sort order.
	assert.Equal(t, "communication", rubric.Dimensions[0].Slug)
	assert.Equal(t, "technical", rubric.Dimensions[1].Slug)

	technicalLevels := rubric.Dimensions[1].Levels
	require.Len(t, technicalLevels, 4)
	assert.Equal(t, "override", technicalLevels[3].Source)
	assert.Equal(t, "systems expert", technicalLevels[3].Label)
	assert.Equal(t, "default", technicalLevels[2].Source)

	require.Len(t, rubric.RedFlags, 1)
	assert.Equal(t, "blames_others", rubric.RedFlags[0].Slug)
}

func TestLoadRubricForRoleFamily_IncompleteRubricFails(t *testing.T) {
	familyID := uuid.New()
	technical := models.Dimension{ID: uuid.New(), Slug: "technical", Name: "Technical Depth"}

	repo := &fakeRubricRepo{
		family: &models.RoleFamily{ID: familyID, Slug: "engineering", Name: "Engineering"},
		links: []models.RoleFamilyDimension{
			{RoleFamilyID: familyID, DimensionID: technical.ID, SortOrder: 1, Dimension: technical},
		},
		levels: []models.RubricLevel{
			defaultLevel(technical.ID, 1, "novice"),
		},
	}

	_, err := NewRubricService(repo).LoadRubricForRoleFamily("engineering")

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestLoadRubricForRoleFamily_UnknownFamily(t *testing.T) {
	_, err := NewRubricService(&fakeRubricRepo{}).LoadRubricForRoleFamily("nope")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
