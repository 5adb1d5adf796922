package services

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirelens/assessment-engine/internal/models"
)

func intPtr(v int) *int {
	return &v
}

func dimension(slug, name string) models.Dimension {
	return models.Dimension{ID: uuid.New(), Slug: slug, Name: name}
}

func archetypeWith(weights map[string]float64) *models.Archetype {
	archetype := &models.Archetype{
		ID:   uuid.New(),
		Slug: "backend_engineer",
		Name: "Backend Engineer",
	}
	for slug, weight := range weights {
		archetype.Weights = append(archetype.Weights, models.ArchetypeWeight{
			ID:          uuid.New(),
			ArchetypeID: archetype.ID,
			Weight:      weight,
			Dimension:   dimension(slug, slug),
		})
	}
	return archetype
}

func TestCalculateArchetypeFit_WeightedAverage(t *testing.T) {
	archetype := archetypeWith(map[string]float64{
		"technical":     0.5,
		"communication": 0.5,
	})

	scores := []models.DimensionScoreInput{
		{DimensionSlug: "technical", Score: intPtr(4)},
		{DimensionSlug: "communication", Score: intPtr(2)},
	}

	result := CalculateArchetypeFit(scores, archetype)

	// weightedSum = 4*0.5 + 2*0.5 = 3, maxPossible = 4*0.5 + 4*0.5 = 4
	assert.Equal(t, 75.0, result.FitScore)
	assert.Len(t, result.WeightBreakdown, 2)
}

func TestCalculateArchetypeFit_PerfectScoreIsHundred(t *testing.T) {
	archetype := archetypeWith(map[string]float64{
		"technical": 0.4,
		"ownership": 0.6,
	})

	scores := []models.DimensionScoreInput{
		{DimensionSlug: "technical", Score: intPtr(4)},
		{DimensionSlug: "ownership", Score: intPtr(4)},
	}

	result := CalculateArchetypeFit(scores, archetype)
	assert.Equal(t, 100.0, result.FitScore)

	// Any scored dimension below 4 must pull the score under 100.
	scores[1].Score = intPtr(3)
	result = CalculateArchetypeFit(scores, archetype)
	assert.Less(t, result.FitScore, 100.0)
	assert.GreaterOrEqual(t, result.FitScore, 0.0)
}

func TestCalculateArchetypeFit_OrderInvariant(t *testing.T) {
	archetype := archetypeWith(map[string]float64{
		"technical":     0.4,
		"communication": 0.3,
		"ownership":     0.2,
		"curiosity":     0.1,
	})

	scores := []models.DimensionScoreInput{
		{DimensionSlug: "technical", Score: intPtr(3)},
		{DimensionSlug: "communication", Score: intPtr(2)},
		{DimensionSlug: "ownership", Score: nil},
		{DimensionSlug: "curiosity", Score: intPtr(4)},
	}

	expected := CalculateArchetypeFit(scores, archetype)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.DimensionScoreInput, len(scores))
		copy(shuffled, scores)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, expected, CalculateArchetypeFit(shuffled, archetype))
	}
}

func TestCalculateArchetypeFit_NullScorePenalizesDenominator(t *testing.T) {
	archetype := archetypeWith(map[string]float64{
		"technical":     0.5,
		"communication": 0.5,
	})

	withNull := CalculateArchetypeFit([]models.DimensionScoreInput{
		{DimensionSlug: "technical", Score: intPtr(4)},
		{DimensionSlug: "communication", Score: nil},
	}, archetype)

	withLowest := CalculateArchetypeFit([]models.DimensionScoreInput{
		{DimensionSlug: "technical", Score: intPtr(4)},
		{DimensionSlug: "communication", Score: intPtr(1)},
	}, archetype)

	// Even a score of 1 beats an unscored dimension: the weight stays in
	// the denominator either way, only the numerator differs.
	assert.Less(t, withNull.FitScore, withLowest.FitScore)
	assert.Equal(t, 50.0, withNull.FitScore)

	// The unscored dimension stays visible in the breakdown with zeros.
	var unscored *WeightContribution
	for i := range withNull.WeightBreakdown {
		if withNull.WeightBreakdown[i].DimensionSlug == "communication" {
			unscored = &withNull.WeightBreakdown[i]
		}
	}
	require.NotNil(t, unscored)
	assert.False(t, unscored.Scored)
	assert.Equal(t, 0, unscored.RawScore)
	assert.Equal(t, 0.0, unscored.WeightedScore)
	assert.Equal(t, 0.5, unscored.Weight)
}

func TestCalculateArchetypeFit_NoWeights(t *testing.T) {
	archetype := &models.Archetype{ID: uuid.New(), Slug: "empty", Name: "Empty"}

	result := CalculateArchetypeFit([]models.DimensionScoreInput{
		{DimensionSlug: "technical", Score: intPtr(4)},
	}, archetype)

	assert.Equal(t, 0.0, result.FitScore)
	assert.Empty(t, result.WeightBreakdown)
}

func TestCheckSeniorityGates_HighestPassingLevelWins(t *testing.T) {
	technical := dimension("technical", "Technical Depth")
	communication := dimension("communication", "Communication")

	archetype := archetypeWith(map[string]float64{"technical": 1.0})
	archetype.Gates = []models.SeniorityGate{
		{Level: models.SeniorityJunior, MinScore: 1, Dimension: technical},
		// Non-monotonic on purpose: MID demands more of communication
		// than SENIOR does.
		{Level: models.SeniorityMid, MinScore: 4, Dimension: communication},
		{Level: models.SenioritySenior, MinScore: 3, Dimension: technical},
		{Level: models.SenioritySenior, MinScore: 2, Dimension: communication},
	}

	result := CalculateArchetypeFit([]models.DimensionScoreInput{
		{DimensionSlug: "technical", Score: intPtr(4)},
		{DimensionSlug: "communication", Score: intPtr(2)},
	}, archetype)

	// MID fails but SENIOR passes; the non-monotonic configuration is
	// preserved, not corrected.
	require.NotNil(t, result.SeniorityMatch)
	assert.Equal(t, models.SenioritySenior, *result.SeniorityMatch)

	require.Len(t, result.GateBreakdown, 3)
	assert.True(t, result.GateBreakdown[0].Passed)
	assert.False(t, result.GateBreakdown[1].Passed)
	assert.Equal(t, []string{"Communication"}, result.GateBreakdown[1].FailingDimensions)
	assert.True(t, result.GateBreakdown[2].Passed)
}

func TestCheckSeniorityGates_MissingScoreFailsGate(t *testing.T) {
	technical := dimension("technical", "Technical Depth")

	archetype := archetypeWith(map[string]float64{"technical": 1.0})
	archetype.Gates = []models.SeniorityGate{
		{Level: models.SeniorityJunior, MinScore: 1, Dimension: technical},
	}

	result := CalculateArchetypeFit([]models.DimensionScoreInput{
		{DimensionSlug: "technical", Score: nil},
	}, archetype)

	assert.False(t, result.GateBreakdown[0].Passed)
	assert.Equal(t, []string{"Technical Depth"}, result.GateBreakdown[0].FailingDimensions)

	// MID and SENIOR carry no gates here, so they still pass vacuously.
	require.NotNil(t, result.SeniorityMatch)
	assert.Equal(t, models.SenioritySenior, *result.SeniorityMatch)
}

func TestCheckSeniorityGates_UngatedLevelsPassVacuously(t *testing.T) {
	archetype := archetypeWith(map[string]float64{"technical": 1.0})

	result := CalculateArchetypeFit([]models.DimensionScoreInput{
		{DimensionSlug: "technical", Score: intPtr(1)},
	}, archetype)

	// No gates configured at all: every level passes and the highest one
	// is reported.
	require.NotNil(t, result.SeniorityMatch)
	assert.Equal(t, models.SenioritySenior, *result.SeniorityMatch)

	require.Len(t, result.GateBreakdown, 3)
	for _, level := range result.GateBreakdown {
		assert.True(t, level.Passed)
		assert.Empty(t, level.FailingDimensions)
	}
}

func TestCalculateArchetypeFit_StrengthsAndGaps(t *testing.T) {
	archetype := archetypeWith(map[string]float64{
		"technical":     0.4,
		"communication": 0.3,
		"ownership":     0.2,
		"curiosity":     0.1,
	})

	result := CalculateArchetypeFit([]models.DimensionScoreInput{
		{DimensionSlug: "technical", Score: intPtr(4)},     // weighted 1.6
		{DimensionSlug: "communication", Score: intPtr(2)}, // weighted 0.6
		{DimensionSlug: "ownership", Score: intPtr(1)},     // weighted 0.2
		{DimensionSlug: "curiosity", Score: nil},
	}, archetype)

	assert.Equal(t, []string{"technical", "communication", "ownership"}, result.RoleRelevantStrengths)
	// Gaps: scored rows at or below 2, lowest raw score first; the
	// unscored dimension never appears.
	assert.Equal(t, []string{"ownership", "communication"}, result.RoleRelevantGaps)
}

func TestCalculateFitForMultipleArchetypes_SortedByFit(t *testing.T) {
	strong := archetypeWith(map[string]float64{"technical": 1.0})
	strong.Slug = "strong_fit"
	weak := archetypeWith(map[string]float64{"communication": 1.0})
	weak.Slug = "weak_fit"

	results := CalculateFitForMultipleArchetypes(
		[]models.DimensionScoreInput{
			{DimensionSlug: "technical", Score: intPtr(4)},
			{DimensionSlug: "communication", Score: intPtr(1)},
		},
		[]models.Archetype{*weak, *strong},
	)

	require.Len(t, results, 2)
	assert.Equal(t, "strong_fit", results[0].ArchetypeSlug)
	assert.Equal(t, 100.0, results[0].FitScore)
	assert.Equal(t, "weak_fit", results[1].ArchetypeSlug)
	assert.Equal(t, 25.0, results[1].FitScore)
}
