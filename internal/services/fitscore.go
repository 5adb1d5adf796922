package services

import (
	"math"
	"sort"

	"hirelens/assessment-engine/internal/models"
)

const (
	maxDimensionScore = 4

	// A scored dimension at or below this raw score counts as a gap.
	gapScoreCeiling = 2

	// How many dimension names to surface on each side of the breakdown.
	topHighlights = 3
)

// WeightContribution is one row of the per-dimension fit breakdown. An
// unscored weighted dimension stays visible with zeros so callers can see
// what was never evaluated.
type WeightContribution struct {
	DimensionSlug string  `json:"dimension_slug"`
	DimensionName string  `json:"dimension_name"`
	RawScore      int     `json:"raw_score"`
	Weight        float64 `json:"weight"`
	WeightedScore float64 `json:"weighted_score"`
	Scored        bool    `json:"scored"`
}

// GateLevelResult reports one seniority level's gate outcome.
type GateLevelResult struct {
	Level             models.SeniorityLevel `json:"level"`
	Passed            bool                  `json:"passed"`
	FailingDimensions []string              `json:"failing_dimensions"`
}

type ArchetypeFitResult struct {
	ArchetypeSlug         string                 `json:"archetype_slug"`
	ArchetypeName         string                 `json:"archetype_name"`
	FitScore              float64                `json:"fit_score"`
	SeniorityMatch        *models.SeniorityLevel `json:"seniority_match"`
	WeightBreakdown       []WeightContribution   `json:"weight_breakdown"`
	GateBreakdown         []GateLevelResult      `json:"gate_breakdown"`
	RoleRelevantStrengths []string               `json:"role_relevant_strengths"`
	RoleRelevantGaps      []string               `json:"role_relevant_gaps"`
}

// CalculateArchetypeFit scores a candidate against one archetype's weight
// vector and seniority gates.
//
// A nil score is "not yet evaluated": it contributes nothing to the
// numerator but the dimension's full weight stays in the denominator, so
// missing evaluations drag the fit down rather than vanishing.
func CalculateArchetypeFit(scores []models.DimensionScoreInput, archetype *models.Archetype) ArchetypeFitResult {
	scoreBySlug := make(map[string]int, len(scores))
	for _, input := range scores {
		if input.Score == nil {
			continue
		}
		scoreBySlug[input.DimensionSlug] = *input.Score
	}

	var weightedSum, maxPossible float64
	breakdown := make([]WeightContribution, 0, len(archetype.Weights))

	for _, w := range archetype.Weights {
		maxPossible += maxDimensionScore * w.Weight

		row := WeightContribution{
			DimensionSlug: w.Dimension.Slug,
			DimensionName: w.Dimension.Name,
			Weight:        w.Weight,
		}

		if raw, ok := scoreBySlug[w.Dimension.Slug]; ok {
			row.RawScore = raw
			row.WeightedScore = float64(raw) * w.Weight
			row.Scored = true
			weightedSum += row.WeightedScore
		}

		breakdown = append(breakdown, row)
	}

	fitScore := 0.0
	if maxPossible > 0 {
		fitScore = round1(weightedSum / maxPossible * 100)
	}

	seniorityMatch, gateBreakdown := checkSeniorityGates(scoreBySlug, archetype.Gates)

	return ArchetypeFitResult{
		ArchetypeSlug:         archetype.Slug,
		ArchetypeName:         archetype.Name,
		FitScore:              fitScore,
		SeniorityMatch:        seniorityMatch,
		WeightBreakdown:       breakdown,
		GateBreakdown:         gateBreakdown,
		RoleRelevantStrengths: topStrengths(breakdown),
		RoleRelevantGaps:      topGaps(breakdown),
	}
}

// CalculateFitForMultipleArchetypes runs the same computation per archetype
// and sorts the results by fit score descending.
func CalculateFitForMultipleArchetypes(scores []models.DimensionScoreInput, archetypes []models.Archetype) []ArchetypeFitResult {
	results := make([]ArchetypeFitResult, 0, len(archetypes))
	for i := range archetypes {
		results = append(results, CalculateArchetypeFit(scores, &archetypes[i]))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FitScore > results[j].FitScore
	})

	return results
}

// checkSeniorityGates evaluates levels in fixed JUNIOR, MID, SENIOR order.
// A level passes iff every gate defined for it has a present score >= its
// minimum. The reported match is the last passing level in that order,
// even when a lower level failed: gate data is not assumed monotonic and
// non-monotonic configurations are kept as-is. A level with no gates
// configured passes vacuously, so a gate-less archetype reports SENIOR.
func checkSeniorityGates(scoreBySlug map[string]int, gates []models.SeniorityGate) (*models.SeniorityLevel, []GateLevelResult) {
	gatesByLevel := make(map[models.SeniorityLevel][]models.SeniorityGate)
	for _, gate := range gates {
		gatesByLevel[gate.Level] = append(gatesByLevel[gate.Level], gate)
	}

	var match *models.SeniorityLevel
	breakdown := make([]GateLevelResult, 0, len(models.SeniorityLevels))

	for _, level := range models.SeniorityLevels {
		result := GateLevelResult{Level: level, Passed: true}

		for _, gate := range gatesByLevel[level] {
			raw, ok := scoreBySlug[gate.Dimension.Slug]
			if !ok || raw < gate.MinScore {
				result.Passed = false
				result.FailingDimensions = append(result.FailingDimensions, gate.Dimension.Name)
			}
		}

		if result.Passed {
			l := level
			match = &l
		}

		breakdown = append(breakdown, result)
	}

	return match, breakdown
}

// topStrengths returns the names of the highest weighted-score dimensions
// among those actually scored.
func topStrengths(breakdown []WeightContribution) []string {
	scored := make([]WeightContribution, 0, len(breakdown))
	for _, row := range breakdown {
		if row.Scored {
			scored = append(scored, row)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].WeightedScore > scored[j].WeightedScore
	})

	names := make([]string, 0, topHighlights)
	for _, row := range scored {
		if len(names) == topHighlights {
			break
		}
		names = append(names, row.DimensionName)
	}

	return names
}

// topGaps returns the names of the lowest-scored dimensions among scored
// rows with a raw score at or below the gap ceiling.
func topGaps(breakdown []WeightContribution) []string {
	low := make([]WeightContribution, 0, len(breakdown))
	for _, row := range breakdown {
		if row.Scored && row.RawScore <= gapScoreCeiling {
			low = append(low, row)
		}
	}

	sort.SliceStable(low, func(i, j int) bool {
		return low[i].RawScore < low[j].RawScore
	})

	names := make([]string, 0, topHighlights)
	for _, row := range low {
		if len(names) == topHighlights {
			break
		}
		names = append(names, row.DimensionName)
	}

	return names
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
