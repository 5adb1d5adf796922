package services

import "fmt"

// LevelExpectations maps a target hiring level to the overall score a
// candidate at that level is expected to reach. This is a separate ladder
// from the seniority gates; "staff" exists only here.
var LevelExpectations = map[string]float64{
	"junior": 2.0,
	"mid":    2.5,
	"senior": 3.0,
	"staff":  3.5,
}

const (
	ScoreFitExceeds = "exceeds"
	ScoreFitMeets   = "meets"
	ScoreFitBelow   = "below"

	StrengthExceptional = "Exceptional"
	StrengthStrong      = "Strong"
	StrengthMeets       = "Meets expectations"
	StrengthBelow       = "Below expectations"
)

// ScoreFit classifies a score against the expectation for a level using
// half-point bands.
func ScoreFit(score float64, level string) (string, error) {
	expected, ok := LevelExpectations[level]
	if !ok {
		return "", fmt.Errorf("unknown level %q", level)
	}

	diff := score - expected
	switch {
	case diff >= 0.5:
		return ScoreFitExceeds, nil
	case diff < -0.5:
		return ScoreFitBelow, nil
	default:
		return ScoreFitMeets, nil
	}
}

// RelativeStrength classifies an overall score against the expectation for
// a level on a wider four-tier band.
func RelativeStrength(overallScore float64, level string) (string, error) {
	expected, ok := LevelExpectations[level]
	if !ok {
		return "", fmt.Errorf("unknown level %q", level)
	}

	diff := overallScore - expected
	switch {
	case diff >= 1.0:
		return StrengthExceptional, nil
	case diff >= 0.5:
		return StrengthStrong, nil
	case diff >= -0.5:
		return StrengthMeets, nil
	default:
		return StrengthBelow, nil
	}
}
