package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreFit(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		level string
		want  string
	}{
		{"well above junior", 3.0, "junior", ScoreFitExceeds},
		{"exactly half point above", 3.0, "mid", ScoreFitExceeds},
		{"on expectation", 3.0, "senior", ScoreFitMeets},
		{"half point below still meets", 2.5, "senior", ScoreFitMeets},
		{"below staff", 2.5, "staff", ScoreFitBelow},
		{"just under the lower band", 2.4, "senior", ScoreFitBelow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreFit(tt.score, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelativeStrength(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		level string
		want  string
	}{
		{"two points over junior", 4.0, "junior", StrengthExceptional},
		{"exactly one point over", 3.5, "mid", StrengthExceptional},
		{"half point over", 3.5, "senior", StrengthStrong},
		{"on expectation", 3.0, "senior", StrengthMeets},
		{"half point under", 2.5, "senior", StrengthMeets},
		{"well under staff", 2.0, "staff", StrengthBelow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelativeStrength(tt.score, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnknownLevel(t *testing.T) {
	_, err := ScoreFit(3.0, "principal")
	assert.ErrorContains(t, err, "unknown level")

	_, err = RelativeStrength(3.0, "principal")
	assert.ErrorContains(t, err, "unknown level")
}
