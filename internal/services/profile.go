package services

import (
	"fmt"
	"strings"

	"hirelens/assessment-engine/internal/models"
)

// BuildQueryText renders search criteria into the text that gets embedded.
// Inputs are joined in their given order so equal criteria produce equal
// text.
func BuildQueryText(skills, domains []string, context string) string {
	var sb strings.Builder

	if len(skills) > 0 {
		sb.WriteString("Skills: ")
		sb.WriteString(strings.Join(skills, ", "))
		sb.WriteString(". ")
	}

	if len(domains) > 0 {
		sb.WriteString("Experience domains: ")
		sb.WriteString(strings.Join(domains, ", "))
		sb.WriteString(". ")
	}

	if context != "" {
		sb.WriteString(context)
	}

	return strings.TrimSpace(sb.String())
}

// BuildProfileText renders a completed assessment into the candidate
// profile document the indexer embeds. The summary carries most of the
// semantic signal; dimension scores are appended so adjacent score
// profiles land near each other too.
func BuildProfileText(assessment *models.VideoAssessment) string {
	var sb strings.Builder

	if assessment.Candidate.Headline != "" {
		sb.WriteString(assessment.Candidate.Headline)
		sb.WriteString("\n\n")
	}

	if assessment.Summary != "" {
		sb.WriteString(assessment.Summary)
		sb.WriteString("\n\n")
	}

	if len(assessment.Scores) > 0 {
		sb.WriteString("Evaluated dimensions:\n")
		for _, score := range assessment.Scores {
			if score.Score == nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("- %s: %d/4\n", score.Dimension.Name, *score.Score))
		}
	}

	return strings.TrimSpace(sb.String())
}
