package screening

import (
	"math"
	"strings"
)

// ResolveRequiredSkills builds the effective required-skill list for a
// role-match request: caller-supplied comma-separated skills first (in
// the order given, trimmed and lowercased), followed by the predefined
// vocabulary for the job title when one exists. Duplicates are kept.
func ResolveRequiredSkills(jobTitle, skillsCSV string) []string {
	var required []string

	for _, raw := range strings.Split(skillsCSV, ",") {
		skill := strings.ToLower(strings.TrimSpace(raw))
		if skill != "" {
			required = append(required, skill)
		}
	}

	required = append(required, RoleVocabulary(strings.ToLower(jobTitle))...)

	return required
}

// MatchSkills tests each required skill against the text and returns
// the matches (in required-list order) along with the coverage
// percentage rounded to two decimals. The percentage is defined as 0
// when there are no required skills.
func MatchSkills(text string, required []string, mode MatchMode) ([]string, float64) {
	if len(required) == 0 {
		return nil, 0
	}

	textLower := strings.ToLower(text)

	var matched []string
	for _, skill := range required {
		if skillPresent(textLower, skill, mode) {
			matched = append(matched, skill)
		}
	}

	pct := float64(len(matched)) / float64(len(required)) * 100
	return matched, math.Round(pct*100) / 100
}
