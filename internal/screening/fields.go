package screening

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Institute is the classification bucket inferred from institution
// mentions in the text.
type Institute string

const (
	InstituteIIT   Institute = "IIT"
	InstituteNIT   Institute = "NIT"
	InstituteOther Institute = "Other"

	// InstituteUnknown is the placeholder used by flows that skip
	// classification entirely.
	InstituteUnknown Institute = "Unknown"
)

// ScorePolicy names the two observed acceptance policies for academic
// scores. They are mutually inconsistent in the source behavior, so the
// deployment picks one explicitly.
type ScorePolicy string

const (
	// ScorePolicyThreshold rejects candidates below CGPA 9.0 / 90%.
	ScorePolicyThreshold ScorePolicy = "threshold"
	// ScorePolicyLenient accepts any found score and falls back to "N/A".
	ScorePolicyLenient ScorePolicy = "lenient"
)

// MatchMode controls how skill keywords are located in the text.
type MatchMode string

const (
	// MatchSubstring is the historical default: plain containment,
	// which permits partial-word false positives.
	MatchSubstring MatchMode = "substring"
	// MatchWordBoundary only counts whole-word occurrences.
	MatchWordBoundary MatchMode = "word"
)

// Config parameterizes field extraction so the institute-filter and
// role-match flows share one implementation instead of two copies of
// the heuristics.
type Config struct {
	ScorePolicy       ScorePolicy
	MinSkills         int
	ClassifyInstitute bool
	Vocabulary        []string
	Branch            string
	MatchMode         MatchMode
}

// Profile is the structured result of running the heuristics over one
// resume's text.
type Profile struct {
	Name      string
	Institute Institute
	Score     string
	Skills    []string
	Branch    string
}

var (
	cgpaPattern    = regexp.MustCompile(`(?i)cgpa[:\s]*([0-9.]+)`)
	percentPattern = regexp.MustCompile(`(\d{2,3})\s*%`)

	iitPattern = regexp.MustCompile(`(?i)\b(iit|indian institute of technology)\b`)
	nitPattern = regexp.MustCompile(`(?i)\b(nit|national institute of technology)\b`)

	boilerplateTokens = []string{"resume", "cv", "curriculum", "email", "phone"}
)

// ExtractFields runs the name, institute, score, and skill heuristics
// over raw resume text. ok is false when the text fails the acceptance
// predicate implied by cfg (score threshold or minimum skill count).
func ExtractFields(text string, cfg Config) (*Profile, bool) {
	score, ok := ExtractScore(text, cfg.ScorePolicy)
	if !ok {
		return nil, false
	}

	skills := FindSkills(text, cfg.Vocabulary, cfg.MatchMode)
	if len(skills) < cfg.MinSkills {
		return nil, false
	}

	institute := InstituteUnknown
	if cfg.ClassifyInstitute {
		institute = ClassifyInstitute(text)
	}

	return &Profile{
		Name:      ExtractName(text),
		Institute: institute,
		Score:     score,
		Skills:    skills,
		Branch:    cfg.Branch,
	}, true
}

// ExtractName picks the first of the leading five lines that is neither
// blank nor obvious header boilerplate. Multi-line names and decorated
// headers defeat this; that is accepted behavior.
func ExtractName(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if containsAny(strings.ToLower(line), boilerplateTokens) {
			continue
		}
		return line
	}

	return "Unknown"
}

// ClassifyInstitute buckets the text by institution mentions. IIT is
// checked before NIT; the first whole-word match wins.
func ClassifyInstitute(text string) Institute {
	if iitPattern.MatchString(text) {
		return InstituteIIT
	}
	if nitPattern.MatchString(text) {
		return InstituteNIT
	}
	return InstituteOther
}

// ExtractScore finds an academic score and formats it as a display
// label. A CGPA mention takes priority over a percentage when both are
// present. Under ScorePolicyThreshold, ok is false for scores below
// CGPA 9.0 / 90% and for texts with no score at all; under
// ScorePolicyLenient every text is accepted and the label defaults to
// "N/A".
func ExtractScore(text string, policy ScorePolicy) (string, bool) {
	var cgpa string
	if m := cgpaPattern.FindStringSubmatch(text); m != nil {
		if _, err := strconv.ParseFloat(m[1], 64); err == nil {
			cgpa = m[1]
		}
	}

	var percent string
	if m := percentPattern.FindStringSubmatch(text); m != nil {
		percent = m[1]
	}

	if policy == ScorePolicyThreshold {
		if cgpa != "" {
			if v, _ := strconv.ParseFloat(cgpa, 64); v >= 9.0 {
				return cgpa + " CGPA", true
			}
		}
		if percent != "" {
			if n, _ := strconv.Atoi(percent); n >= 90 {
				return percent + "%", true
			}
		}
		return "", false
	}

	switch {
	case cgpa != "":
		return cgpa + " CGPA", true
	case percent != "":
		return percent + "%", true
	default:
		return "N/A", true
	}
}

// FindSkills scans the text for every vocabulary entry, preserving
// vocabulary order. Entries are matched case-insensitively; substring
// mode deliberately counts partial-word hits.
func FindSkills(text string, vocabulary []string, mode MatchMode) []string {
	textLower := strings.ToLower(text)

	var found []string
	for _, skill := range vocabulary {
		if skillPresent(textLower, skill, mode) {
			found = append(found, skill)
		}
	}
	return found
}

// TitleSkills converts lowercase skill keywords to their display form.
// A fresh Caser per call; Casers are not safe for concurrent use.
func TitleSkills(skills []string) []string {
	caser := cases.Title(language.English)

	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = caser.String(s)
	}
	return out
}

func skillPresent(textLower, skill string, mode MatchMode) bool {
	skill = strings.ToLower(skill)
	if mode == MatchWordBoundary {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(skill) + `\b`)
		if err != nil {
			return false
		}
		return re.MatchString(textLower)
	}
	return strings.Contains(textLower, skill)
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
