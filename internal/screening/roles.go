package screening

// DataAnalystVocabulary is the full keyword list scanned by the
// institute-filter flow. Single-letter entries like "r" are known to be
// noisy under substring matching; see MatchMode.
var DataAnalystVocabulary = []string{
	"excel", "sql", "tableau", "power bi", "python", "r", "data visualization",
	"statistics", "machine learning", "data analysis", "pandas", "numpy",
	"matplotlib", "seaborn", "dash", "regression", "predictive modeling",
	"business intelligence", "data mining", "data wrangling",
}

// roleVocabularies maps a lowercased job title to the predefined skill
// set merged into role-match requests. Unknown titles contribute nothing.
var roleVocabularies = map[string][]string{
	"data analyst": {
		"sql", "excel", "python", "tableau", "power bi",
		"statistics", "data analysis", "analytics",
	},
}

// RoleVocabulary returns the predefined skills for a job title, or nil
// when the title is not in the table. Lookup is on the lowercased title.
func RoleVocabulary(title string) []string {
	return roleVocabularies[title]
}
