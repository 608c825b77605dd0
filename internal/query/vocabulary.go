package query

// Vocabulary is the controlled word list the interpreter matches against.
// It is plain configuration data passed in at construction so tests and
// deployments can swap it without touching package state.
type Vocabulary struct {
	// Locations are known city/region names. The literal "remote" is not a
	// location; it is handled by the mode extractor.
	Locations []string
	// SkillAliases maps a query phrase to the skill tokens it stands for.
	// Most entries map to themselves; alias groups like "ai/ml" expand to
	// several tokens.
	SkillAliases map[string][]string
	// Organizations are employer names recognized without an "at"/"from"
	// marker.
	Organizations []string
}

// DefaultVocabulary returns the built-in word lists used when the
// configuration file does not supply custom ones.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Locations: []string{
			"Bangalore", "Mumbai", "Delhi", "Hyderabad", "Chennai", "Pune",
			"Kolkata", "Gurgaon", "Noida", "India",
		},
		SkillAliases: map[string][]string{
			"python":           {"python"},
			"java":             {"java"},
			"javascript":       {"javascript"},
			"typescript":       {"typescript"},
			"react":            {"react"},
			"angular":          {"angular"},
			"vue":              {"vue"},
			"node.js":          {"node.js"},
			"django":           {"django"},
			"flask":            {"flask"},
			"go":               {"go"},
			"rust":             {"rust"},
			"sql":              {"sql"},
			"ai":               {"ai"},
			"ml":               {"ml"},
			"machine learning": {"machine learning"},
			"ai/ml":            {"ai", "ml", "machine learning"},
			"data science":     {"data science"},
			"web development":  {"web development"},
			"android":          {"android"},
			"ios":              {"ios"},
			"blockchain":       {"blockchain"},
			"cybersecurity":    {"cybersecurity"},
			"devops":           {"devops"},
		},
		Organizations: []string{
			"Google", "Microsoft", "Amazon", "Facebook", "Apple", "Netflix",
			"Uber", "Airbnb", "Tesla",
		},
	}
}

// SkillTokens returns the distinct skill tokens the vocabulary can produce.
// Useful as the skill list for profile parsing.
func (v Vocabulary) SkillTokens() []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, expansion := range v.SkillAliases {
		for _, token := range expansion {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	return tokens
}
