// Package profile holds the candidate profile derived from resume text and
// the parser that produces it. Extracting raw text from an uploaded document
// is the job of an external producer; this package only consumes text.
package profile

// Profile is the structured skill and background summary of one candidate.
// It lives for the duration of an interactive session and is never shared
// between sessions.
type Profile struct {
	// Skills is a deduplicated, lower-cased set of recognized skill tokens,
	// kept as a sorted slice for deterministic output.
	Skills          []string
	EducationTerms  []string
	ExperienceTerms []string
}

// SkillSet returns the skills as a set for intersection tests.
func (p Profile) SkillSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		set[s] = struct{}{}
	}
	return set
}

// HasSkills reports whether any skill was extracted. A profile without
// skills yields an empty recommendation list by contract.
func (p Profile) HasSkills() bool {
	return len(p.Skills) > 0
}
