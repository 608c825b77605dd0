package profile

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pateldev/intern-scout/internal/keywords"
)

// educationGroups maps resume wording onto the audience labels used by
// listings, most specific level first.
var educationGroups = []struct {
	phrases []string
	label   string
}{
	{[]string{"phd", "ph.d", "doctorate", "doctoral"}, "PhD"},
	{[]string{"masters", "master's", "mba", "mtech", "m.tech", "postgraduate", "m.sc"}, "PG"},
	{[]string{"bachelor", "bachelors", "btech", "b.tech", "bsc", "b.sc", "bca", "undergraduate", "b.e"}, "UG"},
}

var experienceKeywords = []string{"intern", "internship", "internships", "trainee", "co-op", "project", "projects", "freelance"}

var yearsOfExperienceRe = regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`)

// Parser extracts a candidate Profile from plain resume text using a
// configured skill vocabulary.
type Parser struct {
	skills []string
	logger *zap.Logger
}

func NewParser(skillVocab []string, logger *zap.Logger) *Parser {
	return &Parser{skills: skillVocab, logger: logger}
}

// ParseText builds a Profile from resume text. It never fails: text with no
// recognizable content produces an empty profile, which downstream code
// signals explicitly.
func (p *Parser) ParseText(text string) Profile {
	profile := Profile{
		Skills:          p.extractSkills(text),
		EducationTerms:  extractEducation(text),
		ExperienceTerms: extractExperience(text),
	}

	if p.logger != nil {
		p.logger.Debug("parsed resume text",
			zap.Int("skills", len(profile.Skills)),
			zap.Strings("education", profile.EducationTerms),
		)
	}

	return profile
}

func (p *Parser) extractSkills(text string) []string {
	seen := make(map[string]struct{})
	var found []string

	for _, skill := range p.skills {
		token := strings.ToLower(strings.TrimSpace(skill))
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		if keywords.Contains(text, token) {
			seen[token] = struct{}{}
			found = append(found, token)
		}
	}

	sort.Strings(found)
	return found
}

func extractEducation(text string) []string {
	var terms []string
	for _, group := range educationGroups {
		if keywords.ContainsAny(text, group.phrases) {
			terms = append(terms, group.label)
		}
	}
	return terms
}

func extractExperience(text string) []string {
	var terms []string

	lower := strings.ToLower(text)
	if m := yearsOfExperienceRe.FindStringSubmatch(lower); m != nil {
		terms = append(terms, fmt.Sprintf("%s years experience", m[1]))
	}

	for _, kw := range experienceKeywords {
		if keywords.Contains(text, kw) {
			terms = append(terms, kw)
		}
	}

	return terms
}
