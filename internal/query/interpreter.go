package query

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pateldev/intern-scout/internal/catalog"
	"github.com/pateldev/intern-scout/internal/keywords"
)

// Interpreter converts free-text queries into structured Criteria. It never
// fails: unrecognized text produces an under-specified Criteria, which the
// clarification policy deals with.
type Interpreter struct {
	vocab      Vocabulary
	logger     *zap.Logger
	extractors []extractor
}

// extractor inspects the raw query and optionally populates one dimension of
// the Criteria. Extractors are independent and order-insensitive; conflicts
// inside a dimension are resolved by the last specific mention in the text.
type extractor func(raw string, c *Criteria)

func NewInterpreter(vocab Vocabulary, logger *zap.Logger) *Interpreter {
	i := &Interpreter{
		vocab:  vocab,
		logger: logger,
	}
	i.extractors = []extractor{
		i.extractLocation,
		i.extractMode,
		i.extractSkills,
		i.extractOrganization,
		i.extractStipend,
		i.extractAudience,
		extractBroadening,
	}
	return i
}

// Interpret parses the query into Criteria. Calling it twice on the same
// text yields an identical result.
func (i *Interpreter) Interpret(raw string) Criteria {
	c := Criteria{RawQuery: raw}

	for _, extract := range i.extractors {
		extract(raw, &c)
	}

	if i.logger != nil {
		i.logger.Debug("interpreted query",
			zap.String("query", raw),
			zap.Int("dimensions", c.Populated()),
			zap.Bool("broadened", c.Broadened),
		)
	}

	return c
}

func (i *Interpreter) extractLocation(raw string, c *Criteria) {
	text := strings.ToLower(raw)

	best := -1
	for _, location := range i.vocab.Locations {
		if idx := strings.LastIndex(text, strings.ToLower(location)); idx > best {
			best = idx
			c.Location = location
		}
	}
}

var modePhrases = []struct {
	phrase string
	mode   catalog.Mode
}{
	{"remote", catalog.ModeRemote},
	{"onsite", catalog.ModeOnsite},
	{"in-office", catalog.ModeOnsite},
	{"in office", catalog.ModeOnsite},
	{"hybrid", catalog.ModeHybrid},
}

func (i *Interpreter) extractMode(raw string, c *Criteria) {
	best := -1
	for _, m := range modePhrases {
		if idx := keywords.LastOccurrence(raw, m.phrase); idx > best {
			best = idx
			c.Mode = m.mode
		}
	}
}

func (i *Interpreter) extractSkills(raw string, c *Criteria) {
	aliases := make([]string, 0, len(i.vocab.SkillAliases))
	for alias := range i.vocab.SkillAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	seen := make(map[string]struct{})
	for _, alias := range aliases {
		if !keywords.Contains(raw, alias) {
			continue
		}
		for _, token := range i.vocab.SkillAliases[alias] {
			token = strings.ToLower(strings.TrimSpace(token))
			if _, ok := seen[token]; ok || token == "" {
				continue
			}
			seen[token] = struct{}{}
			c.Skills = append(c.Skills, token)
		}
	}

	sort.Strings(c.Skills)
}

// orgPatternRe catches "at <Name>" / "from <Name>" with a capitalized name.
var orgPatternRe = regexp.MustCompile(`\b(?:at|from)\s+([A-Z][A-Za-z0-9&.\-]*(?:\s[A-Z][A-Za-z0-9&.\-]*)*)`)

func (i *Interpreter) extractOrganization(raw string, c *Criteria) {
	best := -1

	for _, org := range i.vocab.Organizations {
		if idx := keywords.LastOccurrence(raw, org); idx > best {
			best = idx
			c.Organization = org
		}
	}

	matches := orgPatternRe.FindAllStringSubmatchIndex(raw, -1)
	for _, m := range matches {
		// m[2] is the start of the captured name.
		if m[2] > best {
			best = m[2]
			c.Organization = raw[m[2]:m[3]]
		}
	}
}

func (i *Interpreter) extractStipend(raw string, c *Criteria) {
	paidAt := keywords.LastOccurrence(raw, "paid")
	if idx := keywords.LastOccurrence(raw, "with stipend"); idx > paidAt {
		paidAt = idx
	}
	unpaidAt := keywords.LastOccurrence(raw, "unpaid")

	switch {
	case paidAt == -1 && unpaidAt == -1:
		return
	case paidAt > unpaidAt:
		c.StipendRequired = boolPtr(true)
	default:
		c.StipendRequired = boolPtr(false)
	}
}

var audienceGroups = []struct {
	phrases []string
	value   string
}{
	{[]string{"undergrad", "undergrads", "undergraduate", "undergraduates", "ug"}, "UG"},
	{[]string{"postgrad", "postgrads", "postgraduate", "postgraduates", "pg", "masters"}, "PG"},
	{[]string{"phd", "doctoral"}, "PhD"},
}

func (i *Interpreter) extractAudience(raw string, c *Criteria) {
	best := -1
	for _, group := range audienceGroups {
		for _, phrase := range group.phrases {
			if idx := keywords.LastOccurrence(raw, phrase); idx > best {
				best = idx
				c.Audience = group.value
			}
		}
	}
}

var broadeningSignals = []string{"any", "all", "everything"}

func extractBroadening(raw string, c *Criteria) {
	c.Broadened = keywords.ContainsAny(raw, broadeningSignals)
}

func boolPtr(b bool) *bool { return &b }
