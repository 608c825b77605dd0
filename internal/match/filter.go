package match

import (
	"strings"

	"go.uber.org/zap"

	"github.com/pateldev/intern-scout/internal/catalog"
	"github.com/pateldev/intern-scout/internal/query"
)

// SkillMatchMode selects the multi-skill filter semantics.
type SkillMatchMode string

const (
	// SkillsMatchAll requires every requested skill to be present (AND).
	SkillsMatchAll SkillMatchMode = "all"
	// SkillsMatchAny requires at least one requested skill (OR).
	SkillsMatchAny SkillMatchMode = "any"
)

// ParseSkillMatchMode maps a configuration value onto a mode, defaulting
// to AND semantics.
func ParseSkillMatchMode(s string) SkillMatchMode {
	if strings.EqualFold(strings.TrimSpace(s), string(SkillsMatchAny)) {
		return SkillsMatchAny
	}
	return SkillsMatchAll
}

// FilterEngine applies a Criteria to the catalog. A record matches when
// every populated dimension is satisfied; unset dimensions impose no
// constraint. Results keep catalog insertion order.
type FilterEngine struct {
	skillMode SkillMatchMode
	logger    *zap.Logger
}

func NewFilterEngine(skillMode SkillMatchMode, logger *zap.Logger) *FilterEngine {
	if skillMode != SkillsMatchAny {
		skillMode = SkillsMatchAll
	}
	return &FilterEngine{skillMode: skillMode, logger: logger}
}

// Filter walks the catalog once and returns the matching records with the
// dimensions each one satisfied. An empty result is a normal outcome, not an
// error.
func (e *FilterEngine) Filter(cat *catalog.Catalog, c query.Criteria) []Result {
	results := make([]Result, 0)

	for _, record := range cat.Records() {
		satisfied, ok := e.evaluate(record, c)
		if !ok {
			continue
		}
		results = append(results, Result{Record: record, Satisfied: satisfied})
	}

	if e.logger != nil {
		e.logger.Debug("filter pass",
			zap.Int("initial", cat.Len()),
			zap.Int("matched", len(results)),
			zap.Int("active_dimensions", c.Populated()),
		)
	}

	return results
}

func (e *FilterEngine) evaluate(r *catalog.Record, c query.Criteria) ([]string, bool) {
	var satisfied []string

	if c.Location != "" {
		if !containsFold(r.Location, c.Location) && !containsFold(r.Country, c.Location) {
			return nil, false
		}
		satisfied = append(satisfied, "location")
	}

	if c.Mode != "" {
		// Unknown never matches a specific requested mode.
		if r.Mode != c.Mode {
			return nil, false
		}
		satisfied = append(satisfied, "mode")
	}

	if len(c.Skills) > 0 {
		if !e.skillsSatisfied(r, c.Skills) {
			return nil, false
		}
		satisfied = append(satisfied, "skills")
	}

	if c.Organization != "" {
		if !containsFold(r.Organization, c.Organization) {
			return nil, false
		}
		satisfied = append(satisfied, "organization")
	}

	if c.StipendRequired != nil {
		// An explicit "unpaid is fine" broadens instead of excluding.
		if *c.StipendRequired && !r.Paid() {
			return nil, false
		}
		satisfied = append(satisfied, "stipend")
	}

	if c.Audience != "" {
		if !containsFold(r.TargetAudience, c.Audience) {
			return nil, false
		}
		satisfied = append(satisfied, "audience")
	}

	return satisfied, true
}

func (e *FilterEngine) skillsSatisfied(r *catalog.Record, requested []string) bool {
	recordSkills := r.NormalizedSkills()

	for _, want := range requested {
		found := false
		for _, have := range recordSkills {
			if strings.Contains(have, strings.ToLower(want)) {
				found = true
				break
			}
		}

		switch e.skillMode {
		case SkillsMatchAny:
			if found {
				return true
			}
		default:
			if !found {
				return false
			}
		}
	}

	return e.skillMode != SkillsMatchAny
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
