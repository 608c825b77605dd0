package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NotSpecified is the sentinel value producers must use for absent fields.
// Matching code relies on it to tell "missing" apart from an empty string.
const NotSpecified = "Not specified"

// Mode is the work mode of a listing.
type Mode string

const (
	ModeRemote  Mode = "Remote"
	ModeOnsite  Mode = "Onsite"
	ModeHybrid  Mode = "Hybrid"
	ModeUnknown Mode = "Unknown"
)

// ParseMode maps a free-text mode value onto the enumerated work modes.
// Anything unrecognized becomes Unknown.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "remote":
		return ModeRemote
	case "onsite", "on-site", "in office", "in-office":
		return ModeOnsite
	case "hybrid":
		return ModeHybrid
	default:
		return ModeUnknown
	}
}

// Record is one normalized internship listing. Fields follow the unified
// ingestion schema shared by all source scrapers. Records are read-only once
// added to a Catalog.
type Record struct {
	Title               string   `json:"title"`
	Organization        string   `json:"organization"`
	Country             string   `json:"country"`
	Location            string   `json:"location"`
	Type                string   `json:"type"`
	EligibilityCriteria string   `json:"eligibility_criteria"`
	TargetAudience      string   `json:"target_audience"`
	StartDate           string   `json:"start_date"`
	Duration            string   `json:"duration"`
	ApplicationDeadline string   `json:"application_deadline"`
	ApplicationLink     string   `json:"application_link"`
	Mode                Mode     `json:"mode"`
	Stipend             string   `json:"stipend"`
	Salary              string   `json:"salary"`
	VisaSupport         string   `json:"visa_support"`
	Tags                []string `json:"tags"`
	Source              string   `json:"source"`
	ScrapedTimestamp    string   `json:"scraped_timestamp"`
	Description         string   `json:"description"`
	SkillsRequired      []string `json:"skills_required"`
	Perks               []string `json:"perks"`
	CompanySize         string   `json:"company_size"`
	Industry            string   `json:"industry"`
}

// Key is the deduplication identity of a record: title, organization and
// source, case-insensitive.
func (r *Record) Key() string {
	return fmt.Sprintf("%s|%s|%s",
		strings.ToLower(strings.TrimSpace(r.Title)),
		strings.ToLower(strings.TrimSpace(r.Organization)),
		strings.ToLower(strings.TrimSpace(r.Source)),
	)
}

// Normalize fills absent scalar fields with the NotSpecified sentinel, maps
// the mode onto the enum and trims list entries. Called once at the
// ingestion boundary; records are never mutated afterwards.
func (r *Record) Normalize() {
	fields := []*string{
		&r.Title, &r.Organization, &r.Country, &r.Location, &r.Type,
		&r.EligibilityCriteria, &r.TargetAudience, &r.StartDate, &r.Duration,
		&r.ApplicationDeadline, &r.ApplicationLink, &r.Stipend, &r.Salary,
		&r.VisaSupport, &r.Source, &r.ScrapedTimestamp, &r.Description,
		&r.CompanySize, &r.Industry,
	}
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
		if *f == "" {
			*f = NotSpecified
		}
	}

	if r.Mode != ModeRemote && r.Mode != ModeOnsite && r.Mode != ModeHybrid {
		r.Mode = ParseMode(string(r.Mode))
	}

	r.Tags = trimTokens(r.Tags)
	r.SkillsRequired = trimTokens(r.SkillsRequired)
	r.Perks = trimTokens(r.Perks)
}

// NormalizedSkills returns the required-skill tokens lowercased, preserving
// their order.
func (r *Record) NormalizedSkills() []string {
	skills := make([]string, 0, len(r.SkillsRequired))
	for _, s := range r.SkillsRequired {
		skills = append(skills, strings.ToLower(s))
	}
	return skills
}

var stipendNumberRe = regexp.MustCompile(`\d+`)

// Paid reports whether the stipend field describes an actual payment. A
// stipend equal to the sentinel or "Unpaid", or whose first number parses as
// zero, does not count. A textual stipend without digits (e.g.
// "Competitive") counts as paid.
func (r *Record) Paid() bool {
	stipend := strings.TrimSpace(r.Stipend)
	if stipend == "" || stipend == NotSpecified || strings.EqualFold(stipend, "unpaid") {
		return false
	}

	match := stipendNumberRe.FindString(stipend)
	if match == "" {
		return true
	}

	value, err := strconv.Atoi(match)
	if err != nil {
		return true
	}
	return value > 0
}

func trimTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
