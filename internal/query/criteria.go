package query

import "github.com/pateldev/intern-scout/internal/catalog"

// Criteria is the structured representation of a user's filtering intent,
// derived from one free-text query. Unset dimensions stay at their zero
// value and impose no constraint downstream.
type Criteria struct {
	Location     string
	Mode         catalog.Mode // empty string means unset
	Skills       []string     // normalized tokens, deduplicated, sorted
	Organization string
	// StipendRequired is nil when the query said nothing about payment,
	// true for "paid only", false for an explicit "unpaid is fine".
	StipendRequired *bool
	Audience        string

	// RawQuery is the original text, retained for diagnostics.
	RawQuery string
	// Broadened is set when the query contains an explicit broadening
	// signal ("any", "all", "show me everything"), which suppresses
	// clarification even for an otherwise empty Criteria.
	Broadened bool
}

// Populated returns how many dimensions the query actually specified.
func (c Criteria) Populated() int {
	count := 0
	if c.Location != "" {
		count++
	}
	if c.Mode != "" {
		count++
	}
	if len(c.Skills) > 0 {
		count++
	}
	if c.Organization != "" {
		count++
	}
	if c.StipendRequired != nil {
		count++
	}
	if c.Audience != "" {
		count++
	}
	return count
}

// IsEmpty reports whether no dimension is set at all.
func (c Criteria) IsEmpty() bool {
	return c.Populated() == 0
}
