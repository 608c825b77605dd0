// Package match applies structured criteria and candidate profiles to the
// listing catalog, producing explainable, deterministically ordered results.
package match

import "github.com/pateldev/intern-scout/internal/catalog"

// Result pairs a listing record with its match explanation. Filter results
// carry the list of satisfied criteria dimensions; profile-based results
// carry a relevance score and the matched skill tokens.
type Result struct {
	Record *catalog.Record

	// Satisfied names the criteria dimensions this record passed
	// (filter path).
	Satisfied []string

	// Score is the bounded relevance score (recommendation path).
	Score float64
	// Matched lists the skill tokens shared between the profile and the
	// record, in the record's skill order.
	Matched []string
	// Intersection is the raw matched-token count, kept as the first
	// tiebreaker below equal scores.
	Intersection int
}
