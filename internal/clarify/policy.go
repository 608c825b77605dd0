// Package clarify decides whether a query is specific enough to answer or
// needs follow-up questions first.
package clarify

import "github.com/pateldev/intern-scout/internal/query"

const (
	// DefaultMinDimensions is the minimum number of populated criteria
	// dimensions before a query is answered without clarification.
	DefaultMinDimensions = 1
	// DefaultMaxQuestions caps how many clarifying questions are returned
	// per turn.
	DefaultMaxQuestions = 4
)

// dimensionQuestions holds the fixed wording per dimension, in priority
// order. The wording is deterministic on purpose: it keeps clarification
// turns testable and lets the caller dedupe repeated questions.
var dimensionQuestions = []struct {
	dimension string
	question  string
}{
	{"location", "What location are you interested in? (e.g., Bangalore, Mumbai, Remote)"},
	{"mode", "What work mode do you prefer? (Remote, Onsite, or Hybrid)"},
	{"skills", "What skills or technologies are you interested in? (e.g., Python, React, AI/ML)"},
	{"stipend", "Are you looking for paid internships?"},
}

// Policy decides, from a Criteria's completeness, whether to ask follow-up
// questions. It is a pure function of the Criteria and holds no state across
// turns.
type Policy struct {
	MinDimensions int
	MaxQuestions  int
}

func NewPolicy(minDimensions, maxQuestions int) *Policy {
	if minDimensions <= 0 {
		minDimensions = DefaultMinDimensions
	}
	if maxQuestions <= 0 {
		maxQuestions = DefaultMaxQuestions
	}
	return &Policy{MinDimensions: minDimensions, MaxQuestions: maxQuestions}
}

// Needs reports whether the criteria is too vague to answer and, if so,
// returns one question per unset dimension among {location, mode, skills,
// stipend}, in that order, capped at MaxQuestions. An explicit broadening
// signal in the query always suppresses clarification.
func (p *Policy) Needs(c query.Criteria) (bool, []string) {
	if c.Broadened {
		return false, nil
	}
	if c.Populated() >= p.MinDimensions {
		return false, nil
	}

	var questions []string
	for _, dq := range dimensionQuestions {
		if len(questions) == p.MaxQuestions {
			break
		}
		if dimensionSet(c, dq.dimension) {
			continue
		}
		questions = append(questions, dq.question)
	}

	if len(questions) == 0 {
		return false, nil
	}
	return true, questions
}

func dimensionSet(c query.Criteria, dimension string) bool {
	switch dimension {
	case "location":
		return c.Location != ""
	case "mode":
		return c.Mode != ""
	case "skills":
		return len(c.Skills) > 0
	case "stipend":
		return c.StipendRequired != nil
	default:
		return false
	}
}
