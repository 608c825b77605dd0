package match

import (
	"sort"

	"go.uber.org/zap"

	"github.com/pateldev/intern-scout/internal/catalog"
	"github.com/pateldev/intern-scout/internal/profile"
)

// maxScore is the upper bound of the relevance scale.
const maxScore = 10.0

// DefaultTopK caps recommendation output when the configuration does not
// say otherwise.
const DefaultTopK = 5

// Recommendation is the outcome of a profile-based ranking run.
// EmptyProfile distinguishes "the profile had no extractable skills" from
// "nothing in the catalog overlapped the profile".
type Recommendation struct {
	Results      []Result
	EmptyProfile bool
}

// Recommender scores catalog records against a candidate profile and ranks
// the best matches.
type Recommender struct {
	topK   int
	logger *zap.Logger
}

func NewRecommender(topK int, logger *zap.Logger) *Recommender {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Recommender{topK: topK, logger: logger}
}

// Recommend computes the skill intersection between the profile and every
// record, scores it on a bounded scale proportional to the record's own
// requirement count, and returns at most topK results in descending score
// order. Records with no overlap are excluded entirely: recommendation is
// precision-oriented, never an exhaustive ranking.
func (r *Recommender) Recommend(cat *catalog.Catalog, p profile.Profile) Recommendation {
	if !p.HasSkills() {
		if r.logger != nil {
			r.logger.Info("profile has no extractable skills; skipping recommendation")
		}
		return Recommendation{Results: []Result{}, EmptyProfile: true}
	}

	skillSet := p.SkillSet()
	results := make([]Result, 0)

	for _, record := range cat.Records() {
		matched := intersect(record.NormalizedSkills(), skillSet)
		if len(matched) == 0 {
			continue
		}

		results = append(results, Result{
			Record:       record,
			Score:        scaledScore(len(matched), len(record.SkillsRequired)),
			Matched:      matched,
			Intersection: len(matched),
		})
	}

	// Stable sort keeps catalog insertion order for full ties.
	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Score != results[b].Score {
			return results[a].Score > results[b].Score
		}
		return results[a].Intersection > results[b].Intersection
	})

	if len(results) > r.topK {
		results = results[:r.topK]
	}

	if r.logger != nil {
		r.logger.Debug("recommendation pass",
			zap.Int("catalog", cat.Len()),
			zap.Int("returned", len(results)),
			zap.Int("profile_skills", len(p.Skills)),
		)
	}

	return Recommendation{Results: results}
}

// scaledScore saturates the intersection count against the record's total
// requirement count: matching 2 of 2 required skills outranks matching 2 of
// 10.
func scaledScore(matched, required int) float64 {
	if required <= 0 {
		return 0
	}
	score := maxScore * float64(matched) / float64(required)
	if score > maxScore {
		return maxScore
	}
	return score
}

// intersect returns the record skill tokens present in the profile set, in
// record order.
func intersect(recordSkills []string, profileSkills map[string]struct{}) []string {
	var matched []string
	seen := make(map[string]struct{})
	for _, token := range recordSkills {
		if _, ok := profileSkills[token]; !ok {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		matched = append(matched, token)
	}
	return matched
}
