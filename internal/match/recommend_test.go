package match

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/pateldev/intern-scout/internal/catalog"
	"github.com/pateldev/intern-scout/internal/profile"
)

func newRecommender(topK int) *Recommender {
	return NewRecommender(topK, zap.NewNop())
}

func TestRecommendSaturatingScore(t *testing.T) {
	cat := testCatalog(t,
		&catalog.Record{
			Title: "X", Organization: "O", Source: "s1",
			SkillsRequired: []string{"python", "react"},
		},
		&catalog.Record{
			Title: "Y", Organization: "O", Source: "s2",
			SkillsRequired: []string{"python", "react", "go", "rust", "java", "c++", "ruby", "php", "sql", "html"},
		},
	)

	rec := newRecommender(5).Recommend(cat, profile.Profile{Skills: []string{"python"}})

	if len(rec.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(rec.Results))
	}

	first, second := rec.Results[0], rec.Results[1]
	if first.Record.Title != "X" {
		t.Fatalf("expected the focused record to rank first, got %q", first.Record.Title)
	}
	if first.Score <= second.Score {
		t.Fatalf("expected proportional scoring: %f <= %f", first.Score, second.Score)
	}
	if first.Score != 5.0 {
		t.Fatalf("expected score 5.0 for 1 of 2 skills, got %f", first.Score)
	}
	if second.Score != 1.0 {
		t.Fatalf("expected score 1.0 for 1 of 10 skills, got %f", second.Score)
	}
}

func TestRecommendExcludesZeroIntersection(t *testing.T) {
	cat := testCatalog(t,
		&catalog.Record{Title: "Match", Organization: "O", Source: "s1", SkillsRequired: []string{"python"}},
		&catalog.Record{Title: "NoOverlap", Organization: "O", Source: "s2", SkillsRequired: []string{"rust"}},
		&catalog.Record{Title: "NoSkillsListed", Organization: "O", Source: "s3"},
	)

	rec := newRecommender(5).Recommend(cat, profile.Profile{Skills: []string{"python"}})

	if len(rec.Results) != 1 {
		t.Fatalf("expected zero-overlap records to be excluded, got %d results", len(rec.Results))
	}
	if rec.Results[0].Record.Title != "Match" {
		t.Fatalf("unexpected result: %q", rec.Results[0].Record.Title)
	}
}

func TestRecommendTieBreaksByIntersectionThenOrder(t *testing.T) {
	cat := testCatalog(t,
		// Same 50% proportion, lower raw intersection.
		&catalog.Record{Title: "OneOfTwo", Organization: "O", Source: "s1", SkillsRequired: []string{"python", "rust"}},
		// Same proportion, higher raw intersection.
		&catalog.Record{Title: "TwoOfFour", Organization: "O", Source: "s2", SkillsRequired: []string{"python", "sql", "rust", "go"}},
		// Full tie with OneOfTwo; later in the catalog.
		&catalog.Record{Title: "OneOfTwoLater", Organization: "O", Source: "s3", SkillsRequired: []string{"python", "java"}},
	)

	rec := newRecommender(5).Recommend(cat, profile.Profile{Skills: []string{"python", "sql"}})

	titles := []string{}
	for _, r := range rec.Results {
		titles = append(titles, r.Record.Title)
	}
	expected := []string{"TwoOfFour", "OneOfTwo", "OneOfTwoLater"}
	if !reflect.DeepEqual(titles, expected) {
		t.Fatalf("expected order %v, got %v", expected, titles)
	}
}

func TestRecommendTopK(t *testing.T) {
	cat := catalog.New()
	for _, title := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		cat.Add(&catalog.Record{Title: title, Organization: "O", Source: title, SkillsRequired: []string{"python"}})
	}

	rec := newRecommender(3).Recommend(cat, profile.Profile{Skills: []string{"python"}})
	if len(rec.Results) != 3 {
		t.Fatalf("expected top_k cap of 3, got %d", len(rec.Results))
	}
}

func TestRecommendEmptyProfileSentinel(t *testing.T) {
	cat := testCatalog(t, &catalog.Record{Title: "A", Organization: "O", Source: "s1", SkillsRequired: []string{"python"}})

	rec := newRecommender(5).Recommend(cat, profile.Profile{})
	if len(rec.Results) != 0 {
		t.Fatalf("expected no results for an empty profile")
	}
	if !rec.EmptyProfile {
		t.Fatalf("expected the empty-profile flag to be set")
	}

	// Empty catalog with a valid profile: empty results, flag unset.
	rec = newRecommender(5).Recommend(catalog.New(), profile.Profile{Skills: []string{"python"}})
	if len(rec.Results) != 0 {
		t.Fatalf("expected no results for an empty catalog")
	}
	if rec.EmptyProfile {
		t.Fatalf("empty catalog must not set the empty-profile flag")
	}
}

func TestRecommendCaseInsensitiveSkills(t *testing.T) {
	cat := testCatalog(t, &catalog.Record{
		Title: "A", Organization: "O", Source: "s1",
		SkillsRequired: []string{"Python", "React"},
	})

	rec := newRecommender(5).Recommend(cat, profile.Profile{Skills: []string{"python", "react"}})
	if len(rec.Results) != 1 {
		t.Fatalf("expected a case-insensitive match")
	}

	result := rec.Results[0]
	if result.Score != 10.0 {
		t.Fatalf("expected full score, got %f", result.Score)
	}
	if !reflect.DeepEqual(result.Matched, []string{"python", "react"}) {
		t.Fatalf("unexpected matched tokens: %v", result.Matched)
	}
}
