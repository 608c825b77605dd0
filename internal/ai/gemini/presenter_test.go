package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/pateldev/intern-scout/internal/catalog"
	"github.com/pateldev/intern-scout/internal/match"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func sampleResults() []match.Result {
	return []match.Result{
		{
			Record: &catalog.Record{
				Title:        "AI Intern",
				Organization: "Acme",
				Location:     "Bangalore",
				Mode:         catalog.ModeRemote,
				Stipend:      "5000 INR",
			},
			Satisfied: []string{"location", "mode"},
		},
		{
			Record: &catalog.Record{
				Title:        "Web Intern",
				Organization: "Globex",
				Location:     "Mumbai",
				Mode:         catalog.ModeOnsite,
				Stipend:      catalog.NotSpecified,
			},
			Score:   5.0,
			Matched: []string{"react"},
		},
	}
}

func TestPresenterEnhance(t *testing.T) {
	stub := &stubGenerator{response: "Here are your internships."}
	presenter := NewPresenter(stub, 0, zap.NewNop())

	output, err := presenter.Enhance(context.Background(), "remote internships", sampleResults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output != "Here are your internships." {
		t.Fatalf("unexpected output: %q", output)
	}

	if !strings.Contains(stub.lastPrompt, "remote internships") {
		t.Fatalf("expected query in prompt")
	}
	if !strings.Contains(stub.lastPrompt, `"title": "AI Intern"`) {
		t.Fatalf("expected first listing in prompt, got: %s", stub.lastPrompt)
	}

	// Result order must survive into the prompt payload.
	first := strings.Index(stub.lastPrompt, "AI Intern")
	second := strings.Index(stub.lastPrompt, "Web Intern")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("expected listings in result order, got offsets %d and %d", first, second)
	}
}

func TestPresenterEnhancePropagatesGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	presenter := NewPresenter(stub, 0, zap.NewNop())

	if _, err := presenter.Enhance(context.Background(), "anything", sampleResults()); err == nil {
		t.Fatalf("expected error to propagate for caller fallback")
	}
}

func TestPresenterEnhanceRejectsEmptyResponse(t *testing.T) {
	stub := &stubGenerator{response: "   "}
	presenter := NewPresenter(stub, 0, zap.NewNop())

	if _, err := presenter.Enhance(context.Background(), "anything", sampleResults()); err == nil {
		t.Fatalf("expected error on empty presentation")
	}
}

func TestPresenterDoesNotMutateResults(t *testing.T) {
	stub := &stubGenerator{response: "ok"}
	presenter := NewPresenter(stub, 0, zap.NewNop())

	results := sampleResults()
	if _, err := presenter.Enhance(context.Background(), "q", results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results[0].Record.Title != "AI Intern" || results[1].Record.Title != "Web Intern" {
		t.Fatalf("presenter must not reorder or modify results")
	}
}
