package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/pateldev/intern-scout/internal/logger"
	"github.com/pateldev/intern-scout/internal/match"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Presenter rewrites a computed result list into conversational text via
// Gemini. It is presentation-only: the results go into the prompt in their
// final order and the prompt forbids reordering or membership changes.
type Presenter struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewPresenter(generator contentGenerator, maxLogLength int, log *zap.Logger) *Presenter {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Presenter{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// listingView is the compact JSON shape sent to the model, one per result,
// in result order.
type listingView struct {
	Position     int      `json:"position"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Location     string   `json:"location"`
	Mode         string   `json:"mode"`
	Stipend      string   `json:"stipend"`
	Audience     string   `json:"target_audience"`
	Skills       []string `json:"skills_required"`
	ApplyLink    string   `json:"application_link"`
	Satisfied    []string `json:"satisfied_criteria,omitempty"`
	Score        float64  `json:"score,omitempty"`
	Matched      []string `json:"matched_skills,omitempty"`
}

// Enhance renders the result list through Gemini. Errors are returned to the
// caller, which falls back to the plain renderer; results are never
// modified.
func (p *Presenter) Enhance(ctx context.Context, query string, results []match.Result) (string, error) {
	views := make([]listingView, 0, len(results))
	for i, r := range results {
		views = append(views, listingView{
			Position:     i + 1,
			Title:        r.Record.Title,
			Organization: r.Record.Organization,
			Location:     r.Record.Location,
			Mode:         string(r.Record.Mode),
			Stipend:      r.Record.Stipend,
			Audience:     r.Record.TargetAudience,
			Skills:       r.Record.SkillsRequired,
			ApplyLink:    r.Record.ApplicationLink,
			Satisfied:    r.Satisfied,
			Score:        r.Score,
			Matched:      r.Matched,
		})
	}

	resultsJSON, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results payload: %w", err)
	}

	prompt := buildPrompt(query, string(resultsJSON))

	p.logger.Debug("gemini enhance request",
		zap.Int("results", len(results)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.Truncate(prompt, p.maxLogLen)),
	)

	raw, err := p.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	p.logger.Debug("gemini enhance response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.Truncate(raw, p.maxLogLen)),
	)

	output := strings.TrimSpace(raw)
	if output == "" {
		return "", fmt.Errorf("gemini returned empty presentation")
	}

	return output, nil
}

func buildPrompt(query, resultsJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "User query:\n{{QUERY}}\n\nListings JSON:\n{{RESULTS_JSON}}\n\nResponse:"
	}
	prompt := strings.ReplaceAll(template, "{{QUERY}}", query)
	prompt = strings.ReplaceAll(prompt, "{{RESULTS_JSON}}", resultsJSON)
	return prompt
}
