package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/pateldev/intern-scout/internal/ai"
	"github.com/pateldev/intern-scout/internal/ai/gemini"
	"github.com/pateldev/intern-scout/internal/catalog"
	"github.com/pateldev/intern-scout/internal/clarify"
	"github.com/pateldev/intern-scout/internal/logger"
	"github.com/pateldev/intern-scout/internal/match"
	"github.com/pateldev/intern-scout/internal/query"
	"github.com/pateldev/intern-scout/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptNewSearch = "New search"
	PromptExit      = "Exit"
)

var errExit = errors.New("exit requested")

var nextActionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptNewSearch, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the intern-scout interactive search shell",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("query", "q", "", "run a single query and exit instead of starting the interactive shell")
	runCmd.Flags().IntP("top", "t", 0, "maximum number of results to show (default unlimited)")
	runCmd.Flags().StringP("catalog-file", "c", "", "internship listings file (csv or json)")
}

const noDataMessage = "No internship data is loaded. Check the catalog file and try again."

// searchSession bundles the pieces one query pass needs.
type searchSession struct {
	catalog     *catalog.Catalog
	interpreter *query.Interpreter
	policy      *clarify.Policy
	engine      *match.FilterEngine
	enhancer    ai.Enhancer
	logger      *zap.Logger
	maxResults  int

	// ask collects one free-text clarification answer.
	ask func(label string) (string, error)
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the intern-scout", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	session, err := newSearchSession(ctx, config, cmd.Flag("catalog-file").Value.String(), logger)
	if err != nil {
		logger.Fatal("preparing the search session", zap.Error(err))
	}

	if top, err := cmd.Flags().GetInt("top"); err == nil && top > 0 {
		session.maxResults = top
	}

	if oneShot := strings.TrimSpace(cmd.Flag("query").Value.String()); oneShot != "" {
		fmt.Println(session.answer(ctx, oneShot))
		return
	}

	queryPrompt := promptui.Prompt{Label: "Query"}

	for {
		text, err := queryPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := session.searchTurn(ctx, text); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		_, action, err := nextActionPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		if action == PromptExit {
			logger.Info("exiting", zap.String("reason", "got exit from prompt"))
			return
		}
	}
}

func newSearchSession(ctx context.Context, config *Config, catalogFile string, logger *zap.Logger) (*searchSession, error) {
	catalogFile = strings.TrimSpace(catalogFile)
	if catalogFile == "" && config != nil {
		catalogFile = strings.TrimSpace(config.CatalogFile)
	}
	if catalogFile == "" {
		return nil, errors.New("catalog file is not configured (set catalog-file in the config or pass --catalog-file)")
	}

	cat, err := catalog.LoadFile(catalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	logger.Info("loaded internship catalog",
		zap.String("file", catalogFile),
		zap.Int("count", cat.Len()),
	)

	clarifyCfg := config.Clarify
	if clarifyCfg == nil {
		clarifyCfg = &ClarifyConfig{}
	}

	skillMode := ""
	if config.Matching != nil {
		skillMode = config.Matching.SkillMode
	}

	session := &searchSession{
		catalog:     cat,
		interpreter: query.NewInterpreter(config.vocabulary(), logger),
		policy:      clarify.NewPolicy(clarifyCfg.MinDimensions, clarifyCfg.MaxQuestions),
		engine:      match.NewFilterEngine(match.ParseSkillMatchMode(skillMode), logger),
		logger:      logger,
		ask: func(label string) (string, error) {
			return (&promptui.Prompt{Label: label}).Run()
		},
	}

	if config.AI != nil && config.AI.Enabled {
		enhancer, err := newEnhancer(ctx, config.AI, logger)
		if err != nil {
			logger.Warn("running without AI presentation", zap.Error(err))
		} else {
			session.enhancer = enhancer
		}
	}

	return session, nil
}

// searchTurn runs one interactive query, asking clarifying questions when
// the criteria is too vague.
func (s *searchSession) searchTurn(ctx context.Context, text string) error {
	if s.catalog.Len() == 0 {
		fmt.Println(noDataMessage)
		return errExit
	}

	criteria, err := s.clarifiedCriteria(text)
	if err != nil {
		return err
	}

	results := s.capResults(s.engine.Filter(s.catalog, criteria))
	fmt.Println(s.render(ctx, criteria.RawQuery, results))
	return nil
}

// clarifiedCriteria interprets the query and keeps asking clarifying
// questions until the criteria is specific enough. Follow-up answers are
// merged by re-interpreting the concatenated text, so a later mention still
// overrides an earlier one; the merged criteria goes back through the policy
// since an answer may match nothing in the vocabulary. Only an explicit
// empty answer opts into searching everything.
func (s *searchSession) clarifiedCriteria(text string) (query.Criteria, error) {
	criteria := s.interpreter.Interpret(text)

	for {
		need, questions := s.policy.Needs(criteria)
		if !need {
			return criteria, nil
		}

		fmt.Println(renderQuestions(questions))

		answer, err := s.ask("Details (or press enter to search everything)")
		if err != nil {
			return criteria, err
		}

		if strings.TrimSpace(answer) == "" {
			criteria.Broadened = true
			return criteria, nil
		}

		text = text + " " + answer
		criteria = s.interpreter.Interpret(text)
	}
}

// answer handles a single one-shot query. Clarifying questions are printed
// instead of prompted since there is no interactive turn to collect answers.
func (s *searchSession) answer(ctx context.Context, text string) string {
	if s.catalog.Len() == 0 {
		return noDataMessage
	}

	criteria := s.interpreter.Interpret(text)

	if need, questions := s.policy.Needs(criteria); need {
		return renderQuestions(questions)
	}

	results := s.capResults(s.engine.Filter(s.catalog, criteria))
	return s.render(ctx, criteria.RawQuery, results)
}

// capResults trims the ordered result list to the --top flag, keeping the
// first entries since filter output preserves catalog order.
func (s *searchSession) capResults(results []match.Result) []match.Result {
	if s.maxResults > 0 && len(results) > s.maxResults {
		return results[:s.maxResults]
	}
	return results
}

// render prefers the AI presentation and falls back to the plain renderer on
// any enhancer failure. The result list itself is computed before either
// path, so presentation can never change what matched.
func (s *searchSession) render(ctx context.Context, rawQuery string, results []match.Result) string {
	if s.enhancer == nil || len(results) == 0 {
		return renderResults(results)
	}

	enhanced, err := s.enhancer.Enhance(ctx, rawQuery, results)
	if err != nil {
		s.logger.Warn("AI presentation failed, falling back to plain output", zap.Error(err))
		return renderResults(results)
	}

	return enhanced
}

func newEnhancer(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Enhancer, error) {
	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	presenterLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	return gemini.NewPresenter(generator, cfg.Gemini.MaxLogLength, presenterLogger), nil
}
