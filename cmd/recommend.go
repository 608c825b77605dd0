package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pateldev/intern-scout/internal/catalog"
	"github.com/pateldev/intern-scout/internal/logger"
	"github.com/pateldev/intern-scout/internal/match"
	"github.com/pateldev/intern-scout/internal/profile"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank internships against a resume text file",
	Run: func(cmd *cobra.Command, _ []string) {
		recommend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("resume-text", "r", "", "path to a plain-text resume")
	recommendCmd.Flags().IntP("top", "t", 0, "maximum number of recommendations to show")
	recommendCmd.Flags().StringP("catalog-file", "c", "", "internship listings file (csv or json)")

	recommendCmd.MarkFlagRequired("resume-text")
}

func recommend(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	catalogFile := strings.TrimSpace(cmd.Flag("catalog-file").Value.String())
	if catalogFile == "" {
		catalogFile = strings.TrimSpace(config.CatalogFile)
	}
	if catalogFile == "" {
		logger.Fatal("catalog file is not configured (set catalog-file in the config or pass --catalog-file)")
	}

	cat, err := catalog.LoadFile(catalogFile)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}

	resumeFile := cmd.Flag("resume-text").Value.String()
	raw, err := os.ReadFile(resumeFile)
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err))
	}

	vocab := config.vocabulary()
	parsed := profile.NewParser(vocab.SkillTokens(), logger).ParseText(string(raw))

	logger.Info("parsed resume",
		zap.String("file", resumeFile),
		zap.Int("skills", len(parsed.Skills)),
		zap.Strings("education", parsed.EducationTerms),
	)

	topK := 0
	if config.Recommend != nil {
		topK = config.Recommend.TopK
	}
	if flagTop, err := cmd.Flags().GetInt("top"); err == nil && flagTop > 0 {
		topK = flagTop
	}

	result := match.NewRecommender(topK, logger).Recommend(cat, parsed)

	if result.EmptyProfile {
		fmt.Println("No recognizable skills were found in the resume, so there is nothing to rank. Add a skills section and try again.")
		return
	}

	if len(result.Results) == 0 {
		fmt.Println("No internships overlap with the skills in this resume.")
		return
	}

	fmt.Println(renderResults(result.Results))
}
