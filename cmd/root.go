package cmd

import (
	"errors"
	"log"

	"github.com/pateldev/intern-scout/internal/query"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "intern-scout"
)

type Config struct {
	CatalogFile string            `mapstructure:"catalog-file"`
	Vocabulary  *VocabularyConfig `mapstructure:"vocabulary"`
	Clarify     *ClarifyConfig    `mapstructure:"clarify"`
	Matching    *MatchingConfig   `mapstructure:"matching"`
	Recommend   *RecommendConfig  `mapstructure:"recommend"`
	AI          *AIConfig         `mapstructure:"ai"`
}

type VocabularyConfig struct {
	Locations     []string            `mapstructure:"locations"`
	Skills        map[string][]string `mapstructure:"skills"`
	Organizations []string            `mapstructure:"organizations"`
}

type ClarifyConfig struct {
	MinDimensions int `mapstructure:"min-dimensions"`
	MaxQuestions  int `mapstructure:"max-questions"`
}

type MatchingConfig struct {
	SkillMode string `mapstructure:"skill-mode"`
}

type RecommendConfig struct {
	TopK int `mapstructure:"top-k"`
}

type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "intern-scout is a cli for filtering internship listings by plain-language queries and ranking them against a resume",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is intern-scout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// The config file is optional: every knob has a built-in default.
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// vocabulary builds the interpreter word lists from config, falling back to
// the built-in defaults for any list the config leaves empty.
func (c *Config) vocabulary() query.Vocabulary {
	vocab := query.DefaultVocabulary()
	if c == nil || c.Vocabulary == nil {
		return vocab
	}

	if len(c.Vocabulary.Locations) > 0 {
		vocab.Locations = c.Vocabulary.Locations
	}
	if len(c.Vocabulary.Skills) > 0 {
		vocab.SkillAliases = c.Vocabulary.Skills
	}
	if len(c.Vocabulary.Organizations) > 0 {
		vocab.Organizations = c.Vocabulary.Organizations
	}

	return vocab
}
