package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/markdown2resume/md2resume/internal/keywords"
	"github.com/markdown2resume/md2resume/internal/logger"
	"github.com/markdown2resume/md2resume/internal/report"
	"github.com/markdown2resume/md2resume/internal/skills"
)

const (
	app = "md2resume"

	PromptYes = "Yes"
	PromptNo  = "No"
)

type Config struct {
	OutputDir   string    `mapstructure:"output-dir"`
	TopKeywords int       `mapstructure:"top-keywords"`
	ExtraSkills []string  `mapstructure:"extra-skills"`
	AI          *AIConfig `mapstructure:"ai"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "md2resume is a toolkit for markdown resumes: keyword analysis against job descriptions, PDF/DOCX conversion, ATS checks and AI review",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is md2resume.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Secrets like GEMINI_API_KEY may live in a local .env file.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional unless explicitly requested.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.OutputDir == "" {
		config.OutputDir = report.DefaultOutputDir
	}
	if config.TopKeywords <= 0 {
		config.TopKeywords = keywords.DefaultTopN
	}

	return config, nil
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

// newVocabulary builds a fresh skill vocabulary with any user-configured
// additions, leaving the package default untouched.
func newVocabulary(config *Config) *skills.Vocabulary {
	vocab := skills.NewVocabulary()
	if config != nil {
		vocab.Extend(config.ExtraSkills...)
	}
	return vocab
}

// confirmOverwrite asks for confirmation before clobbering an existing file.
// A missing file or the force flag skip the prompt.
func confirmOverwrite(path string, force bool) (bool, error) {
	if force {
		return true, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return true, nil
	}

	prompt := promptui.Select{
		Label: fmt.Sprintf("%s already exists, overwrite?", path),
		Items: []string{PromptYes, PromptNo},
	}

	_, answer, err := prompt.Run()
	if err != nil {
		return false, err
	}

	return answer == PromptYes, nil
}
