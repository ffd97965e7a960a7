package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/markdown2resume/md2resume/internal/ai"
	"github.com/markdown2resume/md2resume/internal/ai/gemini"
	applog "github.com/markdown2resume/md2resume/internal/logger"
	"github.com/markdown2resume/md2resume/internal/secrets"
)

// newProofreader builds the model-backed proofreader for the typos command.
func newProofreader(ctx context.Context, config *Config, logger *zap.Logger) (ai.Proofreader, error) {
	generator, geminiCfg, err := newGenerator(ctx, config, logger)
	if err != nil {
		return nil, err
	}

	return gemini.NewProofreader(generator, 0, geminiCfg.MaxLogLength, logger), nil
}

// newFitAnalyzer builds the model-backed fit analyzer for the fit command.
func newFitAnalyzer(ctx context.Context, config *Config, logger *zap.Logger) (ai.FitAnalyzer, error) {
	generator, geminiCfg, err := newGenerator(ctx, config, logger)
	if err != nil {
		return nil, err
	}

	return gemini.NewFitAnalyzer(generator, geminiCfg.MaxLogLength, logger), nil
}

// newGenerator builds the Gemini client for the AI-backed commands from the
// configuration and ambient secrets.
func newGenerator(ctx context.Context, config *Config, logger *zap.Logger) (*gemini.Generator, *GeminiConfig, error) {
	aiCfg := config.AI
	if aiCfg == nil {
		aiCfg = &AIConfig{}
	}

	provider := strings.TrimSpace(strings.ToLower(aiCfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, nil, fmt.Errorf("unsupported ai provider: %s", aiCfg.Provider)
	}

	geminiCfg := aiCfg.Gemini
	if geminiCfg == nil {
		geminiCfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: geminiCfg.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	fields := applog.StringFields(
		applog.StringField{Key: applog.FieldProvider, Value: "gemini"},
		applog.StringField{Key: applog.FieldModel, Value: geminiCfg.Model},
	)
	genLogger := logger.With(append(fields, zap.Int("ai_retry_attempts", geminiCfg.MaxRetries))...)

	generator, err := gemini.NewGenerator(ctx, apiKey, geminiCfg.Model, geminiCfg.MaxRetries, genLogger)
	if err != nil {
		return nil, nil, err
	}

	return generator, geminiCfg, nil
}
