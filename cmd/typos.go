package cmd

import (
	"context"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/markdown2resume/md2resume/internal/document"
	"github.com/markdown2resume/md2resume/internal/report"
)

var typosCmd = &cobra.Command{
	Use:   "typos <resume.md>",
	Short: "Proofread a resume for spelling and grammar issues with Gemini",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		checkTypos(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(typosCmd)

	typosCmd.Flags().StringP("output", "o", "", "report path (default is a timestamped file under the output directory)")
}

func checkTypos(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	doc, err := document.Load(args[0], document.RoleResume)
	if err != nil {
		logger.Fatal("loading resume", zap.Error(err))
	}

	proofreader, err := newProofreader(ctx, config, logger)
	if err != nil {
		logger.Fatal("building proofreader", zap.Error(err))
	}

	result, err := proofreader.Check(ctx, doc)
	if err != nil {
		logger.Fatal("proofreading resume", zap.Error(err))
	}

	logger.Info("proofreading finished",
		zap.Int("total", result.Summary.TotalErrors),
		zap.Int("spelling", result.Summary.SpellingErrors),
		zap.Int("grammar", result.Summary.GrammarErrors),
	)

	content := report.NewRenderer().Proofread(result, doc.Name)

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		path = report.DefaultPath("typos", time.Now())
		if config.OutputDir != report.DefaultOutputDir {
			path = filepath.Join(config.OutputDir, filepath.Base(path))
		}
	}

	if err := report.WriteFile(path, content); err != nil {
		logger.Fatal("writing report", zap.Error(err))
	}

	logger.Info("report written", zap.String("path", path))
}
