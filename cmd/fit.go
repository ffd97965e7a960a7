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

var fitCmd = &cobra.Command{
	Use:   "fit <resume.md> <job-description.md>",
	Short: "Ask Gemini how well a resume fits a job description",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		analyzeFit(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(fitCmd)

	fitCmd.Flags().StringP("output", "o", "", "report path (default is a timestamped file under the output directory)")
}

func analyzeFit(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	resume, err := document.Load(args[0], document.RoleResume)
	if err != nil {
		logger.Fatal("loading resume", zap.Error(err))
	}

	job, err := document.Load(args[1], document.RoleJob)
	if err != nil {
		logger.Fatal("loading job description", zap.Error(err))
	}

	analyzer, err := newFitAnalyzer(ctx, config, logger)
	if err != nil {
		logger.Fatal("building fit analyzer", zap.Error(err))
	}

	fitReport, err := analyzer.Analyze(ctx, resume, job)
	if err != nil {
		logger.Fatal("analyzing job fit", zap.Error(err))
	}

	logger.Info("fit analysis finished",
		zap.Float64("score", fitReport.Score),
		zap.Int("strengths", len(fitReport.Strengths)),
		zap.Int("gaps", len(fitReport.Gaps)),
	)

	content := report.NewRenderer().Fit(fitReport, resume.Name, job.Name)

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		path = report.DefaultPath("fit", time.Now())
		if config.OutputDir != report.DefaultOutputDir {
			path = filepath.Join(config.OutputDir, filepath.Base(path))
		}
	}

	if err := report.WriteFile(path, content); err != nil {
		logger.Fatal("writing report", zap.Error(err))
	}

	logger.Info("report written", zap.String("path", path))
}
