package cmd

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/markdown2resume/md2resume/internal/document"
	"github.com/markdown2resume/md2resume/internal/keywords"
	"github.com/markdown2resume/md2resume/internal/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare <resume.md> <job-description.md>",
	Short: "Compare a resume against a job description and report keyword matches",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		compare(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringP("output", "o", "", "report path (default is a timestamped file under the output directory)")
	compareCmd.Flags().IntP("top", "t", keywords.DefaultTopN, "how many missing and top keywords to include")
}

func compare(cmd *cobra.Command, args []string) {
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

	topN := config.TopKeywords
	if cmd.Flags().Changed("top") {
		topN, _ = cmd.Flags().GetInt("top")
	}

	comparer := keywords.NewComparer(newVocabulary(config))
	rep, err := comparer.CompareDocuments(resume, job, topN)
	if err != nil {
		logger.Fatal("comparing documents", zap.Error(err))
	}

	logger.Info("comparison finished",
		zap.Float64("score", rep.Score),
		zap.String("tier", string(rep.Tier)),
		zap.Int("matched", len(rep.Matched)),
		zap.Int("missing", len(rep.Missing)),
	)

	content := report.NewRenderer().Comparison(rep, resume.Name, job.Name)

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		path = report.DefaultPath("comparison", time.Now())
		if config.OutputDir != report.DefaultOutputDir {
			path = filepath.Join(config.OutputDir, filepath.Base(path))
		}
	}

	if err := report.WriteFile(path, content); err != nil {
		logger.Fatal("writing report", zap.Error(err))
	}

	logger.Info("report written", zap.String("path", path))
}
