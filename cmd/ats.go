package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/markdown2resume/md2resume/internal/ats"
)

var atsCmd = &cobra.Command{
	Use:   "ats <resume.docx|resume.pdf>",
	Short: "Check a converted resume for ATS compatibility problems",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		checkATS(args)
	},
}

func init() {
	rootCmd.AddCommand(atsCmd)
}

func checkATS(args []string) {
	logger := newLogger()

	rep, err := ats.CheckFile(args[0], logger)
	if err != nil {
		logger.Fatal("running ats checks", zap.Error(err))
	}

	if rep.Failed() {
		logger.Error("ats check failed",
			zap.String("file", rep.File),
			zap.Int("warnings", rep.Warnings()),
		)
		os.Exit(1)
	}

	logger.Info("ats check passed",
		zap.String("file", rep.File),
		zap.Int("warnings", rep.Warnings()),
	)
}
