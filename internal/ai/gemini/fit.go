package gemini

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/markdown2resume/md2resume/internal/ai"
	"github.com/markdown2resume/md2resume/internal/document"
	"github.com/markdown2resume/md2resume/internal/logger"
)

//go:embed prompt_fit.md
var fitPromptTemplate string

// FitAnalyzer scores how well a resume matches a job description.
type FitAnalyzer struct {
	generator contentGenerator
	maxLogLen int
	logger    *zap.Logger
}

// NewFitAnalyzer creates a FitAnalyzer. A zero maxLogLength selects a
// sensible default.
func NewFitAnalyzer(generator contentGenerator, maxLogLength int, log *zap.Logger) *FitAnalyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &FitAnalyzer{
		generator: generator,
		maxLogLen: maxLogLength,
		logger:    log,
	}
}

// Analyze asks the model to evaluate the resume against the job description
// and returns the structured report.
func (a *FitAnalyzer) Analyze(ctx context.Context, resume, job *document.Document) (*ai.FitReport, error) {
	if resume == nil {
		return nil, errors.New("resume document is required")
	}
	if job == nil {
		return nil, errors.New("job description document is required")
	}

	a.logger.Info("analyzing job fit",
		zap.String(logger.FieldDocument, resume.Name),
		zap.String(logger.FieldModel, a.generator.Model()),
	)

	prompt := strings.ReplaceAll(fitPromptTemplate, "{{RESUME}}", resume.PlainText())
	prompt = strings.ReplaceAll(prompt, "{{JOB}}", job.PlainText())

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("analyzing job fit: %w", err)
	}

	a.logger.Debug("received response",
		zap.String("preview", logger.TruncateForLog(raw, a.maxLogLen)),
	)

	var report ai.FitReport
	if err := decodeResponse(raw, &report); err != nil {
		return nil, err
	}

	if report.Score < 0 {
		report.Score = 0
	}
	if report.Score > 100 {
		report.Score = 100
	}
	report.Raw = raw

	return &report, nil
}
