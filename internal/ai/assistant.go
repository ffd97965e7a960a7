package ai

import (
	"context"

	"github.com/markdown2resume/md2resume/internal/document"
)

// TypoIssue is a single problem reported by the proofreader.
type TypoIssue struct {
	Text        string `json:"text"`
	Line        string `json:"line"`
	Type        string `json:"type"`
	Correction  string `json:"correction"`
	Explanation string `json:"explanation"`
}

// ProofreadSummary aggregates issue counts across the whole document.
type ProofreadSummary struct {
	TotalErrors    int `json:"total_errors"`
	SpellingErrors int `json:"spelling_errors"`
	GrammarErrors  int `json:"grammar_errors"`
	OtherErrors    int `json:"other_errors"`
}

// ProofreadResult is the full proofreading outcome for one document.
type ProofreadResult struct {
	Issues  []TypoIssue
	Summary ProofreadSummary
	Raw     string
}

// Proofreader checks a resume for typos, grammar and formatting problems.
type Proofreader interface {
	Check(ctx context.Context, doc *document.Document) (*ProofreadResult, error)
}

// FitStrength is one area where the resume aligns with the job.
type FitStrength struct {
	Point     string `json:"point"`
	Relevance string `json:"relevance"`
}

// FitGap is one missing skill or experience area.
type FitGap struct {
	Gap        string `json:"gap"`
	Severity   string `json:"severity"`
	Suggestion string `json:"suggestion"`
}

// FitKeywords splits job-description keywords by their presence in the resume.
type FitKeywords struct {
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// FitReport is the model-backed job-fit assessment.
type FitReport struct {
	Score       float64       `json:"fit_score"`
	Summary     string        `json:"fit_summary"`
	Strengths   []FitStrength `json:"strengths"`
	Gaps        []FitGap      `json:"gaps"`
	Keywords    FitKeywords   `json:"keyword_analysis"`
	Suggestions []string      `json:"suggestions"`
	Raw         string        `json:"-"`
}

// FitAnalyzer scores how well a resume fits a job description.
type FitAnalyzer interface {
	Analyze(ctx context.Context, resume, job *document.Document) (*FitReport, error)
}
