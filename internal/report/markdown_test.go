package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/markdown2resume/md2resume/internal/ai"
	"github.com/markdown2resume/md2resume/internal/keywords"
)

func fixedClock() func() time.Time {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func TestComparisonReportContent(t *testing.T) {
	rep := &keywords.Report{
		Score:           60.0,
		Tier:            keywords.TierGoodMatch,
		Matched:         []string{"engineer", "learning", "machine"},
		Missing:         []keywords.Keyword{{Token: "deep", Count: 1}, {Token: "experience", Count: 1}},
		SkillsMatched:   []string{"pytorch"},
		TopJobKeywords:  []keywords.Keyword{{Token: "learning", Count: 2}, {Token: "machine", Count: 1}},
		JobKeywordCount: 5,
	}

	r := NewRendererAt(fixedClock())
	out := r.Comparison(rep, "resume.md", "job.md")

	for _, expect := range []string{
		"## Overall Match Score: 60.0%",
		"**Good match**",
		"`engineer`, `learning`, `machine`",
		"- `deep` (appears 1 times in job description)",
		"- `pytorch`",
		"- `learning` (2 occurrences)",
		"**Resume:** `resume.md`",
		"**Generated:** 2026-03-14 09:30:00",
		"## Tips for Improvement",
	} {
		if !strings.Contains(out, expect) {
			t.Fatalf("report missing %q:\n%s", expect, out)
		}
	}
}

func TestComparisonReportIsDeterministic(t *testing.T) {
	rep := &keywords.Report{Score: 0, Tier: keywords.TierMajorRevision}
	r := NewRendererAt(fixedClock())

	if r.Comparison(rep, "a.md", "b.md") != r.Comparison(rep, "a.md", "b.md") {
		t.Fatalf("identical inputs produced different reports")
	}
}

func TestComparisonReportEmptySections(t *testing.T) {
	rep := &keywords.Report{Score: 12.5, Tier: keywords.TierMajorRevision}
	out := NewRendererAt(fixedClock()).Comparison(rep, "resume.md", "job.md")

	for _, expect := range []string{
		"No significant keyword matches found.",
		"All major keywords are covered!",
		"**Major revision needed**",
	} {
		if !strings.Contains(out, expect) {
			t.Fatalf("report missing %q:\n%s", expect, out)
		}
	}
}

func TestProofreadReport(t *testing.T) {
	res := &ai.ProofreadResult{
		Issues: []ai.TypoIssue{
			{Text: "recieve", Line: "12", Type: "spelling", Correction: "receive", Explanation: "i before e"},
		},
		Summary: ai.ProofreadSummary{TotalErrors: 1, SpellingErrors: 1},
	}

	out := NewRendererAt(fixedClock()).Proofread(res, "resume.md")

	for _, expect := range []string{"- Total issues: 1", "`recieve`", "`receive`", "i before e"} {
		if !strings.Contains(out, expect) {
			t.Fatalf("proofread report missing %q:\n%s", expect, out)
		}
	}
}

func TestFitReport(t *testing.T) {
	rep := &ai.FitReport{
		Score:       72,
		Summary:     "Solid backend fit.",
		Strengths:   []ai.FitStrength{{Point: "Go services", Relevance: "core stack"}},
		Gaps:        []ai.FitGap{{Gap: "Kafka", Severity: "minor", Suggestion: "mention event streaming work"}},
		Keywords:    ai.FitKeywords{Present: []string{"go"}, Missing: []string{"kafka"}},
		Suggestions: []string{"Lead with platform work"},
	}

	out := NewRendererAt(fixedClock()).Fit(rep, "resume.md", "job.md")

	for _, expect := range []string{
		"## Fit Score: 72%",
		"Solid backend fit.",
		"**Go services**: core stack",
		"**Kafka** (minor): mention event streaming work",
		"1. Lead with platform work",
	} {
		if !strings.Contains(out, expect) {
			t.Fatalf("fit report missing %q:\n%s", expect, out)
		}
	}
}

func TestWriteFileCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "outputs", "report.md")

	if err := WriteFile(path, "# hello\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written report: %v", err)
	}
	if string(data) != "# hello\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestDefaultPath(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	got := DefaultPath("comparison_report", ts)
	expect := filepath.Join("outputs", "comparison_report_20260314_093000.md")
	if got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}
