package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/markdown2resume/md2resume/internal/ai"
	"github.com/markdown2resume/md2resume/internal/keywords"
)

// DefaultOutputDir is where reports land when no explicit output path is given.
const DefaultOutputDir = "outputs"

var tierLabels = map[keywords.Tier]string{
	keywords.TierStrongMatch:      "**Excellent match!** Your resume aligns well with the job requirements.",
	keywords.TierGoodMatch:        "**Good match** with room for improvement. Consider the suggestions below.",
	keywords.TierModerateRevision: "**Moderate match.** Targeted updates are needed to align with the job requirements.",
	keywords.TierMajorRevision:    "**Low match.** Significant improvements needed to align with job requirements.",
}

var tierRecommendations = map[keywords.Tier][]string{
	keywords.TierMajorRevision: {
		"- **Major revision needed**: Your resume needs significant updates to match this position",
		"- **Incorporate keywords**: Naturally include missing keywords in your experience descriptions",
	},
	keywords.TierModerateRevision: {
		"- **Moderate revision needed**: Rework the most relevant sections to mirror the job requirements",
		"- **Incorporate keywords**: Naturally include missing keywords in your experience descriptions",
	},
	keywords.TierGoodMatch: {
		"- **Close the remaining gaps**: Add any of the missing keywords you have real experience with",
	},
	keywords.TierStrongMatch: {
		"- **Fine-tune wording**: Your resume already covers the requirements; polish phrasing and ordering",
	},
}

var staticRecommendations = []string{
	"- **Quantify achievements**: Use numbers and metrics to demonstrate impact",
	"- **Mirror language**: Use similar terminology and phrases from the job description",
	"- **Highlight relevant experience**: Emphasize experiences that match the job requirements",
}

var improvementTips = []string{
	"1. **Don't just add keywords** - Integrate them naturally into your experience descriptions",
	"2. **Be honest** - Only include skills and keywords that accurately reflect your experience",
	"3. **Prioritize relevance** - Put the most relevant experience and skills first",
	"4. **Use action verbs** - Start bullet points with strong action verbs",
	"5. **Keep it concise** - Focus on achievements and impact, not just responsibilities",
}

// Renderer formats analysis results as markdown reports. The clock is
// injectable so report output stays byte-stable in tests.
type Renderer struct {
	now func() time.Time
}

// NewRenderer returns a renderer using the wall clock.
func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// NewRendererAt returns a renderer with a fixed clock.
func NewRendererAt(now func() time.Time) *Renderer {
	return &Renderer{now: now}
}

// Comparison renders the keyword match report for the given document pair.
func (r *Renderer) Comparison(rep *keywords.Report, resumeName, jobName string) string {
	var b strings.Builder

	b.WriteString("# Resume vs Job Description Analysis\n\n")
	fmt.Fprintf(&b, "**Resume:** `%s`\n", resumeName)
	fmt.Fprintf(&b, "**Job Description:** `%s`\n", jobName)
	fmt.Fprintf(&b, "**Generated:** %s\n\n", r.now().Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## Overall Match Score: %.1f%%\n\n", rep.Score)
	b.WriteString(tierLabels[rep.Tier] + "\n\n")

	b.WriteString("## Matched Keywords\n\n")
	if len(rep.Matched) > 0 {
		b.WriteString("These important keywords appear in both your resume and the job description:\n\n")
		b.WriteString(backtickedList(rep.Matched) + "\n\n")
	} else {
		b.WriteString("No significant keyword matches found.\n\n")
	}

	b.WriteString("## Missing Keywords\n\n")
	if len(rep.Missing) > 0 {
		b.WriteString("Consider incorporating these keywords from the job description:\n\n")
		for _, kw := range rep.Missing {
			fmt.Fprintf(&b, "- `%s` (appears %d times in job description)\n", kw.Token, kw.Count)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("All major keywords are covered!\n\n")
	}

	b.WriteString("## Matched Technical Skills\n\n")
	if len(rep.SkillsMatched) > 0 {
		b.WriteString("Great! You have these required technical skills:\n\n")
		for _, skill := range rep.SkillsMatched {
			fmt.Fprintf(&b, "- `%s`\n", skill)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("No required technical skills from the job description were found in your resume.\n\n")
	}

	b.WriteString("## Top Keywords from Job Description\n\n")
	b.WriteString("Focus on these frequently mentioned terms:\n\n")
	for _, kw := range rep.TopJobKeywords {
		fmt.Fprintf(&b, "- `%s` (%d occurrences)\n", kw.Token, kw.Count)
	}
	b.WriteString("\n")

	b.WriteString("## Recommendations\n\n")
	for _, rec := range tierRecommendations[rep.Tier] {
		b.WriteString(rec + "\n")
	}
	for _, rec := range staticRecommendations {
		b.WriteString(rec + "\n")
	}

	b.WriteString("\n## Tips for Improvement\n\n")
	for _, tip := range improvementTips {
		b.WriteString(tip + "\n")
	}

	return b.String()
}

// Proofread renders the typo-check result.
func (r *Renderer) Proofread(res *ai.ProofreadResult, resumeName string) string {
	var b strings.Builder

	b.WriteString("# Resume Proofreading Report\n\n")
	fmt.Fprintf(&b, "**Resume:** `%s`\n", resumeName)
	fmt.Fprintf(&b, "**Generated:** %s\n\n", r.now().Format("2006-01-02 15:04:05"))

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Total issues: %d\n", res.Summary.TotalErrors)
	fmt.Fprintf(&b, "- Spelling: %d\n", res.Summary.SpellingErrors)
	fmt.Fprintf(&b, "- Grammar: %d\n", res.Summary.GrammarErrors)
	fmt.Fprintf(&b, "- Other: %d\n\n", res.Summary.OtherErrors)

	if len(res.Issues) == 0 {
		b.WriteString("No issues found. Your resume looks clean!\n")
		return b.String()
	}

	b.WriteString("## Issues\n\n")
	for i, issue := range res.Issues {
		fmt.Fprintf(&b, "### %d. %s (%s)\n\n", i+1, issue.Type, issue.Line)
		fmt.Fprintf(&b, "- Found: `%s`\n", issue.Text)
		fmt.Fprintf(&b, "- Suggested: `%s`\n", issue.Correction)
		if issue.Explanation != "" {
			fmt.Fprintf(&b, "- Why: %s\n", issue.Explanation)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Fit renders the AI job-fit analysis.
func (r *Renderer) Fit(rep *ai.FitReport, resumeName, jobName string) string {
	var b strings.Builder

	b.WriteString("# AI Job Fit Analysis\n\n")
	fmt.Fprintf(&b, "**Resume:** `%s`\n", resumeName)
	fmt.Fprintf(&b, "**Job Description:** `%s`\n", jobName)
	fmt.Fprintf(&b, "**Generated:** %s\n\n", r.now().Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## Fit Score: %.0f%%\n\n", rep.Score)
	if rep.Summary != "" {
		b.WriteString(rep.Summary + "\n\n")
	}

	if len(rep.Strengths) > 0 {
		b.WriteString("## Strengths\n\n")
		for _, s := range rep.Strengths {
			fmt.Fprintf(&b, "- **%s**: %s\n", s.Point, s.Relevance)
		}
		b.WriteString("\n")
	}

	if len(rep.Gaps) > 0 {
		b.WriteString("## Gaps\n\n")
		for _, g := range rep.Gaps {
			fmt.Fprintf(&b, "- **%s** (%s)", g.Gap, g.Severity)
			if g.Suggestion != "" {
				fmt.Fprintf(&b, ": %s", g.Suggestion)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Keyword Analysis\n\n")
	if len(rep.Keywords.Present) > 0 {
		b.WriteString("Present in resume:\n\n")
		b.WriteString(backtickedList(rep.Keywords.Present) + "\n\n")
	}
	if len(rep.Keywords.Missing) > 0 {
		b.WriteString("Missing from resume:\n\n")
		b.WriteString(backtickedList(rep.Keywords.Missing) + "\n\n")
	}

	if len(rep.Suggestions) > 0 {
		b.WriteString("## Suggestions\n\n")
		for i, s := range rep.Suggestions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}

	return b.String()
}

// WriteFile writes the report, creating parent directories as needed.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory %q: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing report to %q: %w", path, err)
	}

	return nil
}

// DefaultPath builds the timestamped default output path for a report kind.
func DefaultPath(kind string, now time.Time) string {
	name := fmt.Sprintf("%s_%s.md", kind, now.Format("20060102_150405"))
	return filepath.Join(DefaultOutputDir, name)
}

func backtickedList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}
	return strings.Join(quoted, ", ")
}
