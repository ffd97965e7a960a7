package keywords

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/markdown2resume/md2resume/internal/document"
)

func TestCompareScenarioFromSampledReport(t *testing.T) {
	c := NewComparer(nil)

	report, err := c.Compare(
		"machine learning engineer",
		"machine learning engineer with deep learning experience",
		DefaultTopN,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.JobKeywordCount != 5 {
		t.Fatalf("expected 5 unique job keywords, got %d", report.JobKeywordCount)
	}

	expectMatched := []string{"engineer", "learning", "machine"}
	if !reflect.DeepEqual(report.Matched, expectMatched) {
		t.Fatalf("expected matched %v, got %v", expectMatched, report.Matched)
	}

	if report.Score != 60.0 {
		t.Fatalf("expected score 60.0, got %v", report.Score)
	}
	if report.Tier != TierGoodMatch {
		t.Fatalf("expected good-match tier, got %s", report.Tier)
	}

	expectMissing := []Keyword{{Token: "deep", Count: 1}, {Token: "experience", Count: 1}}
	if !reflect.DeepEqual(report.Missing, expectMissing) {
		t.Fatalf("expected missing %v, got %v", expectMissing, report.Missing)
	}
}

func TestCompareEmptyResume(t *testing.T) {
	c := NewComparer(nil)

	report, err := c.Compare("", "python developer with django", DefaultTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Matched) != 0 {
		t.Fatalf("expected no matches, got %v", report.Matched)
	}
	if report.Score != 0 {
		t.Fatalf("expected zero score, got %v", report.Score)
	}
	if report.Tier != TierMajorRevision {
		t.Fatalf("expected major-revision tier, got %s", report.Tier)
	}
}

func TestCompareEmptyJobDescription(t *testing.T) {
	c := NewComparer(nil)

	report, err := c.Compare("go developer", "", DefaultTopN)
	if err != nil {
		t.Fatalf("empty job description must not be an error: %v", err)
	}
	if report.Score != 0 {
		t.Fatalf("expected defined zero score, got %v", report.Score)
	}
	if report.JobKeywordCount != 0 {
		t.Fatalf("expected empty job keyword set, got %d", report.JobKeywordCount)
	}
}

func TestCompareInvalidTopN(t *testing.T) {
	c := NewComparer(nil)

	for _, n := range []int{0, -3} {
		_, err := c.Compare("resume", "job", n)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for topN=%d, got %v", n, err)
		}
	}
}

func TestCompareMissingTruncation(t *testing.T) {
	c := NewComparer(nil)

	job := strings.Join([]string{
		strings.Repeat("vision ", 11),
		strings.Repeat("learning ", 9),
		strings.Repeat("design ", 5),
	}, " ")

	report, err := c.Compare("", job, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expect := []Keyword{{Token: "vision", Count: 11}, {Token: "learning", Count: 9}}
	if !reflect.DeepEqual(report.Missing, expect) {
		t.Fatalf("expected %v, got %v", expect, report.Missing)
	}
}

func TestCompareSkillsRequireJobMention(t *testing.T) {
	c := NewComparer(nil)

	// "docker" is in the resume only, "kafka" in the job only, "aws" in both.
	report, err := c.Compare(
		"cloud engineer using aws and docker",
		"looking for aws experience and kafka knowledge",
		DefaultTopN,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(report.SkillsMatched, []string{"aws"}) {
		t.Fatalf("expected only aws matched, got %v", report.SkillsMatched)
	}
}

func TestComparePartitionsJobKeywords(t *testing.T) {
	c := NewComparer(nil)

	resume := "golang microservices kubernetes grpc monitoring"
	job := "golang kubernetes terraform observability grpc incident response"

	// Large topN so Missing is not truncated.
	report, err := c.Compare(resume, job, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matched := make(map[string]bool, len(report.Matched))
	for _, token := range report.Matched {
		matched[token] = true
	}
	for _, kw := range report.Missing {
		if matched[kw.Token] {
			t.Fatalf("token %q is both matched and missing", kw.Token)
		}
	}
	if len(report.Matched)+len(report.Missing) != report.JobKeywordCount {
		t.Fatalf("matched (%d) + missing (%d) != job unique (%d)",
			len(report.Matched), len(report.Missing), report.JobKeywordCount)
	}

	resumeTokens := NewFrequency(Tokenize(resume))
	jobTokens := NewFrequency(Tokenize(job))
	for _, token := range report.Matched {
		if !resumeTokens.Has(token) || !jobTokens.Has(token) {
			t.Fatalf("matched token %q not present in both documents", token)
		}
	}
}

func TestCompareIsDeterministic(t *testing.T) {
	c := NewComparer(nil)

	resume := "python pandas numpy sql airflow spark"
	job := "python sql spark kafka delta airflow python sql"

	first, err := c.Compare(resume, job, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.Compare(resume, job, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reports differ across identical runs:\n%+v\n%+v", first, second)
	}
}

func TestTierBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score  float64
		expect Tier
	}{
		{0, TierMajorRevision},
		{29.999, TierMajorRevision},
		{30.0, TierModerateRevision},
		{59.999, TierModerateRevision},
		{60.0, TierGoodMatch},
		{79.999, TierGoodMatch},
		{80.0, TierStrongMatch},
		{100, TierStrongMatch},
	}

	for _, tt := range tests {
		if got := TierFor(tt.score); got != tt.expect {
			t.Fatalf("score %v: expected %s, got %s", tt.score, tt.expect, got)
		}
	}
}

func TestCompareDocuments(t *testing.T) {
	c := NewComparer(nil)

	resume := document.New("resume.md", "# Jane\n\nMachine learning engineer", document.RoleResume)
	job := document.New("job.md", "Machine learning engineer with deep learning experience", document.RoleJob)

	report, err := c.CompareDocuments(resume, job, DefaultTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Score != 60.0 {
		t.Fatalf("expected score 60.0, got %v", report.Score)
	}

	if _, err := c.CompareDocuments(nil, job, DefaultTopN); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil resume, got %v", err)
	}
	if _, err := c.CompareDocuments(resume, nil, DefaultTopN); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil job, got %v", err)
	}
}
