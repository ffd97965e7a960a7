package keywords

import (
	"errors"
	"fmt"
	"sort"

	"github.com/markdown2resume/md2resume/internal/document"
	"github.com/markdown2resume/md2resume/internal/skills"
)

// ErrInvalidInput marks comparison calls with absent documents or a
// non-positive topN.
var ErrInvalidInput = errors.New("invalid input")

// DefaultTopN is the number of missing/top keywords reported when the caller
// does not override it.
const DefaultTopN = 15

// Tier is the coarse qualitative bucket derived from the match score.
type Tier string

const (
	TierMajorRevision    Tier = "major-revision"
	TierModerateRevision Tier = "moderate-revision"
	TierGoodMatch        Tier = "good-match"
	TierStrongMatch      Tier = "strong-match"
)

// TierFor maps a match score to its recommendation tier. Bounds are inclusive
// on the lower end, exclusive on the upper.
func TierFor(score float64) Tier {
	switch {
	case score < 30:
		return TierMajorRevision
	case score < 60:
		return TierModerateRevision
	case score < 80:
		return TierGoodMatch
	default:
		return TierStrongMatch
	}
}

// Report is the immutable result of one resume/job comparison.
type Report struct {
	// Score is 100 * |matched| / |job unique keywords|, clamped to [0,100].
	Score float64
	Tier  Tier
	// Matched keywords appear in both documents, sorted alphabetically.
	Matched []string
	// Missing keywords appear only in the job description, ranked by
	// descending job frequency and truncated to topN.
	Missing []Keyword
	// SkillsMatched are vocabulary skills required by the job description and
	// present in the resume, sorted alphabetically.
	SkillsMatched []string
	// TopJobKeywords are the job description's keywords ranked by descending
	// count, truncated to topN.
	TopJobKeywords []Keyword
	// JobKeywordCount is the size of the job description's unique keyword set.
	JobKeywordCount int
}

// Comparer scores resumes against job descriptions using a fixed skill
// vocabulary. Compare is a pure function; a single Comparer may be used from
// multiple goroutines.
type Comparer struct {
	vocab *skills.Vocabulary
}

// NewComparer returns a Comparer backed by the given vocabulary, or the
// process-wide default when nil.
func NewComparer(vocab *skills.Vocabulary) *Comparer {
	if vocab == nil {
		vocab = skills.Default()
	}
	return &Comparer{vocab: vocab}
}

// Compare builds frequency tables for both texts and derives the match report.
// Empty texts are permitted and produce a zero-score report; a non-positive
// topN is an ErrInvalidInput.
func (c *Comparer) Compare(resumeText, jobText string, topN int) (*Report, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("%w: topN must be positive, got %d", ErrInvalidInput, topN)
	}

	resumeFreq := NewFrequency(Tokenize(resumeText))
	jobFreq := NewFrequency(Tokenize(jobText))

	matched := make([]string, 0, jobFreq.Len())
	missing := make([]Keyword, 0, jobFreq.Len())
	skillsMatched := make([]string, 0)

	for _, token := range jobFreq.Tokens() {
		if resumeFreq.Has(token) {
			matched = append(matched, token)
			if c.vocab.Contains(token) {
				skillsMatched = append(skillsMatched, token)
			}
			continue
		}
		missing = append(missing, Keyword{Token: token, Count: jobFreq.Count(token)})
	}

	score := 0.0
	if jobFreq.Len() > 0 {
		score = 100 * float64(len(matched)) / float64(jobFreq.Len())
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	sort.Strings(matched)
	sort.Strings(skillsMatched)
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Count > missing[j].Count
	})
	if len(missing) > topN {
		missing = missing[:topN]
	}

	return &Report{
		Score:           score,
		Tier:            TierFor(score),
		Matched:         matched,
		Missing:         missing,
		SkillsMatched:   skillsMatched,
		TopJobKeywords:  jobFreq.TopN(topN),
		JobKeywordCount: jobFreq.Len(),
	}, nil
}

// CompareDocuments compares two loaded documents. Both documents are required;
// a nil document is an ErrInvalidInput, while empty content is not.
func (c *Comparer) CompareDocuments(resume, job *document.Document, topN int) (*Report, error) {
	if resume == nil || job == nil {
		return nil, fmt.Errorf("%w: resume and job documents are required", ErrInvalidInput)
	}
	return c.Compare(resume.PlainText(), job.PlainText(), topN)
}
