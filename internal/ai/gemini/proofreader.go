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

//go:embed prompt_typos.md
var typosPromptTemplate string

const (
	defaultChunkSize    = 3000
	defaultMaxLogLength = 200
)

// contentGenerator is the subset of Generator the AI tools depend on,
// kept narrow so tests can substitute a stub.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Proofreader checks a document for spelling and grammar issues by sending
// it to the model in line-aligned chunks.
type Proofreader struct {
	generator contentGenerator
	chunkSize int
	maxLogLen int
	logger    *zap.Logger
}

// NewProofreader creates a Proofreader. Zero values for chunkSize and
// maxLogLength select sensible defaults.
func NewProofreader(generator contentGenerator, chunkSize, maxLogLength int, log *zap.Logger) *Proofreader {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Proofreader{
		generator: generator,
		chunkSize: chunkSize,
		maxLogLen: maxLogLength,
		logger:    log,
	}
}

// Check proofreads the document and aggregates the issues found across all
// chunks into a single result.
func (p *Proofreader) Check(ctx context.Context, doc *document.Document) (*ai.ProofreadResult, error) {
	if doc == nil {
		return nil, errors.New("document is required")
	}

	chunks := splitIntoChunks(doc.PlainText(), p.chunkSize)
	result := &ai.ProofreadResult{}
	if len(chunks) == 0 {
		return result, nil
	}

	p.logger.Info("checking document for typos",
		zap.String(logger.FieldDocument, doc.Name),
		zap.String(logger.FieldModel, p.generator.Model()),
		zap.Int("chunks", len(chunks)),
	)

	var raws []string
	for i, chunk := range chunks {
		prompt := strings.ReplaceAll(typosPromptTemplate, "{{TEXT}}", chunk)

		p.logger.Debug("sending chunk",
			zap.Int("chunk", i+1),
			zap.String("preview", logger.TruncateForLog(chunk, p.maxLogLen)),
		)

		raw, err := p.generator.GenerateContent(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("checking chunk %d of %d: %w", i+1, len(chunks), err)
		}

		p.logger.Debug("received response",
			zap.Int("chunk", i+1),
			zap.String("preview", logger.TruncateForLog(raw, p.maxLogLen)),
		)

		var payload struct {
			Errors  []ai.TypoIssue      `json:"errors"`
			Summary ai.ProofreadSummary `json:"summary"`
		}
		if err := decodeResponse(raw, &payload); err != nil {
			return nil, fmt.Errorf("chunk %d of %d: %w", i+1, len(chunks), err)
		}

		result.Issues = append(result.Issues, payload.Errors...)
		raws = append(raws, raw)
	}

	// Per-chunk summaries from the model are unreliable, so the totals are
	// recomputed from the aggregated issues.
	for _, issue := range result.Issues {
		switch strings.ToLower(strings.TrimSpace(issue.Type)) {
		case "spelling":
			result.Summary.SpellingErrors++
		case "grammar":
			result.Summary.GrammarErrors++
		default:
			result.Summary.OtherErrors++
		}
	}
	result.Summary.TotalErrors = len(result.Issues)
	result.Raw = strings.Join(raws, "\n")

	return result, nil
}

// splitIntoChunks splits text into chunks of at most size characters without
// breaking lines. Blank input yields no chunks.
func splitIntoChunks(text string, size int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(text, "\n")

	var chunks []string
	var current strings.Builder
	for _, line := range lines {
		if current.Len() > 0 && current.Len()+len(line)+1 > size {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
