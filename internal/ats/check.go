package ats

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"

	"github.com/markdown2resume/md2resume/internal/convert"
)

// Status classifies the outcome of one compliance check.
type Status string

const (
	StatusPass Status = "PASS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result describes the outcome of a single named check.
type Result struct {
	Status Status
	Name   string
	Detail string
}

// Report collects all check results for one file.
type Report struct {
	File    string
	Results []Result
}

// Failed reports whether any check failed outright.
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		if res.Status == StatusFail {
			return true
		}
	}
	return false
}

// Warnings returns the number of WARN results.
func (r *Report) Warnings() int {
	count := 0
	for _, res := range r.Results {
		if res.Status == StatusWarn {
			count++
		}
	}
	return count
}

// atsSafeFonts are fonts common ATS parsers handle without substitution.
var atsSafeFonts = map[string]bool{
	"Calibri":         true,
	"Arial":           true,
	"Times New Roman": true,
	"Helvetica":       true,
	"Georgia":         true,
	"Cambria":         true,
}

var fontRE = regexp.MustCompile(`w:ascii="([^"]+)"`)

// CheckFile runs the compliance checks matching the file's format. Only
// generated .docx and .pdf files are supported.
func CheckFile(path string, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Result
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		results, err = checkDOCX(path)
	case ".pdf":
		results, err = checkPDF(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .docx or .pdf", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	report := &Report{File: path, Results: results}
	for _, res := range report.Results {
		logger.Info("ats check",
			zap.String("file", path),
			zap.String("status", string(res.Status)),
			zap.String("check", res.Name),
			zap.String("detail", res.Detail),
		)
	}

	return report, nil
}

func checkDOCX(path string) ([]Result, error) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening docx %q: %w", path, err)
	}
	defer reader.Close()

	content := reader.Editable().GetContent()
	return checkDOCXContent(content), nil
}

// checkDOCXContent inspects the raw document XML. Split out from file access
// for testing.
func checkDOCXContent(content string) []Result {
	results := make([]Result, 0, 4)

	headings := strings.Count(content, `w:val="Heading`)
	if headings > 0 {
		results = append(results, Result{StatusPass, "heading styles",
			fmt.Sprintf("%d built-in heading paragraphs found", headings)})
	} else {
		results = append(results, Result{StatusWarn, "heading styles",
			"no built-in heading styles found - ATS may not parse sections"})
	}

	unsafe := make([]string, 0)
	seen := make(map[string]bool)
	for _, match := range fontRE.FindAllStringSubmatch(content, -1) {
		font := match[1]
		if !atsSafeFonts[font] && !seen[font] {
			seen[font] = true
			unsafe = append(unsafe, font)
		}
	}
	if len(unsafe) > 0 {
		results = append(results, Result{StatusWarn, "fonts",
			"non-standard fonts: " + strings.Join(unsafe, ", ")})
	} else {
		results = append(results, Result{StatusPass, "fonts", "only ATS-safe fonts used"})
	}

	if convert.ContainsEmoji(content) {
		results = append(results, Result{StatusFail, "emoji",
			"emoji characters present - many ATS parsers drop or garble them"})
	} else {
		results = append(results, Result{StatusPass, "emoji", "no emoji characters"})
	}

	if strings.Contains(content, "<w:tbl>") {
		results = append(results, Result{StatusWarn, "tables",
			"tables present - column order may be lost during parsing"})
	} else {
		results = append(results, Result{StatusPass, "tables", "no tables"})
	}

	return results
}

func checkPDF(path string) ([]Result, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf %q: %w", path, err)
	}
	defer file.Close()

	var text bytes.Buffer
	plain, err := reader.GetPlainText()
	if err == nil {
		_, err = text.ReadFrom(plain)
	}
	if err != nil {
		return []Result{{StatusFail, "extractable text",
			fmt.Sprintf("text extraction failed: %v", err)}}, nil
	}

	return checkPDFText(text.String(), reader.NumPage()), nil
}

// checkPDFText inspects extracted text. Split out from file access for testing.
func checkPDFText(text string, pages int) []Result {
	results := make([]Result, 0, 3)

	if strings.TrimSpace(text) == "" {
		results = append(results, Result{StatusFail, "extractable text",
			"no extractable text - the pdf is likely image-based"})
	} else {
		results = append(results, Result{StatusPass, "extractable text",
			fmt.Sprintf("%d characters extracted", len(text))})
	}

	if convert.ContainsEmoji(text) {
		results = append(results, Result{StatusFail, "emoji",
			"emoji characters present - many ATS parsers drop or garble them"})
	} else {
		results = append(results, Result{StatusPass, "emoji", "no emoji characters"})
	}

	if pages > 2 {
		results = append(results, Result{StatusWarn, "page count",
			fmt.Sprintf("%d pages - resumes over 2 pages are often truncated", pages)})
	} else {
		results = append(results, Result{StatusPass, "page count",
			fmt.Sprintf("%d page(s)", pages)})
	}

	return results
}
