package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Role is the logical role of a loaded document.
type Role string

const (
	RoleResume Role = "resume"
	RoleJob    Role = "job description"
)

// Document holds the raw content of one input file. Immutable once loaded.
type Document struct {
	Name string
	Role Role
	Raw  string

	text string
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Load reads a markdown or plain-text file from path. Missing or unreadable
// paths return a wrapped IO error.
func Load(path string, role Role) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s from %q: %w", role, path, err)
	}

	return New(filepath.Base(path), string(data), role), nil
}

// New builds a document from in-memory content.
func New(name, raw string, role Role) *Document {
	return &Document{
		Name: name,
		Role: role,
		Raw:  raw,
		text: stripMarkdown(raw),
	}
}

// PlainText returns the document content with markdown syntax removed.
func (d *Document) PlainText() string {
	if d == nil {
		return ""
	}
	return d.text
}

// stripMarkdown renders the markdown to HTML and extracts the visible text,
// so headers, links and emphasis markers do not leak into tokenization.
func stripMarkdown(raw string) string {
	var html bytes.Buffer
	if err := markdown.Convert([]byte(raw), &html); err != nil {
		return raw
	}

	doc, err := goquery.NewDocumentFromReader(&html)
	if err != nil {
		return raw
	}

	return doc.Text()
}
