package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadReadsMarkdownFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.md")
	content := "# Jane Doe\n\nMachine learning engineer.\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	doc, err := Load(path, RoleResume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Name != "resume.md" {
		t.Fatalf("expected base name, got %q", doc.Name)
	}
	if doc.Role != RoleResume {
		t.Fatalf("unexpected role %q", doc.Role)
	}
	if doc.Raw != content {
		t.Fatalf("raw content altered: %q", doc.Raw)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.md"), RoleJob)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "job description") {
		t.Fatalf("error should mention the document role: %v", err)
	}
}

func TestPlainTextStripsMarkdownSyntax(t *testing.T) {
	doc := New("resume.md", "## Experience\n\n**Built** [pipelines](https://example.com) with `Go`.\n", RoleResume)

	text := doc.PlainText()
	for _, marker := range []string{"##", "**", "](", "`"} {
		if strings.Contains(text, marker) {
			t.Fatalf("markdown marker %q leaked into plain text: %q", marker, text)
		}
	}
	for _, word := range []string{"Experience", "Built", "pipelines", "Go"} {
		if !strings.Contains(text, word) {
			t.Fatalf("expected %q in plain text: %q", word, text)
		}
	}
}

func TestPlainTextNilReceiver(t *testing.T) {
	var doc *Document
	if doc.PlainText() != "" {
		t.Fatalf("nil document should yield empty text")
	}
}
