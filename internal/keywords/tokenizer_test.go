package keywords

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "empty input",
			input:  "",
			expect: nil,
		},
		{
			name:   "whitespace only",
			input:  "  \n\t ",
			expect: nil,
		},
		{
			name:   "lowercases and drops stop-words",
			input:  "Machine Learning Engineer with deep learning experience",
			expect: []string{"machine", "learning", "engineer", "deep", "learning", "experience"},
		},
		{
			name:   "drops single-rune tokens",
			input:  "a b go",
			expect: []string{"go"},
		},
		{
			name:   "markdown markers act as separators",
			input:  "## Skills\n- **Python** and [Django](https://example.com)",
			expect: []string{"skills", "python", "django", "https", "example", "com"},
		},
		{
			name:   "keeps tech suffixes",
			input:  "Worked with C++, C# and Go.",
			expect: []string{"worked", "c++", "c#", "go"},
		},
		{
			name:   "punctuation only yields nothing",
			input:  "### --- *** +++",
			expect: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestTokenizeIsRestartable(t *testing.T) {
	input := "Machine learning engineer building machine learning systems"

	first := Tokenize(input)
	second := Tokenize(input)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("tokenization not deterministic: %v vs %v", first, second)
	}
}

func TestTokenizeInvariants(t *testing.T) {
	for _, token := range Tokenize("Senior Go   developer, remote-first; e.g. APIs & gRPC!") {
		if token == "" {
			t.Fatalf("empty token produced")
		}
		for _, r := range token {
			if r == ' ' || r == '\t' || r == '\n' {
				t.Fatalf("token %q contains whitespace", token)
			}
		}
	}
}
