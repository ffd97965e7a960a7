package keywords

import (
	"strings"
	"unicode"
)

const minTokenLength = 2

// Tokenize normalizes raw text into a finite, source-ordered token slice:
// lower-cased, split on anything that is not a word rune, with stop-words and
// tokens shorter than two runes removed. Markdown punctuation (headers, links,
// emphasis markers) acts as a separator, so plain markdown can be tokenized
// directly. '+' and '#' are kept inside words to preserve tokens like "c++"
// and "c#".
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := word.String()
		word.Reset()

		// Leading markdown markers ("#heading") are not part of the word.
		w = strings.TrimLeft(w, "#+")
		if !hasLetterOrDigit(w) {
			return
		}
		if len([]rune(w)) < minTokenLength || stopwords[w] {
			return
		}
		tokens = append(tokens, w)
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' {
			word.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}

func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
