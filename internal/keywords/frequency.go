package keywords

import "sort"

// Keyword pairs a normalized token with an occurrence count.
type Keyword struct {
	Token string
	Count int
}

// Frequency is an exact occurrence-count table that remembers the
// first-occurrence order of its tokens, so ranked views stay deterministic
// across runs on identical input.
type Frequency struct {
	counts map[string]int
	order  []string
}

// NewFrequency builds a frequency table from an already normalized token slice.
func NewFrequency(tokens []string) *Frequency {
	f := &Frequency{counts: make(map[string]int, len(tokens))}
	for _, token := range tokens {
		f.Add(token)
	}
	return f
}

// Add counts one occurrence of the token.
func (f *Frequency) Add(token string) {
	if _, seen := f.counts[token]; !seen {
		f.order = append(f.order, token)
	}
	f.counts[token]++
}

// Count returns the occurrence count for the token, zero when absent.
func (f *Frequency) Count(token string) int {
	return f.counts[token]
}

// Has reports whether the token occurs at least once.
func (f *Frequency) Has(token string) bool {
	return f.counts[token] > 0
}

// Len returns the number of unique tokens.
func (f *Frequency) Len() int {
	return len(f.order)
}

// Tokens returns the unique tokens in first-occurrence order.
func (f *Frequency) Tokens() []string {
	tokens := make([]string, len(f.order))
	copy(tokens, f.order)
	return tokens
}

// TopN returns up to n keywords ranked by descending count. Ties keep
// first-occurrence order via a stable sort.
func (f *Frequency) TopN(n int) []Keyword {
	if n <= 0 {
		return nil
	}

	ranked := make([]Keyword, 0, len(f.order))
	for _, token := range f.order {
		ranked = append(ranked, Keyword{Token: token, Count: f.counts[token]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
