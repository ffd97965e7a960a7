package keywords

// stopwords contains common English words excluded from frequency analysis:
// articles, prepositions, pronouns and auxiliary verbs that carry no signal
// when matching a resume against a job description.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"if": true, "then": true, "than": true, "so": true, "as": true, "at": true,
	"by": true, "for": true, "from": true, "in": true, "into": true, "of": true,
	"on": true, "to": true, "with": true, "about": true, "over": true,
	"under": true, "up": true, "out": true, "off": true, "down": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "am": true, "do": true, "does": true,
	"did": true, "have": true, "has": true, "had": true, "having": true,
	"will": true, "would": true, "can": true, "could": true, "should": true,
	"shall": true, "may": true, "might": true, "must": true, "not": true,
	"no": true, "nor": true, "it": true, "its": true, "this": true,
	"that": true, "these": true, "those": true, "there": true, "here": true,
	"what": true, "which": true, "who": true, "whom": true, "whose": true,
	"how": true, "when": true, "where": true, "why": true, "i": true,
	"me": true, "my": true, "mine": true, "we": true, "our": true, "ours": true,
	"us": true, "you": true, "your": true, "yours": true, "he": true,
	"him": true, "his": true, "she": true, "her": true, "hers": true,
	"they": true, "them": true, "their": true, "theirs": true, "all": true,
	"any": true, "both": true, "each": true, "some": true, "such": true,
	"other": true, "own": true, "same": true, "more": true, "most": true,
	"also": true, "too": true, "very": true, "only": true, "just": true,
	"while": true, "during": true, "through": true, "via": true, "per": true,
	"etc": true,
}
