package convert

import "regexp"

// emojiRE matches emoji and related presentation characters that break ATS
// parsers and PDF text extraction.
var emojiRE = regexp.MustCompile(`[` +
	`\x{1F600}-\x{1F64F}` + // emoticons
	`\x{1F300}-\x{1F5FF}` + // symbols & pictographs
	`\x{1F680}-\x{1F6FF}` + // transport & map symbols
	`\x{1F1E0}-\x{1F1FF}` + // flags
	`\x{2702}-\x{27B0}` + // dingbats
	`\x{1F900}-\x{1F9FF}` + // supplemental symbols
	`\x{2600}-\x{26FF}` + // misc symbols
	`\x{FE00}-\x{FE0F}` + // variation selectors
	`\x{200D}` + // zero width joiner
	`\x{2060}` + // word joiner
	`\x{231A}-\x{231B}` + // watch/hourglass
	`]+`)

// StripEmojis removes emoji characters from text.
func StripEmojis(text string) string {
	return emojiRE.ReplaceAllString(text, "")
}

// ContainsEmoji reports whether the text contains any emoji characters.
func ContainsEmoji(text string) bool {
	return emojiRE.MatchString(text)
}
