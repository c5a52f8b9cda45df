package text

import (
	"regexp"
	"strings"
)

var (
	urlPattern     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailPattern   = regexp.MustCompile(`\S+@\S+\.\S+`)
	mentionPattern = regexp.MustCompile(`[@#]\w+`)
	nonWordPattern = regexp.MustCompile(`[^a-z0-9']+`)
)

// Normalize lowers the text, strips URLs, emails and mentions, expands "n't"
// contractions so negation markers survive tokenization, and splits the rest
// into plain word tokens. Pure function, no state.
func Normalize(raw string) []string {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if cleaned == "" {
		return nil
	}

	cleaned = urlPattern.ReplaceAllString(cleaned, " ")
	cleaned = emailPattern.ReplaceAllString(cleaned, " ")
	cleaned = mentionPattern.ReplaceAllString(cleaned, " ")

	// "don't" -> "do not", "can't" -> "ca not"; the marker is what matters.
	cleaned = strings.ReplaceAll(cleaned, "n't", " not")

	cleaned = nonWordPattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.ReplaceAll(cleaned, "'", "")

	return strings.Fields(cleaned)
}
