package emotion

import (
	"strings"
	"unicode"
)

// Intensity grades how strongly an emotion is expressed.
type Intensity string

const (
	Low    Intensity = "low"
	Medium Intensity = "medium"
	High   Intensity = "high"
)

var intensityModifiers = map[Intensity][]string{
	High: {
		"very", "extremely", "incredibly", "absolutely", "totally",
		"completely", "utterly", "so", "tremendously", "immensely", "super",
		"insanely", "ridiculously", "omg", "oh my god",
	},
	Medium: {
		"quite", "pretty", "rather", "fairly", "somewhat", "really",
		"kind of", "sort of", "kinda",
	},
	Low: {
		"a bit", "slightly", "little", "maybe", "perhaps", "barely",
		"hardly", "almost", "scarcely",
	},
}

// EstimateIntensity grades expression strength from punctuation, shouting and
// modifier words in the raw text, anchored by the top normalized score.
func EstimateIntensity(raw string, maxScore float64) Intensity {
	lower := strings.ToLower(raw)
	exclamations := strings.Count(raw, "!")
	caps := capsRatio(raw)

	match := func(level Intensity) bool {
		for _, mod := range intensityModifiers[level] {
			if strings.Contains(lower, mod) {
				return true
			}
		}
		return false
	}

	switch {
	case maxScore >= 0.75:
		if exclamations > 2 || caps > 0.3 || match(High) {
			return High
		}
		if exclamations >= 1 || caps >= 0.1 || match(Medium) {
			return Medium
		}
		if match(Low) {
			return Low
		}
		return High
	case maxScore >= 0.45:
		if exclamations >= 3 || caps >= 0.3 || match(High) {
			return High
		}
		if exclamations >= 1 || caps >= 0.1 || match(Medium) {
			return Medium
		}
		return Medium
	default:
		if exclamations >= 3 || caps >= 0.3 || match(High) {
			return High
		}
		if exclamations >= 1 || caps >= 0.1 || match(Medium) {
			return Medium
		}
		return Low
	}
}

func capsRatio(raw string) float64 {
	if raw == "" {
		return 0
	}
	var upper int
	for _, r := range raw {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) / float64(len([]rune(raw)))
}
