package emotion

import "strings"

// negationMarkers are the tokens that invert a following keyword match. The
// normalizer rewrites "n't" contractions into "not" before scoring.
var negationMarkers = map[string]bool{
	"not":     true,
	"never":   true,
	"no":      true,
	"cannot":  true,
	"neither": true,
	"nor":     true,
}

// ScorerConfig carries the tunables of the keyword engine.
type ScorerConfig struct {
	// NegationWindow is how many tokens before a match may hold a negation
	// marker for the match to count as negated.
	NegationWindow int
	// NegationCredit is the fraction of a negated weight redirected to the
	// opposite category.
	NegationCredit float64
}

// Scorer accumulates lexicon weights over a token sequence.
type Scorer struct {
	lexicon   Lexicon
	opposites map[Category]Category
	window    int
	credit    float64
}

// NewScorer builds a scorer over a validated lexicon.
func NewScorer(lexicon Lexicon, opposites map[Category]Category, cfg ScorerConfig) *Scorer {
	window := cfg.NegationWindow
	if window <= 0 {
		window = 3
	}
	credit := cfg.NegationCredit
	if credit <= 0 || credit > 1 {
		credit = 0.5
	}
	if opposites == nil {
		opposites = DefaultOpposites()
	}
	return &Scorer{lexicon: lexicon, opposites: opposites, window: window, credit: credit}
}

// Score maps tokens to a raw score per category. Every keyword occurrence adds
// its weight; a negated occurrence subtracts it and credits a fraction to the
// opposite category instead. An empty token sequence yields an all-zero
// vector, never an error.
func (s *Scorer) Score(tokens []string) ScoreVector {
	scores := NewScoreVector()
	if len(tokens) == 0 {
		return scores
	}

	for category, entries := range s.lexicon {
		for _, entry := range entries {
			for _, at := range s.matchPositions(tokens, entry.Keyword) {
				if s.negatedAt(tokens, at) {
					scores[category] -= entry.Weight
					scores[s.opposites[category]] += entry.Weight * s.credit
				} else {
					scores[category] += entry.Weight
				}
			}
		}
	}

	// Raw scores are defined non-negative; negation can only drain a
	// category to zero, not below.
	for c, v := range scores {
		if v < 0 {
			scores[c] = 0
		}
	}
	return scores
}

// matchPositions returns the token index of every occurrence of the keyword.
// Single words match a token exactly or by stem; phrases match as a
// contiguous token run.
func (s *Scorer) matchPositions(tokens []string, keyword string) []int {
	words := strings.Fields(keyword)
	if len(words) == 0 {
		return nil
	}

	var positions []int
	if len(words) == 1 {
		for i, tok := range tokens {
			if stemEqual(tok, words[0]) {
				positions = append(positions, i)
			}
		}
		return positions
	}

	for i := 0; i+len(words) <= len(tokens); i++ {
		matched := true
		for j, w := range words {
			if !stemEqual(tokens[i+j], w) {
				matched = false
				break
			}
		}
		if matched {
			positions = append(positions, i)
		}
	}
	return positions
}

// negatedAt reports whether a negation marker sits within the window before
// the match position.
func (s *Scorer) negatedAt(tokens []string, at int) bool {
	start := at - s.window
	if start < 0 {
		start = 0
	}
	for i := start; i < at; i++ {
		if negationMarkers[tokens[i]] {
			return true
		}
	}
	return false
}

var stemSuffixes = []string{"ing", "ed", "es", "s"}

// stemEqual reports whether two words share a stem after stripping common
// inflection suffixes. Words of three letters or fewer only match exactly.
func stemEqual(a, b string) bool {
	if a == b {
		return true
	}
	return stem(a) == stem(b)
}

func stem(w string) string {
	if len(w) <= 3 {
		return w
	}
	for _, suffix := range stemSuffixes {
		if strings.HasSuffix(w, suffix) && len(w)-len(suffix) >= 3 {
			return w[:len(w)-len(suffix)]
		}
	}
	return w
}
