package emotion

import "testing"

func newTestScorer() *Scorer {
	return NewScorer(DefaultLexicon(), DefaultOpposites(), ScorerConfig{})
}

func TestScoreEmptyTokens(t *testing.T) {
	scores := newTestScorer().Score(nil)
	if !scores.IsZero() {
		t.Fatalf("expected all-zero vector, got %v", scores)
	}
}

func TestScoreKeywordMatch(t *testing.T) {
	scores := newTestScorer().Score([]string{"i", "am", "happy"})
	if scores[Joy] <= 0 {
		t.Fatalf("expected joy score, got %v", scores)
	}
	if scores[Sadness] != 0 {
		t.Fatalf("unexpected sadness score: %v", scores)
	}
}

func TestScoreStemMatch(t *testing.T) {
	scores := newTestScorer().Score([]string{"two", "achievements", "today"})
	if scores[Joy] <= 0 {
		t.Fatalf("expected stem match on achievements, got %v", scores)
	}
}

func TestScorePhraseMatch(t *testing.T) {
	scores := newTestScorer().Score([]string{"i", "am", "fed", "up", "with", "this"})
	if scores[Anger] <= 0 {
		t.Fatalf("expected anger score for phrase match, got %v", scores)
	}
}

func TestScoreNegationInvertsContribution(t *testing.T) {
	scores := newTestScorer().Score([]string{"i", "am", "not", "happy"})
	if scores[Joy] != 0 {
		t.Fatalf("negated joy should drain to zero, got %v", scores[Joy])
	}
	if scores[Sadness] <= 0 {
		t.Fatalf("negated joy should credit sadness, got %v", scores)
	}
}

func TestScoreNegationOutsideWindow(t *testing.T) {
	// Marker sits four tokens before the keyword, outside the default window.
	scores := newTestScorer().Score([]string{"not", "that", "it", "matters", "happy"})
	if scores[Joy] <= 0 {
		t.Fatalf("negation outside window should not invert, got %v", scores)
	}
}

func TestScoreUnknownWords(t *testing.T) {
	scores := newTestScorer().Score([]string{"the", "quarterly", "report", "arrived"})
	if !scores.IsZero() {
		t.Fatalf("expected all-zero vector for unmatched words, got %v", scores)
	}
}

func TestScoreNeverNegative(t *testing.T) {
	// Two negated joy keywords, nothing else: joy must clamp at zero.
	scores := newTestScorer().Score([]string{"not", "happy", "never", "glad"})
	for category, value := range scores {
		if value < 0 {
			t.Fatalf("category %s went negative: %v", category, value)
		}
	}
}
