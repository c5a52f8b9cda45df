package emotion

import (
	"context"
	"errors"
	"testing"

	"github.com/solenechen/empath/internal/analysis/text"
)

type fakeProvider struct {
	enabled bool
	scores  ScoreVector
	err     error
}

func (f *fakeProvider) Enabled() bool { return f.enabled }

func (f *fakeProvider) Scores(ctx context.Context, message string) (ScoreVector, error) {
	return f.scores, f.err
}

func newTestClassifier(provider Provider) *Classifier {
	scorer := NewScorer(DefaultLexicon(), DefaultOpposites(), ScorerConfig{})
	adapter := NewAdapter(nil)
	return NewClassifier(scorer, adapter, provider, text.Normalize, ClassifierConfig{})
}

func TestClassifyJoy(t *testing.T) {
	cls := newTestClassifier(nil).Classify(context.Background(), "I just got PROMOTED at work!", Default)
	if cls.Primary != Joy {
		t.Fatalf("expected joy, got %s (%v)", cls.Primary, cls.Raw)
	}
	if cls.Confidence <= 0.5 {
		t.Fatalf("expected confident classification, got %v", cls.Confidence)
	}
}

func TestClassifyNegatedJoyBecomesSadness(t *testing.T) {
	cls := newTestClassifier(nil).Classify(context.Background(), "I am not happy at all", Default)
	if cls.Primary != Sadness {
		t.Fatalf("expected sadness from negated joy, got %s (%v)", cls.Primary, cls.Raw)
	}
}

func TestClassifyEmptyTextIsNeutralBaseline(t *testing.T) {
	cls := newTestClassifier(nil).Classify(context.Background(), "   ", Default)
	if cls.Primary != Neutral {
		t.Fatalf("expected neutral, got %s", cls.Primary)
	}
	if cls.Confidence != 0.5 {
		t.Fatalf("expected baseline confidence 0.5, got %v", cls.Confidence)
	}
	if cls.Degraded {
		t.Fatal("empty input should not be marked degraded")
	}
}

func TestClassifyNoMatchesIsNeutralBaseline(t *testing.T) {
	cls := newTestClassifier(nil).Classify(context.Background(), "the quarterly report arrived", Default)
	if cls.Primary != Neutral {
		t.Fatalf("expected neutral, got %s", cls.Primary)
	}
	if cls.Confidence != 0.5 {
		t.Fatalf("expected baseline confidence 0.5, got %v", cls.Confidence)
	}
}

func TestClassifyTieBreaksByPriority(t *testing.T) {
	scores := NewScoreVector()
	scores[Sadness] = 1.0
	scores[Anger] = 1.0
	provider := &fakeProvider{enabled: true, scores: scores}

	cls := newTestClassifier(provider).Classify(context.Background(), "some text", Default)
	if cls.Primary != Sadness {
		t.Fatalf("tie should resolve to sadness, got %s", cls.Primary)
	}
}

func TestClassifyConfidenceIsNormalizedMax(t *testing.T) {
	scores := NewScoreVector()
	scores[Joy] = 2.0
	scores[Sadness] = 1.0
	scores[Anger] = 1.0
	provider := &fakeProvider{enabled: true, scores: scores}

	cls := newTestClassifier(provider).Classify(context.Background(), "some text", Default)
	if cls.Primary != Joy {
		t.Fatalf("expected joy, got %s", cls.Primary)
	}
	if cls.Confidence != 0.5 {
		t.Fatalf("expected confidence 0.5, got %v", cls.Confidence)
	}
}

func TestClassifyProviderFailureDegradesToLexicon(t *testing.T) {
	provider := &fakeProvider{enabled: true, err: errors.New("model unavailable")}

	cls := newTestClassifier(provider).Classify(context.Background(), "I am so happy today", Default)
	if !cls.Degraded {
		t.Fatal("expected degraded flag after provider failure")
	}
	if cls.Primary != Joy {
		t.Fatalf("lexicon fallback should still classify joy, got %s", cls.Primary)
	}
}

func TestClassifyDisabledProviderIsIgnored(t *testing.T) {
	provider := &fakeProvider{enabled: false, err: errors.New("should never be called")}

	cls := newTestClassifier(provider).Classify(context.Background(), "I am so happy today", Default)
	if cls.Degraded {
		t.Fatal("disabled provider must not mark results degraded")
	}
	if cls.Primary != Joy {
		t.Fatalf("expected joy, got %s", cls.Primary)
	}
}

func TestClassifySecondariesSortedDescending(t *testing.T) {
	scores := NewScoreVector()
	scores[Joy] = 3.0
	scores[Sadness] = 2.0
	scores[Anger] = 1.0
	provider := &fakeProvider{enabled: true, scores: scores}

	cls := newTestClassifier(provider).Classify(context.Background(), "some text", Default)
	if len(cls.Secondary) != len(Priority)-1 {
		t.Fatalf("expected %d secondary entries, got %d", len(Priority)-1, len(cls.Secondary))
	}
	for i := 1; i < len(cls.Secondary); i++ {
		if cls.Secondary[i].Value > cls.Secondary[i-1].Value {
			t.Fatalf("secondary emotions not sorted: %v", cls.Secondary)
		}
	}
	if cls.Secondary[0].Category != Sadness {
		t.Fatalf("expected sadness as top secondary, got %s", cls.Secondary[0].Category)
	}
}
