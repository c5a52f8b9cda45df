package emotion

import (
	"context"
	"log"
	"sort"
	"strings"
)

// Score pairs a category with its normalized score.
type Score struct {
	Category Category `json:"category"`
	Value    float64  `json:"value"`
}

// Classification is the immutable per-message result of the pipeline.
type Classification struct {
	Primary    Category    `json:"primaryEmotion"`
	Confidence float64     `json:"confidence"`
	Secondary  []Score     `json:"secondaryEmotions"`
	Raw        ScoreVector `json:"rawScores"`
	Intensity  Intensity   `json:"intensity"`
	Context    Context     `json:"culturalContext"`
	// Degraded marks that an external provider was configured but failed,
	// and the lexicon path answered instead.
	Degraded bool `json:"degraded,omitempty"`
}

// Provider is an external score source, typically an LLM. It may be absent;
// availability is probed once at startup via Enabled.
type Provider interface {
	Enabled() bool
	Scores(ctx context.Context, text string) (ScoreVector, error)
}

// Normalizer turns raw text into scoring tokens. Must be deterministic and
// side-effect-free.
type Normalizer func(text string) []string

// ClassifierConfig carries the classifier tunables.
type ClassifierConfig struct {
	// NeutralBaseline is the confidence reported when nothing matches.
	NeutralBaseline float64
}

// Classifier runs Provider-or-Scorer, then Adapter, then normalization into a
// Classification. The strategy is fixed at construction; the hot path has no
// capability checks beyond the bound provider.
type Classifier struct {
	scorer    *Scorer
	adapter   *Adapter
	provider  Provider
	normalize Normalizer
	baseline  float64
}

// NewClassifier wires the scoring pipeline. provider may be nil.
func NewClassifier(scorer *Scorer, adapter *Adapter, provider Provider, normalize Normalizer, cfg ClassifierConfig) *Classifier {
	baseline := cfg.NeutralBaseline
	if baseline <= 0 || baseline > 1 {
		baseline = 0.5
	}
	if provider != nil && !provider.Enabled() {
		provider = nil
	}
	return &Classifier{
		scorer:    scorer,
		adapter:   adapter,
		provider:  provider,
		normalize: normalize,
		baseline:  baseline,
	}
}

// Classify produces the final classification for one message. Empty input and
// lexicon misses both resolve to a neutral baseline result; provider failures
// degrade silently to the lexicon path and set the Degraded flag.
func (c *Classifier) Classify(ctx context.Context, text string, cultural Context) Classification {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return c.neutralResult(cultural, false)
	}

	raw, degraded := c.rawScores(ctx, trimmed)
	adapted := c.adapter.Adapt(raw, cultural)

	if adapted.IsZero() {
		return c.neutralResult(cultural, degraded)
	}

	distribution := adapted.Normalized()
	primary := argmax(distribution)
	confidence := distribution[primary]

	return Classification{
		Primary:    primary,
		Confidence: confidence,
		Secondary:  secondaries(distribution, primary),
		Raw:        raw,
		Intensity:  EstimateIntensity(text, confidence),
		Context:    cultural,
		Degraded:   degraded,
	}
}

func (c *Classifier) rawScores(ctx context.Context, text string) (ScoreVector, bool) {
	if c.provider != nil {
		scores, err := c.provider.Scores(ctx, text)
		if err == nil && scores != nil {
			return scores, false
		}
		if err != nil {
			log.Printf("[emotion] provider failed, using lexicon path: %v", err)
		}
		return c.scorer.Score(c.normalize(text)), true
	}
	return c.scorer.Score(c.normalize(text)), false
}

func (c *Classifier) neutralResult(cultural Context, degraded bool) Classification {
	return Classification{
		Primary:    Neutral,
		Confidence: c.baseline,
		Secondary:  nil,
		Raw:        NewScoreVector(),
		Intensity:  Low,
		Context:    cultural,
		Degraded:   degraded,
	}
}

// argmax picks the highest-scoring category, breaking exact ties by the fixed
// priority order.
func argmax(distribution ScoreVector) Category {
	best := Neutral
	bestScore := -1.0
	for _, c := range Priority {
		if distribution[c] > bestScore {
			best = c
			bestScore = distribution[c]
		}
	}
	return best
}

// secondaries lists the non-primary categories sorted descending by score;
// the stable sort preserves priority order on ties.
func secondaries(distribution ScoreVector, primary Category) []Score {
	out := make([]Score, 0, len(Priority)-1)
	for _, c := range Priority {
		if c == primary {
			continue
		}
		out = append(out, Score{Category: c, Value: distribution[c]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}
