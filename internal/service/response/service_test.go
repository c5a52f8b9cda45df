package response

import (
	"strings"
	"testing"

	"github.com/solenechen/empath/internal/analysis/emotion"
)

func newTestGenerator(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(nil, nil, Config{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func joyClassification(intensity emotion.Intensity) emotion.Classification {
	return emotion.Classification{
		Primary:    emotion.Joy,
		Confidence: 0.9,
		Intensity:  intensity,
		Context:    emotion.Western,
	}
}

func TestGeneratePrefersCulturalContext(t *testing.T) {
	svc := newTestGenerator(t)

	result := svc.Generate(joyClassification(emotion.High), emotion.Western, nil, nil, 0)
	if result.Text == "" {
		t.Fatal("expected a reply")
	}
	if !strings.HasPrefix(result.TemplateKey, "joy/western/") {
		t.Fatalf("expected western joy template, got key %s", result.TemplateKey)
	}
	if result.ResponseType != "celebratory" {
		t.Fatalf("expected celebratory response type, got %s", result.ResponseType)
	}
}

func TestGenerateFallsBackToDefaultContext(t *testing.T) {
	bank := Bank{}
	for _, category := range emotion.Categories() {
		bank[category] = map[emotion.Context][]string{
			emotion.Default: {"default reply for " + string(category)},
		}
	}
	svc, err := NewService(bank, nil, Config{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	result := svc.Generate(joyClassification(emotion.Low), emotion.Western, nil, nil, 0)
	if result.TemplateKey != "joy/default/0" {
		t.Fatalf("expected default context fallback, got key %s", result.TemplateKey)
	}
}

func TestGenerateAvoidsRecentTemplates(t *testing.T) {
	svc := newTestGenerator(t)
	cls := joyClassification(emotion.Medium)

	var recentKeys []string
	seen := map[string]bool{}
	for turn := 0; turn < 3; turn++ {
		result := svc.Generate(cls, emotion.Western, recentKeys, nil, turn)
		if seen[result.TemplateKey] {
			t.Fatalf("template %s repeated within window", result.TemplateKey)
		}
		seen[result.TemplateKey] = true
		recentKeys = append(recentKeys, result.TemplateKey)
	}
}

func TestGenerateAllowsRepetitionWhenExhausted(t *testing.T) {
	svc := newTestGenerator(t)
	cls := joyClassification(emotion.Medium)

	// All three western joy templates already used inside the window.
	recentKeys := []string{"joy/western/0", "joy/western/1", "joy/western/2"}
	result := svc.Generate(cls, emotion.Western, recentKeys, nil, 4)
	if result.TemplateKey != "joy/western/1" {
		t.Fatalf("expected rotation by turn index, got %s", result.TemplateKey)
	}
}

func TestGenerateGenericFallback(t *testing.T) {
	// Bypass construction validation to exercise the last-resort path.
	svc := &Service{bank: Bank{}, followUps: DefaultFollowUps(), window: 3}

	result := svc.Generate(joyClassification(emotion.Low), emotion.Western, nil, nil, 0)
	if result.Text != genericNeutralTemplate {
		t.Fatalf("expected generic fallback, got %q", result.Text)
	}
	if result.TemplateKey != "generic/neutral" {
		t.Fatalf("unexpected template key %s", result.TemplateKey)
	}
}

func TestGenerateRendersIntensityPlaceholder(t *testing.T) {
	svc := newTestGenerator(t)

	result := svc.Generate(joyClassification(emotion.High), emotion.Western, nil, nil, 0)
	if strings.Contains(result.Text, "{intensity}") {
		t.Fatalf("placeholder not rendered: %q", result.Text)
	}
	if !strings.Contains(result.Text, "incredibly") {
		t.Fatalf("expected high-intensity qualifier, got %q", result.Text)
	}
}

func TestGenerateContinuityPrefix(t *testing.T) {
	svc := newTestGenerator(t)
	cls := emotion.Classification{
		Primary:   emotion.Sadness,
		Intensity: emotion.Medium,
		Context:   emotion.Default,
	}

	recent := []emotion.Category{emotion.Sadness, emotion.Sadness}
	result := svc.Generate(cls, emotion.Default, nil, recent, 2)
	if !strings.HasPrefix(result.Text, continuityPrefixes[emotion.Sadness]) {
		t.Fatalf("expected continuity prefix, got %q", result.Text)
	}

	fresh := svc.Generate(cls, emotion.Default, nil, []emotion.Category{emotion.Joy, emotion.Sadness}, 2)
	if strings.HasPrefix(fresh.Text, continuityPrefixes[emotion.Sadness]) {
		t.Fatalf("prefix should need two matching prior turns, got %q", fresh.Text)
	}
}

func TestGenerateAttachesFollowUp(t *testing.T) {
	svc := newTestGenerator(t)

	first := svc.Generate(joyClassification(emotion.High), emotion.Western, nil, nil, 0)
	if first.FollowUp == "" {
		t.Fatal("expected a follow-up suggestion")
	}
	second := svc.Generate(joyClassification(emotion.High), emotion.Western, nil, nil, 1)
	if first.FollowUp == second.FollowUp {
		t.Fatalf("follow-ups should rotate with the turn index, both %q", first.FollowUp)
	}
}

func TestNewServiceRejectsInvalidBank(t *testing.T) {
	bank := Bank{emotion.Joy: {emotion.Default: {"only joy"}}}
	if _, err := NewService(bank, nil, Config{}); err == nil {
		t.Fatal("expected validation error for incomplete bank")
	}
}
