package response

import (
	"fmt"
	"strings"

	"github.com/solenechen/empath/internal/analysis/emotion"
)

// Config carries the generator tunables.
type Config struct {
	// RepetitionWindow is how many recent turns a template is held out of
	// rotation after being used.
	RepetitionWindow int
}

// Result is one generated reply with its metadata.
type Result struct {
	Text         string
	FollowUp     string
	TemplateKey  string
	ResponseType string
}

// Service selects and renders reply templates. Stateless: repetition history
// comes from the conversation tracker on every call, so generation is
// deterministic given identical inputs.
type Service struct {
	bank      Bank
	followUps FollowUps
	window    int
}

// NewService validates the banks once and returns the generator. Validation
// failure is a configuration error and should abort startup.
func NewService(bank Bank, followUps FollowUps, cfg Config) (*Service, error) {
	if bank == nil {
		bank = DefaultBank()
	}
	if err := bank.Validate(); err != nil {
		return nil, fmt.Errorf("template bank: %w", err)
	}
	if followUps == nil {
		followUps = DefaultFollowUps()
	}
	for category := range followUps {
		if _, ok := emotion.ParseCategory(string(category)); !ok {
			return nil, fmt.Errorf("follow-up bank references unknown category %q", category)
		}
	}
	window := cfg.RepetitionWindow
	if window <= 0 {
		window = 3
	}
	return &Service{bank: bank, followUps: followUps, window: window}, nil
}

// Generate picks a template for the classification, avoiding any template
// used within the repetition window, renders its placeholders and attaches a
// follow-up suggestion. The fallback chain (context, default context, generic
// neutral, fixed apology) never yields an empty reply.
func (s *Service) Generate(cls emotion.Classification, cultural emotion.Context, recentKeys []string, recentEmotions []emotion.Category, turnIndex int) Result {
	templates, bankContext := s.candidates(cls.Primary, cultural)

	var text, key string
	switch {
	case len(templates) > 0:
		index := s.pick(templates, cls.Primary, bankContext, recentKeys, turnIndex)
		text = templates[index]
		key = templateKey(cls.Primary, bankContext, index)
	default:
		text = genericNeutralTemplate
		key = "generic/neutral"
	}

	text = render(text, cls)
	if strings.TrimSpace(text) == "" {
		text = apologyTemplate
		key = "generic/apology"
	}

	if prefix, ok := continuityPrefixes[cls.Primary]; ok && persisted(recentEmotions, cls.Primary) {
		text = prefix + text
	}

	return Result{
		Text:         text,
		FollowUp:     s.followUp(cls.Primary, turnIndex),
		TemplateKey:  key,
		ResponseType: responseTypes[cls.Primary],
	}
}

// candidates resolves the first non-empty template list along the fallback
// chain and reports which context it came from.
func (s *Service) candidates(primary emotion.Category, cultural emotion.Context) ([]string, emotion.Context) {
	if templates := s.bank[primary][cultural]; len(templates) > 0 {
		return templates, cultural
	}
	if templates := s.bank[primary][emotion.Default]; len(templates) > 0 {
		return templates, emotion.Default
	}
	return nil, emotion.Default
}

// pick returns the index of the first template not used within the repetition
// window; when every candidate was recently used, repetition is allowed and
// the choice rotates with the turn index.
func (s *Service) pick(templates []string, primary emotion.Category, bankContext emotion.Context, recentKeys []string, turnIndex int) int {
	recent := recentKeys
	if len(recent) > s.window {
		recent = recent[len(recent)-s.window:]
	}
	used := make(map[string]bool, len(recent))
	for _, k := range recent {
		used[k] = true
	}

	for i := range templates {
		if !used[templateKey(primary, bankContext, i)] {
			return i
		}
	}
	return turnIndex % len(templates)
}

func (s *Service) followUp(primary emotion.Category, turnIndex int) string {
	options := s.followUps[primary]
	if len(options) == 0 {
		options = s.followUps[emotion.Neutral]
	}
	if len(options) == 0 {
		return ""
	}
	return options[turnIndex%len(options)]
}

// render substitutes template placeholders from the classification. Pure
// string formatting, no external calls.
func render(template string, cls emotion.Classification) string {
	return strings.ReplaceAll(template, "{intensity}", qualifier(cls.Intensity))
}

func qualifier(intensity emotion.Intensity) string {
	switch intensity {
	case emotion.High:
		return "incredibly"
	case emotion.Medium:
		return "really"
	default:
		return "a little"
	}
}

// persisted reports whether the two most recent turns already carried the
// same primary emotion.
func persisted(recentEmotions []emotion.Category, primary emotion.Category) bool {
	if len(recentEmotions) < 2 {
		return false
	}
	last := recentEmotions[len(recentEmotions)-2:]
	return last[0] == primary && last[1] == primary
}
