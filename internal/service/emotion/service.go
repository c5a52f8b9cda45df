package emotion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	analysis "github.com/solenechen/empath/internal/analysis/emotion"
)

// Config controls the LLM score provider.
type Config struct {
	Enabled bool
}

// Service asks a chat model to score a message over the fixed emotion
// categories. It satisfies the classifier's Provider contract; when disabled
// or failing, the classifier stays on the lexicon path.
type Service struct {
	enabled    bool
	classifier compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the scoring chain once. chatModel may be nil, which
// leaves the provider disabled.
func NewService(ctx context.Context, chatModel model.ChatModel, cfg Config) (*Service, error) {
	svc := &Service{enabled: cfg.Enabled && chatModel != nil}
	if !svc.enabled {
		return svc, nil
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(scoreSystemPrompt),
		schema.UserMessage(scoreUserPrompt),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile emotion scoring chain: %w", err)
	}

	svc.classifier = runnable
	return svc, nil
}

// Enabled reports whether the provider can serve scores. Probed once at
// startup when the classifier binds its strategy.
func (s *Service) Enabled() bool {
	return s != nil && s.enabled && s.classifier != nil
}

// Scores invokes the model and parses its JSON score map. Any failure is
// returned to the caller, which falls back to the lexicon path.
func (s *Service) Scores(ctx context.Context, text string) (analysis.ScoreVector, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("emotion provider disabled")
	}

	msg, err := s.classifier.Invoke(ctx, map[string]any{
		"message": strings.TrimSpace(text),
	})
	if err != nil {
		return nil, fmt.Errorf("emotion provider invoke: %w", err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return nil, fmt.Errorf("emotion provider returned empty content")
	}

	return parseScores(msg.Content)
}

// parseScores extracts the JSON object from the model reply and maps it onto
// the known categories. Unknown keys are ignored; negative values are
// clamped. At least one known category must be present.
func parseScores(content string) (analysis.ScoreVector, error) {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("missing json object in provider output")
	}

	raw := map[string]float64{}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("invalid provider json: %w", err)
	}

	scores := analysis.NewScoreVector()
	matched := false
	for key, value := range raw {
		category, ok := analysis.ParseCategory(strings.ToLower(strings.TrimSpace(key)))
		if !ok {
			continue
		}
		if value < 0 {
			value = 0
		}
		scores[category] = value
		matched = true
	}
	if !matched {
		return nil, fmt.Errorf("provider output contains no known categories")
	}
	return scores, nil
}

const scoreSystemPrompt = "You are an emotion scoring engine. Read the user message and rate how strongly it expresses each of these emotions: joy, sadness, anger, fear, surprise, disgust, neutral.\nOutput exactly one JSON object whose keys are those seven labels and whose values are numbers between 0 and 1. No extra text."

const scoreUserPrompt = "Message:\n{message}\n\nReturn the JSON score object."
