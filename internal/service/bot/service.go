package bot

import (
	"context"
	"log"

	"github.com/solenechen/empath/internal/analysis/emotion"
	"github.com/solenechen/empath/internal/model/chat"
	chatservice "github.com/solenechen/empath/internal/service/chat"
	"github.com/solenechen/empath/internal/service/response"
)

// Config carries the orchestrator settings.
type Config struct {
	// DefaultContext applies when a session was created without an explicit
	// cultural context and no per-message override is given.
	DefaultContext emotion.Context
	// RepetitionWindow is how far back template usage is consulted.
	RepetitionWindow int
}

// Service runs the full per-message pipeline: classify, generate, record.
// One call per message, synchronous, no partial results observable mid-call.
type Service struct {
	classifier *emotion.Classifier
	generator  *response.Service
	tracker    *chatservice.Service
	defaults   Config
}

// NewService wires the pipeline components.
func NewService(classifier *emotion.Classifier, generator *response.Service, tracker *chatservice.Service, cfg Config) *Service {
	if cfg.DefaultContext == "" {
		cfg.DefaultContext = emotion.Default
	}
	if cfg.RepetitionWindow <= 0 {
		cfg.RepetitionWindow = 3
	}
	return &Service{classifier: classifier, generator: generator, tracker: tracker, defaults: cfg}
}

// CreateSession opens a conversation under the given cultural context,
// falling back to the configured default.
func (s *Service) CreateSession(ctx context.Context, cultural emotion.Context) (chat.Session, error) {
	if cultural == "" {
		cultural = s.defaults.DefaultContext
	}
	return s.tracker.CreateSession(ctx, cultural)
}

// ProcessTurn is the single entry point per message: it classifies the text,
// generates a reply and records the turn. Deterministic given identical
// inputs and configuration.
func (s *Service) ProcessTurn(ctx context.Context, sessionID, text string, override emotion.Context) (chat.Turn, error) {
	session, err := s.tracker.GetSession(ctx, sessionID)
	if err != nil {
		return chat.Turn{}, err
	}

	cultural := session.Context
	if override != "" {
		cultural = override
	}

	classification := s.classifier.Classify(ctx, text, cultural)
	if classification.Degraded {
		log.Printf("[bot] session=%s served in degraded mode", sessionID)
	}

	recentKeys, err := s.tracker.RecentTemplateKeys(ctx, sessionID, s.defaults.RepetitionWindow)
	if err != nil {
		return chat.Turn{}, err
	}
	recentEmotions, err := s.tracker.RecentEmotions(ctx, sessionID, 2)
	if err != nil {
		return chat.Turn{}, err
	}
	turnIndex, err := s.tracker.TurnCount(ctx, sessionID)
	if err != nil {
		return chat.Turn{}, err
	}

	generated := s.generator.Generate(classification, cultural, recentKeys, recentEmotions, turnIndex)

	turn := chat.Turn{
		SessionID:      sessionID,
		UserText:       text,
		Classification: classification,
		Response:       generated.Text,
		FollowUp:       generated.FollowUp,
		ResponseType:   generated.ResponseType,
		TemplateKey:    generated.TemplateKey,
	}
	return s.tracker.Record(ctx, turn)
}

// Analytics reports emotional trends over the last window turns.
func (s *Service) Analytics(ctx context.Context, sessionID string, window int) (chat.Analytics, error) {
	return s.tracker.Analytics(ctx, sessionID, window)
}

// Summary reports the whole-session aggregate view.
func (s *Service) Summary(ctx context.Context, sessionID string) (chat.Summary, error) {
	return s.tracker.Summary(ctx, sessionID)
}

// Transcript returns the session's recorded turns.
func (s *Service) Transcript(ctx context.Context, sessionID string) ([]chat.Turn, error) {
	return s.tracker.Transcript(ctx, sessionID)
}
