package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/solenechen/empath/internal/analysis/emotion"
	"github.com/solenechen/empath/internal/model/chat"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownContext  = errors.New("unknown cultural context")
)

// Service owns per-session conversation history: an append-only sequence of
// turns per session. History is mutable shared state, so access is serialized
// here; everything read out is a copy.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]chat.Session
	turns    map[string][]chat.Turn
}

// NewService bootstraps the in-memory conversation store.
func NewService() *Service {
	return &Service{
		sessions: make(map[string]chat.Session),
		turns:    make(map[string][]chat.Turn),
	}
}

// CreateSession provisions an anonymous session bound to a cultural context.
func (s *Service) CreateSession(_ context.Context, cultural emotion.Context) (chat.Session, error) {
	if _, ok := emotion.ParseContext(string(cultural)); !ok {
		return chat.Session{}, ErrUnknownContext
	}

	session := chat.Session{
		ID:        uuid.NewString(),
		Context:   cultural,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.turns[session.ID] = make([]chat.Turn, 0, 16)
	s.mu.Unlock()

	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// Record appends a turn to the session history, assigning its ID, index and
// timestamp. Prior turns are never rewritten.
func (s *Service) Record(_ context.Context, turn chat.Turn) (chat.Turn, error) {
	if turn.SessionID == "" {
		return chat.Turn{}, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.turns[turn.SessionID]
	if !ok {
		return chat.Turn{}, ErrSessionNotFound
	}

	turn.ID = uuid.NewString()
	turn.Index = len(history)
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now().UTC()
	}

	s.turns[turn.SessionID] = append(history, turn)
	return turn, nil
}

// Transcript returns a copy of the stored turns for the session.
func (s *Service) Transcript(_ context.Context, sessionID string) ([]chat.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.turns[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Turn, len(history))
	copy(copied, history)
	return copied, nil
}

// TurnCount reports how many turns the session holds.
func (s *Service) TurnCount(_ context.Context, sessionID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history, ok := s.turns[sessionID]
	if !ok {
		return 0, ErrSessionNotFound
	}
	return len(history), nil
}

// RecentTemplateKeys returns the template keys of the last n turns, oldest
// first. Used by the generator for repetition avoidance.
func (s *Service) RecentTemplateKeys(_ context.Context, sessionID string, n int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.turns[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	start := len(history) - n
	if start < 0 {
		start = 0
	}
	keys := make([]string, 0, len(history)-start)
	for _, turn := range history[start:] {
		if turn.TemplateKey != "" {
			keys = append(keys, turn.TemplateKey)
		}
	}
	return keys, nil
}

// RecentEmotions returns the primary emotions of the last n turns, oldest
// first.
func (s *Service) RecentEmotions(_ context.Context, sessionID string, n int) ([]emotion.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.turns[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	start := len(history) - n
	if start < 0 {
		start = 0
	}
	emotions := make([]emotion.Category, 0, len(history)-start)
	for _, turn := range history[start:] {
		emotions = append(emotions, turn.Classification.Primary)
	}
	return emotions, nil
}
