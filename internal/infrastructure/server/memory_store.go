package server

import (
	"context"
	"sync"

	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain"
)

// InMemorySessionStore implements domain.SessionStore over a sync.Map.
// Sessions accumulate for the lifetime of the process; there is no expiry.
type InMemorySessionStore struct {
	sessions sync.Map
}

// NewInMemorySessionStore creates a new InMemorySessionStore.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{}
}

// AddSession stores a new support session.
func (s *InMemorySessionStore) AddSession(ctx context.Context, session *domain.SupportSession) error {
	s.sessions.Store(session.ID, session)
	return nil
}

// GetSession retrieves a session by its id.
func (s *InMemorySessionStore) GetSession(ctx context.Context, id string) (*domain.SupportSession, error) {
	if session, ok := s.sessions.Load(id); ok {
		return session.(*domain.SupportSession), nil
	}
	return nil, domain.NewSessionNotFoundError(id)
}

// ListSessions returns all stored sessions.
func (s *InMemorySessionStore) ListSessions(ctx context.Context) ([]*domain.SupportSession, error) {
	var sessions []*domain.SupportSession
	s.sessions.Range(func(_, value interface{}) bool {
		sessions = append(sessions, value.(*domain.SupportSession))
		return true
	})
	return sessions, nil
}

// CountSessions returns the number of stored sessions.
func (s *InMemorySessionStore) CountSessions(ctx context.Context) (int, error) {
	count := 0
	s.sessions.Range(func(_, _ interface{}) bool {
		count++
		return true
	})
	return count, nil
}
