package domain

import "context"

// SessionStore manages support session records. Tool calls only ever add;
// the read side exists for observability and tests.
type SessionStore interface {
	// AddSession stores a new support session.
	AddSession(ctx context.Context, session *SupportSession) error

	// GetSession retrieves a session by its id.
	GetSession(ctx context.Context, id string) (*SupportSession, error)

	// ListSessions returns all stored sessions.
	ListSessions(ctx context.Context) ([]*SupportSession, error)

	// CountSessions returns the number of stored sessions.
	CountSessions(ctx context.Context) (int, error)
}
