package ports

import (
	"context"

	"github.com/renato0307/flowpomo/internal/domain"
)

// SessionSink persists committed focus sessions
type SessionSink interface {
	AppendSession(ctx context.Context, record domain.SessionRecord) error
}

// SessionReader reads committed sessions, newest first.
// A limit of zero or less returns every session.
type SessionReader interface {
	ListSessions(ctx context.Context, userID string, limit int) ([]domain.SessionRecord, error)
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionReader
	SessionSink
	Close() error
}
