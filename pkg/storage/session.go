package storage

import (
	"context"
	"time"

	"catalog/pkg/domain"
)

// SessionStorage persists login sessions.
type SessionStorage interface {
	// CreateSession inserts a new session.
	CreateSession(ctx context.Context, session domain.Session) error
	// SessionByID loads a session. Expiry is not checked here, callers decide
	// what an expired session means for them.
	SessionByID(ctx context.Context, id domain.SessionID) (domain.Session, error)
	// RefreshSession moves the session expiry to the given time.
	RefreshSession(ctx context.Context, id domain.SessionID, expiresAt time.Time) error
	// DeleteSession removes the session. Deleting a missing session is not an
	// error.
	DeleteSession(ctx context.Context, id domain.SessionID) error
}
