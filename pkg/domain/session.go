package domain

import "time"

// DefaultSessionDuration is how long a freshly issued session stays valid.
const DefaultSessionDuration = 2 * time.Hour

// Session is an authenticated login window for a user. Sessions are plain
// values, there is nothing to mutate after issuance.
type Session struct {
	ID        SessionID
	UserID    UserID
	ExpiresAt time.Time
}

// NewSession issues a session for the given user valid for the given
// duration from now.
func NewSession(userID UserID, duration time.Duration) Session {
	return Session{
		ID:        NewSessionID(),
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(duration),
	}
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
