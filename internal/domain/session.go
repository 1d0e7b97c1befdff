package domain

import (
	"context"
	"time"
)

// Session binds a server-side session id to an authenticated user.
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
}

// SessionStore persists live sessions. Get returns ErrNotFound for unknown or expired ids.
type SessionStore interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// TokenIssuer signs the cookie value carrying a session id.
type TokenIssuer interface {
	Issue(sessionID string, userID int64, expiresAt time.Time) (string, error)
}

// TokenVerifier checks a cookie value and returns the session id and user id it carries.
type TokenVerifier interface {
	Verify(token string) (sessionID string, userID int64, err error)
}

// SessionManager starts, resolves and ends sessions for the HTTP layer.
type SessionManager interface {
	Start(ctx context.Context, userID int64) (token string, expiresAt time.Time, err error)
	// Resolve returns ErrUnauthenticated for invalid, expired or ended sessions.
	Resolve(ctx context.Context, token string) (userID int64, err error)
	End(ctx context.Context, token string) error
}
