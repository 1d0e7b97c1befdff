package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"communityhub/internal/domain"

	"github.com/google/uuid"
)

type sessionManager struct {
	store    domain.SessionStore
	issuer   domain.TokenIssuer
	verifier domain.TokenVerifier
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionManager returns a SessionManager that keeps session ids in store and hands
// clients a signed token carrying the id.
func NewSessionManager(store domain.SessionStore, issuer domain.TokenIssuer, verifier domain.TokenVerifier, ttl time.Duration) domain.SessionManager {
	return &sessionManager{
		store:    store,
		issuer:   issuer,
		verifier: verifier,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *sessionManager) Start(ctx context.Context, userID int64) (string, time.Time, error) {
	sess := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: m.now().Add(m.ttl),
	}
	if err := m.store.Put(ctx, sess); err != nil {
		return "", time.Time{}, fmt.Errorf("store session: %w", err)
	}
	token, err := m.issuer.Issue(sess.ID, userID, sess.ExpiresAt)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue session token: %w", err)
	}
	return token, sess.ExpiresAt, nil
}

func (m *sessionManager) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, domain.ErrUnauthenticated
	}
	sessionID, userID, err := m.verifier.Verify(token)
	if err != nil {
		return 0, domain.ErrUnauthenticated
	}
	sess, err := m.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrUnauthenticated
		}
		return 0, fmt.Errorf("get session: %w", err)
	}
	if sess.UserID != userID {
		return 0, domain.ErrUnauthenticated
	}
	return userID, nil
}

func (m *sessionManager) End(ctx context.Context, token string) error {
	sessionID, _, err := m.verifier.Verify(token)
	if err != nil {
		return nil
	}
	if err := m.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
