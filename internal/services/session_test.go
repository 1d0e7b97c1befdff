package services

import (
	"context"
	"testing"
	"time"

	"communityhub/internal/adapters/auth"
	"communityhub/internal/adapters/session"
	"communityhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionManager() (domain.SessionManager, *session.MemoryStore) {
	store := session.NewMemoryStore()
	signer := auth.NewJWTSigner("test-secret")
	return NewSessionManager(store, signer, signer, time.Hour), store
}

func TestSessionManager_Lifecycle(t *testing.T) {
	ctx := context.Background()
	mgr, store := newTestSessionManager()

	token, expiresAt, err := mgr.Start(ctx, 7)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
	assert.Equal(t, 1, store.Len())

	uid, err := mgr.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), uid)

	require.NoError(t, mgr.End(ctx, token))
	_, err = mgr.Resolve(ctx, token)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, 0, store.Len())
}

func TestSessionManager_ResolveRejects(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newTestSessionManager()

	_, err := mgr.Resolve(ctx, "")
	require.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = mgr.Resolve(ctx, "garbage")
	require.ErrorIs(t, err, domain.ErrUnauthenticated)

	// Validly signed token whose session was never stored.
	forged, err := auth.NewJWTSigner("test-secret").Issue("unknown-session", 1, time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, err = mgr.Resolve(ctx, forged)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSessionManager_ResolveRejectsUserMismatch(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	signer := auth.NewJWTSigner("test-secret")
	mgr := NewSessionManager(store, signer, signer, time.Hour)

	require.NoError(t, store.Put(ctx, &domain.Session{ID: "s1", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}))
	token, err := signer.Issue("s1", 2, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = mgr.Resolve(ctx, token)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSessionManager_EndInvalidTokenIsNoop(t *testing.T) {
	mgr, _ := newTestSessionManager()
	require.NoError(t, mgr.End(context.Background(), "garbage"))
}
