package services

import (
	"context"
	"testing"

	"communityhub/internal/domain"
	"communityhub/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   domain.RegisterInput
		errIs   error
		wantOrg string
	}{
		{
			name:  "member",
			input: domain.RegisterInput{Username: "carol", Password: "pw1234", Name: "Carol", Email: "Carol@Example.com", Interests: []string{"parks", "<b></b>"}},
		},
		{
			name: "organizer creates organization",
			input: domain.RegisterInput{
				Username: "dave", Password: "pw1234", Name: "Dave", Email: "dave@example.com", IsOrganizer: true,
				Organization: &domain.OrganizationInput{Name: "River Watch", Categories: domain.Categories{"Water", "water"}},
			},
			wantOrg: "River Watch",
		},
		{
			name:  "missing fields",
			input: domain.RegisterInput{Username: "erin", Password: "", Name: "Erin", Email: "erin@example.com"},
			errIs: domain.ErrInvalidInput,
		},
		{
			name:  "organizer without organization",
			input: domain.RegisterInput{Username: "fred", Password: "pw1234", Name: "Fred", Email: "f@example.com", IsOrganizer: true},
			errIs: domain.ErrInvalidInput,
		},
		{
			name:  "duplicate username is case-insensitive",
			input: domain.RegisterInput{Username: "ALICE", Password: "pw1234", Name: "A", Email: "a2@example.com"},
			errIs: domain.ErrDuplicateUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			mail := &fakeEmailService{}
			rec := &fakeRecorder{}
			svc := NewAuthService(f.store, &fakePasswordHasher{}, mail, rec, discardLogger())

			user, err := svc.Register(ctx, tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Empty(t, mail.sent)
				assert.Zero(t, rec.registered)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, user.ID)
			assert.Equal(t, "hash-"+tt.input.Password, user.PasswordHash)
			assert.Equal(t, 0, user.Points)
			assert.Equal(t, 1, rec.registered)
			require.Len(t, mail.sent, 1)
			assert.Equal(t, tt.wantOrg, mail.sent[0].OrganizationName)

			if tt.wantOrg != "" {
				org, err := f.store.Organizations().GetByUserID(ctx, user.ID)
				require.NoError(t, err)
				assert.Equal(t, tt.wantOrg, org.Name)
				assert.Equal(t, domain.Categories{"Water"}, org.Categories)
				assert.Equal(t, 0, org.Followers)
			} else {
				_, err := f.store.Organizations().GetByUserID(ctx, user.ID)
				require.ErrorIs(t, err, domain.ErrNotFound)
			}
		})
	}
}

func TestAuthService_Register_NormalisesInput(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.store, &fakePasswordHasher{}, nil, nil, discardLogger())

	user, err := svc.Register(context.Background(), domain.RegisterInput{
		Username: "  carol ", Password: "pw1234", Name: "<i>Carol</i>", Email: " Carol@Example.com ",
		Interests: []string{"parks", "<b></b>"},
	})
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Username)
	assert.Equal(t, "Carol", user.Name)
	assert.Equal(t, "carol@example.com", user.Email)
	assert.Equal(t, []string{"parks"}, user.Interests)
}

func TestAuthService_Register_EmailFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	mail := &fakeEmailService{err: errBoom}
	svc := NewAuthService(f.store, &fakePasswordHasher{}, mail, nil, discardLogger())

	user, err := svc.Register(context.Background(), domain.RegisterInput{
		Username: "carol", Password: "pw1234", Name: "Carol", Email: "carol@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Len(t, mail.sent, 1)
}

func TestAuthService_Register_StoreError(t *testing.T) {
	svc := NewAuthService(failingStore{memory.NewStore()}, &fakePasswordHasher{}, nil, nil, discardLogger())
	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Username: "carol", Password: "pw1234", Name: "Carol", Email: "carol@example.com",
	})
	require.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	hasher := &fakePasswordHasher{}
	svc := NewAuthService(f.store, hasher, nil, nil, discardLogger())

	user, err := svc.Login(ctx, "Alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, f.organizer.ID, user.ID)

	_, err = svc.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	hasher.verified = nil
	_, err = svc.Login(ctx, "nobody", "secret1")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	require.Len(t, hasher.verified, 1, "unknown user must still run a hash comparison")
	assert.Equal(t, "hash-communityhub-dummy-password", hasher.verified[0])
}

func TestAuthService_Login_StoreError(t *testing.T) {
	svc := NewAuthService(failingStore{memory.NewStore()}, &fakePasswordHasher{}, nil, nil, discardLogger())
	_, err := svc.Login(context.Background(), "alice", "pw")
	require.ErrorIs(t, err, errBoom)
}
