package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"communityhub/internal/domain"
	"communityhub/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	mu       sync.Mutex
	verified []string
	hashErr  error
}

func (f *fakePasswordHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hash-" + password, nil
}

func (f *fakePasswordHasher) Verify(password, stored string) bool {
	f.mu.Lock()
	f.verified = append(f.verified, stored)
	f.mu.Unlock()
	return stored == "hash-"+password
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	sent []*domain.WelcomeMessageEmailData
	err  error
}

func (f *fakeEmailService) SendWelcomeMessage(_ context.Context, data *domain.WelcomeMessageEmailData) error {
	f.sent = append(f.sent, data)
	return f.err
}

// fakeRecorder implements domain.ActivityRecorder for tests.
type fakeRecorder struct {
	registered, saved, unsaved, rsvps, attended, points int
}

func (f *fakeRecorder) UserRegistered(bool) { f.registered++ }
func (f *fakeRecorder) OrganizationSaved() { f.saved++ }
func (f *fakeRecorder) OrganizationUnsaved() { f.unsaved++ }
func (f *fakeRecorder) EventRegistered() { f.rsvps++ }
func (f *fakeRecorder) AttendanceMarked(pts int) { f.attended++; f.points += pts }

// failingStore wraps a memory store and fails every user repository call.
type failingStore struct {
	*memory.Store
}

func (failingStore) Users() domain.UserRepository { return failingUsers{} }

type failingUsers struct{}

func (failingUsers) Get(context.Context, int64) (*domain.User, error) { return nil, errBoom }
func (failingUsers) GetByUsername(context.Context, string) (*domain.User, error) { return nil, errBoom }
func (failingUsers) Create(context.Context, *domain.User) error { return errBoom }
func (failingUsers) CreateOrganizer(context.Context, *domain.User, *domain.Organization) error {
	return errBoom
}
func (failingUsers) Update(context.Context, int64, domain.UserUpdate) (*domain.User, error) {
	return nil, errBoom
}

type fixture struct {
	store     *memory.Store
	organizer *domain.User
	org       *domain.Organization
	member    *domain.User
}

// newFixture seeds an organizer with an organization and a regular member.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	organizer := domain.NewUser("alice", "hash-secret1", "Alice", "alice@example.com", true)
	org := domain.NewOrganization(0, domain.OrganizationInput{Name: "Green Earth", Categories: domain.Categories{"Environment"}})
	require.NoError(t, store.Users().CreateOrganizer(ctx, organizer, org))

	member := domain.NewUser("bob", "hash-secret2", "Bob", "bob@example.com", false)
	require.NoError(t, store.Users().Create(ctx, member))

	return &fixture{store: store, organizer: organizer, org: org, member: member}
}

func (f *fixture) createEvent(t *testing.T, title string, at time.Time, points int) *domain.Event {
	t.Helper()
	e := domain.NewEvent(f.organizer.ID, f.org.ID, domain.EventInput{Title: title, Date: at, PointsValue: points})
	require.NoError(t, f.store.Events().Create(context.Background(), e))
	return e
}

func ptr[T any](v T) *T { return &v }
