package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/delivery/http/middleware"
	"communityhub/internal/domain"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newRequest builds a request, optionally authenticated as userID (0 means anonymous).
func newRequest(method, target, body string, userID int64) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if userID != 0 {
		req = req.WithContext(middleware.SetUserID(req.Context(), userID))
	}
	return req
}

// serve routes req through a mux with the given pattern so path values are populated.
func serve(pattern string, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, handler)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) helpers.APIError {
	t.Helper()
	var body helpers.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

// fakeAuthService implements domain.AuthService for tests.
type fakeAuthService struct {
	user      *domain.User
	err       error
	lastInput domain.RegisterInput
}

func (f *fakeAuthService) Register(_ context.Context, in domain.RegisterInput) (*domain.User, error) {
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeAuthService) Login(_ context.Context, _, _ string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

// fakeSessionManager implements domain.SessionManager for tests.
type fakeSessionManager struct {
	startErr error
	ended    []string
}

func (f *fakeSessionManager) Start(_ context.Context, userID int64) (string, time.Time, error) {
	if f.startErr != nil {
		return "", time.Time{}, f.startErr
	}
	return "token-for-user", time.Now().Add(time.Hour), nil
}

func (f *fakeSessionManager) Resolve(context.Context, string) (int64, error) { return 0, nil }

func (f *fakeSessionManager) End(_ context.Context, token string) error {
	f.ended = append(f.ended, token)
	return nil
}

// fakeEventService implements domain.EventService for tests.
type fakeEventService struct {
	events      []*domain.Event
	err         error
	organizerID *int64
	created     domain.EventInput
	callerID    int64
}

func (f *fakeEventService) List(_ context.Context, organizerID *int64) ([]*domain.Event, error) {
	f.organizerID = organizerID
	return f.events, f.err
}

func (f *fakeEventService) Get(_ context.Context, id int64) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Event{ID: id}, nil
}

func (f *fakeEventService) Create(_ context.Context, callerID int64, in domain.EventInput) (*domain.Event, error) {
	f.callerID, f.created = callerID, in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Event{ID: 1, OrganizerID: callerID, OrganizationID: 9, Title: in.Title, Date: in.Date, PointsValue: in.PointsValue}, nil
}

func (f *fakeEventService) Update(_ context.Context, id, callerID int64, _ domain.EventUpdate) (*domain.Event, error) {
	f.callerID = callerID
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Event{ID: id}, nil
}

func (f *fakeEventService) Delete(_ context.Context, _, callerID int64) error {
	f.callerID = callerID
	return f.err
}

// fakeOrganizationService implements domain.OrganizationService for tests.
type fakeOrganizationService struct {
	orgs    []*domain.Organization
	err     error
	search  string
	update  domain.OrganizationUpdate
	saved   bool
	unsaved int
}

func (f *fakeOrganizationService) List(_ context.Context, search string) ([]*domain.Organization, error) {
	f.search = search
	return f.orgs, f.err
}

func (f *fakeOrganizationService) Get(_ context.Context, id int64) (*domain.Organization, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Organization{ID: id}, nil
}

func (f *fakeOrganizationService) ListEvents(context.Context, int64) ([]*domain.Event, error) {
	return nil, f.err
}

func (f *fakeOrganizationService) Update(_ context.Context, id, callerID int64, upd domain.OrganizationUpdate) (*domain.Organization, error) {
	f.update = upd
	if f.err != nil {
		return nil, f.err
	}
	org := &domain.Organization{ID: id, UserID: callerID, Followers: 3}
	if upd.Name != nil {
		org.Name = *upd.Name
	}
	return org, nil
}

func (f *fakeOrganizationService) Save(_ context.Context, userID, orgID int64) (*domain.SavedOrganization, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SavedOrganization{ID: 1, UserID: userID, OrganizationID: orgID}, nil
}

func (f *fakeOrganizationService) Unsave(context.Context, int64, int64) error {
	f.unsaved++
	return f.err
}

func (f *fakeOrganizationService) IsSaved(context.Context, int64, int64) (bool, error) {
	return f.saved, f.err
}

func (f *fakeOrganizationService) ListSaved(context.Context, int64) ([]*domain.Organization, error) {
	return f.orgs, f.err
}

// fakeAttendeeService implements domain.AttendeeService for tests.
type fakeAttendeeService struct {
	items        []*domain.EventParticipantWithEvent
	participants []*domain.EventParticipant
	err          error
	calls        [][3]int64
}

func (f *fakeAttendeeService) RegisterForEvent(_ context.Context, eventID, userID int64) (*domain.EventParticipant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.EventParticipant{ID: 1, EventID: eventID, UserID: userID, Status: domain.ParticipantStatusRegistered}, nil
}

func (f *fakeAttendeeService) ListMyEvents(context.Context, int64) ([]*domain.EventParticipantWithEvent, error) {
	return f.items, f.err
}

func (f *fakeAttendeeService) ListParticipants(context.Context, int64) ([]*domain.EventParticipant, error) {
	return f.participants, f.err
}

func (f *fakeAttendeeService) MarkAttended(_ context.Context, eventID, userID, callerID int64) (*domain.EventParticipant, error) {
	f.calls = append(f.calls, [3]int64{eventID, userID, callerID})
	if f.err != nil {
		return nil, f.err
	}
	return &domain.EventParticipant{EventID: eventID, UserID: userID, Status: domain.ParticipantStatusAttended}, nil
}

// fakeUserService implements domain.UserService for tests.
type fakeUserService struct {
	user *domain.User
	err  error
	upd  domain.ProfileUpdate
}

func (f *fakeUserService) GetByID(context.Context, int64) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserService) UpdateProfile(_ context.Context, _ int64, upd domain.ProfileUpdate) (*domain.User, error) {
	f.upd = upd
	return f.user, f.err
}
