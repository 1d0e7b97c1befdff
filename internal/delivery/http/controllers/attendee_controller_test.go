package controllers

import (
	"errors"
	"net/http"
	"testing"

	"communityhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendeeController_RegisterForEvent(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		err        error
		wantStatus int
	}{
		{"created", 2, nil, http.StatusCreated},
		{"unauthenticated", 0, nil, http.StatusUnauthorized},
		{"duplicate", 2, domain.ErrAlreadyRegistered, http.StatusBadRequest},
		{"unknown event", 2, domain.ErrNotFound, http.StatusNotFound},
		{"store failure", 2, errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAttendeeController(testLogger(), &fakeAttendeeService{err: tt.err})
			rec := serve("POST /api/events/{id}/register", ctrl.RegisterForEvent,
				newRequest(http.MethodPost, "/api/events/3/register", "", tt.userID))
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.JSONEq(t, `{"id":1,"eventId":3,"userId":2,"status":"registered","createdAt":"0001-01-01T00:00:00Z"}`, rec.Body.String())
			}
		})
	}
}

func TestAttendeeController_MarkAttended(t *testing.T) {
	svc := &fakeAttendeeService{}
	ctrl := NewAttendeeController(testLogger(), svc)
	pattern := "POST /api/events/{id}/participants/{userId}/attend"

	rec := serve(pattern, ctrl.MarkAttended, newRequest(http.MethodPost, "/api/events/3/participants/2/attend", "", 7))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, [][3]int64{{3, 2, 7}}, svc.calls)

	rec = serve(pattern, ctrl.MarkAttended, newRequest(http.MethodPost, "/api/events/3/participants/x/attend", "", 7))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ctrl = NewAttendeeController(testLogger(), &fakeAttendeeService{err: domain.ErrForbidden})
	rec = serve(pattern, ctrl.MarkAttended, newRequest(http.MethodPost, "/api/events/3/participants/2/attend", "", 2))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAttendeeController_Lists(t *testing.T) {
	ctrl := NewAttendeeController(testLogger(), &fakeAttendeeService{})

	rec := serve("GET /api/user/events", ctrl.ListMyEvents, newRequest(http.MethodGet, "/api/user/events", "", 2))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve("GET /api/user/events", ctrl.ListMyEvents, newRequest(http.MethodGet, "/api/user/events", "", 0))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve("GET /api/events/{id}/participants", ctrl.ListParticipants, newRequest(http.MethodGet, "/api/events/3/participants", "", 0))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
