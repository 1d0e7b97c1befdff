package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantDetails []string
	}{
		{"not found", fmt.Errorf("get: %w", domain.ErrNotFound), http.StatusNotFound, "thing not found", nil},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, helpers.MsgUnauthenticated, nil},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid username or password", nil},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, helpers.MsgForbidden, nil},
		{"not organizer", domain.ErrNotOrganizer, http.StatusForbidden, domain.ErrNotOrganizer.Error(), nil},
		{
			"invalid input", fmt.Errorf("%w: title is required", domain.ErrInvalidInput),
			http.StatusBadRequest, helpers.MsgValidation, []string{"title is required"},
		},
		{"duplicate username", domain.ErrDuplicateUsername, http.StatusBadRequest, "username already exists", nil},
		{"already registered", domain.ErrAlreadyRegistered, http.StatusBadRequest, "already registered for this event", nil},
		{"already saved", domain.ErrAlreadySaved, http.StatusBadRequest, "organization already saved", nil},
		{"organization missing", domain.ErrOrganizationMissing, http.StatusBadRequest, "organizer has no organization", nil},
		{"unexpected", errors.New("pq: connection reset"), http.StatusInternalServerError, helpers.MsgInternalError, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)

			writeServiceError(rec, req, testLogger(), tt.err, "thing not found")

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeAPIError(t, rec)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantDetails, body.Details)
			assert.NotContains(t, body.Message, "pq:")
		})
	}
}
