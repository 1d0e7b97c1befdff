package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/delivery/http/middleware"
	"communityhub/internal/domain"
)

// writeServiceError maps a service error onto the HTTP error taxonomy. notFound is the message
// used for domain.ErrNotFound. Unexpected errors are logged and rendered as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrUnauthenticated):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.MsgUnauthenticated)
	case errors.Is(err, domain.ErrInvalidCredentials):
		helpers.WriteJSONError(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.MsgForbidden)
	case errors.Is(err, domain.ErrNotOrganizer):
		helpers.WriteJSONError(w, http.StatusForbidden, domain.ErrNotOrganizer.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		detail := strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.MsgValidation, detail)
	case errors.Is(err, domain.ErrDuplicateUsername),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrAlreadySaved),
		errors.Is(err, domain.ErrOrganizationMissing):
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.MsgInternalError)
	}
}

// callerID returns the authenticated user ID, writing a 401 when the request carries none.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.MsgUnauthenticated)
	}
	return id, ok
}
