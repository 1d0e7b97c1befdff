package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	h "communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// RequireAuth returns a wrapper that resolves the session cookie and sets the user ID in the
// request context. If the cookie is missing or the session is invalid, expired or ended, it
// responds with 401 and does not call next.
func RequireAuth(sessions domain.SessionManager, cookieName string, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.MsgUnauthenticated)
				return
			}
			userID, err := sessions.Resolve(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					h.WriteJSONError(w, http.StatusUnauthorized, h.MsgUnauthenticated)
					return
				}
				logger.ErrorContext(r.Context(), "session lookup failed", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusInternalServerError, h.MsgInternalError)
				return
			}
			next(w, r.WithContext(SetUserID(r.Context(), userID)))
		}
	}
}
