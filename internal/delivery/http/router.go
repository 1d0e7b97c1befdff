package http

import (
	"log/slog"
	"net/http"

	"communityhub/internal/delivery/http/controllers"
	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/delivery/http/middleware"
	"communityhub/internal/domain"
	"communityhub/internal/metrics"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig carries the controllers and cross-cutting collaborators the router wires together.
type RouterConfig struct {
	Logger        *slog.Logger
	Sessions      domain.SessionManager
	CookieName    string
	AuthLimiter   *middleware.RateLimiter
	AllowOrigins  []string
	Auth          *controllers.AuthController
	Users         *controllers.UserController
	Organizations *controllers.OrganizationController
	Events        *controllers.EventController
	Attendees     *controllers.AttendeeController
}

// NewRouter initializes the HTTP router with all application routes and wraps it with
// CORS, request logging and metrics.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(cfg.Sessions, cfg.CookieName, cfg.Logger)
	limit := func(next http.HandlerFunc) http.HandlerFunc { return next }
	if cfg.AuthLimiter != nil {
		limit = cfg.AuthLimiter.Limit
	}

	// Auth
	mux.HandleFunc("POST /api/register", limit(cfg.Auth.Register))
	mux.HandleFunc("POST /api/login", limit(cfg.Auth.Login))
	mux.HandleFunc("POST /api/logout", auth(cfg.Auth.Logout))

	// Current user
	mux.HandleFunc("GET /api/user", auth(cfg.Users.GetMe))
	mux.HandleFunc("PUT /api/user/profile", auth(cfg.Users.UpdateProfile))
	mux.HandleFunc("GET /api/user/events", auth(cfg.Attendees.ListMyEvents))
	mux.HandleFunc("GET /api/user/saved-organizations", auth(cfg.Organizations.ListSaved))

	// Organizations
	mux.HandleFunc("GET /api/organizations", cfg.Organizations.List)
	mux.HandleFunc("GET /api/organizations/{id}", cfg.Organizations.Get)
	mux.HandleFunc("GET /api/organizations/{id}/events", cfg.Organizations.ListEvents)
	mux.HandleFunc("GET /api/organizations/{id}/saved", auth(cfg.Organizations.IsSaved))
	mux.HandleFunc("PUT /api/organizations/{id}", auth(cfg.Organizations.Update))
	mux.HandleFunc("POST /api/organizations/{id}/save", auth(cfg.Organizations.Save))
	mux.HandleFunc("DELETE /api/organizations/{id}/unsave", auth(cfg.Organizations.Unsave))

	// Events
	mux.HandleFunc("GET /api/events", cfg.Events.List)
	mux.HandleFunc("GET /api/events/{id}", cfg.Events.Get)
	mux.HandleFunc("POST /api/events", auth(cfg.Events.Create))
	mux.HandleFunc("PUT /api/events/{id}", auth(cfg.Events.Update))
	mux.HandleFunc("DELETE /api/events/{id}", auth(cfg.Events.Delete))
	mux.HandleFunc("POST /api/events/{id}/register", auth(cfg.Attendees.RegisterForEvent))
	mux.HandleFunc("GET /api/events/{id}/participants", cfg.Attendees.ListParticipants)
	mux.HandleFunc("POST /api/events/{id}/participants/{userId}/attend", auth(cfg.Attendees.MarkAttended))

	// Operations
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.AllowOrigins, handler)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	return metrics.HTTPMiddleware(handler)
}
