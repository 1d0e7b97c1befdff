package controllers

import (
	"log/slog"
	"net/http"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
)

// OrganizationRequest is the organization block of an organizer registration.
type OrganizationRequest struct {
	Name        string            `json:"name" validate:"required,max=120"`
	Description string            `json:"description" validate:"max=5000"`
	Website     string            `json:"website" validate:"omitempty,url"`
	Email       string            `json:"email" validate:"omitempty,email"`
	Categories  domain.Categories `json:"categories" swaggertype:"array,string"`
}

// RegisterRequest is the request body for POST /api/register.
type RegisterRequest struct {
	Username     string               `json:"username" validate:"required,max=50"`
	Password     string               `json:"password" validate:"required,min=6,max=128"`
	Name         string               `json:"name" validate:"required,max=100"`
	Email        string               `json:"email" validate:"required,email"`
	Bio          string               `json:"bio" validate:"max=2000"`
	Interests    []string             `json:"interests"`
	IsOrganizer  bool                 `json:"isOrganizer"`
	Organization *OrganizationRequest `json:"organization"`
}

// Validate implements helpers.Validator.
func (r RegisterRequest) Validate() []string {
	if r.IsOrganizer && r.Organization == nil {
		return []string{"organization is required for organizers"}
	}
	return nil
}

func (r RegisterRequest) toInput() domain.RegisterInput {
	in := domain.RegisterInput{
		Username:    r.Username,
		Password:    r.Password,
		Name:        r.Name,
		Email:       r.Email,
		Bio:         r.Bio,
		Interests:   r.Interests,
		IsOrganizer: r.IsOrganizer,
	}
	if r.IsOrganizer && r.Organization != nil {
		in.Organization = &domain.OrganizationInput{
			Name:        r.Organization.Name,
			Description: r.Organization.Description,
			Website:     r.Organization.Website,
			Email:       r.Organization.Email,
			Categories:  r.Organization.Categories,
		}
	}
	return in
}

// LoginRequest is the request body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthController handles registration, login and logout.
type AuthController struct {
	Logger   *slog.Logger
	Service  domain.AuthService
	Sessions domain.SessionManager
	Cookie   SessionCookie
}

// NewAuthController creates an AuthController.
func NewAuthController(logger *slog.Logger, svc domain.AuthService, sessions domain.SessionManager, cookie SessionCookie) *AuthController {
	return &AuthController{
		Logger:   logger,
		Service:  svc,
		Sessions: sessions,
		Cookie:   cookie,
	}
}

// Register godoc
// @Summary Register a user or organizer
// @Description Creates a user. When isOrganizer is true the organization block is required and the organization is created with the user. Starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} domain.User
// @Failure 400 {object} helpers.APIError "validation failed or username already exists"
// @Failure 429 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Register(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "user not found")
		return
	}
	if !c.startSession(w, r, user.ID) {
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Authenticates with username and password and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} domain.User
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError "invalid username or password"
// @Failure 429 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "user not found")
		return
	}
	if !c.startSession(w, r, user.ID) {
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}

// Logout godoc
// @Summary Log out
// @Description Ends the current session server-side and clears the cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := callerID(w, r); !ok {
		return
	}
	if cookie, err := r.Cookie(c.Cookie.Name); err == nil {
		if err := c.Sessions.End(r.Context(), cookie.Value); err != nil {
			writeServiceError(w, r, c.Logger, err, "session not found")
			return
		}
	}
	c.Cookie.clear(w)
	helpers.WriteJSON(w, http.StatusOK, helpers.MessageResponse{Message: "logged out"})
}

func (c *AuthController) startSession(w http.ResponseWriter, r *http.Request, userID int64) bool {
	token, expiresAt, err := c.Sessions.Start(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "session not found")
		return false
	}
	c.Cookie.set(w, token, expiresAt)
	return true
}
