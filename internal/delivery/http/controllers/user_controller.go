package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
)

// UpdateProfileRequest is the request body for PUT /api/user/profile. All fields are optional.
type UpdateProfileRequest struct {
	Name      *string  `json:"name" validate:"omitempty,max=100"`
	Bio       *string  `json:"bio" validate:"omitempty,max=2000"`
	Interests []string `json:"interests"`
}

// UserController handles the authenticated principal's own profile.
type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

// NewUserController creates a UserController with the given logger and service.
func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// GetMe godoc
// @Summary Get the current user
// @Description Returns the authenticated user, loaded fresh from the store.
// @Tags user
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/user [get]
func (c *UserController) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	user, err := c.Service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.MsgUnauthenticated)
			return
		}
		writeServiceError(w, r, c.Logger, err, "user not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Description Updates name, bio and interests. Omitted fields are left unchanged.
// @Tags user
// @Accept json
// @Produce json
// @Param body body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} domain.User
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.UpdateProfile(r.Context(), userID, domain.ProfileUpdate{
		Name:      req.Name,
		Bio:       req.Bio,
		Interests: req.Interests,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "user not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}
