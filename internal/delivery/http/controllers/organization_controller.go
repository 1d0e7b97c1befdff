package controllers

import (
	"log/slog"
	"net/http"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
)

// UpdateOrganizationRequest is the request body for PUT /api/organizations/{id}. Omitted fields
// are left unchanged. id, userId and followers are accepted so a client may send back a full
// organization, but they are ignored.
type UpdateOrganizationRequest struct {
	Name        *string            `json:"name" validate:"omitempty,max=120"`
	Description *string            `json:"description" validate:"omitempty,max=5000"`
	Website     *string            `json:"website" validate:"omitempty,url"`
	Email       *string            `json:"email" validate:"omitempty,email"`
	Categories  *domain.Categories `json:"categories" swaggertype:"array,string"`

	ID        *int64 `json:"id,omitempty" swaggerignore:"true"`
	UserID    *int64 `json:"userId,omitempty" swaggerignore:"true"`
	Followers *int   `json:"followers,omitempty" swaggerignore:"true"`
}

// SavedResponse is the response body for GET /api/organizations/{id}/saved.
type SavedResponse struct {
	Saved bool `json:"saved"`
}

// OrganizationController handles organization browsing, owner edits and follows.
type OrganizationController struct {
	Logger  *slog.Logger
	Service domain.OrganizationService
}

// NewOrganizationController creates an OrganizationController.
func NewOrganizationController(logger *slog.Logger, svc domain.OrganizationService) *OrganizationController {
	return &OrganizationController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List organizations
// @Description Returns all organizations, or those whose name, description or categories contain the search term (case-insensitive).
// @Tags organizations
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {array} domain.Organization
// @Failure 500 {object} helpers.APIError
// @Router /api/organizations [get]
func (c *OrganizationController) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := c.Service.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "organization not found")
		return
	}
	if orgs == nil {
		orgs = []*domain.Organization{}
	}
	helpers.WriteJSON(w, http.StatusOK, orgs)
}

// Get godoc
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} domain.Organization
// @Failure 400 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/organizations/{id} [get]
func (c *OrganizationController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	org, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "organization not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, org)
}

// ListEvents godoc
// @Summary List an organization's events
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {array} domain.Event
// @Failure 400 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/organizations/{id}/events [get]
func (c *OrganizationController) ListEvents(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	events, err := c.Service.ListEvents(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "organization not found")
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// Update godoc
// @Summary Update an organization
// @Description Owner-only partial update. The owner and follower count cannot be changed.
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param body body UpdateOrganizationRequest true "Organization fields"
// @Success 200 {object} domain.Organization
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError
// @Failure 403 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/organizations/{id} [put]
func (c *OrganizationController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateOrganizationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	org, err := c.Service.Update(r.Context(), id, userID, domain.OrganizationUpdate{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Email:       req.Email,
		Categories:  req.Categories,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "organization not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, org)
}

// Save godoc
// @Summary Follow an organization
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 201 {object} domain.SavedOrganization
// @Failure 400 {object} helpers.APIError "organization already saved"
// @Failure 401 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/organizations/{id}/save [post]
func (c *OrganizationController) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	saved, err := c.Service.Save(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "organization not found")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, saved)
}

// Unsave godoc
// @Summary Unfollow an organization
// @Description Idempotent: unsaving an organization that is not saved succeeds without changes.
// @Tags organizations
// @Param id path int true "Organization ID"
// @Success 204
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/organizations/{id}/unsave [delete]
func (c *OrganizationController) Unsave(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Unsave(r.Context(), userID, id); err != nil {
		writeServiceError(w, r, c.Logger, err, "organization not found")
		return
	}
	helpers.WriteNoContent(w)
}

// IsSaved godoc
// @Summary Check whether the current user follows an organization
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} SavedResponse
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/organizations/{id}/saved [get]
func (c *OrganizationController) IsSaved(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	saved, err := c.Service.IsSaved(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "organization not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, SavedResponse{Saved: saved})
}

// ListSaved godoc
// @Summary List the organizations the current user follows
// @Tags user
// @Produce json
// @Success 200 {array} domain.Organization
// @Failure 401 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/user/saved-organizations [get]
func (c *OrganizationController) ListSaved(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	orgs, err := c.Service.ListSaved(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "organization not found")
		return
	}
	if orgs == nil {
		orgs = []*domain.Organization{}
	}
	helpers.WriteJSON(w, http.StatusOK, orgs)
}
