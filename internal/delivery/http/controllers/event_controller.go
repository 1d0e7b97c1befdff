package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
)

// CreateEventRequest is the request body for POST /api/events. The organizer and organization
// are taken from the session; organizationId and organizerId are accepted but ignored.
type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=5000"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"max=300"`
	PointsValue int       `json:"pointsValue" validate:"min=0"`
	Status      string    `json:"status" validate:"omitempty,oneof=upcoming completed cancelled"`

	OrganizationID *int64 `json:"organizationId,omitempty" swaggerignore:"true"`
	OrganizerID    *int64 `json:"organizerId,omitempty" swaggerignore:"true"`
}

// UpdateEventRequest is the request body for PUT /api/events/{id}. Omitted fields are left unchanged.
type UpdateEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location" validate:"omitempty,max=300"`
	PointsValue *int       `json:"pointsValue" validate:"omitempty,min=0"`
	Status      *string    `json:"status" validate:"omitempty,oneof=upcoming completed cancelled"`

	ID             *int64 `json:"id,omitempty" swaggerignore:"true"`
	OrganizationID *int64 `json:"organizationId,omitempty" swaggerignore:"true"`
	OrganizerID    *int64 `json:"organizerId,omitempty" swaggerignore:"true"`
}

// EventController handles event browsing and organizer-only management.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

// NewEventController creates an EventController.
func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List events
// @Description Without organizerId, returns upcoming events (dated after now) ascending by date. With organizerId, returns all of that organizer's events.
// @Tags events
// @Produce json
// @Param organizerId query int false "Organizer user ID"
// @Success 200 {array} domain.Event
// @Failure 400 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := helpers.QueryID(w, r, "organizerId")
	if !ok {
		return
	}
	events, err := c.Service.List(r.Context(), organizerID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// Get godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/events/{id} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	event, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// Create godoc
// @Summary Create an event
// @Description Organizer-only. The event is created under the organizer's own organization.
// @Tags events
// @Accept json
// @Produce json
// @Param body body CreateEventRequest true "Event fields"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.APIError "validation failed or organizer has no organization"
// @Failure 401 {object} helpers.APIError
// @Failure 403 {object} helpers.APIError "only organizers can perform this action"
// @Failure 500 {object} helpers.APIError
// @Router /api/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), userID, domain.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		PointsValue: req.PointsValue,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// Update godoc
// @Summary Update an event
// @Description Owner-only partial update.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param body body UpdateEventRequest true "Event fields"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError
// @Failure 403 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/events/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Update(r.Context(), id, userID, domain.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		PointsValue: req.PointsValue,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Description Owner-only. Removes the event and its participants.
// @Tags events
// @Param id path int true "Event ID"
// @Success 204
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError
// @Failure 403 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id, userID); err != nil {
		writeServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteNoContent(w)
}
