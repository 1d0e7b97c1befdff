package controllers

import (
	"log/slog"
	"net/http"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
)

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterForEvent godoc
// @Summary Register the current user for an event
// @Description Creates a participant row with status "registered". A second registration by the same user is rejected.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 201 {object} domain.EventParticipant
// @Failure 400 {object} helpers.APIError "already registered for this event"
// @Failure 401 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/events/{id}/register [post]
func (c *AttendeeController) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	p, err := c.Service.RegisterForEvent(r.Context(), eventID, userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, p)
}

// ListParticipants godoc
// @Summary List an event's participants
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} domain.EventParticipant
// @Failure 400 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/events/{id}/participants [get]
func (c *AttendeeController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	participants, err := c.Service.ListParticipants(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	if participants == nil {
		participants = []*domain.EventParticipant{}
	}
	helpers.WriteJSON(w, http.StatusOK, participants)
}

// MarkAttended godoc
// @Summary Mark a participant as attended
// @Description Event-owner only. Credits the event's points to the participant exactly once.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Param userId path int true "Participant user ID"
// @Success 200 {object} domain.EventParticipant
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError
// @Failure 403 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/events/{id}/participants/{userId}/attend [post]
func (c *AttendeeController) MarkAttended(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	participantID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	p, err := c.Service.MarkAttended(r.Context(), eventID, participantID, organizerID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "participant not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, p)
}

// ListMyEvents godoc
// @Summary List the events the current user registered for
// @Tags user
// @Produce json
// @Success 200 {array} domain.EventParticipantWithEvent
// @Failure 401 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /api/user/events [get]
func (c *AttendeeController) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	items, err := c.Service.ListMyEvents(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	if items == nil {
		items = []*domain.EventParticipantWithEvent{}
	}
	helpers.WriteJSON(w, http.StatusOK, items)
}
