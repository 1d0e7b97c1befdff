package domain

import (
	"context"
	"time"
)

// Participant statuses.
const (
	ParticipantStatusRegistered = "registered"
	ParticipantStatusAttended   = "attended"
)

// EventParticipant represents a user's RSVP to, or attendance at, an event.
// swagger:model EventParticipant
type EventParticipant struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	UserID    int64     `json:"userId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewEventParticipant creates a registration row. ID and CreatedAt are set by the store on create.
func NewEventParticipant(eventID, userID int64) *EventParticipant {
	return &EventParticipant{
		EventID: eventID,
		UserID:  userID,
		Status:  ParticipantStatusRegistered,
	}
}

// EventParticipantRepository defines storage operations for event participants.
type EventParticipantRepository interface {
	Get(ctx context.Context, eventID, userID int64) (*EventParticipant, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*EventParticipant, error)
	ListByUser(ctx context.Context, userID int64) ([]*EventParticipant, error)
	// Create returns ErrAlreadyRegistered when the (event, user) pair exists.
	Create(ctx context.Context, p *EventParticipant) error
	// MarkAttended flips the row to attended and credits the event's points to the user in
	// the same critical section. Already attended rows are returned unchanged.
	MarkAttended(ctx context.Context, eventID, userID int64) (*EventParticipant, error)
}

// EventParticipantWithEvent bundles a participation row with its event.
type EventParticipantWithEvent struct {
	Event       *Event            `json:"event"`
	Participant *EventParticipant `json:"participant"`
}

// AttendeeService defines attendee-facing operations such as event registration.
type AttendeeService interface {
	// RegisterForEvent returns ErrAlreadyRegistered on a second registration by the same user.
	RegisterForEvent(ctx context.Context, eventID, userID int64) (*EventParticipant, error)
	ListMyEvents(ctx context.Context, userID int64) ([]*EventParticipantWithEvent, error)
	ListParticipants(ctx context.Context, eventID int64) ([]*EventParticipant, error)
	// MarkAttended is restricted to the event's organizer.
	MarkAttended(ctx context.Context, eventID, participantUserID, callerID int64) (*EventParticipant, error)
}
