package domain

import (
	"context"
	"time"
)

// Event statuses.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// Event is an activity an organizer hosts under their organization.
// swagger:model Event
type Event struct {
	ID             int64     `json:"id"`
	OrganizerID    int64     `json:"organizerId"`
	OrganizationID int64     `json:"organizationId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"`
	Location       string    `json:"location"`
	PointsValue    int       `json:"pointsValue"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// EventInput holds the client-editable event fields. The organizer and organization are
// always derived server-side from the principal.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	PointsValue int
	Status      string
}

// NewEvent returns a new Event for the given organizer and organization. ID and CreatedAt are set by the store.
func NewEvent(organizerID, organizationID int64, in EventInput) *Event {
	return &Event{
		OrganizerID:    organizerID,
		OrganizationID: organizationID,
		Title:          in.Title,
		Description:    in.Description,
		Date:           in.Date,
		Location:       in.Location,
		PointsValue:    in.PointsValue,
		Status:         in.Status,
	}
}

// EventUpdate is a partial event record; nil fields are left unchanged.
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	PointsValue *int
	Status      *string
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Get(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]*Event, error)
	ListByOrganization(ctx context.Context, organizationID int64) ([]*Event, error)
	// ListUpcoming returns events dated strictly after now, ascending by date.
	ListUpcoming(ctx context.Context, now time.Time) ([]*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, id int64, upd EventUpdate) (*Event, error)
	// Delete removes the event and its participant rows.
	Delete(ctx context.Context, id int64) error
}

// EventService defines event browsing and organizer-only management.
type EventService interface {
	// List returns the organizer's events when organizerID is non-nil, otherwise upcoming events.
	List(ctx context.Context, organizerID *int64) ([]*Event, error)
	Get(ctx context.Context, id int64) (*Event, error)
	Create(ctx context.Context, callerID int64, in EventInput) (*Event, error)
	Update(ctx context.Context, id, callerID int64, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id, callerID int64) error
}
