package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"communityhub/internal/adapters/sanitize"
	"communityhub/internal/domain"
)

type eventService struct {
	store domain.Store
	now   func() time.Time
}

// NewEventService creates an EventService backed by store.
func NewEventService(store domain.Store) domain.EventService {
	return &eventService{store: store, now: time.Now}
}

func (s *eventService) List(ctx context.Context, organizerID *int64) ([]*domain.Event, error) {
	var (
		events []*domain.Event
		err    error
	)
	if organizerID != nil {
		events, err = s.store.Events().ListByOrganizer(ctx, *organizerID)
	} else {
		events, err = s.store.Events().ListUpcoming(ctx, s.now())
	}
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.store.Events().Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) Create(ctx context.Context, callerID int64, in domain.EventInput) (*domain.Event, error) {
	caller, err := s.store.Users().Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("get caller: %w", err)
	}
	if !caller.IsOrganizer {
		return nil, domain.ErrNotOrganizer
	}
	org, err := s.store.Organizations().GetByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrOrganizationMissing
		}
		return nil, fmt.Errorf("get organizer organization: %w", err)
	}

	in.Title = sanitize.Text(in.Title)
	in.Description = sanitize.HTML(in.Description)
	in.Location = sanitize.Text(in.Location)
	if in.Status == "" {
		in.Status = domain.EventStatusUpcoming
	}
	if err := validateEvent(in.Title, in.PointsValue, in.Status, in.Date); err != nil {
		return nil, err
	}

	event := domain.NewEvent(callerID, org.ID, in)
	if err := s.store.Events().Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id, callerID int64, upd domain.EventUpdate) (*domain.Event, error) {
	event, err := s.ownedEvent(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	upd.Title = sanitize.TextPtr(upd.Title)
	upd.Description = sanitize.HTMLPtr(upd.Description)
	upd.Location = sanitize.TextPtr(upd.Location)
	merged := *event
	if upd.Title != nil {
		merged.Title = *upd.Title
	}
	if upd.PointsValue != nil {
		merged.PointsValue = *upd.PointsValue
	}
	if upd.Status != nil {
		merged.Status = *upd.Status
	}
	if upd.Date != nil {
		merged.Date = *upd.Date
	}
	if err := validateEvent(merged.Title, merged.PointsValue, merged.Status, merged.Date); err != nil {
		return nil, err
	}

	updated, err := s.store.Events().Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) Delete(ctx context.Context, id, callerID int64) error {
	if _, err := s.ownedEvent(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.store.Events().Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// ownedEvent loads the event and checks the caller organizes it: ErrNotFound before ErrForbidden.
func (s *eventService) ownedEvent(ctx context.Context, id, callerID int64) (*domain.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != callerID {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func validateEvent(title string, points int, status string, date time.Time) error {
	switch {
	case title == "":
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	case date.IsZero():
		return fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	case points < 0:
		return fmt.Errorf("%w: pointsValue must not be negative", domain.ErrInvalidInput)
	}
	switch status {
	case domain.EventStatusUpcoming, domain.EventStatusCompleted, domain.EventStatusCancelled:
		return nil
	}
	return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
}
