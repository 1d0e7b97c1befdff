package services

import (
	"context"
	"errors"
	"fmt"

	"communityhub/internal/domain"
)

type attendeeService struct {
	store    domain.Store
	recorder domain.ActivityRecorder
}

// NewAttendeeService creates an AttendeeService backed by store.
func NewAttendeeService(store domain.Store, recorder domain.ActivityRecorder) domain.AttendeeService {
	if recorder == nil {
		recorder = domain.NopActivityRecorder{}
	}
	return &attendeeService{store: store, recorder: recorder}
}

func (s *attendeeService) getEvent(ctx context.Context, eventID int64) (*domain.Event, error) {
	event, err := s.store.Events().Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *attendeeService) RegisterForEvent(ctx context.Context, eventID, userID int64) (*domain.EventParticipant, error) {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, err
	}
	p := domain.NewEventParticipant(eventID, userID)
	if err := s.store.Participants().Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create event participant: %w", err)
	}
	s.recorder.EventRegistered()
	return p, nil
}

func (s *attendeeService) ListMyEvents(ctx context.Context, userID int64) ([]*domain.EventParticipantWithEvent, error) {
	participations, err := s.store.Participants().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}
	result := make([]*domain.EventParticipantWithEvent, 0, len(participations))
	for _, p := range participations {
		event, err := s.store.Events().Get(ctx, p.EventID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("get event for participation: %w", err)
		}
		result = append(result, &domain.EventParticipantWithEvent{Event: event, Participant: p})
	}
	return result, nil
}

func (s *attendeeService) ListParticipants(ctx context.Context, eventID int64) ([]*domain.EventParticipant, error) {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, err
	}
	participants, err := s.store.Participants().ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}

func (s *attendeeService) MarkAttended(ctx context.Context, eventID, participantUserID, callerID int64) (*domain.EventParticipant, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != callerID {
		return nil, domain.ErrForbidden
	}
	before, err := s.store.Participants().Get(ctx, eventID, participantUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}
	p, err := s.store.Participants().MarkAttended(ctx, eventID, participantUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("mark attended: %w", err)
	}
	if before.Status != domain.ParticipantStatusAttended {
		s.recorder.AttendanceMarked(event.PointsValue)
	}
	return p, nil
}
