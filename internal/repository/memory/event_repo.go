package memory

import (
	"context"
	"slices"
	"time"

	"communityhub/internal/domain"
)

type eventRepository struct {
	s *Store
}

func (r eventRepository) Get(_ context.Context, id int64) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyEvent(e), nil
}

func (r eventRepository) List(_ context.Context) ([]*domain.Event, error) {
	return r.filter(func(*domain.Event) bool { return true }), nil
}

func (r eventRepository) ListByOrganizer(_ context.Context, organizerID int64) ([]*domain.Event, error) {
	return r.filter(func(e *domain.Event) bool { return e.OrganizerID == organizerID }), nil
}

func (r eventRepository) ListByOrganization(_ context.Context, organizationID int64) ([]*domain.Event, error) {
	return r.filter(func(e *domain.Event) bool { return e.OrganizationID == organizationID }), nil
}

func (r eventRepository) ListUpcoming(_ context.Context, now time.Time) ([]*domain.Event, error) {
	out := r.filter(func(e *domain.Event) bool { return e.Date.After(now) })
	slices.SortStableFunc(out, func(a, b *domain.Event) int { return a.Date.Compare(b.Date) })
	return out, nil
}

// filter returns copies of matching events ordered by id.
func (r eventRepository) filter(keep func(*domain.Event) bool) []*domain.Event {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.Event, 0)
	for _, e := range r.s.events {
		if keep(e) {
			out = append(out, copyEvent(e))
		}
	}
	slices.SortFunc(out, func(a, b *domain.Event) int { return cmpID(a.ID, b.ID) })
	return out
}

func (r eventRepository) Create(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextEventID++
	e.ID = r.s.nextEventID
	e.CreatedAt = r.s.now()
	if e.Status == "" {
		e.Status = domain.EventStatusUpcoming
	}
	r.s.events[e.ID] = copyEvent(e)
	return nil
}

func (r eventRepository) Update(_ context.Context, id int64, upd domain.EventUpdate) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Date != nil {
		e.Date = *upd.Date
	}
	if upd.Location != nil {
		e.Location = *upd.Location
	}
	if upd.PointsValue != nil {
		e.PointsValue = *upd.PointsValue
	}
	if upd.Status != nil {
		e.Status = *upd.Status
	}
	return copyEvent(e), nil
}

func (r eventRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.events, id)
	for pid, p := range r.s.participants {
		if p.EventID == id {
			delete(r.s.participants, pid)
		}
	}
	return nil
}
